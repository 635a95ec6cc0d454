package cmd

import (
	"context"
	"fmt"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
	"os"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Serve invocations from the function runtime",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		h, cleanup, err := buildHandler(context.Background(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating handler: %v\n", err)
			os.Exit(1)
		}
		// Start never returns; the producer is released when the runtime
		// sends SIGTERM before shutting the environment down.
		lambda.StartWithOptions(h.Handle, lambda.WithEnableSIGTERM(cleanup))
	},
}
