package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/chrisdamba/trafficwatch/internal/models"
	"github.com/spf13/cobra"
	"os"
)

var invokeFrom, invokeTo, invokeEmail string

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Run a single invocation locally and print the response",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		h, cleanup, err := buildHandler(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating handler: %v\n", err)
			os.Exit(1)
		}
		resp, err := h.Handle(ctx, tripRequest(cmd))
		cleanup()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error handling request: %v\n", err)
			os.Exit(1)
		}
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding response: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}

// tripRequest leaves attributes whose flag was not given as nil, the same
// as a payload that omits them.
func tripRequest(cmd *cobra.Command) models.TripRequest {
	var req models.TripRequest
	if cmd.Flags().Changed("from") {
		req.From = &invokeFrom
	}
	if cmd.Flags().Changed("to") {
		req.To = &invokeTo
	}
	if cmd.Flags().Changed("email") {
		req.Email = &invokeEmail
	}
	return req
}

func init() {
	invokeCmd.Flags().StringVar(&invokeFrom, "from", "", "Start location")
	invokeCmd.Flags().StringVar(&invokeTo, "to", "", "Destination")
	invokeCmd.Flags().StringVar(&invokeEmail, "email", "", "Address the alert is tagged with")
}
