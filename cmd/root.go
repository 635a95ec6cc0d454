package cmd

import (
	"fmt"
	"github.com/chrisdamba/trafficwatch/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log"
	"os"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "trafficwatch",
	Short: "Traffic congestion alerts for a single trip",
	Long: `trafficwatch fetches traffic flow, incident and routing data for a trip,
classifies the congestion, archives an encrypted summary to object storage and
publishes a plain-text alert for the requester.`,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON or YAML)")

	rootCmd.PersistentFlags().String("region", "", "Region for every managed-service call")
	rootCmd.PersistentFlags().String("notifier", "", "Alert publisher: sns or kafka")
	rootCmd.PersistentFlags().String("storage-provider", "", "Archive backend: s3 or local")
	rootCmd.PersistentFlags().String("key-strategy", "", "Sealing key: ephemeral or vault")

	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("notifier", rootCmd.PersistentFlags().Lookup("notifier"))
	viper.BindPFlag("storage_provider", rootCmd.PersistentFlags().Lookup("storage-provider"))
	viper.BindPFlag("key_strategy", rootCmd.PersistentFlags().Lookup("key-strategy"))

	rootCmd.AddCommand(lambdaCmd, invokeCmd)
}

func initLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

func loadConfig() (*models.Config, error) {
	cfg, err := models.LoadConfig(viper.GetViper(), cfgFile)
	if err != nil {
		return nil, err
	}
	if cfgFile != "" {
		log.Printf("Using config file: %s", cfgFile)
	}
	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
