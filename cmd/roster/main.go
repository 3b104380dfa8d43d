package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "roster",
		Short:        "Assign daily internal and external duties across a pool of professionals",
		SilenceUsage: true,
	}

	cmd.AddCommand(newServeCmd(), newGenerateCmd())

	return cmd
}
