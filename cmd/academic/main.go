// Package main provides the entry point for the academic site server and
// management commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "academic",
	Short: "Academic portfolio site",
	Long:  "Academic portfolio site: manages publication, teaching and service records, and typesets a CV PDF from them via pdflatex.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
