package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hansriess/academic-site/internal/config"
	"github.com/hansriess/academic-site/internal/db"
	"github.com/hansriess/academic-site/internal/pipeline"
)

var (
	generateOutputDir string
	generateSkipPub   bool
	generateVerbose   bool
)

var generateCVCmd = &cobra.Command{
	Use:   "generate-cv",
	Short: "Generate the CV PDF from the current records",
	Long:  `Loads every record section from the database, assembles the LaTeX document, compiles it with pdflatex and optionally publishes the PDF to the object store.`,
	RunE:  runGenerateCV,
}

func init() {
	generateCVCmd.Flags().StringVarP(&generateOutputDir, "output-dir", "o", "", "Working directory for tex/pdf files (overrides CV_OUTPUT_DIR)")
	generateCVCmd.Flags().BoolVar(&generateSkipPub, "skip-publish", false, "Keep the PDF local even when an object store is configured")
	generateCVCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print pipeline progress")
	rootCmd.AddCommand(generateCVCmd)
}

func runGenerateCV(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if generateOutputDir != "" {
		cfg.Compiler.OutputDir = generateOutputDir
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	database, err := db.Connect(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	opts := pipeline.Options{
		OutputDir:            cfg.Compiler.OutputDir,
		StylePath:            cfg.Compiler.StylePath,
		CompilerBinary:       cfg.Compiler.Binary,
		CleanFailedArtifacts: cfg.Compiler.CleanFailedArtifacts,
	}
	if !generateSkipPub {
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		opts.Store = store
	}
	if generateVerbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			fmt.Printf("[%s] %s\n", event.State, event.Message)
		}
	}

	result, err := pipeline.Run(cmd.Context(), database, opts)
	if err != nil {
		return err
	}

	fmt.Printf("CV written to %s\n", result.PDFPath)
	if result.PublishedURL != "" {
		fmt.Printf("Published: %s\n", result.PublishedURL)
	}
	return nil
}
