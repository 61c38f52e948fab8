// Package main provides the CLI entrypoint for propgen.
//
// propgen is the code-generation companion of the property package:
//   - Parses a YAML manifest naming property types
//   - Analyzes the target packages (go/types)
//   - Emits accessor methods, kind markers and registration code
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"property-mapper/internal/analyze"
	"property-mapper/internal/gen"
	"property-mapper/internal/manifest"
)

var (
	manifestPath string
	outDir       string
	debug        bool
	dumpGraph    bool
	withComments bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "propgen",
	Short: "propgen - accessor code generation for property types",
	Long: `propgen generates accessor methods for types whose fields are backed
by a property value store: one getter per declared field, setters for
input types, a kind marker and the registration call.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate accessor files from the manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		mf, graph, err := loadAndAnalyze()
		if err != nil {
			return err
		}

		g := gen.NewGenerator(gen.Config{GenerateComments: withComments})
		files, err := g.Generate(graph, mf)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		for _, f := range files {
			dir := f.Dir
			if outDir != "" {
				dir = outDir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}

			target := filepath.Join(dir, f.Filename)
			if err := os.WriteFile(target, f.Content, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}
			logger.Info("wrote generated file",
				zap.String("package", f.PkgPath),
				zap.String("file", target),
				zap.Int("bytes", len(f.Content)))
		}

		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the manifest and dry-run the analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		mf, graph, err := loadAndAnalyze()
		if err != nil {
			return err
		}

		g := gen.NewGenerator(gen.Config{})
		files, err := g.Generate(graph, mf)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}

		for _, f := range files {
			logger.Info("would generate",
				zap.String("package", f.PkgPath),
				zap.String("file", f.Filename))
		}
		if dumpGraph {
			spew.Fdump(os.Stderr, graph)
		}

		return nil
	},
}

func loadAndAnalyze() (*manifest.File, *analyze.Graph, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	mf, err := manifest.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	if errs := mf.Validate(); len(errs) > 0 {
		for _, e := range errs {
			logger.Error("invalid manifest", zap.Error(e))
		}
		return nil, nil, fmt.Errorf("manifest has %d problem(s)", len(errs))
	}

	patterns := make([]string, 0, len(mf.Packages))
	for _, p := range mf.Packages {
		patterns = append(patterns, p.Path)
	}

	logger.Debug("analyzing packages", zap.Strings("patterns", patterns))
	graph, err := analyze.Load(patterns...)
	if err != nil {
		return nil, nil, err
	}

	return mf, graph, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "f", "propgen.yaml", "path to the generation manifest")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	genCmd.Flags().StringVarP(&outDir, "out", "o", "", "write generated files into this directory instead of next to their packages")
	genCmd.Flags().BoolVar(&withComments, "comments", false, "emit doc comments on generated accessors")
	checkCmd.Flags().BoolVar(&dumpGraph, "dump", false, "dump the analyzed type graph")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
