package main

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stubforge/stubforge/internal/config"
	"github.com/stubforge/stubforge/internal/render"
	"github.com/stubforge/stubforge/internal/sink"
	"github.com/stubforge/stubforge/pkg/spec"
)

func generateCmd() *cobra.Command {
	var (
		configFile string
		framework  string
		testType   string
		name       string
		methods    []string
		outputDir  string
		toStdout   bool
		keepGoing  bool
		jobs       int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate test skeletons from a specification",
		Long: `Generates test code from a JSON specification document (batch mode)
or from command-line flags (single-file mode).

Examples:
  # Batch mode from a spec document
  stubforge generate --config specs.json -o ./tests

  # Single file from flags
  stubforge generate --framework pytest --name Calculator --methods add,subtract

  # Discover *.testspec.json files via .stubforge.yaml
  stubforge generate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadProjectConfig(".")
			if err != nil {
				return fmt.Errorf("failed to load project config: %w", err)
			}
			cfg.Merge(&config.ProjectConfig{
				Framework: framework,
				TestType:  testType,
				OutputDir: outputDir,
			})

			var out sink.Sink = sink.NewFileSink(cfg.OutputDir)
			if toStdout {
				out = &sink.StdoutSink{W: os.Stdout}
			}

			registry := render.NewRegistry()

			switch {
			case configFile != "":
				return runBatch(registry, out, []string{configFile}, keepGoing, jobs)
			case name != "":
				return runSingle(registry, out, cfg, name, methods)
			default:
				files, err := cfg.FindSpecFiles(".")
				if err != nil {
					return fmt.Errorf("spec file discovery failed: %w", err)
				}
				if len(files) == 0 {
					return fmt.Errorf("no spec files found (patterns: %s); pass --config or --name", strings.Join(cfg.Include, ", "))
				}
				return runBatch(registry, out, files, keepGoing, jobs)
			}
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to a JSON specification document (batch mode)")
	cmd.Flags().StringVarP(&framework, "framework", "f", "", "Target framework (pytest, unittest, jest, mocha, junit)")
	cmd.Flags().StringVarP(&testType, "type", "t", "", "Test type (unit, integration, e2e, api)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Subject name (class, module, or feature under test)")
	cmd.Flags().StringSliceVarP(&methods, "methods", "m", nil, "Comma-separated method names to generate stubs for")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for generated tests")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print generated code instead of writing files")
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "Continue generating sibling entries after a failure")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "Maximum concurrent generations in batch mode")

	return cmd
}

// runSingle generates one test file from flags.
func runSingle(registry *render.Registry, out sink.Sink, cfg *config.ProjectConfig, name string, methods []string) error {
	s := spec.Spec{
		Framework:   spec.Framework(cfg.Framework),
		Language:    spec.Language(cfg.Language),
		TestType:    spec.TestType(cfg.TestType),
		SubjectName: name,
		Members:     methods,
	}
	s.Normalize()

	code, err := registry.Generate(s)
	if err != nil {
		return err
	}

	renderer, err := registry.Resolve(s.Framework)
	if err != nil {
		return err
	}
	filename := render.OutputFileName(renderer, s)

	if err := out.Write(filename, code); err != nil {
		return err
	}

	log.Info().
		Str("framework", string(s.Framework)).
		Str("file", filename).
		Int("members", len(methods)).
		Msg("generated test file")

	return nil
}

// runBatch generates every entry of every spec document. Each entry renders
// independently; keepGoing decides whether one failing entry aborts its
// siblings. Nothing is written for entries that fail to render.
func runBatch(registry *render.Registry, out sink.Sink, files []string, keepGoing bool, jobs int) error {
	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()

	var specs []spec.Spec
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read spec file: %w", err)
		}
		doc, err := spec.ParseDocument(data)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		specs = append(specs, doc.Specs...)
	}

	logger.Info().Int("entries", len(specs)).Int("files", len(files)).Msg("loaded specifications")

	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	var failed atomic.Int64
	for _, s := range specs {
		s := s
		g.Go(func() error {
			code, err := registry.Generate(s)
			if err != nil {
				if keepGoing {
					logger.Error().Err(err).Str("subject", s.SubjectName).Msg("generation failed")
					failed.Add(1)
					return nil
				}
				return fmt.Errorf("%s: %w", s.SubjectName, err)
			}

			renderer, err := registry.Resolve(s.Framework)
			if err != nil {
				return err
			}
			filename := render.OutputFileName(renderer, s)

			if err := out.Write(filename, code); err != nil {
				return err
			}

			logger.Info().
				Str("subject", s.SubjectName).
				Str("framework", string(s.Framework)).
				Str("file", filename).
				Msg("generated test file")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d entries failed", n, len(specs))
	}
	return nil
}
