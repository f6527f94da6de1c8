package main

import (
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"tfsmatch/internal/batch"
	"tfsmatch/internal/config"
	"tfsmatch/internal/logging"
	"tfsmatch/internal/match"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		captureDir string
		outputDir  string
		dbPath     string
		minScore   float64
		category   string
		workers    int
		verbose    bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Match capture files against the template corpus",
		Long: "Walk the capture directory, match every capture file against the " +
			"template corpus, and write a JSON artifact per accepted match.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			opts, err := buildRunOptions(cfg, runFlags{
				captureDir:      captureDir,
				outputDir:       outputDir,
				dbPath:          dbPath,
				minScore:        minScore,
				minScoreChanged: cmd.Flags().Changed("min-score"),
				category:        category,
				workers:         workers,
				workersChanged:  cmd.Flags().Changed("workers"),
				dryRun:          dryRun,
			})
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg, verbose)
			if err != nil {
				return err
			}

			runner := batch.NewRunner(opts, match.NewTextFSMEngine(), logger)
			defer runner.Close()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stats, err := runner.Run(runCtx)
			if err != nil {
				if errors.Is(err, batch.ErrNoCategoryFiles) {
					fmt.Fprintf(cmd.OutOrStdout(), "No capture files found for category %q\n", opts.Category)
					return nil
				}
				return err
			}

			out := cmd.OutOrStdout()
			renderRunReport(out, stats, opts, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&captureDir, "capture-dir", "C", "", "Directory tree holding capture files")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for JSON artifacts")
	cmd.Flags().StringVarP(&dbPath, "db", "d", "", "Path to the template corpus database")
	cmd.Flags().Float64VarP(&minScore, "min-score", "m", 10.0, "Minimum score for a match to be accepted")
	cmd.Flags().StringVarP(&category, "category", "F", "", "Process only this capture category")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of categories processed concurrently")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-file match decisions")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Classify and report without writing artifacts")

	return cmd
}

// runFlags carries the command line values into option resolution; Changed
// markers distinguish explicit values from cobra defaults.
type runFlags struct {
	captureDir      string
	outputDir       string
	dbPath          string
	minScore        float64
	minScoreChanged bool
	category        string
	workers         int
	workersChanged  bool
	dryRun          bool
}

// buildRunOptions merges flags over config. Flags win whenever given; the
// capture directory and corpus path must come from one of the two.
func buildRunOptions(cfg *config.Config, flags runFlags) (batch.Options, error) {
	opts := batch.Options{
		CaptureDir:    cfg.Paths.CaptureDir,
		OutputDir:     cfg.Paths.OutputDir,
		CorpusPath:    cfg.Paths.TemplateDB,
		CaptureSuffix: cfg.Matching.CaptureSuffix,
		MinScore:      cfg.Matching.MinScore,
		Workers:       cfg.Matching.Workers,
		Category:      strings.TrimSpace(flags.category),
		DryRun:        flags.dryRun,
	}

	var err error
	if v := strings.TrimSpace(flags.captureDir); v != "" {
		if opts.CaptureDir, err = config.ExpandPath(v); err != nil {
			return batch.Options{}, err
		}
	}
	if v := strings.TrimSpace(flags.outputDir); v != "" {
		if opts.OutputDir, err = config.ExpandPath(v); err != nil {
			return batch.Options{}, err
		}
	}
	if v := strings.TrimSpace(flags.dbPath); v != "" {
		if opts.CorpusPath, err = config.ExpandPath(v); err != nil {
			return batch.Options{}, err
		}
	}
	if flags.minScoreChanged {
		opts.MinScore = flags.minScore
	}
	if flags.workersChanged {
		opts.Workers = flags.workers
	}

	if opts.CaptureDir == "" {
		return batch.Options{}, errors.New("capture directory not set; use --capture-dir or paths.capture_dir")
	}
	if opts.CorpusPath == "" {
		return batch.Options{}, errors.New("template corpus not set; use --db or paths.template_db")
	}
	if !flags.dryRun && opts.OutputDir == "" {
		return batch.Options{}, errors.New("output directory not set; use --output-dir or paths.output_dir")
	}
	if opts.MinScore < 0 || opts.MinScore > 100 {
		return batch.Options{}, fmt.Errorf("min score %v out of range [0, 100]", opts.MinScore)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return opts, nil
}
