package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"tfsmatch/internal/corpus"
	"tfsmatch/internal/fileutil"
	"tfsmatch/internal/filters"
	"tfsmatch/internal/match"
)

// ErrNoCategoryFiles reports that an explicitly requested category holds
// no capture files. Callers treat it as an informational outcome, not a
// process failure.
var ErrNoCategoryFiles = errors.New("no capture files in requested category")

// Options configures one batch run.
type Options struct {
	CaptureDir    string
	OutputDir     string
	CorpusPath    string
	CaptureSuffix string
	MinScore      float64
	// Category restricts the run to one capture category when non-empty.
	Category string
	// DryRun disables all writes: no artifacts, no run summary, no lock.
	DryRun bool
	// Workers is the number of categories processed concurrently.
	Workers int
}

// Runner drives template matching over a capture tree.
type Runner struct {
	opts    Options
	logger  *slog.Logger
	pool    *corpus.Pool
	matcher *match.Matcher
	runID   string
}

// NewRunner builds a runner over the corpus at opts.CorpusPath using the
// given parsing engine.
func NewRunner(opts Options, engine match.Engine, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	pool := corpus.NewPool(opts.CorpusPath)
	return &Runner{
		opts:    opts,
		logger:  logger.With("component", "batch"),
		pool:    pool,
		matcher: match.NewMatcher(pool, engine, logger),
		runID:   uuid.NewString(),
	}
}

// RunID identifies this run in logs and the run summary.
func (r *Runner) RunID() string {
	return r.runID
}

// Close releases every corpus handle the run opened.
func (r *Runner) Close() error {
	return r.pool.Close()
}

// Run processes the capture tree and returns the aggregated statistics.
// Per-file problems are folded into the statistics; only corpus access
// and configuration failures abort the run.
func (r *Runner) Run(ctx context.Context) (*RunStats, error) {
	started := time.Now()

	files, err := FindCaptures(r.opts.CaptureDir, r.opts.CaptureSuffix)
	if err != nil {
		return nil, err
	}

	if r.opts.Category != "" {
		kept := files[:0]
		for _, file := range files {
			if file.Category == r.opts.Category {
				kept = append(kept, file)
			}
		}
		files = kept
		if len(files) == 0 {
			return nil, fmt.Errorf("category %q: %w", r.opts.Category, ErrNoCategoryFiles)
		}
	}

	stats := NewRunStats()
	stats.TotalFiles = len(files)

	if !r.opts.DryRun {
		if err := fileutil.EnsureDir(r.opts.OutputDir); err != nil {
			return nil, err
		}
		lock := flock.New(filepath.Join(r.opts.OutputDir, ".tfsmatch.lock"))
		locked, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire output lock: %w", err)
		}
		if !locked {
			return nil, fmt.Errorf("output directory %s is locked by another run", r.opts.OutputDir)
		}
		defer func() {
			_ = lock.Unlock()
		}()
	}

	groups, names := groupByCategory(files)
	r.logger.Info("run started",
		"run_id", r.runID,
		"files", len(files),
		"categories", len(names),
		"dry_run", r.opts.DryRun,
	)

	if err := r.processCategories(ctx, groups, names, stats); err != nil {
		return stats, err
	}

	stats.Elapsed = time.Since(started)

	if !r.opts.DryRun {
		summary := runSummary{
			RunID:      r.runID,
			StartedAt:  started.UTC(),
			FinishedAt: time.Now().UTC(),
			CaptureDir: r.opts.CaptureDir,
			CorpusPath: r.opts.CorpusPath,
			MinScore:   r.opts.MinScore,
			Stats:      stats,
		}
		if err := writeRunSummary(r.opts.OutputDir, summary); err != nil {
			return stats, err
		}
	}

	r.logger.Info("run finished",
		"run_id", r.runID,
		"processed", stats.Processed,
		"matched", stats.Matched,
		"elapsed", stats.Elapsed,
	)
	return stats, nil
}

func (r *Runner) processCategories(ctx context.Context, groups map[string][]CaptureFile, names []string, stats *RunStats) error {
	if r.opts.Workers == 1 {
		for _, name := range names {
			cs, hits, err := r.processCategory(ctx, 0, name, groups[name])
			if err != nil {
				return err
			}
			stats.mergeCategory(name, cs, hits)
		}
		return nil
	}

	// Each category gets a dedicated worker identity so corpus handles
	// are never shared; merges are serialized explicitly.
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for i, name := range names {
		worker, name := i, name
		g.Go(func() error {
			cs, hits, err := r.processCategory(gctx, worker, name, groups[name])
			if err != nil {
				return err
			}
			mu.Lock()
			stats.mergeCategory(name, cs, hits)
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

func (r *Runner) processCategory(ctx context.Context, worker int, name string, files []CaptureFile) (*CategoryStats, map[string]int, error) {
	categoryFilters := filters.Resolve(name)
	displays := make([]string, len(categoryFilters))
	for i, f := range categoryFilters {
		displays[i] = f.String()
	}
	r.logger.Info("category started",
		"category", name,
		"files", len(files),
		"filters", strings.Join(displays, ","),
	)

	cs := &CategoryStats{Total: len(files)}
	hits := make(map[string]int)

	for _, file := range files {
		class, outcome, err := r.processFile(ctx, worker, file, categoryFilters)
		if err != nil {
			return nil, nil, err
		}

		var score float64
		var records int
		if class == ClassMatched {
			score = outcome.Score
			records = outcome.Result.RecordCount()
			hits[outcome.Template]++

			if !r.opts.DryRun {
				if err := writeArtifact(r.opts.OutputDir, r.opts.CaptureSuffix, file, outcome, time.Now()); err != nil {
					return nil, nil, err
				}
			}
		}
		cs.record(class, score, records)
	}

	r.logger.Info("category finished",
		"category", name,
		"matched", cs.Matched,
		"total", cs.Total,
		"records", cs.Records,
	)
	return cs, hits, nil
}

// processFile classifies one capture file. Read failures and empty files
// never reach the matcher; corpus errors from the matcher are fatal.
func (r *Runner) processFile(ctx context.Context, worker int, file CaptureFile, categoryFilters []filters.Filter) (Classification, match.Outcome, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		r.logger.Debug("read failed", "file", file.RelPath, "error", err)
		return ClassFailed, match.Outcome{}, nil
	}
	content := string(data)
	if strings.TrimSpace(content) == "" {
		r.logger.Debug("empty file skipped", "file", file.RelPath)
		return ClassSkippedEmpty, match.Outcome{}, nil
	}

	var best match.Outcome
	for _, filter := range categoryFilters {
		keyword := filter.Keyword
		if filter.All {
			keyword = ""
		}
		outcome, err := r.matcher.FindBest(ctx, worker, content, keyword)
		if err != nil {
			return ClassFailed, match.Outcome{}, err
		}
		// Strict improvement only: an equal score from a later, more
		// specific filter does not displace the earlier result.
		if outcome.Score > best.Score {
			best = outcome
		}
	}

	switch {
	case !best.Matched():
		r.logger.Debug("no match", "file", file.RelPath)
		return ClassFailed, match.Outcome{}, nil
	case best.Score < r.opts.MinScore:
		r.logger.Debug("below threshold",
			"file", file.RelPath,
			"template", best.Template,
			"score", best.Score,
		)
		return ClassBelowThreshold, best, nil
	default:
		r.logger.Debug("matched",
			"file", file.RelPath,
			"template", best.Template,
			"score", best.Score,
			"records", best.Result.RecordCount(),
		)
		return ClassMatched, best, nil
	}
}
