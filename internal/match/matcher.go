package match

import (
	"context"
	"fmt"
	"log/slog"

	"tfsmatch/internal/corpus"
)

// Matcher drives the parsing engine over every candidate template for a
// filter and keeps the highest-scoring result.
type Matcher struct {
	pool   *corpus.Pool
	engine Engine
	logger *slog.Logger
}

// NewMatcher builds a matcher over the given corpus pool and engine.
func NewMatcher(pool *corpus.Pool, engine Engine, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{pool: pool, engine: engine, logger: logger.With("component", "matcher")}
}

// FindBest tries every candidate the filter admits against raw and returns
// the best-scoring outcome. An empty filter considers the whole corpus.
// One candidate failing to parse never aborts the search; ties keep the
// first-seen maximum. A corpus query failure discards the worker's handle
// and propagates — a broken corpus invalidates the whole run.
func (m *Matcher) FindBest(ctx context.Context, worker int, raw, filter string) (Outcome, error) {
	store, err := m.pool.Get(worker)
	if err != nil {
		return Outcome{}, fmt.Errorf("corpus handle: %w", err)
	}

	templates, err := store.Templates(ctx, filter)
	if err != nil {
		m.pool.Discard(worker)
		return Outcome{}, fmt.Errorf("corpus query (filter %q): %w", filter, err)
	}

	var best Outcome
	for _, tmpl := range templates {
		if err := ctx.Err(); err != nil {
			return best, err
		}

		res, err := m.engine.Parse(tmpl.Content, raw)
		if err != nil {
			// Corpus noise is expected; a failing candidate contributes
			// nothing and the search continues.
			m.logger.Debug("candidate failed", "template", tmpl.CLICommand, "error", err)
			continue
		}

		score := Score(tmpl.CLICommand, res)
		if score > best.Score {
			best = Outcome{Template: tmpl.CLICommand, Result: res, Score: score}
		}
	}
	return best, nil
}
