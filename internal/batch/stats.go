package batch

import (
	"sort"
	"time"
)

// Classification is the single bucket a processed file lands in.
type Classification int

const (
	// ClassMatched: a template parsed the file at or above the threshold.
	ClassMatched Classification = iota
	// ClassBelowThreshold: a template parsed it, but not convincingly.
	ClassBelowThreshold
	// ClassFailed: no candidate produced a scored parse, or the file was
	// unreadable.
	ClassFailed
	// ClassSkippedEmpty: the file held nothing but whitespace.
	ClassSkippedEmpty
)

// CategoryStats aggregates results for one capture category.
type CategoryStats struct {
	Total          int     `json:"total"`
	Matched        int     `json:"matched"`
	BelowThreshold int     `json:"below_threshold"`
	Failed         int     `json:"failed"`
	SkippedEmpty   int     `json:"skipped_empty"`
	Records        int     `json:"records"`
	AvgScore       float64 `json:"avg_score"`

	scores []float64
}

func (c *CategoryStats) record(class Classification, score float64, records int) {
	switch class {
	case ClassMatched:
		c.Matched++
		c.Records += records
		c.scores = append(c.scores, score)
	case ClassBelowThreshold:
		c.BelowThreshold++
	case ClassFailed:
		c.Failed++
	case ClassSkippedEmpty:
		c.SkippedEmpty++
	}
}

// finalize computes the average accepted score once the category is done.
func (c *CategoryStats) finalize() {
	if len(c.scores) == 0 {
		return
	}
	var sum float64
	for _, s := range c.scores {
		sum += s
	}
	c.AvgScore = sum / float64(len(c.scores))
}

// RunStats aggregates results across the whole run. Counts obey the
// partition property: matched + below_threshold + failed + skipped_empty
// always equals processed.
type RunStats struct {
	TotalFiles     int `json:"total_files"`
	Processed      int `json:"processed"`
	Matched        int `json:"matched"`
	BelowThreshold int `json:"below_threshold"`
	Failed         int `json:"failed"`
	SkippedEmpty   int `json:"skipped_empty"`
	TotalRecords   int `json:"total_records"`

	TemplateHits map[string]int            `json:"template_hits"`
	Categories   map[string]*CategoryStats `json:"categories"`
	Elapsed      time.Duration             `json:"-"`

	scores []float64
}

// NewRunStats returns an empty aggregate.
func NewRunStats() *RunStats {
	return &RunStats{
		TemplateHits: make(map[string]int),
		Categories:   make(map[string]*CategoryStats),
	}
}

// mergeCategory folds one finished category into the run-wide aggregate.
// Callers serialize merges when categories run in parallel.
func (s *RunStats) mergeCategory(name string, cs *CategoryStats, hits map[string]int) {
	cs.finalize()
	s.Categories[name] = cs

	s.Processed += cs.Matched + cs.BelowThreshold + cs.Failed + cs.SkippedEmpty
	s.Matched += cs.Matched
	s.BelowThreshold += cs.BelowThreshold
	s.Failed += cs.Failed
	s.SkippedEmpty += cs.SkippedEmpty
	s.TotalRecords += cs.Records
	s.scores = append(s.scores, cs.scores...)
	for template, count := range hits {
		s.TemplateHits[template] += count
	}
}

// ScoreRange returns the minimum, maximum, and average accepted score.
// ok is false when nothing matched.
func (s *RunStats) ScoreRange() (min, max, avg float64, ok bool) {
	if len(s.scores) == 0 {
		return 0, 0, 0, false
	}
	min, max = s.scores[0], s.scores[0]
	var sum float64
	for _, score := range s.scores {
		if score < min {
			min = score
		}
		if score > max {
			max = score
		}
		sum += score
	}
	return min, max, sum / float64(len(s.scores)), true
}

// TemplateHit pairs a template label with its match count.
type TemplateHit struct {
	Template string
	Count    int
}

// TopTemplates returns the most-used templates, highest count first, with
// ties broken by label so the report is stable.
func (s *RunStats) TopTemplates(n int) []TemplateHit {
	hits := make([]TemplateHit, 0, len(s.TemplateHits))
	for template, count := range s.TemplateHits {
		hits = append(hits, TemplateHit{Template: template, Count: count})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Count != hits[j].Count {
			return hits[i].Count > hits[j].Count
		}
		return hits[i].Template < hits[j].Template
	})
	if n > 0 && len(hits) > n {
		hits = hits[:n]
	}
	return hits
}

// CategoryNames returns category labels in sorted order.
func (s *RunStats) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
