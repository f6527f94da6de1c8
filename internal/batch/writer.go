package batch

import (
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"tfsmatch/internal/fileutil"
	"tfsmatch/internal/match"
)

// Artifact is the structured record written for one matched capture file.
type Artifact struct {
	SourceFile  string        `json:"source_file"`
	Template    string        `json:"template"`
	Score       float64       `json:"score"`
	RecordCount int           `json:"record_count"`
	ParsedAt    string        `json:"parsed_at"`
	Data        *match.Result `json:"data"`
}

// outputName derives the artifact filename from the capture filename: the
// capture suffix is stripped and ".json" appended. When stripping would
// leave an empty or hidden name, the suffix is replaced in place instead.
func outputName(name, suffix string) string {
	base := strings.TrimSuffix(name, suffix)
	if base == "" || strings.HasPrefix(base, ".") {
		return strings.Replace(name, suffix, ".json", 1)
	}
	return base + ".json"
}

// writeArtifact renders and writes the JSON artifact for file, mirroring
// the capture tree's relative layout under outputRoot.
func writeArtifact(outputRoot, suffix string, file CaptureFile, out match.Outcome, parsedAt time.Time) error {
	artifact := Artifact{
		SourceFile:  filepath.ToSlash(file.RelPath),
		Template:    out.Template,
		Score:       math.Round(out.Score*100) / 100,
		RecordCount: out.Result.RecordCount(),
		ParsedAt:    parsedAt.UTC().Format(time.RFC3339),
		Data:        out.Result,
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	data = append(data, '\n')

	relDir := filepath.Dir(file.RelPath)
	outDir := outputRoot
	if relDir != "." {
		outDir = filepath.Join(outputRoot, relDir)
	}
	if err := fileutil.EnsureDir(outDir); err != nil {
		return err
	}

	outPath := filepath.Join(outDir, outputName(filepath.Base(file.RelPath), suffix))
	if err := fileutil.WriteFileAtomic(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write artifact for %s: %w", file.RelPath, err)
	}
	return nil
}

// runSummary is the machine-readable counterpart of the console report,
// written to the output root at the end of a writing run.
type runSummary struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	CaptureDir string    `json:"capture_dir"`
	CorpusPath string    `json:"corpus_path"`
	MinScore   float64   `json:"min_score"`
	Stats      *RunStats `json:"stats"`
}

func writeRunSummary(outputRoot string, summary runSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run summary: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(outputRoot, "run-summary.json")
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write run summary: %w", err)
	}
	return nil
}
