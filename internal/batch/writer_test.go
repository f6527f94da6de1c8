package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tfsmatch/internal/match"
)

func TestOutputName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"router1._output", "router1.json"},
		{"device.cfg._output", "device.cfg.json"},
		{"._output", ".json"},
		{".hidden._output", ".hidden.json"},
	}
	for _, tc := range cases {
		if got := outputName(tc.in, "._output"); got != tc.want {
			t.Fatalf("outputName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWriteArtifact(t *testing.T) {
	outRoot := t.TempDir()
	file := CaptureFile{
		Path:     "/ignored",
		RelPath:  filepath.Join("arp", "site-b", "router1._output"),
		Category: "arp",
	}
	outcome := match.Outcome{
		Template: "show ip arp",
		Score:    88.5714,
		Result: &match.Result{
			Header: []string{"ADDRESS", "MAC"},
			Rows:   [][]string{{"10.0.0.1", "aabb.ccdd.eeff"}},
		},
	}
	parsedAt := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	if err := writeArtifact(outRoot, "._output", file, outcome, parsedAt); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outRoot, "arp", "site-b", "router1.json"))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	var artifact struct {
		SourceFile  string              `json:"source_file"`
		Template    string              `json:"template"`
		Score       float64             `json:"score"`
		RecordCount int                 `json:"record_count"`
		ParsedAt    string              `json:"parsed_at"`
		Data        []map[string]string `json:"data"`
	}
	if err := json.Unmarshal(data, &artifact); err != nil {
		t.Fatalf("decode artifact: %v", err)
	}
	if artifact.SourceFile != "arp/site-b/router1._output" {
		t.Fatalf("source_file = %q", artifact.SourceFile)
	}
	if artifact.Score != 88.57 {
		t.Fatalf("score not rounded to 2dp: %v", artifact.Score)
	}
	if artifact.RecordCount != 1 {
		t.Fatalf("record_count = %d", artifact.RecordCount)
	}
	if artifact.ParsedAt != "2026-08-25T12:00:00Z" {
		t.Fatalf("parsed_at = %q", artifact.ParsedAt)
	}
	if len(artifact.Data) != 1 || artifact.Data[0]["ADDRESS"] != "10.0.0.1" {
		t.Fatalf("data = %v", artifact.Data)
	}

	// Field order inside records follows the parse header.
	text := string(data)
	if strings.Index(text, `"ADDRESS"`) > strings.Index(text, `"MAC"`) {
		t.Fatalf("record field order not preserved: %s", text)
	}
}

func TestWriteRunSummary(t *testing.T) {
	outRoot := t.TempDir()
	stats := NewRunStats()
	cs := &CategoryStats{Total: 1}
	cs.record(ClassMatched, 75, 2)
	stats.mergeCategory("arp", cs, map[string]int{"show ip arp": 1})

	summary := runSummary{
		RunID:      "test-run",
		StartedAt:  time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 8, 25, 12, 0, 5, 0, time.UTC),
		CaptureDir: "/captures",
		CorpusPath: "/templates.db",
		MinScore:   10,
		Stats:      stats,
	}
	if err := writeRunSummary(outRoot, summary); err != nil {
		t.Fatalf("write summary: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outRoot, "run-summary.json"))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if decoded["run_id"] != "test-run" {
		t.Fatalf("run_id = %v", decoded["run_id"])
	}
}
