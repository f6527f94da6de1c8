package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tfsmatch/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	captureDir string
	outputDir  string
	corpusPath string
	configPath string
}

// arpTemplate is a minimal but genuine TextFSM template so CLI tests
// exercise the real parsing engine end to end.
const arpTemplate = `Value ADDRESS (\d+\.\d+\.\d+\.\d+)
Value MAC (\S+)

Start
  ^Internet\s+${ADDRESS}\s+\S+\s+${MAC} -> Record
`

const arpCapture = `Internet  10.1.1.1   12   aabb.ccdd.0001
Internet  10.1.1.2   40   aabb.ccdd.0002
`

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))

	env := &cliTestEnv{
		baseDir:    base,
		captureDir: filepath.Join(base, "captures"),
		outputDir:  filepath.Join(base, "parsed"),
		configPath: filepath.Join(base, "config.toml"),
	}

	env.corpusPath = testsupport.NewCorpusDB(t,
		testsupport.SeedTemplate{CLICommand: "show ip arp", Content: arpTemplate},
	)

	testsupport.WriteCapture(t, env.captureDir, "arp/router1._output", arpCapture)
	testsupport.WriteCapture(t, env.captureDir, "arp/empty._output", "  \n")

	content := fmt.Sprintf(`[paths]
capture_dir = %q
output_dir = %q
template_db = %q
log_dir = %q

[logging]
level = "error"
`,
		env.captureDir,
		env.outputDir,
		env.corpusPath,
		filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = []string{"--config", configPath}
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
