package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	loxlog "github.com/msto63/lox/foundation/core/log"

	"github.com/msto63/lox/internal/render"
	"github.com/msto63/lox/internal/runner"
)

func TestWatchRun(t *testing.T) {
	var stdout, stderr, logs bytes.Buffer
	app.logger = loxlog.NewWithConfig(loxlog.Config{Level: loxlog.LevelWarn, Format: loxlog.FormatText, Output: &logs})
	app.render = render.Plain()

	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	r := runner.New(runner.Options{Stdout: &stdout, Stderr: &stderr, Logger: loxlog.Discard()})

	path := writeScript(t, "main.lox", "print 7;")
	watchRun(cmd, r, path)

	if stdout.String() != "7\n" {
		t.Errorf("stdout = %q, want 7", stdout.String())
	}
	if !strings.HasPrefix(stderr.String(), "---- main.lox (run ") {
		t.Errorf("stderr = %q, want separator", stderr.String())
	}
	if logs.Len() != 0 {
		t.Errorf("logs = %q, want none for a clean run", logs.String())
	}

	stderr.Reset()
	watchRun(cmd, r, filepath.Join(t.TempDir(), "gone.lox"))

	if !strings.Contains(logs.String(), "read source") {
		t.Errorf("logs = %q, want the read failure", logs.String())
	}
	if !strings.Contains(logs.String(), "error_code=IO_ERROR") {
		t.Errorf("logs = %q, want the error code field", logs.String())
	}
	if !strings.HasPrefix(stderr.String(), "---- gone.lox (run ) ----") {
		t.Errorf("stderr = %q, want separator without run id", stderr.String())
	}
}
