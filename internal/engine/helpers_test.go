package engine_test

import (
	"testing"
	"time"

	"github.com/kballard/go-shellquote"

	"gitshift.dev/gitshift/internal/engine"
	"gitshift.dev/gitshift/internal/output"
)

// newTestEngine builds an engine whose root rewrites copy the instruction
// list into place with plain cp instead of re-executing the gitshift binary,
// which does not exist while tests run.
func newTestEngine() *engine.Engine {
	eng := engine.NewEngine(output.NewSplog())
	eng.SetSequenceEditor(func(planPath string) (string, error) {
		return shellquote.Join("cp", planPath), nil
	})
	return eng
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", value, err)
	}
	return parsed
}
