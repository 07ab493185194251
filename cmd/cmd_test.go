package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fuzzscore/internal/fuzzy"
)

// execute runs the command tree with a clean environment and returns
// stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{
		"FUZZSCORE_LOG_LEVEL", "FUZZSCORE_LOG_FORMAT", "FUZZSCORE_OUTPUT",
		"FUZZSCORE_STRICT", "FUZZSCORE_CACHE_SIZE", "NO_COLOR",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("FUZZSCORE_COLOR", "false")

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEval_Positional(t *testing.T) {
	out, _, err := execute(t, "", "eval", "25", "500", "28", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "58.33")
	assert.Contains(t, out, "(Moderate)")
	assert.Contains(t, out, "Fired rules (16)")
}

func TestEval_FlagsJSON(t *testing.T) {
	out, _, err := execute(t, "", "eval",
		"--anamnesis", "0", "--smoking", "0", "--age", "15", "--doubt-time", "2", "-o", "json")
	require.NoError(t, err)

	var doc struct {
		Score      float64           `json:"score"`
		Category   string            `json:"category"`
		FiredRules []json.RawMessage `json:"fired_rules"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 25.0, doc.Score)
	assert.Equal(t, "low", doc.Category)
	assert.Len(t, doc.FiredRules, 1)
}

func TestEval_EnvOutput(t *testing.T) {
	root := newRootCmd()
	t.Setenv("FUZZSCORE_OUTPUT", "json")
	t.Setenv("FUZZSCORE_COLOR", "false")
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"eval", "80", "600", "20", "6"})
	require.NoError(t, root.Execute())
	assert.True(t, json.Valid(stdout.Bytes()))

	// Flags win over the environment.
	root = newRootCmd()
	stdout.Reset()
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"eval", "-o", "text", "80", "600", "20", "6"})
	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "Performance Score")
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"wrong arity", []string{"eval", "1", "2"}, "expected 4 positional values"},
		{"missing flags", []string{"eval", "--anamnesis", "3"}, "--smoking"},
		{"not a number", []string{"eval", "abc", "1", "20", "1"}, "invalid anamnesis"},
		{"empty", []string{"eval", "1", " ", "20", "1"}, "invalid smoking"},
		{"infinite", []string{"eval", "1", "1", "Inf", "1"}, "invalid age"},
		{"bad output", []string{"eval", "-o", "yaml", "1", "1", "20", "1"}, "unknown output format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	_, _, err := execute(t, "", "eval", "x", "1", "20", "1")
	var invalid *fuzzy.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}

func TestEval_AdvisoryLogged(t *testing.T) {
	out, logs, err := execute(t, "", "eval", "50", "200", "75.5", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "age 75.5 should be within 10-70 years")
	assert.Contains(t, logs, "level=WARN")
	assert.Contains(t, logs, "variable=age")
}

func TestEval_Strict(t *testing.T) {
	out, _, err := execute(t, "", "eval", "--strict", "50", "200", "75.5", "6")
	require.Error(t, err)
	assert.ErrorIs(t, err, fuzzy.ErrOutOfRange)
	assert.Empty(t, out)

	_, _, err = execute(t, "", "eval", "--strict", "50", "200", "40", "6")
	assert.NoError(t, err)
}

func TestEval_DebugLog(t *testing.T) {
	_, logs, err := execute(t, "", "eval", "--log-level", "debug", "--log-format", "json", "0", "0", "15", "2")
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(logs)), &rec))
	assert.Equal(t, "evaluated", rec["msg"])
	assert.Equal(t, 25.0, rec["score"])
}

func TestPreset(t *testing.T) {
	out, _, err := execute(t, "", "preset")
	require.NoError(t, err)
	for _, name := range []string{"1", "2", "3", "4"} {
		assert.Contains(t, out, "\n"+name+" ")
	}

	out, _, err = execute(t, "", "preset", "3", "-o", "json")
	require.NoError(t, err)
	var doc struct {
		Score    float64 `json:"score"`
		Category string  `json:"category"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.InDelta(t, 50.0, doc.Score, 1e-9)
	assert.Equal(t, "moderate", doc.Category)

	_, _, err = execute(t, "", "preset", "9")
	assert.ErrorContains(t, err, "available: 1, 2, 3, 4")
}

func TestRules(t *testing.T) {
	out, _, err := execute(t, "", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "81 rules")

	out, _, err = execute(t, "", "rules", "-o", "json")
	require.NoError(t, err)
	var doc rulesDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Rules, 81)
	assert.Equal(t, []string{"anamnesis", "smoking", "age", "doubt_time"}, doc.Variables)

	out, _, err = execute(t, "", "rules", "check")
	require.NoError(t, err)
	assert.Equal(t, "rule base v1.0.0 OK: 81 rules cover all 81 combinations\n", out)
}

func TestCurve(t *testing.T) {
	out, _, err := execute(t, "", "curve", "doubt_time", "-o", "json")
	require.NoError(t, err)

	var doc struct {
		Variable string   `json:"variable"`
		Terms    []string `json:"terms"`
		Samples  []struct {
			X       float64   `json:"x"`
			Degrees []float64 `json:"degrees"`
		} `json:"samples"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "doubt_time", doc.Variable)
	assert.Len(t, doc.Samples, 33)

	out, _, err = execute(t, "", "curve", "age", "--from", "20", "--to", "30", "--step", "5", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Samples, 3)
	assert.Equal(t, []float64{0.5, 0.5, 0}, doc.Samples[1].Degrees)

	out, _, err = execute(t, "", "curve", "performance")
	require.NoError(t, err)
	assert.Contains(t, out, "moderate")

	_, _, err = execute(t, "", "curve", "weight")
	assert.ErrorContains(t, err, "unknown variable")

	_, _, err = execute(t, "", "curve", "age", "--step", "-1")
	assert.ErrorContains(t, err, "step must be positive")
}

func TestBatch_Stdin(t *testing.T) {
	out, _, err := execute(t, "anamnesis,smoking,age,doubt_time\n0,0,15,2\nbad,0,15,2\n", "batch")
	require.NoError(t, err)

	sc := bufio.NewScanner(strings.NewReader(out))
	var recs []map[string]any
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		recs = append(recs, rec)
	}
	require.Len(t, recs, 2)
	assert.Contains(t, recs[0], "result")
	assert.Contains(t, recs[1]["error"], "invalid anamnesis")
}

func TestBatch_FileAndFailOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,0,15,2\n1,2\n"), 0o644))

	out, _, err := execute(t, "", "batch", path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))

	_, _, err = execute(t, "", "batch", "--fail-on-error", path)
	assert.ErrorContains(t, err, "1 of 2 rows failed")

	_, _, err = execute(t, "", "batch", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "open input")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "fuzzscore (devel) (rules v1.0.0)\n", out)
}
