package report

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/psrsim/beamsim/internal/pipeline"
)

func fakeResult() *pipeline.Result {
	cfg := pipeline.DefaultConfig()
	return &pipeline.Result{
		Config: cfg,
		W10:    []float64{12.5, 8.1},
		BestDM: 1.02,
	}
}

func TestAppendRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.txt")
	res := fakeResult()

	if err := Append(path, res); err != nil {
		t.Fatal(err)
	}
	if err := Append(path, res); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d record lines, want 2 (append semantics)", len(lines))
	}
	fields := strings.Fields(lines[0])
	if len(fields) != 7 {
		t.Fatalf("got %d fields, want 7: %q", len(fields), lines[0])
	}
	for i, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			t.Fatalf("field %d %q is not numeric: %v", i, f, err)
		}
	}
	if fields[6] != "1.02" {
		t.Fatalf("best DM field = %q, want 1.02", fields[6])
	}
}

func TestAppendBadPath(t *testing.T) {
	err := Append(filepath.Join(t.TempDir(), "no", "such", "dir", "params.txt"), fakeResult())
	if err == nil {
		t.Fatal("unwritable path should surface an error")
	}
}
