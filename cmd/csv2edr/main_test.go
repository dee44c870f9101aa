package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/ccss2edr/core/edr"
	"github.com/FocuswithJustin/ccss2edr/internal/cli"
	"github.com/FocuswithJustin/ccss2edr/internal/logging"
	"github.com/FocuswithJustin/ccss2edr/internal/testutil"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	defer logging.InitLogger(logging.LevelInfo, logging.FormatText)

	var c CLI
	opts := append(cli.Options(name, "test"), kong.Exit(func(int) {}), kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}))
	parser, err := kong.New(&c, opts...)
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run()
}

func writeMatrix(t *testing.T, dir, name string, rows int) string {
	t.Helper()
	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < 401; c++ {
			b.WriteString(strconv.FormatFloat(float64(r+1)*0.0001*float64(c), 'g', -1, 64))
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := writeMatrix(t, dir, "RefPanel.csv", 3)
	out := filepath.Join(dir, "RefPanel.edr")

	err := run(t, in, out, "--tech-type", "LCD White LED IPS", "--manu-id", "ACM", "--manu-name", "Acme", "--log-level", "error")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	h, sets, err := edr.NewDecoder(bytes.NewReader(data)).Decode()
	if err != nil {
		t.Fatal(err)
	}
	if h.DisplayDescription != "RefPanel" || h.CreationTool != "ccss2edr (CSV Correlation File)" {
		t.Errorf("header = %+v", h)
	}
	if h.DisplayManufacturerID != "ACM" || h.DisplayManufacturer != "Acme" || h.TechType != 9 {
		t.Errorf("header = %+v", h)
	}
	if h.NumSets != 3 || len(sets) != 3 || len(sets[2]) != 401 {
		t.Fatalf("shape = %d sets", len(sets))
	}
	r := 2
	want := make([]float64, 401)
	for c := range want {
		want[c] = float64(r+1) * 0.0001 * float64(c)
	}
	testutil.RequireSliceEqual(t, sets[2], want)
}

func TestRequiredFlags(t *testing.T) {
	dir := t.TempDir()
	in := writeMatrix(t, dir, "m.csv", 3)
	out := filepath.Join(dir, "m.edr")

	tests := [][]string{
		{in, out, "--manu-id", "A", "--manu-name", "B"},
		{in, out, "--tech-type", "CRT", "--manu-name", "B"},
		{in, out, "--tech-type", "CRT", "--manu-id", "A"},
	}
	for _, args := range tests {
		if err := run(t, args...); err == nil {
			t.Errorf("run(%v) accepted missing flag", args[2:])
		}
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output written without required flags")
	}
}

func TestBadShape(t *testing.T) {
	dir := t.TempDir()
	in := writeMatrix(t, dir, "two.csv", 2)
	out := filepath.Join(dir, "two.edr")
	if err := run(t, in, out, "--tech-type", "CRT", "--manu-id", "A", "--manu-name", "B", "--log-level", "error"); err == nil {
		t.Error("two-row matrix accepted")
	}
}
