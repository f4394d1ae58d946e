// Command generate-goldens rebuilds the golden corpus under testdata/golden.
//
// Each golden file is a markdown document: YAML front matter describing the
// fixture (rows, width, mode, policy) followed by the expected rendering in
// a fenced text block. golden_test.go replays the front matter through the
// library and compares byte for byte, so the corpus must be regenerated
// whenever rendering intentionally changes:
//
//	go run ./cmd/generate-goldens
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scirin/tabled"
)

// fixture mirrors the front matter struct in golden_test.go.
type fixture struct {
	Name      string     `yaml:"name"`
	Rows      [][]string `yaml:"rows"`
	Width     int        `yaml:"width"`
	Mode      string     `yaml:"mode"`
	KeepWords bool       `yaml:"keep_words"`
	Priority  string     `yaml:"priority"`
	Suffix    string     `yaml:"suffix,omitempty"`
}

var sampleRows = [][]string{
	{"id", "description"},
	{"1", "a long description here"},
}

// fixtures is the corpus definition. Output is deterministic, so rerunning
// the generator without code changes leaves the files untouched.
var fixtures = []fixture{
	{
		Name:     "wrap_cycle_20",
		Rows:     sampleRows,
		Width:    20,
		Mode:     "wrap",
		Priority: "none",
	},
	{
		Name:     "wrap_max_25",
		Rows:     sampleRows,
		Width:    25,
		Mode:     "wrap",
		Priority: "max",
	},
	{
		Name:      "wrap_keep_words_25",
		Rows:      sampleRows,
		Width:     25,
		Mode:      "wrap",
		KeepWords: true,
		Priority:  "max",
	},
	{
		Name:     "wrap_min_18",
		Rows:     sampleRows,
		Width:    18,
		Mode:     "wrap",
		Priority: "min",
	},
	{
		Name:     "truncate_suffix_25",
		Rows:     sampleRows,
		Width:    25,
		Mode:     "truncate",
		Priority: "max",
		Suffix:   "...",
	},
	{
		Name:     "wrap_wide_glyphs_8",
		Rows:     [][]string{{"😳😳😳😳😳"}},
		Width:    8,
		Mode:     "wrap",
		Priority: "max",
	},
}

var outDir = flag.String("out", "testdata/golden", "Output directory")

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	for _, f := range fixtures {
		if err := writeGolden(f); err != nil {
			log.Fatalf("Failed to generate %s: %v", f.Name, err)
		}
		log.Printf("Generated %s.md", f.Name)
	}

	log.Println("Golden file generation complete")
}

func writeGolden(f fixture) error {
	tb, err := buildTable(f)
	if err != nil {
		return err
	}

	front, err := yaml.Marshal(f)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(front)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s\n\n", f.Name)
	b.WriteString("Expected rendering:\n\n")
	b.WriteString("```text\n")
	b.WriteString(tb.String())
	b.WriteString("\n```\n")

	return os.WriteFile(filepath.Join(*outDir, f.Name+".md"), []byte(b.String()), 0o644)
}

func buildTable(f fixture) (*tabled.Table, error) {
	var newPeaker func() tabled.Peaker
	switch f.Priority {
	case "", "none":
		newPeaker = tabled.PriorityNone
	case "max":
		newPeaker = tabled.PriorityMax
	case "min":
		newPeaker = tabled.PriorityMin
	default:
		return nil, fmt.Errorf("unknown priority %q", f.Priority)
	}

	tb := tabled.New(f.Rows)
	switch f.Mode {
	case "wrap":
		opt := tabled.Wrap(f.Width).Priority(newPeaker)
		if f.KeepWords {
			opt = opt.KeepWords()
		}
		tb.With(opt)
	case "truncate":
		tb.With(tabled.Truncate(f.Width).Priority(newPeaker).Suffix(f.Suffix))
	default:
		return nil, fmt.Errorf("unknown mode %q", f.Mode)
	}
	return tb, nil
}
