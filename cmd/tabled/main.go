// Command tabled renders CSV input as a bordered text table, wrapping or
// truncating cells so the table fits a width budget.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/scirin/tabled"
	"github.com/scirin/tabled/internal/debug"
	"github.com/scirin/tabled/internal/width"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		budget      int
		keepWords   bool
		priority    string
		truncate    bool
		suffix      string
		tabWidth    int
		colorize    bool
		stripANSI   bool
		showVersion bool
		showHelp    bool
		debugMode   bool
		debugFile   string
		debugPretty bool
	)

	pflag.IntVarP(&budget, "width", "w", 0, "Total table width in cells, borders included (0 = natural width)")
	pflag.BoolVar(&keepWords, "keep-words", false, "Break wrapped lines at spaces where possible")
	pflag.StringVar(&priority, "priority", "none", "Column shrink policy: none, max or min")
	pflag.BoolVar(&truncate, "truncate", false, "Cut overflowing cells instead of wrapping them")
	pflag.StringVar(&suffix, "suffix", "", "Marker appended to truncated cells (e.g. \"...\")")
	pflag.IntVar(&tabWidth, "tab-width", 4, "Spaces substituted for each tab in cell text")
	pflag.BoolVar(&colorize, "color", false, "Style the header row with ANSI colors")
	pflag.BoolVar(&stripANSI, "strip-ansi", false, "Remove ANSI escape sequences from the input")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version information")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	pflag.BoolVar(&debugMode, "debug", false, "Enable debug mode (outputs to stderr)")
	pflag.StringVar(&debugFile, "debug-file", "", "Write debug output to file instead of stderr")
	pflag.BoolVar(&debugPretty, "debug-pretty", false, "Use pretty format for debug output (default: JSON)")
	pflag.Parse()

	if showHelp {
		printHelp()
		return 0
	}

	if showVersion {
		fmt.Printf("tabled version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}

	newPeaker, err := policyByName(priority)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	input := io.Reader(os.Stdin)
	if args := pflag.Args(); len(args) > 0 {
		file, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input: %v\n", err)
			return 1
		}
		defer file.Close()
		input = file
	}

	rows, err := readRows(input, stripANSI, tabWidth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return 1
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input rows")
		return 1
	}

	if colorize {
		styleHeader(rows[0])
	}

	table := tabled.New(rows).TabWidth(tabWidth)

	// Setup debug if enabled
	if debugMode || debugFile != "" || os.Getenv("TABLED_DEBUG") == "1" {
		debug.SetEnabled(true)
		debug.InitFromEnv()

		var output io.Writer = os.Stderr
		if debugFile != "" {
			file, err := os.Create(debugFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating debug file: %v\n", err)
				return 1
			}
			defer file.Close()
			output = file
		}

		table.DebugTo(output, debugPretty || os.Getenv("TABLED_DEBUG_PRETTY") == "1")
	}

	if budget > 0 {
		if truncate {
			table.With(tabled.Truncate(budget).Priority(newPeaker).Suffix(suffix))
		} else {
			opt := tabled.Wrap(budget).Priority(newPeaker)
			if keepWords {
				opt.KeepWords()
			}
			table.With(opt)
		}
	}

	fmt.Println(table.String())
	return 0
}

// readRows parses CSV records from r, allowing rows of uneven length.
// Tabs are expanded here so no cell ever carries a literal tab byte.
func readRows(r io.Reader, stripANSI bool, tabWidth int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i, cell := range record {
			if stripANSI {
				cell = xansi.Strip(cell)
			}
			record[i] = width.ReplaceTab(cell, tabWidth)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// policyByName maps a --priority flag value to a Peaker constructor.
func policyByName(name string) (func() tabled.Peaker, error) {
	switch name {
	case "none":
		return tabled.PriorityNone, nil
	case "max":
		return tabled.PriorityMax, nil
	case "min":
		return tabled.PriorityMin, nil
	}
	return nil, fmt.Errorf("unknown priority %q (want none, max or min)", name)
}

// styleHeader colors the first row in place. The renderer profile is forced
// so the escapes survive piped output and exercise the styled wrap path.
func styleHeader(header []string) {
	renderer := lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(termenv.ANSI))
	style := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	for i, cell := range header {
		header[i] = style.Render(cell)
	}
}

func printHelp() {
	fmt.Println("tabled - render CSV as a width-constrained text table")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tabled [flags] [file.csv]")
	fmt.Println()
	fmt.Println("Reads CSV from the file argument, or from stdin when no file is given.")
	fmt.Println()
	fmt.Println("Flags:")
	pflag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tabled data.csv")
	fmt.Println("  tabled -w 60 --keep-words data.csv")
	fmt.Println("  cat data.csv | tabled -w 40 --priority max")
	fmt.Println("  tabled -w 40 --truncate --suffix '...' data.csv")
}
