// Command gpuresinfo exercises every resource kind on a gpures backend and
// prints a report.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/gogpu/gpures"
	"github.com/gogpu/gpures/backend"
	"github.com/gogpu/gpures/backend/memory"
	"github.com/gogpu/gpures/props"
	"github.com/gogpu/gpures/table"
)

type styles struct {
	title lipgloss.Style
	kind  lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	help  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain}
	}
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		kind: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(14),
		ok:   lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90")),
		err:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		help: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

// result is the outcome of exercising one kind.
type result struct {
	Kind    string        `json:"kind"`
	Handles []uint32      `json:"handles,omitempty"`
	Elapsed time.Duration `json:"elapsed_ns"`
	Err     string        `json:"error,omitempty"`
}

func main() {
	var (
		name    = flag.String("backend", "", "backend to open (default: best available)")
		count   = flag.Int("count", 3, "objects to create per kind")
		csvPath = flag.String("csv", "", "append timings to this CSV file")
		asJSON  = flag.Bool("json", false, "print the report as JSON")
		list    = flag.Bool("list", false, "list registered backends and exit")
		verbose = flag.Bool("v", false, "log resource lifecycle")
	)
	flag.Parse()

	if *verbose {
		gpures.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	st := newStyles(term.IsTerminal(int(os.Stdout.Fd())))
	reg := backend.NewRegistry(nil)

	if *list {
		for _, n := range backend.Available(reg) {
			fmt.Println(n)
		}
		return
	}

	b, err := openBackend(reg, *name)
	if err != nil {
		log.Fatalf("Failed to open backend: %v", err)
	}
	defer b.Close()

	results := exercise(b, *count)

	report := props.New()
	report.Set("backend", b.Name())
	report.Set("count", *count)
	report.Set("kinds", results)
	if mb, ok := b.(*memory.Backend); ok {
		calls := 0
		for _, k := range gpures.Kinds() {
			calls += mb.Stats(k).Calls()
		}
		report.Set("backend_calls", calls)
	}

	if *asJSON {
		doc, err := report.JSON()
		if err != nil {
			log.Fatalf("Failed to encode report: %v", err)
		}
		fmt.Println(doc)
	} else {
		printReport(st, b.Name(), results)
	}

	if *csvPath != "" {
		if err := exportCSV(*csvPath, b.Name(), results); err != nil {
			log.Fatalf("Failed to export: %v", err)
		}
		log.Printf("Timings saved to %s\n", *csvPath)
	}
}

func openBackend(reg *backend.Registry, name string) (gpures.Backend, error) {
	if name == "" {
		return backend.Default(reg)
	}
	return backend.Open(reg, name)
}

// exercise creates and destroys n objects of every kind.
func exercise(b gpures.Backend, n int) []result {
	results := make([]result, 0, gpures.NumKinds)
	for _, k := range gpures.Kinds() {
		r := result{Kind: k.String()}
		start := time.Now()
		set, err := gpures.Create(b, k, n)
		if err != nil {
			r.Err = err.Error()
			results = append(results, r)
			continue
		}
		for _, h := range set.Handles() {
			r.Handles = append(r.Handles, uint32(h))
		}
		set.Destroy()
		r.Elapsed = time.Since(start)
		results = append(results, r)
	}
	return results
}

func printReport(st styles, name string, results []result) {
	fmt.Println(st.title.Render("gpures: " + name))
	fmt.Println()
	for _, r := range results {
		line := st.kind.Render(r.Kind)
		if r.Err != "" {
			line += st.err.Render("unavailable: " + r.Err)
		} else {
			handles := make([]string, len(r.Handles))
			for i, h := range r.Handles {
				handles[i] = fmt.Sprint(h)
			}
			line += st.ok.Render(fmt.Sprintf("[%s] in %s", strings.Join(handles, " "), r.Elapsed))
		}
		fmt.Println(line)
	}
	fmt.Println()
	fmt.Println(st.help.Render("create + destroy per kind; -json for machine-readable output"))
}

// exportCSV records the per-kind timings in microseconds as one row named
// after the backend.
func exportCSV(path, name string, results []result) error {
	tb, err := table.Open(path, "backend")
	if err != nil {
		return err
	}
	tb.SetColumns(len(results))
	for i, r := range results {
		if err := tb.SetColumnName(i, r.Kind); err != nil {
			return err
		}
	}
	tb.SetRow(name)
	for i, r := range results {
		if r.Err != "" {
			continue
		}
		if err := tb.SetEntry(i, float64(r.Elapsed.Microseconds())); err != nil {
			return err
		}
	}
	return tb.Save()
}
