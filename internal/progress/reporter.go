package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Reporter provides progress feedback while the site is built. Pages are
// reported by id in build order; Missing is called for a page written with the
// content-unavailable placeholder, before its Update.
type Reporter interface {
	Start(total int)
	Missing(page string)
	Update(current int, page string)
	Finish()
}

// NewReporter picks how build progress is shown on out. An interactive
// terminal gets a progress bar; CI runs and redirected output get one line per
// page.
func NewReporter(out *os.File) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" || !term.IsTerminal(int(out.Fd())) {
		return &LineReporter{Out: out}
	}
	return &TerminalReporter{Out: out}
}

// tally counts what a build reported.
type tally struct {
	total   int
	built   int
	missing int
}

func (t tally) summary() string {
	s := fmt.Sprintf("Built %d of %d pages", t.built, t.total)
	if t.missing > 0 {
		s += fmt.Sprintf(", %d without content", t.missing)
	}
	return s
}

// TerminalReporter displays a progress bar and prints a summary once the bar
// is cleared.
type TerminalReporter struct {
	Out io.Writer
	bar *progressbar.ProgressBar
	tally
}

func (r *TerminalReporter) Start(total int) {
	r.tally = tally{total: total}
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription("Building pages"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Missing(string) { r.missing++ }

func (r *TerminalReporter) Update(current int, page string) {
	r.built = current
	if r.bar != nil {
		r.bar.Describe(page)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar == nil {
		return
	}
	_ = r.bar.Finish()
	r.bar = nil
	fmt.Fprintln(r.Out, r.summary())
}

// LineReporter prints one line per page, suitable for CI logs.
type LineReporter struct {
	Out     io.Writer
	pending string
	tally
}

func (r *LineReporter) Start(total int) {
	r.tally = tally{total: total}
	fmt.Fprintf(r.Out, "Building %d pages\n", total)
}

func (r *LineReporter) Missing(page string) {
	r.missing++
	r.pending = page
}

func (r *LineReporter) Update(current int, page string) {
	r.built = current
	note := ""
	if r.pending == page {
		note = " (no content)"
	}
	r.pending = ""
	fmt.Fprintf(r.Out, "[%d/%d] %s%s\n", current, r.total, page, note)
}

func (r *LineReporter) Finish() {
	fmt.Fprintln(r.Out, r.summary())
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Missing(string)     {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}
