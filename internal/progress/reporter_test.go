package progress

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Out: &buf}

	r.Start(3)
	r.Update(1, "geogrid")
	r.Missing("pasapalabra")
	r.Update(2, "pasapalabra")
	r.Update(3, "tictactoe")
	r.Finish()

	want := "Building 3 pages\n" +
		"[1/3] geogrid\n" +
		"[2/3] pasapalabra (no content)\n" +
		"[3/3] tictactoe\n" +
		"Built 3 of 3 pages, 1 without content\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLineReporterInterruptedBuild(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Out: &buf}

	r.Start(4)
	r.Update(1, "geogrid")
	r.Finish()

	want := "Building 4 pages\n[1/4] geogrid\nBuilt 1 of 4 pages\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter(os.Stderr).(*LineReporter); !ok {
		t.Error("expected LineReporter when CI is set")
	}
}

func TestNewReporterRedirectedOutput(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	f, err := os.Create(filepath.Join(t.TempDir(), "build.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, ok := NewReporter(f).(*LineReporter); !ok {
		t.Error("expected LineReporter when output is not a terminal")
	}
}

func TestTerminalReporterSummary(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{Out: &buf}

	r.Start(2)
	r.Missing("pasapalabra")
	r.Update(1, "pasapalabra")
	r.Update(2, "geogrid")
	r.Finish()

	if !bytes.HasSuffix(buf.Bytes(), []byte("Built 2 of 2 pages, 1 without content\n")) {
		t.Errorf("missing summary in %q", buf.String())
	}
}

func TestTerminalReporterBeforeStart(t *testing.T) {
	// Update and Finish without Start must not panic.
	r := &TerminalReporter{Out: &bytes.Buffer{}}
	r.Update(1, "x")
	r.Missing("x")
	r.Finish()
}
