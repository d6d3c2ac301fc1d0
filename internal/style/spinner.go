package style

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

type Spinner interface {
	SetSuffix(suffix string)
	SetFinalMSG(finalMSG string)
	Start()
	Stop()
}

// TestSpinner writes each spinner event on its own line instead of redrawing,
// so output can be compared in tests.
type TestSpinner struct {
	mu       sync.Mutex
	writer   io.Writer
	suffix   string
	finalMSG string
	active   bool
	color    func(a ...interface{}) string
}

// NewTestSpinner returns a line-based spinner writing to w.
func NewTestSpinner(w io.Writer) *TestSpinner {
	return &TestSpinner{
		writer: w,
		color:  color.New(color.FgWhite).SprintFunc(),
	}
}

func (s *TestSpinner) SetSuffix(suffix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suffix = suffix
	fmt.Fprintf(s.writer, "[SET SUFFIX] %s\n", s.color(suffix))
}

func (s *TestSpinner) SetFinalMSG(finalMSG string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalMSG = finalMSG
}

// Start will start the indicator.
func (s *TestSpinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true
	fmt.Fprintf(s.writer, "[SPINNER START]\n")
}

// Stop stops the indicator.
func (s *TestSpinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	fmt.Fprintf(s.writer, "[SPINNER STOP]\n")
	if s.finalMSG != "" {
		fmt.Fprintf(s.writer, "[FINAL MSG] %s", s.finalMSG)
	}
}

type TerminalSpinner struct {
	spinner *spinner.Spinner
}

func NewTerminalSpinner(w io.Writer) *TerminalSpinner {
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(w))
	_ = s.Color("magenta")
	return &TerminalSpinner{spinner: s}
}

func (s *TerminalSpinner) SetSuffix(suffix string) {
	s.spinner.Suffix = " " + suffix
}

func (s *TerminalSpinner) SetFinalMSG(finalMSG string) {
	s.spinner.FinalMSG = finalMSG
}

func (s *TerminalSpinner) Start() {
	s.spinner.Start()
}

func (s *TerminalSpinner) Stop() {
	s.spinner.Stop()
}

// NewSpinner returns a terminal spinner, or a TestSpinner when PRICENEWS_TEST
// is "true".
func NewSpinner(w io.Writer) Spinner {
	if os.Getenv("PRICENEWS_TEST") == "true" {
		return NewTestSpinner(w)
	}
	return NewTerminalSpinner(w)
}
