package controller

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	counterStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with a Bubble Tea progress display for the
// fingerprinting phase. Group listings and the summary are printed after the
// program exits, so they stay in the scrollback.
type TUI struct {
	out io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a TUI writing to out.
func NewTUI(out io.Writer) *TUI {
	return &TUI{out: out}
}

// StartScan launches the progress program.
func (t *TUI) StartScan(algorithm m.Algorithm, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	model := newScanModel(algorithm, total)
	t.program = tea.NewProgram(model, tea.WithOutput(t.out))
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		_, _ = program.Run()
		close(done)
	}(t.program, t.done)
}

// ScanProgress forwards progress into the running program.
func (t *TUI) ScanProgress(done, total int, elapsed time.Duration) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(scanProgressMsg{done: done, total: total, elapsed: elapsed})
}

// FinishScan stops the progress program and waits for it to shut down.
func (t *TUI) FinishScan() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(scanFinishedMsg{})
	<-done
}

// Warnf surfaces a warning above the live view while the program runs, or as
// a plain line otherwise.
func (t *TUI) Warnf(format string, args ...any) {
	line := warnStyle.Render("warning: " + fmt.Sprintf(format, args...))

	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Println(line)
		return
	}

	fmt.Fprintln(t.out, line)
}

// Infof prints an informational line.
func (t *TUI) Infof(format string, args ...any) {
	line := fmt.Sprintf(format, args...)

	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Println(line)
		return
	}

	fmt.Fprintln(t.out, line)
}

// DisplayGroups renders duplicate groups once the progress program is done.
func (t *TUI) DisplayGroups(groups []m.DuplicateGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(t.out, "No duplicates found.")
		return
	}

	fmt.Fprintf(t.out, "\n%s\n%s", titleStyle.Render("Duplicate groups"), renderGroupsTable(groups))
}

// DisplaySummary renders the end-of-run counters and points at the audit log.
func (t *TUI) DisplaySummary(report m.SessionReport, logPath m.Path) {
	fmt.Fprintf(t.out, "\n%s\n%s", titleStyle.Render("Summary"), renderSummaryTable(report))
	fmt.Fprintf(t.out, "%d Dup Files processed.\nDone. Check %s for details.\n", report.FilesRemoved, logPath)
}

type scanProgressMsg struct {
	done    int
	total   int
	elapsed time.Duration
}

type scanFinishedMsg struct{}

// scanModel is the Bubble Tea model for the fingerprinting progress bar.
type scanModel struct {
	algorithm m.Algorithm
	total     int
	done      int
	elapsed   time.Duration
	bar       progress.Model
	finished  bool
}

func newScanModel(algorithm m.Algorithm, total int) scanModel {
	return scanModel{
		algorithm: algorithm,
		total:     total,
		bar:       progress.New(progress.WithDefaultGradient()),
	}
}

func (sm scanModel) Init() tea.Cmd {
	return nil
}

func (sm scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 0 {
			sm.bar.Width = width
		}

		return sm, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return sm, tea.Quit
		}

		return sm, nil

	case scanProgressMsg:
		sm.done = msg.done
		sm.total = msg.total
		sm.elapsed = msg.elapsed

		if sm.total == 0 {
			return sm, nil
		}

		return sm, sm.bar.SetPercent(float64(sm.done) / float64(sm.total))

	case scanFinishedMsg:
		sm.finished = true
		return sm, tea.Quit

	case progress.FrameMsg:
		barModel, cmd := sm.bar.Update(msg)
		if bar, ok := barModel.(progress.Model); ok {
			sm.bar = bar
		}

		return sm, cmd
	}

	return sm, nil
}

func (sm scanModel) View() string {
	if sm.finished {
		return ""
	}

	estimated := sm.elapsed
	if sm.done > 0 {
		estimated = sm.elapsed * time.Duration(sm.total) / time.Duration(sm.done)
	}

	counts := counterStyle.Render(fmt.Sprintf("%d/%d files  Elapsed: %s  Estimated Total: %s",
		sm.done, sm.total, formatDuration(sm.elapsed), formatDuration(estimated)))

	return fmt.Sprintf("%s\n%s\n%s\n",
		titleStyle.Render(fmt.Sprintf("Calculating %s fingerprints", sm.algorithm)),
		sm.bar.View(),
		counts,
	)
}
