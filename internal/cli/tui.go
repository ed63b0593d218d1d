package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/tokenpress/pkg/layout"
	"github.com/matzehuels/tokenpress/pkg/observability"
	"github.com/matzehuels/tokenpress/pkg/pipeline"
	"github.com/matzehuels/tokenpress/pkg/token"
)

// Progress styles
var (
	styleBarFilled   = lipgloss.NewStyle().Foreground(colorCyan)
	styleBarEmpty    = lipgloss.NewStyle().Foreground(colorDim)
	progressDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// barWidth is the character width of the render progress bar.
const barWidth = 30

// =============================================================================
// Messages
// =============================================================================

// renderStartMsg reports the total number of token instances to render.
type renderStartMsg struct {
	total int
}

// renderPageMsg reports that rendering moved to a new page, one-based.
type renderPageMsg struct {
	page  int
	pages int
}

// renderTickMsg reports progress after a single token instance.
type renderTickMsg struct {
	done  int
	total int
	label string
}

// renderDoneMsg reports that the pipeline finished.
type renderDoneMsg struct {
	err error
}

// =============================================================================
// ProgressModel - Live render progress
// =============================================================================

// progressModel is the bubbletea model for live render progress.
type progressModel struct {
	cancel    context.CancelFunc
	total     int
	done      int
	label     string
	page      int
	pages     int
	finished  bool
	cancelled bool
	err       error
}

// newProgressModel creates a progress model. Quit keys invoke cancel to stop
// the render running in the background.
func newProgressModel(cancel context.CancelFunc) progressModel {
	return progressModel{cancel: cancel}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.cancelled = true
			m.cancel()
			return m, tea.Quit
		}
	case renderStartMsg:
		m.total = msg.total
	case renderPageMsg:
		m.page = msg.page
		m.pages = msg.pages
	case renderTickMsg:
		m.done = msg.done
		m.total = msg.total
		m.label = msg.label
	case renderDoneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Rendering Tokens"))
	b.WriteString("\n")
	b.WriteString(progressDimStyle.Render("q/esc cancel"))
	b.WriteString("\n\n")

	filled := 0
	if m.total > 0 {
		filled = m.done * barWidth / m.total
	}
	if filled > barWidth {
		filled = barWidth
	}
	bar := styleBarFilled.Render(strings.Repeat("█", filled)) +
		styleBarEmpty.Render(strings.Repeat("░", barWidth-filled))

	b.WriteString("  " + bar)
	b.WriteString(" " + StyleNumber.Render(fmt.Sprintf("%d/%d", m.done, m.total)))
	b.WriteString("\n")

	if m.pages > 0 {
		b.WriteString(progressDimStyle.Render(fmt.Sprintf("  page %d of %d", m.page, m.pages)))
		b.WriteString("\n")
	}
	if m.label != "" {
		b.WriteString("  " + StyleHighlight.Render(m.label))
		b.WriteString("\n")
	}

	switch {
	case m.cancelled:
		b.WriteString("\n" + StyleWarning.Render("  cancelling..."))
		b.WriteString("\n")
	case m.finished && m.err == nil:
		b.WriteString("\n" + StyleSuccess.Render("  done"))
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Hook Bridge
// =============================================================================

// teaRenderHooks forwards render events into a running bubbletea program.
// Send is safe to call from the pipeline goroutine; messages arriving after
// the program has exited are dropped.
type teaRenderHooks struct {
	observability.NoopRenderHooks
	program *tea.Program
}

func (h *teaRenderHooks) OnRenderStart(_ context.Context, total int) {
	h.program.Send(renderStartMsg{total: total})
}

func (h *teaRenderHooks) OnPageStart(_ context.Context, page, pages int) {
	h.program.Send(renderPageMsg{page: page, pages: pages})
}

func (h *teaRenderHooks) OnTokenRendered(_ context.Context, done, total int, label string, _ time.Duration) {
	h.program.Send(renderTickMsg{done: done, total: total, label: label})
}

// =============================================================================
// Pipeline Integration
// =============================================================================

// executeWithProgress runs the pipeline while a progress display owns the
// terminal. It blocks until rendering finishes or the user cancels, and
// returns whatever the pipeline returned.
func (c *CLI) executeWithProgress(ctx context.Context, runner *pipeline.Runner, specs []*token.Spec, geom layout.Geometry, s pipeline.Sink) (*pipeline.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newProgressModel(cancel), tea.WithOutput(os.Stderr))

	observability.SetRenderHooks(&teaRenderHooks{program: p})
	defer observability.Reset()

	// The progress display owns stderr, so drop structured logging to
	// errors only while it runs.
	level := c.Logger.GetLevel()
	c.Logger.SetLevel(log.ErrorLevel)
	defer c.Logger.SetLevel(level)

	type outcome struct {
		result *pipeline.Result
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := runner.Execute(ctx, specs, geom, s)
		done <- outcome{result: result, err: err}
		p.Send(renderDoneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		out := <-done
		if out.err != nil {
			return out.result, out.err
		}
		return out.result, err
	}

	cancel()
	out := <-done
	return out.result, out.err
}
