package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinge-cli/tinge/icon"
	"github.com/tinge-cli/tinge/scheme"
	"github.com/tinge-cli/tinge/style"
)

// generateBubble tracks one generation run: the active pipeline stage and,
// once the pipeline returns, its result.
type generateBubble struct {
	path   string
	params scheme.Params
	stages chan string

	spinnerC spinner.Model
	stage    string
	quitting bool

	scheme *scheme.Scheme
	err    error
}

func newGenerateBubble(path string, params scheme.Params) *generateBubble {
	bubble := &generateBubble{
		path:   path,
		params: params,
		stages: make(chan string, 1),
		stage:  scheme.StageScan,
	}

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = style.New().Foreground(style.AccentColor)

	return bubble
}

// stageMsg announces that the pipeline entered a new stage.
type stageMsg string

// doneMsg carries the pipeline result.
type doneMsg struct {
	scheme *scheme.Scheme
	err    error
}

func (b *generateBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.generate(), b.waitForStage())
}

// generate runs the pipeline off the UI loop, feeding stage transitions into
// the stages channel and closing it before delivering the result.
func (b *generateBubble) generate() tea.Cmd {
	return func() tea.Msg {
		params := b.params
		params.Progress = func(stage string) {
			b.stages <- stage
		}

		generated, err := scheme.Generate(b.path, params)
		close(b.stages)

		return doneMsg{scheme: generated, err: err}
	}
}

func (b *generateBubble) waitForStage() tea.Cmd {
	return func() tea.Msg {
		stage, ok := <-b.stages
		if !ok {
			return nil
		}

		return stageMsg(stage)
	}
}

func (b *generateBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		b.stage = string(msg)
		return b, b.waitForStage()

	case doneMsg:
		b.scheme = msg.scheme
		b.err = msg.err
		b.quitting = true
		return b, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			b.err = errors.New("generation canceled")
			b.quitting = true
			return b, tea.Quit
		}
		return b, nil

	default:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	}
}

func (b *generateBubble) View() string {
	if b.quitting {
		return ""
	}

	return fmt.Sprintf(
		"%s %s %s\n",
		b.spinnerC.View(),
		b.stage,
		style.Faint(icon.Get(icon.Image)+" "+b.path),
	)
}
