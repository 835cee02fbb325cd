// Package tui provides the terminal front-end for AgentPro: a topic input
// field, a scrolling output view, and a status line. Research tasks run on a
// background goroutine so the interface stays responsive; the core agent
// loop itself knows nothing about this package.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/agentpro/agentpro/agent"
)

// Runner is the single operation the UI needs from the agent.
type Runner interface {
	Run(ctx context.Context, task string) (string, error)
}

// App is the terminal UI application. One task runs at a time; starting a
// new task is disabled while one is in flight.
type App struct {
	app    *tview.Application
	input  *tview.InputField
	output *tview.TextView
	status *tview.TextView

	runner Runner

	mu      sync.Mutex
	running bool
}

// NewApp creates the UI around a configured agent.
func NewApp(runner Runner) *App {
	a := &App{
		app:    tview.NewApplication(),
		runner: runner,
	}

	// -- Topic input --
	a.input = tview.NewInputField().
		SetLabel(" Research Topic: ").
		SetFieldBackgroundColor(tcell.ColorBlack).
		SetLabelColor(tcell.ColorYellow)
	a.input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			a.startTask(a.input.GetText())
		}
	})

	// -- Output view --
	a.output = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	a.output.SetBorder(true).
		SetTitle(" Agent Output ").
		SetBorderColor(tcell.ColorDodgerBlue)

	// -- Status line --
	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	a.status.SetBackgroundColor(tcell.ColorDarkBlue)
	a.setStatus("Ready. Type a topic and press Enter. Ctrl-C quits.")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.input, 1, 0, true).
		AddItem(a.output, 0, 1, false).
		AddItem(a.status, 1, 0, false)

	a.app.SetRoot(layout, true).SetFocus(a.input)

	return a
}

// Run starts the UI event loop and blocks until the user quits.
func (a *App) Run() error {
	return a.app.Run()
}

// startTask launches one research run on a background goroutine. The UI
// thread is only ever touched through QueueUpdateDraw.
func (a *App) startTask(topic string) {
	if topic == "" {
		a.setStatus("Enter a topic first.")
		return
	}

	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		a.setStatus("A task is already running.")
		return
	}
	a.running = true
	a.mu.Unlock()

	a.setStatus(fmt.Sprintf("Researching: %s ...", topic))
	a.appendOutput(fmt.Sprintf("[yellow]--- Task: %s ---[-]\n", tview.Escape(topic)))

	go func() {
		start := time.Now()
		result, err := a.runner.Run(context.Background(), topic)

		a.app.QueueUpdateDraw(func() {
			switch {
			case errors.Is(err, agent.ErrMaxIterations):
				a.appendOutput(fmt.Sprintf("[red]%s[-]\n\n", tview.Escape(result)))
				a.setStatus("Iteration budget exhausted.")
			case err != nil:
				a.appendOutput(fmt.Sprintf("[red]Error: %s[-]\n\n", tview.Escape(err.Error())))
				a.setStatus("Task failed.")
			default:
				a.appendOutput(tview.Escape(result) + "\n\n")
				a.setStatus(fmt.Sprintf("Done in %s. Ready for the next topic.", time.Since(start).Round(time.Second)))
			}
			a.input.SetText("")

			a.mu.Lock()
			a.running = false
			a.mu.Unlock()
		})
	}()
}

func (a *App) appendOutput(text string) {
	fmt.Fprint(a.output, text)
	a.output.ScrollToEnd()
}

func (a *App) setStatus(text string) {
	a.status.SetText(" " + text)
}
