package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"unify/internal/driver"
	"unify/internal/ui"
)

type runOutcome struct {
	results []driver.Result
	err     error
}

// formatWithProgress runs the formatter in a goroutine while a Bubble Tea
// model consumes its events on the terminal.
func formatWithProgress(ctx context.Context, paths []string, opts driver.Options) ([]driver.Result, error) {
	files, err := driver.CollectFiles(paths, opts.Recursive, opts.Extensions)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = events
		results, runErr := driver.FormatPaths(ctx, paths, optsCopy)
		outcomeCh <- runOutcome{results: results, err: runErr}
		close(events)
	}()

	model := ui.NewProgressModel("unify", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the UI may have exited before consuming every event; keep draining so
	// the formatter can never block on a full events buffer
	drainEvents(events)
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}

// drainEvents discards events until the channel closes.
func drainEvents(events <-chan driver.Event) {
	go func() {
		for range events {
		}
	}()
}
