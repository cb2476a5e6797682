// Package session runs the interactive roster menu.
//
// The controller is a two-state machine (Running, Exiting) driven by the
// menu selection read each iteration. The transitions live in an
// explicit table so every selection's behaviour is visible in one place:
//
//	1 list    → Running
//	2 create  → Running
//	3 view    → Running
//	4 remove  → Running
//	5         → Exiting
//	other     → "unknown command", Running
//
// No operation spans two iterations, so there is never a half-finished
// operation to recover between menus.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/class-roster/internal/session/handlers/student"
	"github.com/aanand-mishra/class-roster/internal/storage"
	"github.com/aanand-mishra/class-roster/internal/view"
)

// State is the controller's state.
type State int

const (
	Running State = iota
	Exiting
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Exiting:
		return "exiting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Handler performs one menu operation. It returns an error only when
// the console fails; storage failures are shown to the user instead.
type Handler func(v *view.RosterView) error

// transition is one row of the table: what to run, where to go next.
type transition struct {
	handler Handler
	next    State
}

// Controller maps menu selections to storage operations.
type Controller struct {
	view   *view.RosterView
	routes map[int]transition
}

// New wires the roster handlers for store into a Controller that talks
// to the user through v.
func New(store storage.Storage, v *view.RosterView) *Controller {
	return &Controller{
		view: v,
		routes: map[int]transition{
			view.MenuList:   {handler: student.List(store), next: Running},
			view.MenuCreate: {handler: student.Create(store), next: Running},
			view.MenuView:   {handler: student.View(store), next: Running},
			view.MenuRemove: {handler: student.Remove(store), next: Running},
			view.MenuExit:   {next: Exiting},
		},
	}
}

// Run loops over the menu until the user exits or input ends, then
// shows the goodbye banner. End of input (io.EOF) is a normal exit;
// any other console error is returned.
func (c *Controller) Run() error {
	state := Running
	for state == Running {
		selection, err := c.view.PrintMenuAndGetSelection()
		if err != nil {
			if errors.Is(err, io.EOF) {
				slog.Info("input closed, leaving session")
				break
			}
			return fmt.Errorf("session.Run: read selection: %w", err)
		}

		state, err = c.Step(selection)
		if err != nil {
			if errors.Is(err, io.EOF) {
				slog.Info("input closed, leaving session")
				break
			}
			return fmt.Errorf("session.Run: selection %d: %w", selection, err)
		}
	}

	c.view.DisplayExitBanner()
	return nil
}

// Step applies one selection and returns the next state.
func (c *Controller) Step(selection int) (State, error) {
	slog.Debug("menu selection", slog.Int("selection", selection))

	tr, ok := c.routes[selection]
	if !ok {
		c.view.DisplayUnknownCommandBanner()
		return Running, nil
	}

	if tr.handler != nil {
		if err := tr.handler(c.view); err != nil {
			return Running, err
		}
	}
	return tr.next, nil
}
