package navigator

import (
	"errors"
	"fmt"
	"io"
	"log"

	"hms/widgets"
)

// View is one screen. It builds a fresh widget tree on every cycle.
type View interface {
	Title() string
	Build(ctx widgets.Context) (widgets.Widget, error)
}

// Interactive views capture input after their screen is painted.
// Returning widgets.ErrCancelled goes back one screen, or exits from the root.
type Interactive interface {
	View
	Interact(ctx widgets.Context, term widgets.Terminal) error
}

type Device interface {
	widgets.Terminal
	Clear() error
}

var ErrRootView = errors.New("root view cannot be popped")

type Navigator struct {
	device    Device
	ctx       widgets.Context
	stack     []View
	separator string
	exited    bool
}

func New(device Device, ctx widgets.Context) *Navigator {
	return &Navigator{device: device, ctx: ctx, separator: widgets.DefaultSeparator}
}

func (n *Navigator) Separator(separator string) *Navigator {
	n.separator = separator
	return n
}

func (n *Navigator) Push(view View) {
	n.stack = append(n.stack, view)
}

// Pop discards the active view. The root view is never popped.
func (n *Navigator) Pop() error {
	if len(n.stack) <= 1 {
		return ErrRootView
	}
	n.stack[len(n.stack)-1] = nil
	n.stack = n.stack[:len(n.stack)-1]
	return nil
}

// Replace drops the whole history; view becomes the only screen.
func (n *Navigator) Replace(view View) {
	for i := range n.stack {
		n.stack[i] = nil
	}
	n.stack = append(n.stack[:0], view)
}

func (n *Navigator) Exit() {
	n.exited = true
}

func (n *Navigator) Exited() bool {
	return n.exited
}

func (n *Navigator) Top() View {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Trail lists the titles of the stack from the root; untitled views are skipped.
func (n *Navigator) Trail() []string {
	trail := make([]string, 0, len(n.stack))
	for _, view := range n.stack {
		if title := view.Title(); title != "" {
			trail = append(trail, title)
		}
	}
	return trail
}

func (n *Navigator) Breadcrumbs() widgets.Widget {
	return widgets.Breadcrumbs(n.Trail()...).Separator(n.separator)
}

// Run drives the build, paint and interact cycle until Exit is called or input ends.
func (n *Navigator) Run(root View) error {
	n.Replace(root)
	n.exited = false
	for !n.exited {
		view := n.Top()
		widget, err := view.Build(n.ctx)
		if err != nil {
			if err := n.buildFailed(view, err); err != nil {
				return err
			}
			continue
		}
		if err := n.paint(widget.Render(n.ctx)); err != nil {
			return err
		}
		err = n.interact(view)
		switch {
		case err == nil:
		case errors.Is(err, widgets.ErrCancelled):
			if n.Pop() == ErrRootView {
				log.Printf("cancelled at %q, exiting", view.Title())
				n.Exit()
			}
		case errors.Is(err, io.EOF):
			return nil
		default:
			return fmt.Errorf("%s: %w", view.Title(), err)
		}
	}
	return nil
}

func (n *Navigator) paint(lines []string) error {
	if err := n.device.Clear(); err != nil {
		return err
	}
	return n.device.WriteLines(lines...)
}

func (n *Navigator) interact(view View) error {
	if interactive, ok := view.(Interactive); ok {
		return interactive.Interact(n.ctx, n.device)
	}
	pause := widgets.PauseGoBack()
	if len(n.stack) == 1 {
		pause = widgets.Pause()
	}
	if err := n.device.WriteLines(pause.Render(n.ctx)...); err != nil {
		return err
	}
	if err := pause.Capture(n.ctx, n.device); err != nil {
		return err
	}
	if n.Top() == view && n.Pop() == ErrRootView {
		n.Exit()
	}
	return nil
}

func (n *Navigator) buildFailed(view View, err error) error {
	log.Printf("### failed to build %q: %v", view.Title(), err)
	if len(n.stack) == 1 {
		return fmt.Errorf("build %s: %w", view.Title(), err)
	}
	lines := widgets.Column(
		widgets.Title(view.Title()),
		widgets.Text(fmt.Sprintf("This screen cannot be shown: %v", err)),
		widgets.PauseGoBack(),
	).Render(n.ctx)
	if err := n.paint(lines); err != nil {
		return err
	}
	_ = widgets.PauseGoBack().Capture(n.ctx, n.device)
	return n.Pop()
}
