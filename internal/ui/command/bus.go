package command

import (
	"context"
	"fmt"
	"time"

	"github.com/atomicstack/mergechat/internal/data/dispatcher"
	"github.com/atomicstack/mergechat/internal/logging"
	"github.com/atomicstack/mergechat/internal/logging/events"
	"github.com/atomicstack/mergechat/internal/message"
	"github.com/atomicstack/mergechat/internal/window"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultOpenTimeout = 5 * time.Second

// Host is the part of the window service the bus drives.
type Host interface {
	Open(ctx context.Context, opts window.Options) (window.ID, error)
	Close(id window.ID) bool
}

// Bus turns dispatcher requests into Bubble Tea commands.
type Bus struct {
	host        Host
	openTimeout time.Duration
}

// New initialises a command bus for host.
func New(host Host) *Bus {
	return &Bus{host: host, openTimeout: defaultOpenTimeout}
}

// Run executes requests one after another in the order given.
func (b *Bus) Run(reqs []dispatcher.Request) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(reqs))
	for _, req := range reqs {
		if cmd := b.Execute(req); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Sequence(cmds...)
	}
}

// Execute wraps a single request into a command while emitting trace logs.
func (b *Bus) Execute(req dispatcher.Request) tea.Cmd {
	switch r := req.(type) {
	case dispatcher.OpenRequest:
		events.Command.Queue("open", r.Purpose.String())
		return b.open(r)
	case dispatcher.CloseRequest:
		events.Command.Queue("close", r.ID.String())
		return func() tea.Msg {
			if b.host == nil || !b.host.Close(r.ID) {
				events.Command.Skip("close")
			}
			return nil
		}
	case dispatcher.ExitRequest:
		events.Command.Queue("exit", "")
		return tea.Quit
	case dispatcher.DispatchRequest:
		events.Command.Queue("dispatch", fmt.Sprintf("%T", r.Msg))
		msg := r.Msg
		return func() tea.Msg { return msg }
	default:
		events.Command.Skip(fmt.Sprintf("%T", req))
		return nil
	}
}

func (b *Bus) open(req dispatcher.OpenRequest) tea.Cmd {
	return func() tea.Msg {
		var out tea.Msg
		if b.host == nil {
			out = message.OpenFailed{Purpose: req.Purpose, Err: fmt.Errorf("open %s window: no window host", req.Purpose)}
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), b.openTimeout)
			defer cancel()
			id, err := b.host.Open(ctx, req.Options)
			if err != nil {
				err = fmt.Errorf("open %s window: %w", req.Purpose, err)
				logging.Error(err)
				out = message.OpenFailed{Purpose: req.Purpose, Err: err}
			} else {
				out = message.Opened{ID: id, Purpose: req.Purpose}
			}
		}
		events.Command.Result("open", req.Purpose.String(), fmt.Sprintf("%T", out))
		return out
	}
}
