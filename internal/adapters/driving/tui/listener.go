package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/tabfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driving"
)

// listenerBuffer bounds how many notifications may wait for the program.
const listenerBuffer = 256

// programListener turns coordinator notifications into program messages.
// The coordinator calls it from Update itself (focus moves, threshold
// changes) as well as from fetch goroutines. tea.Program.Send must not be
// called from Update, so notifications are queued and a pump goroutine
// delivers them in order. Sends never block: a full queue drops focus
// moves, and the newest result set waits in an overflow slot.
type programListener struct {
	msgs chan tea.Msg
	wake chan struct{}

	mu       sync.Mutex
	overflow *messages.ResultsChanged
}

var _ driving.ResultsListener = (*programListener)(nil)

func newProgramListener() *programListener {
	return &programListener{
		msgs: make(chan tea.Msg, listenerBuffer),
		wake: make(chan struct{}, 1),
	}
}

// OnResultsChanged queues a ResultsChanged message.
func (l *programListener) OnResultsChanged(results domain.ResultSet) {
	msg := messages.ResultsChanged{Results: results}
	select {
	case l.msgs <- msg:
		return
	default:
	}

	l.mu.Lock()
	l.overflow = &msg
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// OnFocusChanged queues a FocusChanged message, or drops it when the queue
// is full. The view reads the focused row back on every result set.
func (l *programListener) OnFocusChanged(index int) {
	select {
	case l.msgs <- messages.FocusChanged{Index: index}:
	default:
	}
}

// pump delivers queued messages until ctx is done.
func (l *programListener) pump(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-l.msgs:
			send(msg)
		case <-l.wake:
			if msg := l.takeOverflow(); msg != nil {
				send(*msg)
			}
		}
	}
}

func (l *programListener) takeOverflow() *messages.ResultsChanged {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := l.overflow
	l.overflow = nil
	return msg
}
