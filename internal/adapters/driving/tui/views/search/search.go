// Package search provides the launcher view: query input, grouped results
// and status bar.
package search

import (
	"context"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/tabfind/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/tabfind/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/tabfind/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/tabfind/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/tabfind/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/tabfind/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/ports/driving"
)

// ThresholdStep is how much one stricter/looser key press moves the fuzziness.
const ThresholdStep = 0.1

// View is the launcher view. It forwards input to the coordinator and
// renders whatever result set the coordinator last published.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	coordinator driving.QueryCoordinator
	ctx         context.Context

	// committed is the fuzziness at startup; a changed value is persisted on quit.
	committed  float64
	generation uint64

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, coordinator driving.QueryCoordinator) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:      s,
		keymap:      km,
		input:       input.NewSearchInput(s),
		list:        list.NewResultList(s),
		statusbar:   status.NewBar(s, km),
		coordinator: coordinator,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
	if coordinator != nil {
		v.committed = coordinator.Threshold()
		v.statusbar.SetFuzziness(v.committed)
	}
	return v
}

// WithContext sets the context used for coordinator calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the cursor blink and the coordinator.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.start())
}

func (v *View) start() tea.Cmd {
	if v.coordinator == nil {
		return func() tea.Msg {
			return messages.ErrorOccurred{Err: ErrNoCoordinator}
		}
	}
	coordinator := v.coordinator
	ctx := v.ctx
	return func() tea.Msg {
		return messages.Started{Err: coordinator.Start(ctx)}
	}
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.Started:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		if v.statusbar.State() == status.StateLoading {
			v.statusbar.SetState(status.StateReady)
		}
		return v, nil

	case messages.ResultsChanged:
		v.handleResults(msg.Results)
		return v, nil

	case messages.FocusChanged:
		v.list.SetFocused(msg.Index)
		return v, nil

	case messages.ActionDone:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		if msg.Quit {
			return v, v.quit()
		}
		v.err = nil
		v.statusbar.SetState(status.StateDone)
		v.statusbar.SetMessage(msg.Message)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd, _ = v.input.Update(msg)
	return v, cmd
}

// handleResults renders a published set unless a newer one was already shown.
func (v *View) handleResults(results domain.ResultSet) {
	if results.Generation != 0 && results.Generation < v.generation {
		return
	}
	v.generation = results.Generation
	v.list.SetResults(results)
	if v.coordinator != nil {
		v.list.SetFocused(v.coordinator.Focused())
	}
	if v.err == nil {
		v.statusbar.SetState(status.StateReady)
	}
	v.statusbar.SetResultCount(v.list.Count())
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.coordinator == nil {
		if keymap.Matches(msg.String(), v.keymap.Quit) {
			return v, tea.Quit
		}
		return v, nil
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Quit):
		return v, v.quit()

	case keymap.Matches(key, v.keymap.Down):
		v.coordinator.Advance()
		v.list.SetFocused(v.coordinator.Focused())
		return v, nil

	case keymap.Matches(key, v.keymap.Up):
		v.coordinator.Retreat()
		v.list.SetFocused(v.coordinator.Focused())
		return v, nil

	case keymap.Matches(key, v.keymap.Activate):
		return v, v.activate()

	case keymap.Matches(key, v.keymap.Copy):
		return v, v.copyURL()

	case keymap.Matches(key, v.keymap.Stricter):
		v.adjustThreshold(-ThresholdStep)
		return v, nil

	case keymap.Matches(key, v.keymap.Looser):
		v.adjustThreshold(ThresholdStep)
		return v, nil
	}

	var cmd tea.Cmd
	var changed bool
	v.input, cmd, changed = v.input.Update(msg)
	if changed {
		v.coordinator.Keystroke(v.input.Value())
	}
	return v, cmd
}

// adjustThreshold previews a new fuzziness; it is persisted on quit.
func (v *View) adjustThreshold(delta float64) {
	next := domain.ClampFuzziness(v.coordinator.Threshold() + delta)
	// Keep one decimal so repeated steps do not drift.
	next = math.Round(next*10) / 10
	v.coordinator.SetThreshold(next)
	v.statusbar.SetFuzziness(next)
}

func (v *View) activate() tea.Cmd {
	coordinator := v.coordinator
	ctx := v.ctx
	return func() tea.Msg {
		if err := coordinator.Activate(ctx); err != nil {
			return messages.ActionDone{Err: err}
		}
		return messages.ActionDone{Quit: true}
	}
}

func (v *View) copyURL() tea.Cmd {
	coordinator := v.coordinator
	return func() tea.Msg {
		if err := coordinator.CopyFocusedURL(); err != nil {
			return messages.ActionDone{Err: err}
		}
		return messages.ActionDone{Message: "Copied URL"}
	}
}

// quit persists a changed fuzziness, stops the coordinator and exits.
func (v *View) quit() tea.Cmd {
	threshold := v.coordinator.Threshold()
	if threshold != v.committed {
		if err := v.coordinator.CommitThreshold(threshold); err != nil {
			v.setError(err)
		} else {
			v.committed = threshold
		}
	}
	v.coordinator.Close()
	return tea.Quit
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("tabfind"),
		v.input.View(),
		v.list.View(),
		"",
		v.statusbar.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Title, bordered input, spacer and status bar take seven rows.
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-7)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current input text.
func (v *View) Query() string {
	return v.input.Value()
}

// Results returns the displayed result set.
func (v *View) Results() domain.ResultSet {
	return v.list.Results()
}

// Focused returns the focused row index.
func (v *View) Focused() int {
	return v.list.Focused()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}
