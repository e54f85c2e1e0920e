package view

import (
	"fmt"

	"github.com/amonks/journey/board"
)

// Session ties a store to its view state and applies events to both.
//
// A Session is not safe for concurrent use. Shells apply events one at a
// time, in the order the user produced them.
type Session struct {
	store   *board.Store
	state   State
	effects Effects

	// detail is the task as it was when last selected. The board reads the
	// store on every projection; the detail pane only refreshes on Select.
	detail    board.Task
	hasDetail bool
}

// NewSession creates a session over store and selects the first task.
// A nil effects discards acknowledgements and navigations.
func NewSession(store *board.Store, effects Effects) *Session {
	if store == nil {
		store = board.NewStore(nil)
	}
	if effects == nil {
		effects = discardEffects{}
	}
	session := &Session{
		store:   store,
		state:   NewState(),
		effects: effects,
	}
	if first, ok := store.First(); ok {
		session.Select(first.ID)
	}
	return session
}

// Store returns the session's task store.
func (s *Session) Store() *board.Store {
	return s.store
}

// State returns a copy of the current view state.
func (s *Session) State() State {
	return s.state.Clone()
}

// Board projects every task as a board row.
func (s *Session) Board() []BoardRow {
	return RenderBoard(s.store, s.state)
}

// Detail projects the selected task. It returns false when nothing is
// selected.
func (s *Session) Detail() (DetailPane, bool) {
	if !s.hasDetail {
		return DetailPane{}, false
	}
	return RenderDetail(s.detail, s.state), true
}

// GlobalControl projects the Expand All / Collapse All control.
func (s *Session) GlobalControl() Control {
	return s.state.GlobalControl()
}

// Dispatch applies an event. It reports whether anything changed; events
// naming unknown tasks or assets are ignored.
func (s *Session) Dispatch(event Event) bool {
	switch event.Kind {
	case EventRowClick:
		return s.Select(event.TaskID)
	case EventRowToggle:
		return s.ToggleRow(event.TaskID)
	case EventCheckbox:
		return s.SetChecked(event.TaskID, event.Checked)
	case EventExpandButton, EventHeader:
		return s.ToggleCard(event.TaskID, event.AssetID)
	case EventStart:
		return s.Start(event.TaskID, event.AssetID)
	case EventPreview:
		return s.Preview(event.TaskID, event.AssetID)
	case EventGlobalToggle:
		s.SetExpandAll(!s.state.ExpandAll)
		return true
	default:
		return false
	}
}

// Select makes taskID the active task and renders its cards collapsed.
// Exactly one row is highlighted afterwards.
func (s *Session) Select(taskID string) bool {
	task, ok := s.store.Task(taskID)
	if !ok {
		return false
	}
	s.state.SelectedID = task.ID
	s.state.CardExpanded = map[string]bool{}
	s.detail = task
	s.hasDetail = true
	return true
}

// Selected returns the id of the active task, or "".
func (s *Session) Selected() string {
	return s.state.SelectedID
}

// ToggleRow expands or collapses a row's asset list.
func (s *Session) ToggleRow(taskID string) bool {
	if _, ok := s.store.Task(taskID); !ok {
		return false
	}
	s.state.RowExpanded[taskID] = !s.state.RowExpanded[taskID]
	return true
}

// SetChecked applies a checkbox toggle to the store. The board reflects it
// immediately; the detail pane keeps its snapshot until the next Select.
func (s *Session) SetChecked(taskID string, checked bool) bool {
	_, ok := s.store.SetChecked(taskID, checked)
	return ok
}

// ToggleCard expands or collapses a rendered card's description. taskID may
// be empty; when given it must name the task shown in the detail pane.
func (s *Session) ToggleCard(taskID, assetID string) bool {
	if _, ok := s.renderedAsset(taskID, assetID); !ok {
		return false
	}
	s.state.CardExpanded[assetID] = !s.state.CardExpanded[assetID]
	return true
}

// SetExpandAll sets every row list and every rendered card description to
// expanded, then records the control's new state.
func (s *Session) SetExpandAll(expanded bool) {
	for _, task := range s.store.Tasks() {
		s.state.RowExpanded[task.ID] = expanded
	}
	if s.hasDetail {
		for _, asset := range s.detail.Assets {
			s.state.CardExpanded[asset.ID] = expanded
		}
	}
	s.state.ExpandAll = expanded
}

// Start acknowledges the asset and opens its content, if it has any.
func (s *Session) Start(taskID, assetID string) bool {
	asset, ok := s.renderedAsset(taskID, assetID)
	if !ok {
		return false
	}
	s.effects.Acknowledge(StartMessage(asset))
	if asset.HasContent() {
		s.effects.Open(asset.URL())
	}
	return true
}

// Preview acknowledges the asset with its description.
func (s *Session) Preview(taskID, assetID string) bool {
	asset, ok := s.renderedAsset(taskID, assetID)
	if !ok {
		return false
	}
	s.effects.Acknowledge(PreviewMessage(asset))
	return true
}

// StartMessage is the acknowledgement shown by Start.
func StartMessage(asset board.Asset) string {
	return fmt.Sprintf("Starting: %s", asset.Name)
}

// PreviewMessage is the acknowledgement shown by Preview.
func PreviewMessage(asset board.Asset) string {
	return fmt.Sprintf("Preview: %s\n\n%s", asset.Name, asset.Description)
}

func (s *Session) renderedAsset(taskID, assetID string) (board.Asset, bool) {
	if !s.hasDetail {
		return board.Asset{}, false
	}
	if taskID != "" && taskID != s.detail.ID {
		return board.Asset{}, false
	}
	return s.detail.Asset(assetID)
}
