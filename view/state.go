package view

// Expansion labels for the global toggle.
const (
	LabelExpandAll   = "Expand All"
	LabelCollapseAll = "Collapse All"
)

// State is the render-only view state. Nothing in it is domain data.
//
// Row flags are keyed by task id and survive re-selection. Card flags are
// keyed by asset id and belong to the cards currently shown in the detail
// pane; selecting a task renders fresh, collapsed cards.
type State struct {
	SelectedID   string
	RowExpanded  map[string]bool
	CardExpanded map[string]bool
	ExpandAll    bool
}

// NewState returns an all-collapsed state with nothing selected.
func NewState() State {
	return State{
		RowExpanded:  map[string]bool{},
		CardExpanded: map[string]bool{},
	}
}

// Clone returns a copy that shares no maps with s.
func (s State) Clone() State {
	clone := State{
		SelectedID:   s.SelectedID,
		RowExpanded:  make(map[string]bool, len(s.RowExpanded)),
		CardExpanded: make(map[string]bool, len(s.CardExpanded)),
		ExpandAll:    s.ExpandAll,
	}
	for id, expanded := range s.RowExpanded {
		clone.RowExpanded[id] = expanded
	}
	for id, expanded := range s.CardExpanded {
		clone.CardExpanded[id] = expanded
	}
	return clone
}

// Control describes the global expand/collapse control.
type Control struct {
	Label    string
	Expanded bool
}

// GlobalControl projects the global toggle.
func (s State) GlobalControl() Control {
	if s.ExpandAll {
		return Control{Label: LabelCollapseAll, Expanded: true}
	}
	return Control{Label: LabelExpandAll}
}
