package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amonks/journey/internal/validation"
)

// ErrUnknownRole is returned by ParseEventKind for unrecognised role names.
var ErrUnknownRole = errors.New("unknown event role")

// EventKind names the control that produced an event.
type EventKind int

const (
	// EventRowClick selects the row's task.
	EventRowClick EventKind = iota
	// EventRowToggle expands or collapses a row's asset list.
	EventRowToggle
	// EventCheckbox marks a task completed or pending.
	EventCheckbox
	// EventExpandButton expands or collapses an asset card's description.
	EventExpandButton
	// EventHeader is a click on an asset card header; it behaves like EventExpandButton.
	EventHeader
	// EventStart runs an asset's Start action.
	EventStart
	// EventPreview runs an asset's Preview action.
	EventPreview
	// EventGlobalToggle flips the Expand All / Collapse All control.
	EventGlobalToggle
)

var eventRoles = []string{
	EventRowClick:     "row",
	EventRowToggle:    "toggle",
	EventCheckbox:     "checkbox",
	EventExpandButton: "expand-button",
	EventHeader:       "header",
	EventStart:        "start-button",
	EventPreview:      "preview-button",
	EventGlobalToggle: "global-toggle-button",
}

// String returns the role name of the control.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventRoles) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventRoles[k]
}

// ParseEventKind maps a control role name to its event kind.
func ParseEventKind(role string) (EventKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(role))
	for kind, name := range eventRoles {
		if name == normalized {
			return EventKind(kind), nil
		}
	}
	return 0, validation.InvalidValueError(ErrUnknownRole, role, eventRoles)
}

// Event is one user interaction, already attributed to its control.
type Event struct {
	Kind    EventKind
	TaskID  string
	AssetID string
	// Checked is the new checkbox state for EventCheckbox.
	Checked bool
}
