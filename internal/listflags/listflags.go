// Package listflags holds flags shared by commands that list tasks.
package listflags

import (
	"errors"
	"strings"

	"github.com/amonks/journey/board"
	"github.com/amonks/journey/internal/validation"
	"github.com/spf13/cobra"
)

// ErrInvalidStatus is returned for --status values that are not task statuses.
var ErrInvalidStatus = errors.New("invalid status")

// AddStatusFlag adds a repeatable --status filter to cmd.
func AddStatusFlag(cmd *cobra.Command, target *[]string) {
	cmd.Flags().StringSliceVar(target, "status", nil, "Only include tasks with these statuses (pending, in_progress, completed)")
}

// ParseStatuses validates --status values. An empty result means no filter.
func ParseStatuses(values []string) (map[board.Status]bool, error) {
	statuses := make(map[board.Status]bool, len(values))
	for _, value := range values {
		status := board.Status(strings.ToLower(strings.TrimSpace(value)))
		if status == "" {
			continue
		}
		if !status.IsValid() {
			return nil, validation.InvalidValueError(ErrInvalidStatus, status, board.ValidStatuses())
		}
		statuses[status] = true
	}
	return statuses, nil
}
