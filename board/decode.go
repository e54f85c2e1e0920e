package board

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrDataUnavailable is returned when task data cannot be fetched or parsed.
	ErrDataUnavailable = errors.New("task data unavailable")

	// ErrMissingTasks is returned when a document has no top-level tasks list.
	ErrMissingTasks = errors.New("document has no tasks list")

	// ErrEmptyTaskID is returned when a task has no id.
	ErrEmptyTaskID = errors.New("task id cannot be empty")

	// ErrDuplicateTaskID is returned when two tasks share an id.
	ErrDuplicateTaskID = errors.New("duplicate task id")

	// ErrMissingAssets is returned when a task has no assets list.
	ErrMissingAssets = errors.New("task has no assets list")

	// ErrEmptyAssetID is returned when an asset has no id.
	ErrEmptyAssetID = errors.New("asset id cannot be empty")

	// ErrDuplicateAssetID is returned when two assets of one task share an id.
	ErrDuplicateAssetID = errors.New("duplicate asset id")
)

// Format is the encoding of a task document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForName picks a format from a file name or URL path.
func FormatForName(name string) Format {
	lower := strings.ToLower(name)
	if i := strings.IndexAny(lower, "?#"); i >= 0 {
		lower = lower[:i]
	}
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// Document is the top-level shape of a task data file.
type Document struct {
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

type rawDocument struct {
	Tasks *[]Task `json:"tasks" yaml:"tasks"`
}

// Decode parses a task document and validates it.
// Every error it returns wraps ErrDataUnavailable.
func Decode(data []byte, format Format) ([]Task, error) {
	var raw rawDocument
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: parse yaml: %v", ErrDataUnavailable, err)
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: parse json: %v", ErrDataUnavailable, err)
		}
		if err := decoder.Decode(&struct{}{}); err != io.EOF {
			return nil, fmt.Errorf("%w: parse json: trailing data after document", ErrDataUnavailable)
		}
	}
	if raw.Tasks == nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, ErrMissingTasks)
	}
	tasks := *raw.Tasks
	if err := Validate(tasks); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	return tasks, nil
}

// Encode writes tasks in the JSON document format.
func Encode(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	return json.MarshalIndent(Document{Tasks: tasks}, "", "  ")
}

// Validate checks the structural invariants of a task list.
func Validate(tasks []Task) error {
	seen := make(map[string]bool, len(tasks))
	for i, task := range tasks {
		if strings.TrimSpace(task.ID) == "" {
			return fmt.Errorf("%w: task %d", ErrEmptyTaskID, i)
		}
		if seen[task.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateTaskID, task.ID)
		}
		seen[task.ID] = true
		if task.Assets == nil {
			return fmt.Errorf("%w: %q", ErrMissingAssets, task.ID)
		}
		assetIDs := make(map[string]bool, len(task.Assets))
		for j, asset := range task.Assets {
			if strings.TrimSpace(asset.ID) == "" {
				return fmt.Errorf("%w: asset %d in task %q", ErrEmptyAssetID, j, task.ID)
			}
			if assetIDs[asset.ID] {
				return fmt.Errorf("%w: %q in task %q", ErrDuplicateAssetID, asset.ID, task.ID)
			}
			assetIDs[asset.ID] = true
		}
	}
	return nil
}
