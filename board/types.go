// Package board holds the task and asset data shown on a journey board.
//
// Tasks are loaded once per session from a static document (see Load) and
// kept in a Store. Only a task's status changes after loading; everything
// else is read-only for the lifetime of the session.
//
// The public API mirrors the board's moving parts:
//   - Load, Decode, Validate for reading a data source
//   - Store for the in-memory task list
//   - PresentationFor for asset-type icons and colours
package board

// Status represents the progress of a task.
type Status string

const (
	// StatusPending indicates the task has not been started.
	StatusPending Status = "pending"

	// StatusInProgress indicates the task is underway.
	// It only ever comes from source data; the checkbox never sets it.
	StatusInProgress Status = "in_progress"

	// StatusCompleted indicates the task has been finished.
	StatusCompleted Status = "completed"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// Label returns the display label for the status.
func (s Status) Label() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Pending"
	}
}

// StatusForChecked returns the status a checkbox toggle assigns.
func StatusForChecked(checked bool) Status {
	if checked {
		return StatusCompleted
	}
	return StatusPending
}

// AssetType is the kind of learning resource an asset points at.
type AssetType string

const (
	AssetArticle       AssetType = "article"
	AssetVideo         AssetType = "video"
	AssetQuiz          AssetType = "quiz"
	AssetReflection    AssetType = "reflection"
	AssetThreadBuilder AssetType = "threadbuilder"
	AssetEAGBuilder    AssetType = "eagbuilder"
)

// ValidAssetTypes returns all known asset types in registry order.
func ValidAssetTypes() []AssetType {
	return []AssetType{
		AssetArticle,
		AssetVideo,
		AssetQuiz,
		AssetReflection,
		AssetThreadBuilder,
		AssetEAGBuilder,
	}
}

// IsKnown returns true if the type has its own registry entry.
func (t AssetType) IsKnown() bool {
	_, ok := registry[t]
	return ok
}

// Task is a unit of work made of an ordered list of assets.
type Task struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Status Status  `json:"status" yaml:"status"`
	Assets []Asset `json:"assets" yaml:"assets"`
}

// Asset is a single learning resource belonging to a task.
type Asset struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Type        AssetType `json:"type" yaml:"type"`
	Duration    string    `json:"duration" yaml:"duration"`
	Description string    `json:"description" yaml:"description"`
	// ContentURL is nil when there is no external content to open.
	ContentURL *string `json:"content_url" yaml:"content_url"`
}

// HasContent reports whether the asset links to external content.
func (a Asset) HasContent() bool {
	return a.ContentURL != nil && *a.ContentURL != ""
}

// URL returns the content URL, or "" when there is none.
func (a Asset) URL() string {
	if a.ContentURL == nil {
		return ""
	}
	return *a.ContentURL
}

// Asset returns the asset with the given id.
func (t Task) Asset(id string) (Asset, bool) {
	for _, asset := range t.Assets {
		if asset.ID == id {
			return asset, true
		}
	}
	return Asset{}, false
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	clone := t
	if t.Assets != nil {
		clone.Assets = make([]Asset, len(t.Assets))
		for i, asset := range t.Assets {
			if asset.ContentURL != nil {
				url := *asset.ContentURL
				asset.ContentURL = &url
			}
			clone.Assets[i] = asset
		}
	}
	return clone
}

// StringPtr returns a pointer to the provided string.
func StringPtr(value string) *string {
	return &value
}
