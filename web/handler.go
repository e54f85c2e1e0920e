// Package web serves the journey board as server-rendered HTML.
package web

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/amonks/journey/board"
	"github.com/amonks/journey/view"
)

// Options configures the board web handler.
type Options struct {
	// Store is the board's task store. A nil store serves an empty board.
	Store *board.Store
	// Fallback marks the store as the built-in sample data.
	Fallback bool
	Logger   *log.Logger
}

// Handler serves the board web client.
type Handler struct {
	mux       *http.ServeMux
	templates *templateWrapper
	logger    *log.Logger
	fallback  bool

	mu      sync.Mutex
	session *view.Session
	effects *view.Recorder
	draft   *boardDraft
}

// boardDraft carries one-shot results of an event to the next page render.
type boardDraft struct {
	err      string
	notices  []string
	openURLs []string
}

// NewHandler creates a new web handler.
func NewHandler(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	effects := &view.Recorder{}
	handler := &Handler{
		templates: newTemplateWrapper(),
		logger:    logger,
		fallback:  opts.Fallback,
		effects:   effects,
		session:   view.NewSession(opts.Store, effects),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.handleRoot)
	mux.HandleFunc("/board", handler.handleBoard)
	mux.HandleFunc("/board/events", handler.handleEvents)
	mux.HandleFunc("/board/tasks.json", handler.handleTasksJSON)
	handler.mux = mux
	return handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type pageData struct {
	Rows      []view.BoardRow
	Detail    view.DetailPane
	HasDetail bool
	Control   view.Control
	Notices   []string
	OpenURLs  []string
	Error     string
	Fallback  bool
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/board", http.StatusSeeOther)
}

func (h *Handler) handleBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	h.mu.Lock()
	selectedID := trimmedQueryValue(r, "id")
	if selectedID != "" && !h.session.Select(selectedID) {
		h.logger.Printf("board: ignoring unknown task %q", selectedID)
	}
	detail, hasDetail := h.session.Detail()
	data := pageData{
		Rows:      h.session.Board(),
		Detail:    detail,
		HasDetail: hasDetail,
		Control:   h.session.GlobalControl(),
		Fallback:  h.fallback,
	}
	if draft := h.consumeDraft(); draft != nil {
		data.Error = draft.err
		data.Notices = draft.notices
		data.OpenURLs = draft.openURLs
	}
	h.mu.Unlock()

	h.templates.Render(w, data)
}

func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.setDraft(boardDraft{err: "invalid form input"})
		http.Redirect(w, r, "/board", http.StatusSeeOther)
		return
	}

	event, err := eventFromRequest(r)
	if err != nil {
		h.setDraft(boardDraft{err: err.Error()})
		http.Redirect(w, r, "/board", http.StatusSeeOther)
		return
	}

	h.mu.Lock()
	if !h.session.Dispatch(event) {
		h.logger.Printf("board: %s event for task %q asset %q changed nothing", event.Kind, event.TaskID, event.AssetID)
	}
	acknowledgements, navigations := h.effects.Drain()
	openURLs := make([]string, 0, len(navigations))
	for _, target := range navigations {
		if !isWebURL(target) {
			h.logger.Printf("board: not opening %q: only http and https links open", target)
			continue
		}
		openURLs = append(openURLs, target)
	}
	if len(acknowledgements) > 0 || len(openURLs) > 0 {
		h.draft = &boardDraft{notices: acknowledgements, openURLs: openURLs}
	}
	h.mu.Unlock()

	http.Redirect(w, r, "/board", http.StatusSeeOther)
}

func (h *Handler) handleTasksJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	h.mu.Lock()
	tasks := h.session.Store().Tasks()
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, board.Document{Tasks: tasks})
}

func eventFromRequest(r *http.Request) (view.Event, error) {
	kind, err := view.ParseEventKind(r.PostFormValue("role"))
	if err != nil {
		return view.Event{}, err
	}
	event := view.Event{
		Kind:    kind,
		TaskID:  trimmedFormValue(r, "id"),
		AssetID: trimmedFormValue(r, "asset"),
	}
	if kind == view.EventCheckbox {
		value := trimmedFormValue(r, "checked")
		checked, err := strconv.ParseBool(value)
		if err != nil {
			return view.Event{}, fmt.Errorf("invalid checked value %q", value)
		}
		event.Checked = checked
	}
	return event, nil
}

func (h *Handler) consumeDraft() *boardDraft {
	draft := h.draft
	h.draft = nil
	return draft
}

func (h *Handler) setDraft(draft boardDraft) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draft = &draft
}

// isWebURL reports whether target is an absolute http or https URL.
func isWebURL(target string) bool {
	parsed, err := url.Parse(strings.TrimSpace(target))
	if err != nil || parsed.Host == "" {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	return scheme == "http" || scheme == "https"
}

func trimmedQueryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func trimmedFormValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

func writeMethodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
