// Package boardtui runs the journey board in a terminal.
package boardtui

import (
	"context"
	"fmt"
	"strings"

	"github.com/amonks/journey/board"
	"github.com/amonks/journey/internal/browser"
	internalstrings "github.com/amonks/journey/internal/strings"
	"github.com/amonks/journey/view"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusPane int

const (
	focusBoard focusPane = iota
	focusDetail
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

// Options configures the terminal board.
type Options struct {
	Store *board.Store
	// Opener opens content URLs when OpenLinks is set.
	Opener    browser.Opener
	OpenLinks bool
	// Fallback marks the store as the built-in sample data.
	Fallback bool
}

type model struct {
	session     *view.Session
	effects     *view.Recorder
	opener      browser.Opener
	openLinks   bool
	width       int
	height      int
	focus       focusPane
	cardIndex   int
	boardView   viewport.Model
	detailView  viewport.Model
	showHelp    bool
	status      string
	statusLevel statusLevel
}

type openedMsg struct {
	url string
	err error
}

// Run starts the board and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(opts Options) model {
	effects := &view.Recorder{}
	m := model{
		session:    view.NewSession(opts.Store, effects),
		effects:    effects,
		opener:     opts.Opener,
		openLinks:  opts.OpenLinks,
		focus:      focusBoard,
		boardView:  viewport.New(0, 0),
		detailView: viewport.New(0, 0),
	}
	if opts.Fallback {
		m.setStatus("Could not load tasks; showing built-in sample data", statusError)
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case tea.KeyMsg:
		if m.showHelp {
			return m.updateHelp(msg)
		}
		return m.handleKey(msg)
	case openedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Open %s failed: %v", msg.url, msg.err), statusError)
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading board..."
	}
	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	leftWidth, rightWidth := splitWidths(m.width)

	boardPane := renderPane(m.boardView.View(), leftWidth, contentHeight, m.focus == focusBoard)
	detailPane := renderPane(m.detailView.View(), rightWidth, contentHeight, m.focus == focusDetail)
	content := lipgloss.JoinHorizontal(lipgloss.Top, boardPane, detailPane)

	if m.showHelp {
		modal := lipgloss.NewStyle().Border(borderASCII).Padding(1, 2).Render(helpContent())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}
	return strings.Join([]string{m.renderHeader(), m.renderHelpLine(), content, m.renderStatusLine()}, "\n")
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "E", "a":
		return m.dispatch(view.Event{Kind: view.EventGlobalToggle})
	case "r":
		if selected := m.session.Selected(); selected != "" {
			m.session.Select(selected)
			m.cardIndex = 0
			m.setStatus("Detail refreshed", statusInfo)
			m.refresh()
		}
		return m, nil
	}
	if m.focus == focusDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleBoardKey(key)
}

func (m model) handleBoardKey(key string) (model, tea.Cmd) {
	rows := m.session.Board()
	current := highlightedIndex(rows)
	switch key {
	case "up", "k":
		return m.selectRow(rows, current-1)
	case "down", "j":
		return m.selectRow(rows, current+1)
	case "home", "g":
		return m.selectRow(rows, 0)
	case "end", "G":
		return m.selectRow(rows, len(rows)-1)
	case " ", "x":
		if current < 0 {
			return m, nil
		}
		row := rows[current]
		return m.dispatch(view.Event{Kind: view.EventCheckbox, TaskID: row.TaskID, Checked: !row.Checked})
	case "enter", "e", "right", "l":
		if current < 0 {
			return m, nil
		}
		return m.dispatch(view.Event{Kind: view.EventRowToggle, TaskID: rows[current].TaskID})
	case "tab":
		if _, ok := m.session.Detail(); ok {
			m.focus = focusDetail
			m.refresh()
		}
	}
	return m, nil
}

func (m model) handleDetailKey(msg tea.KeyMsg) (model, tea.Cmd) {
	detail, ok := m.session.Detail()
	if !ok {
		m.focus = focusBoard
		return m, nil
	}
	card, hasCard := currentCard(detail, m.cardIndex)
	switch msg.String() {
	case "esc", "tab", "shift+tab", "left", "h":
		m.focus = focusBoard
		m.refresh()
		return m, nil
	case "up", "k":
		return m.moveCard(detail, -1), nil
	case "down", "j":
		return m.moveCard(detail, 1), nil
	case "enter", " ", "e":
		if hasCard {
			return m.dispatch(view.Event{Kind: view.EventExpandButton, TaskID: detail.TaskID, AssetID: card.ID})
		}
	case "s":
		if hasCard {
			return m.dispatch(view.Event{Kind: view.EventStart, TaskID: detail.TaskID, AssetID: card.ID})
		}
	case "p":
		if hasCard {
			return m.dispatch(view.Event{Kind: view.EventPreview, TaskID: detail.TaskID, AssetID: card.ID})
		}
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.detailView, cmd = m.detailView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHelp(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc":
		m.showHelp = false
	case "ctrl+c", "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) selectRow(rows []view.BoardRow, index int) (model, tea.Cmd) {
	if len(rows) == 0 {
		return m, nil
	}
	if index < 0 {
		index = 0
	}
	if index >= len(rows) {
		index = len(rows) - 1
	}
	if rows[index].Highlighted {
		return m, nil
	}
	m.cardIndex = 0
	return m.dispatch(view.Event{Kind: view.EventRowClick, TaskID: rows[index].TaskID})
}

func (m model) moveCard(detail view.DetailPane, delta int) model {
	next := m.cardIndex + delta
	if next < 0 {
		next = 0
	}
	if next >= len(detail.Cards) {
		next = len(detail.Cards) - 1
	}
	if next < 0 {
		next = 0
	}
	m.cardIndex = next
	m.refresh()
	return m
}

// dispatch applies event, reports its acknowledgements on the status line,
// and opens any navigations.
func (m model) dispatch(event view.Event) (model, tea.Cmd) {
	m.session.Dispatch(event)
	acknowledgements, navigations := m.effects.Drain()
	if len(acknowledgements) > 0 {
		m.setStatus(internalstrings.NormalizeWhitespace(acknowledgements[len(acknowledgements)-1]), statusInfo)
	}
	var cmds []tea.Cmd
	for _, url := range navigations {
		if !m.openLinks || m.opener == nil {
			m.setStatus(fmt.Sprintf("%s (%s)", m.status, url), statusInfo)
			continue
		}
		cmds = append(cmds, openCmd(m.opener, url))
	}
	m.refresh()
	return m, tea.Batch(cmds...)
}

func openCmd(opener browser.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{url: url, err: opener.Open(url)}
	}
}

func (m *model) resize() {
	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	leftWidth, rightWidth := splitWidths(m.width)
	innerHeight := contentHeight - 2
	if innerHeight < 1 {
		innerHeight = 1
	}
	m.boardView.Width = max(leftWidth-4, 1)
	m.boardView.Height = innerHeight
	m.detailView.Width = max(rightWidth-4, 1)
	m.detailView.Height = innerHeight
	m.refresh()
}

// refresh re-renders both panes from the session.
func (m *model) refresh() {
	content, line := renderBoard(m.session.Board(), m.boardView.Width)
	m.boardView.SetContent(content)
	if line >= 0 && m.boardView.Height > 0 {
		if line < m.boardView.YOffset {
			m.boardView.SetYOffset(line)
		} else if line+2 > m.boardView.YOffset+m.boardView.Height {
			m.boardView.SetYOffset(line + 2 - m.boardView.Height)
		}
	}

	detail, ok := m.session.Detail()
	if ok && m.cardIndex >= len(detail.Cards) {
		m.cardIndex = max(len(detail.Cards)-1, 0)
	}
	cursor := -1
	if m.focus == focusDetail {
		cursor = m.cardIndex
	}
	m.detailView.SetContent(renderDetail(detail, ok, cursor, m.detailView.Width))
}

func splitWidths(width int) (int, int) {
	left := width / 3
	if left < 30 {
		left = 30
	}
	if left > width-20 {
		left = width / 2
	}
	right := width - left
	if right < 20 {
		right = 20
		left = width - right
	}
	return left, right
}

func renderPane(content string, width, height int, focused bool) string {
	style := paneStyle
	if focused {
		style = paneActiveStyle
	}
	return style.Width(max(width-2, 0)).Height(max(height-2, 0)).Render(content)
}

func (m model) renderHeader() string {
	control := m.session.GlobalControl()
	title := headerStyle.Render("Journey Board")
	toggle := controlStyle.Render("E " + control.Label)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + toggle
}

func (m model) renderHelpLine() string {
	text := m.helpSummary()
	return helpBarStyle.Render(truncateText(text, m.width))
}

func (m model) helpSummary() string {
	if m.focus == focusDetail {
		return "Keys: up/down card | enter expand | s start | p preview | esc back | E expand all | ? help | q quit"
	}
	return "Keys: up/down select | space check | enter assets | tab detail | E expand all | r refresh | ? help | q quit"
}

func (m model) renderStatusLine() string {
	text := strings.TrimSpace(m.status)
	if text == "" {
		return ""
	}
	style := valueMuted
	if m.statusLevel == statusError {
		style = statusErrorStyle
	} else if m.statusLevel == statusInfo {
		style = statusSuccessStyle
	}
	return style.Render(truncateText(text, m.width))
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func helpContent() string {
	sections := []string{
		labelStyle.Render("Global"),
		"q or ctrl+c: quit",
		"E or a: expand or collapse everything",
		"r: refresh the detail pane",
		"?: toggle help",
		"",
		labelStyle.Render("Board"),
		"up/down or j/k: select task",
		"space or x: mark completed / pending",
		"enter or e: show or hide assets",
		"tab: focus detail pane",
		"",
		labelStyle.Render("Detail"),
		"up/down or j/k: move between assets",
		"enter or space: show or hide description",
		"s: start asset",
		"p: preview asset",
		"esc: return to board",
		"",
		labelStyle.Render("Help"),
		"press ? or esc to close",
	}
	return strings.Join(sections, "\n")
}

func highlightedIndex(rows []view.BoardRow) int {
	for i, row := range rows {
		if row.Highlighted {
			return i
		}
	}
	return -1
}

func currentCard(detail view.DetailPane, index int) (view.AssetCard, bool) {
	if index < 0 || index >= len(detail.Cards) {
		return view.AssetCard{}, false
	}
	return detail.Cards[index], true
}
