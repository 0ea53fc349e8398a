// Package tui implements the interactive task board.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/models"
	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/store"
	"github.com/AndreySavastyuk/MES-v1.0-sub001/internal/watcher"
)

// statusCycle is the order the f key walks through status filters. The
// empty entry means "all".
var statusCycle = []models.TaskStatus{
	"",
	models.TaskStatusDevelopment,
	models.TaskStatusSent,
	models.TaskStatusLoaded,
	models.TaskStatusInProgress,
	models.TaskStatusPaused,
	models.TaskStatusCompleted,
	models.TaskStatusDeleted,
}

// Model is the root Bubbletea model for the task board.
type Model struct {
	store  *store.Store
	fsw    *watcher.Watcher
	events <-chan store.Event

	// Visible data, re-derived from the store on every change
	tasks []*models.Task

	// UI state
	cursor       int
	scrollOffset int
	width        int
	height       int
	filtering    bool
	filterInput  textinput.Model
	statusIdx    int
	showArchived bool
	sortState    store.SortState
	showHistory  bool
	err          error
}

type snapshotChangedMsg struct{}

type storeEventMsg store.Event

// NewModel creates the initial board model.
func NewModel(s *store.Store, fsw *watcher.Watcher) Model {
	input := textinput.New()
	input.Placeholder = "search title, order or number"
	input.CharLimit = 64

	m := Model{
		store:       s,
		fsw:         fsw,
		events:      s.Subscribe(),
		filterInput: input,
	}
	m.refresh()
	return m
}

// Run opens the board and blocks until the user quits.
func Run(s *store.Store) error {
	fsw, err := watcher.New()
	if err != nil {
		return err
	}
	if err := fsw.Start(); err != nil {
		return err
	}
	defer fsw.Stop()

	_, err = tea.NewProgram(NewModel(s, fsw), tea.WithAltScreen()).Run()
	return err
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForSnapshot(), m.waitForStoreEvent())
}

func (m Model) waitForSnapshot() tea.Cmd {
	if m.fsw == nil {
		return nil
	}
	events := m.fsw.Events()
	return func() tea.Msg {
		<-events
		return snapshotChangedMsg{}
	}
}

func (m Model) waitForStoreEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return storeEventMsg(<-events)
	}
}

// refresh re-derives the visible task list from the store.
func (m *Model) refresh() {
	criteria := store.FilterCriteria{
		Status: statusCycle[m.statusIdx],
		Search: m.filterInput.Value(),
	}
	m.tasks = m.store.List(store.ListOptions{
		Criteria:       &criteria,
		Sort:           &m.sortState,
		IncludeDeleted: m.showArchived || criteria.Status == models.TaskStatusDeleted,
	})
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() *models.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotChangedMsg:
		// Another process rewrote the snapshot; reload from disk.
		_ = m.store.Load()
		m.refresh()
		return m, m.waitForSnapshot()

	case storeEventMsg:
		m.refresh()
		return m, m.waitForStoreEvent()

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFiltering(msg)
		}
		return m.updateBoard(msg)
	}

	return m, nil
}

func (m Model) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filtering = false
		m.filterInput.Blur()
		if msg.String() == "esc" {
			m.filterInput.SetValue("")
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, boardKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, boardKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureVisible()

	case key.Matches(msg, boardKeys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		m.ensureVisible()

	case key.Matches(msg, boardKeys.Filter):
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, boardKeys.Status):
		m.statusIdx = (m.statusIdx + 1) % len(statusCycle)
		m.refresh()

	case key.Matches(msg, boardKeys.Archived):
		m.showArchived = !m.showArchived
		m.refresh()

	case key.Matches(msg, boardKeys.SortNum):
		m.sortState.Toggle(store.SortByNumber)
		m.refresh()

	case key.Matches(msg, boardKeys.SortTit):
		m.sortState.Toggle(store.SortByTitle)
		m.refresh()

	case key.Matches(msg, boardKeys.SortCre):
		m.sortState.Toggle(store.SortByCreated)
		m.refresh()

	case key.Matches(msg, boardKeys.SortPro):
		m.sortState.Toggle(store.SortByProgress)
		m.refresh()

	case key.Matches(msg, boardKeys.History):
		m.showHistory = !m.showHistory

	case key.Matches(msg, boardKeys.Send):
		if t := m.selected(); t != nil {
			if _, err := m.store.SendToTablet(t.TaskNumber); err != nil {
				m.err = err
			} else {
				m.err = nil
			}
			m.refresh()
		}

	case key.Matches(msg, boardKeys.Delete):
		if t := m.selected(); t != nil {
			if _, err := m.store.Delete(t.TaskNumber); err != nil {
				m.err = err
			} else {
				m.err = nil
			}
			m.refresh()
		}
	}

	return m, nil
}

func (m *Model) ensureVisible() {
	visible := m.listHeight()
	if visible <= 0 {
		return
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

func (m *Model) listHeight() int {
	// header + column row + status bar, plus the history pane when open
	h := m.height - 4
	if m.showHistory {
		h -= historyPaneHeight
	}
	return h
}

const historyPaneHeight = 8

// View renders the board.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleHeader.Render("MES task board"))
	b.WriteString("  ")
	b.WriteString(styleStatusBar.Render(m.filterSummary()))
	b.WriteString("\n")

	b.WriteString(styleColumn.Render(fmt.Sprintf("  %-6s %-12s %-10s %5s  %-9s %s",
		m.columnTitle("NUM", store.SortByNumber),
		"STATUS",
		"PRIORITY",
		m.columnTitle("PROG", store.SortByProgress),
		"ORDER",
		m.columnTitle("TITLE", store.SortByTitle),
	)))
	b.WriteString("\n")

	visible := m.listHeight()
	end := m.scrollOffset + visible
	if end > len(m.tasks) {
		end = len(m.tasks)
	}
	start := m.scrollOffset
	if start > end {
		start = end
	}

	if len(m.tasks) == 0 {
		b.WriteString(styleStatusBar.Render("  no tasks match"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		t := m.tasks[i]
		row := fmt.Sprintf("  %-6s %-12s %-10s %4d%%  %-9s %s",
			t.TaskNumber, renderStatus(t.Status), t.Priority, t.Progress, t.OrderNumber, t.Title)
		if i == m.cursor {
			row = styleSelected.Render(row)
		} else {
			row = styleRow.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if m.showHistory {
		b.WriteString(m.historyView())
	}

	if m.filtering {
		b.WriteString("/" + m.filterInput.View())
	} else if m.err != nil {
		b.WriteString(styleErrorBar.Render(m.err.Error()))
	} else {
		b.WriteString(styleStatusBar.Render("j/k navigate · / search · f status · a archived · 1-4 sort · s send · d delete · enter history · q quit"))
	}

	return b.String()
}

func (m Model) filterSummary() string {
	parts := []string{fmt.Sprintf("%d tasks", len(m.tasks))}
	if st := statusCycle[m.statusIdx]; st != "" {
		parts = append(parts, "status="+string(st))
	}
	if v := m.filterInput.Value(); v != "" {
		parts = append(parts, "search="+v)
	}
	if m.showArchived {
		parts = append(parts, "archived")
	}
	if m.sortState.Direction != store.SortNone {
		dir := "asc"
		if m.sortState.Direction == store.SortDesc {
			dir = "desc"
		}
		parts = append(parts, fmt.Sprintf("sort=%s %s", m.sortState.Field, dir))
	}
	return strings.Join(parts, " · ")
}

// columnTitle marks the active sort column with its direction.
func (m Model) columnTitle(title string, field store.SortField) string {
	if m.sortState.Field != field || m.sortState.Direction == store.SortNone {
		return title
	}
	if m.sortState.Direction == store.SortAsc {
		return title + "^"
	}
	return title + "v"
}

func (m Model) historyView() string {
	t := m.selected()
	if t == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleColumn.Render("  HISTORY " + t.TaskNumber))
	b.WriteString("\n")

	entries := t.History
	if len(entries) > historyPaneHeight-2 {
		entries = entries[len(entries)-(historyPaneHeight-2):]
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s %s %s", e.Timestamp.Local().Format("01-02 15:04"), e.User, e.Action)
		if e.Kind != models.AuditKindFreeform {
			line += fmt.Sprintf(" %s: %s -> %s", e.Field, e.OldValue, e.NewValue)
		}
		b.WriteString(styleHistory.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
