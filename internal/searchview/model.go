package searchview

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period before a changed search is fetched.
const DefaultDebounce = 300 * time.Millisecond

type Options struct {
	Debounce time.Duration
	LinkBase string // root of the shareable link, e.g. http://localhost:8080/
	PageSize int    // rows shown by the table
	Log      *logrus.Logger
}

// NavigateMsg moves the view to a link, as if the user had followed it.
type NavigateMsg struct{ URL string }

type debounceMsg struct{ gen uint64 }

type fetchResultMsg struct {
	seq    uint64
	result *Result
	err    error
}

// Model is the Bubble Tea program for the advocate search view. Every state
// transition goes through Reduce; the model only turns effects into
// commands.
type Model struct {
	state    State
	searcher Searcher
	opts     Options

	input  textinput.Model
	table  table.Model
	styles Styles
	link   string

	// pending is the debounce generation; only its tick may fetch.
	pending uint64
	cancel  context.CancelFunc
}

func NewModel(searcher Searcher, initial State, opts Options) Model {
	if opts.Log == nil {
		opts.Log = logrus.New()
		opts.Log.SetOutput(io.Discard)
	}
	if opts.PageSize < 1 {
		opts.PageSize = 10
	}

	styles := DefaultStyles()

	input := textinput.New()
	input.Placeholder = "Name, city, degree, specialty..."
	input.Prompt = ""
	input.CharLimit = 200
	input.Width = 40
	input.SetValue(initial.Search)
	input.Focus()

	t := table.New(
		table.WithColumns(columns(0)),
		table.WithFocused(false),
		table.WithHeight(opts.PageSize+1),
		table.WithStyles(styles.Table),
	)

	m := Model{
		state:    initial,
		searcher: searcher,
		opts:     opts,
		input:    input,
		table:    t,
		styles:   styles,
		pending:  1,
	}
	m.link = m.state.Link(opts.LinkBase)
	m.syncTable()
	return m
}

// Init schedules the first fetch for the state the view was opened with.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, debounce(m.opts.Debounce, m.pending))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetColumns(columns(msg.Width))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.stopFetch()
			return m, tea.Quit
		case "ctrl+r":
			m.input.SetValue("")
			return m, m.dispatch(Reset{})
		case "pgdown", "ctrl+n":
			return m, m.dispatch(PageChanged{Page: m.state.Page + 1})
		case "pgup", "ctrl+p":
			return m, m.dispatch(PageChanged{Page: m.state.Page - 1})
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != m.state.Search {
			return m, tea.Batch(cmd, m.dispatch(SearchChanged{Term: m.input.Value()}))
		}
		return m, cmd

	case NavigateMsg:
		values, err := ParseLink(msg.URL)
		if err != nil {
			m.opts.Log.Warnf("Failed to parse link %q: %+v", msg.URL, err)
			return m, nil
		}
		cmd := m.dispatch(URLChanged{Values: values})
		m.input.SetValue(m.state.Search)
		m.link = m.state.Link(m.opts.LinkBase)
		return m, cmd

	case debounceMsg:
		if msg.gen != m.pending {
			return m, nil
		}
		return m, m.startFetch()

	case fetchResultMsg:
		if msg.seq == m.state.Seq {
			m.stopFetch()
		}
		if msg.err != nil {
			if msg.seq == m.state.Seq {
				m.opts.Log.Warnf("Failed to fetch advocates: %+v", msg.err)
			}
			return m, m.dispatch(FetchFailed{Seq: msg.seq, Err: msg.err})
		}
		return m, m.dispatch(FetchSucceeded{Seq: msg.seq, Result: msg.result})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// State returns the current view state.
func (m Model) State() State {
	return m.state
}

// Link returns the shareable link mirroring the current search and page.
func (m Model) Link() string {
	return m.link
}

func (m *Model) dispatch(action Action) tea.Cmd {
	next, effect := Reduce(m.state, action)
	m.state = next
	m.syncTable()

	if effect.SyncURL {
		m.link = m.state.Link(m.opts.LinkBase)
	}
	if !effect.Fetch {
		return nil
	}

	m.stopFetch()
	m.pending++
	return debounce(m.opts.Debounce, m.pending)
}

// startFetch cancels the request in flight, if any, and issues a new one
// stamped with the next sequence number.
func (m *Model) startFetch() tea.Cmd {
	m.stopFetch()
	m.dispatch(FetchStarted{})

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	searcher := m.searcher
	seq := m.state.Seq
	search := strings.TrimSpace(m.state.Search)
	page := m.state.Page

	return func() tea.Msg {
		result, err := searcher.SearchAdvocates(ctx, search, page)
		return fetchResultMsg{seq: seq, result: result, err: err}
	}
}

func (m *Model) stopFetch() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Model) syncTable() {
	rows := make([]table.Row, 0, len(m.state.Advocates))
	for _, advocate := range m.state.Advocates {
		rows = append(rows, advocateRow(advocate))
	}
	m.table.SetRows(rows)
}

func debounce(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	})
}
