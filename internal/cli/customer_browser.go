package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/wartung/internal/cli/formatter"
	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchDebounceMsg fires after a pause in typing. Only the message carrying
// the latest input sequence triggers a fetch.
type searchDebounceMsg struct{ seq int }

// customersLoadedMsg delivers the result of fetch number seq.
type customersLoadedMsg struct {
	seq  int
	page domain.CustomerPage
}

type browserKeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextPage     key.Binding
	PrevPage     key.Binding
	NextSort     key.Binding
	FlipSort     key.Binding
	NextLocality key.Binding
	Detail       key.Binding
	Quit         key.Binding
}

func defaultBrowserKeys() browserKeyMap {
	return browserKeyMap{
		Up:           key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:         key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		NextPage:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next page")),
		PrevPage:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev page")),
		NextSort:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sort column")),
		FlipSort:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "direction")),
		NextLocality: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "ort")),
		Detail:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Quit:         key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// customerBrowser is the interactive customer table. Typing is debounced;
// every filter, sort or page change starts a new fetch and cancels the one
// in flight. Results of superseded fetches are dropped.
type customerBrowser struct {
	fetch    customerFetcher
	debounce time.Duration
	keys     browserKeyMap

	input  textinput.Model
	query  domain.CustomerQuery
	result domain.CustomerPage
	cursor int
	detail bool

	loading  bool
	inputSeq int
	fetchSeq int
	cancel   context.CancelFunc
}

func newCustomerBrowser(fetch customerFetcher, pageSize int, debounce time.Duration) *customerBrowser {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = "Suche: "
	ti.Placeholder = "Name, Firma, Nr., Ort, PLZ, E-Mail, Straße"
	ti.CharLimit = 200

	return &customerBrowser{
		fetch:    fetch,
		debounce: debounce,
		keys:     defaultBrowserKeys(),
		input:    ti,
		query:    domain.CustomerQuery{PageSize: pageSize}.Normalized(),
	}
}

func (b *customerBrowser) Init() tea.Cmd {
	return b.startFetch()
}

// startFetch cancels the fetch in flight and issues a new one for the
// current query.
func (b *customerBrowser) startFetch() tea.Cmd {
	b.stop()
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.fetchSeq++
	b.loading = true

	seq, q, fetch := b.fetchSeq, b.query, b.fetch
	return func() tea.Msg {
		return customersLoadedMsg{seq: seq, page: fetch(ctx, q)}
	}
}

// stop cancels the fetch in flight, if any.
func (b *customerBrowser) stop() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

func (b *customerBrowser) debounceCmd() tea.Cmd {
	seq := b.inputSeq
	if b.debounce <= 0 {
		return func() tea.Msg { return searchDebounceMsg{seq: seq} }
	}
	return tea.Tick(b.debounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func (b *customerBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case customersLoadedMsg:
		if msg.seq != b.fetchSeq {
			return b, nil
		}
		b.stop()
		b.loading = false
		b.result = msg.page
		if b.cursor >= len(b.result.Rows) {
			b.cursor = max(len(b.result.Rows)-1, 0)
		}
		return b, nil

	case searchDebounceMsg:
		if msg.seq != b.inputSeq {
			return b, nil
		}
		next := b.query.WithSearch(b.input.Value())
		if next == b.query {
			return b, nil
		}
		b.query = next
		return b, b.startFetch()

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	return b, nil
}

func (b *customerBrowser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		b.stop()
		return b, tea.Quit

	case key.Matches(msg, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}
		return b, nil

	case key.Matches(msg, b.keys.Down):
		if b.cursor < len(b.result.Rows)-1 {
			b.cursor++
		}
		return b, nil

	case key.Matches(msg, b.keys.Detail):
		b.detail = !b.detail && len(b.result.Rows) > 0
		return b, nil

	case key.Matches(msg, b.keys.NextPage):
		if b.query.Page >= domain.TotalPages(b.result.TotalCount, b.query.PageSize) {
			return b, nil
		}
		b.query.Page++
		b.cursor = 0
		return b, b.startFetch()

	case key.Matches(msg, b.keys.PrevPage):
		if b.query.Page <= 1 {
			return b, nil
		}
		b.query.Page--
		b.cursor = 0
		return b, b.startFetch()

	case key.Matches(msg, b.keys.NextSort):
		b.query = b.query.SortedBy(nextSortField(b.query.SortField))
		b.cursor = 0
		return b, b.startFetch()

	case key.Matches(msg, b.keys.FlipSort):
		b.query = b.query.SortedBy(b.query.SortField)
		b.cursor = 0
		return b, b.startFetch()

	case key.Matches(msg, b.keys.NextLocality):
		b.query = b.query.WithLocality(nextLocality(b.query.Locality, b.result.Localities))
		b.cursor = 0
		return b, b.startFetch()
	}

	before := b.input.Value()
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	if b.input.Value() == before {
		return b, cmd
	}
	b.detail = false
	b.inputSeq++
	return b, tea.Batch(cmd, b.debounceCmd())
}

func nextSortField(current domain.SortField) domain.SortField {
	fields := domain.SortFields()
	for i, f := range fields {
		if f == current {
			return fields[(i+1)%len(fields)]
		}
	}
	return fields[0]
}

// nextLocality cycles "all" followed by the known localities.
func nextLocality(current string, localities []string) string {
	options := append([]string{domain.AllLocalities}, localities...)
	for i, l := range options {
		if l == current {
			return options[(i+1)%len(options)]
		}
	}
	return domain.AllLocalities
}

func (b *customerBrowser) View() string {
	var s strings.Builder

	s.WriteString(formatter.Header("Kunden"))
	s.WriteString("\n\n")
	s.WriteString(b.input.View())
	s.WriteString("\n")

	ort := "alle"
	if b.query.FiltersLocality() {
		ort = b.query.Locality
	}
	s.WriteString(formatter.Dim(fmt.Sprintf("Ort: %s", ort)))
	if b.loading {
		s.WriteString("  " + formatter.StylePurple.Render("lädt…"))
	}
	s.WriteString("\n\n")

	if b.detail && b.cursor < len(b.result.Rows) {
		s.WriteString(formatter.FormatCustomerDetail(b.result.Rows[b.cursor]))
		s.WriteString("\n")
	} else if len(b.result.Rows) == 0 {
		s.WriteString(formatter.Dim("Keine Kunden gefunden."))
		s.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(b.result.Rows))
		for i, c := range b.result.Rows {
			row := formatter.CustomerRow(c)
			marker := "  "
			if i == b.cursor {
				marker = formatter.StyleHeader.Render("▶ ")
			}
			rows = append(rows, append([]string{marker}, row...))
		}
		headers := append([]string{""}, formatter.CustomerHeaders(b.query)...)
		s.WriteString(formatter.RenderTable(headers, rows))
	}

	s.WriteString("\n")
	s.WriteString(formatter.PageFooter(b.query, b.result.TotalCount))
	s.WriteString("\n")
	s.WriteString(b.helpLine())
	return s.String()
}

func (b *customerBrowser) helpLine() string {
	bindings := []key.Binding{
		b.keys.Up, b.keys.Down, b.keys.PrevPage, b.keys.NextPage,
		b.keys.NextSort, b.keys.FlipSort, b.keys.NextLocality, b.keys.Detail, b.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return formatter.Dim(strings.Join(parts, " · "))
}
