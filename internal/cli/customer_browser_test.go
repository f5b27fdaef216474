package cli

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/alexanderramin/wartung/internal/masterdata"
	"github.com/alexanderramin/wartung/internal/teatest"
	"github.com/alexanderramin/wartung/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFetcher answers from an in-memory list and records every query.
type recordingFetcher struct {
	mu       sync.Mutex
	source   []domain.Customer
	queries  []domain.CustomerQuery
	contexts []context.Context
}

func (f *recordingFetcher) fetch(ctx context.Context, q domain.CustomerQuery) domain.CustomerPage {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.contexts = append(f.contexts, ctx)
	f.mu.Unlock()
	return masterdata.Query(f.source, q)
}

func (f *recordingFetcher) last() domain.CustomerQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func (f *recordingFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func browserCustomers(n int) []domain.Customer {
	base := []domain.Customer{
		*testutil.NewTestCustomer("Müller", "Klaus", testutil.WithCity("59955", "Winterberg")),
		*testutil.NewTestCustomer("Özdemir", "Deniz", testutil.WithCity("59939", "Olsberg")),
		*testutil.NewTestCustomer("Peters", "Jana", testutil.WithCity("59955", "Winterberg")),
	}
	out := append([]domain.Customer{}, base...)
	for i := len(base); i < n; i++ {
		out = append(out, *testutil.NewTestCustomer("Zimmer", "Kunde", testutil.WithCity("57392", "Schmallenberg")))
	}
	return out
}

func newTestBrowser(t *testing.T, n int, debounce time.Duration) (*teatest.Driver, *recordingFetcher) {
	t.Helper()
	f := &recordingFetcher{source: browserCustomers(n)}
	d := teatest.New(t, newCustomerBrowser(f.fetch, 10, debounce), teatest.WithSize(120, 40))
	d.DrainInit()
	return d, f
}

func browser(d *teatest.Driver) *customerBrowser {
	return d.Model.(*customerBrowser)
}

func TestCustomerBrowser_InitialLoad(t *testing.T) {
	d, f := newTestBrowser(t, 3, 0)

	require.Equal(t, 1, f.count())
	b := browser(d)
	assert.False(t, b.loading)
	assert.Len(t, b.result.Rows, 3)
	assert.Equal(t, []string{"Olsberg", "Winterberg"}, b.result.Localities)

	view := stripANSI(d.View())
	assert.Contains(t, view, "KUNDEN")
	assert.Contains(t, view, "Müller")
	assert.Contains(t, view, "Seite 1 von 1 · 3 Kunden")
}

func TestCustomerBrowser_TypingSearches(t *testing.T) {
	d, f := newTestBrowser(t, 3, 0)

	d.Type("mül")

	assert.Equal(t, "mül", f.last().Search)
	assert.Equal(t, 1, f.last().Page)
	b := browser(d)
	require.Len(t, b.result.Rows, 1)
	assert.Equal(t, "Müller", b.result.Rows[0].Surname)
}

func TestCustomerBrowser_DebounceDropsSupersededInput(t *testing.T) {
	d, f := newTestBrowser(t, 3, time.Hour)

	d.Type("pe")
	assert.Equal(t, 1, f.count(), "no fetch before the debounce fires")
	assert.Positive(t, d.Dropped)

	d.Send(searchDebounceMsg{seq: 1})
	assert.Equal(t, 1, f.count(), "stale debounce is ignored")

	d.Send(searchDebounceMsg{seq: 2})
	assert.Equal(t, 2, f.count())
	assert.Equal(t, "pe", f.last().Search)
}

func TestCustomerBrowser_StaleResultIgnored(t *testing.T) {
	d, _ := newTestBrowser(t, 3, 0)
	b := browser(d)

	stale := b.fetchSeq - 1
	d.Send(customersLoadedMsg{seq: stale, page: domain.CustomerPage{TotalCount: 99}})

	assert.Equal(t, 3, browser(d).result.TotalCount)
}

func TestCustomerBrowser_NewFetchCancelsPrevious(t *testing.T) {
	f := &recordingFetcher{source: browserCustomers(3)}
	b := newCustomerBrowser(f.fetch, 10, 0)

	first := b.startFetch()
	second := b.startFetch()

	stale := first().(customersLoadedMsg)
	fresh := second().(customersLoadedMsg)

	f.mu.Lock()
	assert.Error(t, f.contexts[0].Err(), "superseded fetch runs with a cancelled context")
	assert.NoError(t, f.contexts[1].Err())
	f.mu.Unlock()

	b.Update(fresh)
	b.Update(stale)
	assert.Equal(t, 3, b.result.TotalCount)
	assert.Equal(t, fresh.seq, b.fetchSeq)
	assert.False(t, b.loading)
}

func TestCustomerBrowser_Paging(t *testing.T) {
	d, f := newTestBrowser(t, 23, 0)

	d.Press(tea.KeyPgDown)
	d.Press(tea.KeyPgDown)
	assert.Equal(t, 3, f.last().Page)
	assert.Len(t, browser(d).result.Rows, 3)

	calls := f.count()
	d.Press(tea.KeyPgDown)
	assert.Equal(t, calls, f.count(), "no page after the last")

	d.Press(tea.KeyPgUp)
	assert.Equal(t, 2, f.last().Page)

	assert.Contains(t, stripANSI(d.View()), "Seite 2 von 3 · 23 Kunden")
}

func TestCustomerBrowser_SortCyclesAndFlips(t *testing.T) {
	d, f := newTestBrowser(t, 3, 0)

	d.Press(tea.KeyTab)
	assert.Equal(t, domain.SortFirstName, f.last().SortField)
	assert.Equal(t, domain.SortAsc, f.last().Direction)

	d.Press(tea.KeyShiftTab)
	assert.Equal(t, domain.SortFirstName, f.last().SortField)
	assert.Equal(t, domain.SortDesc, f.last().Direction)
	assert.Equal(t, "Klaus", browser(d).result.Rows[0].FirstName)
}

func TestCustomerBrowser_LocalityCycle(t *testing.T) {
	d, f := newTestBrowser(t, 3, 0)

	d.Press(tea.KeyCtrlO)
	assert.Equal(t, "Olsberg", f.last().Locality)
	assert.Len(t, browser(d).result.Rows, 1)

	d.Press(tea.KeyCtrlO)
	assert.Equal(t, "Winterberg", f.last().Locality)

	d.Press(tea.KeyCtrlO)
	assert.Equal(t, domain.AllLocalities, f.last().Locality)
}

func TestCustomerBrowser_CursorAndDetail(t *testing.T) {
	d, _ := newTestBrowser(t, 3, 0)

	d.Press(tea.KeyDown)
	d.Press(tea.KeyDown)
	d.Press(tea.KeyDown)
	assert.Equal(t, 2, browser(d).cursor)

	d.Press(tea.KeyEnter)
	assert.True(t, browser(d).detail)
	assert.Contains(t, stripANSI(d.View()), "Jana Peters")

	d.Press(tea.KeyEnter)
	assert.False(t, browser(d).detail)
}

func TestCustomerBrowser_Quit(t *testing.T) {
	d, _ := newTestBrowser(t, 3, 0)

	d.Press(tea.KeyEsc)
	assert.True(t, d.Quitting)
}

func TestNextLocality(t *testing.T) {
	locs := []string{"Olsberg", "Winterberg"}
	assert.Equal(t, "Olsberg", nextLocality(domain.AllLocalities, locs))
	assert.Equal(t, domain.AllLocalities, nextLocality("Winterberg", locs))
	assert.Equal(t, domain.AllLocalities, nextLocality("Gone", locs))
}
