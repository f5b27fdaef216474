package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/alexanderramin/wartung/internal/repository"
	"github.com/alexanderramin/wartung/internal/service"
	"github.com/alexanderramin/wartung/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// fixedNow is a Wednesday in ISO week 10.
var fixedNow = time.Date(2024, time.March, 6, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	app         *App
	technicians repository.TechnicianRepo
	tasks       repository.TaskRepo
	tickets     repository.TicketRepo
	customers   repository.CustomerRepo
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	env := &testEnv{
		technicians: repository.NewSQLiteTechnicianRepo(database),
		tasks:       repository.NewSQLiteTaskRepo(database, time.UTC),
		tickets:     repository.NewSQLiteTicketRepo(database),
		customers:   repository.NewSQLiteCustomerRepo(database),
	}
	env.app = &App{
		Planning:     service.NewPlanningService(env.technicians, env.tasks, uow, time.UTC, calendar.NRWHoliday),
		Tickets:      service.NewTicketService(env.tickets),
		Customers:    service.NewCustomerService(env.customers),
		Tours:        service.NewTourService(env.tasks, time.UTC),
		Import:       service.NewImportService(uow, time.UTC),
		PageSize:     10,
		DefaultWeeks: 1,
		Location:     time.UTC,
		Now:          func() time.Time { return fixedNow },
	}
	return env
}

// seed stores two technicians, four tasks, two tickets and three customers.
func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	anna := &domain.Technician{ID: "t-anna", Name: "Anna Becker", Initials: "AB", Color: "#83a598"}
	ben := &domain.Technician{ID: "t-ben", Name: "Ben Kraus", Initials: "BK", Color: "#d3869b"}
	require.NoError(t, e.technicians.Upsert(ctx, anna, 0))
	require.NoError(t, e.technicians.Upsert(ctx, ben, 1))

	tasks := []*domain.MaintenanceTask{
		testutil.NewTestTask("Müller", testutil.Date(2024, time.March, 4),
			testutil.WithTechnician("t-anna"), testutil.WithMaintenanceStatus(domain.MaintenancePlanned)),
		testutil.NewTestTask("Schmidt", testutil.Date(2024, time.March, 5),
			testutil.WithTechnician("t-ben"), testutil.WithMaintenanceStatus(domain.MaintenanceContacted)),
		testutil.NewTestTask("Peters", testutil.Date(2024, time.March, 6)),
		testutil.NewTestTask("Später", testutil.Date(2024, time.March, 12), testutil.WithTechnician("t-anna")),
	}
	ids := []string{"w-1", "w-2", "w-3", "w-4"}
	for i, task := range tasks {
		task.ID = ids[i]
		require.NoError(t, e.tasks.Upsert(ctx, task))
	}

	urgent := testutil.NewTestTicket("Heizung ausgefallen",
		testutil.WithPriority(domain.PriorityUrgent), testutil.WithCreatedAt(fixedNow.Add(-72*time.Hour)))
	low := testutil.NewTestTicket("Rückruf erbeten",
		testutil.WithPriority(domain.PriorityLow), testutil.WithCreatedAt(fixedNow.Add(-time.Hour)))
	urgent.ID, low.ID = "s-1", "s-2"
	require.NoError(t, e.tickets.Upsert(ctx, low))
	require.NoError(t, e.tickets.Upsert(ctx, urgent))

	for _, c := range []*domain.Customer{
		testutil.NewTestCustomer("Müller", "Klaus", testutil.WithCity("59955", "Winterberg")),
		testutil.NewTestCustomer("Özdemir", "Deniz", testutil.WithCity("59939", "Olsberg")),
		testutil.NewTestCustomer("Peters", "Jana", testutil.WithCity("59955", "Winterberg")),
	} {
		require.NoError(t, e.customers.Upsert(ctx, c))
	}
}

// executeCmd runs a cobra command and captures its output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

// --- calendar ---

func TestCalendarCmd_DefaultShowsFirstTechnicianOnly(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "calendar")
	require.NoError(t, err)

	assert.Contains(t, out, "KW 10")
	assert.Contains(t, out, "04.03. AB:1")
	assert.NotContains(t, out, "BK:1")
	assert.NotContains(t, out, "?1")
}

func TestCalendarCmd_AllTechs(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "calendar", "--all-techs", "--mode", "rows", "--tours")
	require.NoError(t, err)

	assert.Contains(t, out, "05.03. BK:1")
	assert.Contains(t, out, "06.03. ?1")
	assert.Contains(t, out, "[BK] Schmidt")
	assert.Contains(t, out, "[--] Peters")
	assert.Contains(t, out, "● Nicht zugewiesen")
}

func TestCalendarCmd_StatusFilter(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "calendar", "--all-techs", "--status", "planned")
	require.NoError(t, err)

	assert.Contains(t, out, "AB:1")
	assert.NotContains(t, out, "BK:1")
	assert.Contains(t, out, "Status: Geplant")
}

func TestCalendarCmd_ShiftAndAnchor(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "calendar", "--shift", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "KW 11")
	assert.Contains(t, out, "12.03. AB:1")

	out, err = executeCmd(t, env.app, "calendar", "--anchor", "2024-03-14", "--weeks", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "KW 11")
	assert.Contains(t, out, "KW 12")
	assert.NotContains(t, out, "KW 10")
}

func TestCalendarCmd_SelectedTechnician(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "calendar", "--tech", "t-ben")
	require.NoError(t, err)

	assert.Contains(t, out, "BK:1")
	assert.NotContains(t, out, "AB:1")
}

func TestCalendarCmd_InvalidFlags(t *testing.T) {
	env := testApp(t)

	_, err := executeCmd(t, env.app, "calendar", "--status", "done")
	assert.ErrorContains(t, err, "unknown maintenance status")

	_, err = executeCmd(t, env.app, "calendar", "--mode", "diagonal")
	assert.Error(t, err)

	_, err = executeCmd(t, env.app, "calendar", "--anchor", "04.03.2024")
	assert.Error(t, err)

	_, err = executeCmd(t, env.app, "calendar", "--tech", "t-anna", "--all-techs")
	assert.Error(t, err)
}

// --- task ---

func TestTaskCmd_Confirm(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "task", "confirm", "w-2")
	require.NoError(t, err)
	assert.Contains(t, out, "[BK] Ben Kraus")
	assert.Contains(t, out, "✔ Bestätigt")

	stored, err := env.tasks.GetByID(context.Background(), "w-2")
	require.NoError(t, err)
	assert.Equal(t, domain.SchedulingConfirmed, stored.SchedulingStatus)
	assert.Equal(t, domain.ConfirmationConfirmed, stored.ConfirmationStatus)
}

func TestTaskCmd_CancelUnassigned(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "task", "cancel", "w-3")
	require.NoError(t, err)
	assert.Contains(t, out, "nicht zugewiesen")
	assert.Contains(t, out, "✖ Storniert")
}

func TestTaskCmd_Missing(t *testing.T) {
	env := testApp(t)

	_, err := executeCmd(t, env.app, "task", "confirm", "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = executeCmd(t, env.app, "task", "cancel")
	assert.Error(t, err)
}

// --- ticket ---

func TestTicketCmd_ListByPriority(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "ticket", "list")
	require.NoError(t, err)

	urgent := strings.Index(out, "Heizung ausgefallen")
	low := strings.Index(out, "Rückruf erbeten")
	require.NotEqual(t, -1, urgent)
	require.NotEqual(t, -1, low)
	assert.Less(t, urgent, low)
	assert.Contains(t, out, "Vor 3 Tagen")
	assert.Contains(t, out, "Heute")
}

func TestTicketCmd_Schedule(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "ticket", "schedule", "s-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Ticket s-1 vorgemerkt")
}

// --- customer ---

func TestCustomerCmd_ListSearch(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "customer", "list", "--search", "MÜL")
	require.NoError(t, err)

	assert.Contains(t, out, "Müller")
	assert.NotContains(t, out, "Peters")
	assert.Contains(t, out, "Seite 1 von 1 · 1 Kunden")
	assert.Contains(t, out, "Orte: Olsberg, Winterberg")
}

func TestCustomerCmd_ListLocalityAndSort(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "customer", "list", "--ort", "Olsberg")
	require.NoError(t, err)
	assert.Contains(t, out, "Özdemir")
	assert.NotContains(t, out, "Müller")

	out, err = executeCmd(t, env.app, "customer", "list", "--sort", "city", "--desc")
	require.NoError(t, err)
	assert.Contains(t, out, "Ort ↓")
	assert.Less(t, strings.Index(out, "Müller"), strings.Index(out, "Özdemir"))
	assert.Less(t, strings.Index(out, "Peters"), strings.Index(out, "Özdemir"))
}

func TestCustomerCmd_LocalMatchesStore(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	for _, args := range [][]string{
		{"--search", "winter"},
		{"--sort", "first_name", "--desc"},
		{"--ort", "Winterberg", "--sort", "surname"},
		{"--page", "2"},
	} {
		store, err := executeCmd(t, env.app, append([]string{"customer", "list"}, args...)...)
		require.NoError(t, err)
		local, err := executeCmd(t, env.app, append([]string{"customer", "list", "--local"}, args...)...)
		require.NoError(t, err)
		assert.Equal(t, store, local, "args %v", args)
	}
}

func TestCustomerCmd_PageBeyondEnd(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "customer", "list", "--page", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Keine Kunden gefunden.")
	assert.Contains(t, out, "Seite 5 von 1 · 3 Kunden")
}

func TestCustomerCmd_InvalidSort(t *testing.T) {
	env := testApp(t)
	_, err := executeCmd(t, env.app, "customer", "list", "--sort", "shoe_size")
	assert.Error(t, err)
}

func TestCustomerCmd_Count(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "customer", "count")
	require.NoError(t, err)
	assert.Contains(t, out, "Kunden: 3")
}

func TestCustomerCmd_BrowseNeedsTerminal(t *testing.T) {
	env := testApp(t)
	env.app.IsInteractive = func() bool { return false }

	_, err := executeCmd(t, env.app, "customer", "browse")
	assert.ErrorContains(t, err, "interactive terminal")
}

// --- tour ---

func TestTourCmd_Range(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "tour", "--from", "0", "--to", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "KW 10 – KW 11")
	assert.Contains(t, out, "(2 Wochen)")
	assert.Contains(t, out, "Gesamt")
}

func TestTourCmd_SingleWeekAndClamp(t *testing.T) {
	env := testApp(t)
	env.seed(t)

	out, err := executeCmd(t, env.app, "tour", "--from", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "KW 11")
	assert.Contains(t, out, "(1 Wochen)")

	out, err = executeCmd(t, env.app, "tour", "--from", "3", "--to", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "KW 13")
	assert.NotContains(t, out, "KW 11")
}

func TestTourCmd_OutOfRange(t *testing.T) {
	env := testApp(t)

	_, err := executeCmd(t, env.app, "tour", "--from", "12")
	assert.ErrorContains(t, err, "out of range")
}

func TestTourCmd_ListWeeks(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "tour", "--weeks")
	require.NoError(t, err)
	assert.Contains(t, out, "KW 10")
	assert.Contains(t, out, "KW 21")
	assert.NotContains(t, out, "KW 22")
}

// --- import ---

const importYAML = `
technicians:
  - id: t-anna
    name: Anna Becker
tasks:
  - id: w-9
    contact_person: Jana Peters
    date: 2024-03-07
    technician: t-anna
tickets:
  - title: Heizung ausgefallen
    priority: urgent
    created_at: 2024-03-04T08:15:00Z
customers:
  - surname: Müller
    first_name: Klaus
`

func TestImportCmd(t *testing.T) {
	env := testApp(t)
	path := filepath.Join(t.TempDir(), "daten.yaml")
	require.NoError(t, os.WriteFile(path, []byte(importYAML), 0o644))

	out, err := executeCmd(t, env.app, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 technicians, 1 tasks, 1 tickets, 1 customers")

	out, err = executeCmd(t, env.app, "calendar")
	require.NoError(t, err)
	assert.Contains(t, out, "07.03. AB:1")
}

func TestImportCmd_InvalidFile(t *testing.T) {
	env := testApp(t)
	path := filepath.Join(t.TempDir(), "kaputt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks:\n  - contact_person: X\n    date: gestern\n"), 0o644))

	_, err := executeCmd(t, env.app, "import", path)
	assert.Error(t, err)

	n, err := env.customers.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
