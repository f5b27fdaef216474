package calendar

import (
	"testing"

	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTechnicianSelection(t *testing.T) {
	var zero TechnicianSelection
	assert.True(t, zero.IsAll())
	assert.True(t, zero.Includes("anyone"))
	assert.Nil(t, zero.IDs())

	none := SpecificTechnicians()
	assert.False(t, none.IsAll())
	assert.False(t, none.Includes("t-anna"))

	some := SpecificTechnicians("t-ben", "t-anna")
	assert.Equal(t, []string{"t-anna", "t-ben"}, some.IDs())
	assert.Equal(t, 2, some.Count(roster))
}

func TestTechnicianSelection_Toggle(t *testing.T) {
	s := AllTechnicians().Toggle("t-anna", roster)
	assert.Equal(t, []string{"t-ben"}, s.IDs())

	s = s.Toggle("t-anna", roster)
	assert.Equal(t, []string{"t-anna", "t-ben"}, s.IDs())

	s = s.Toggle("t-ben", roster)
	assert.Equal(t, []string{"t-anna"}, s.IDs())
}

func TestStatusSelection_Toggle(t *testing.T) {
	known := domain.MaintenanceStatuses()

	s := AllStatuses().Toggle(domain.MaintenanceUnplanned, known)
	assert.False(t, s.Includes(domain.MaintenanceUnplanned))
	assert.Len(t, s.Statuses(known), 3)

	last := OnlyStatuses(domain.MaintenancePlanned)
	assert.Equal(t, last, last.Toggle(domain.MaintenancePlanned, known), "last status stays selected")

	s = last.Toggle(domain.MaintenanceContacted, known)
	assert.Equal(t, []domain.MaintenanceStatus{domain.MaintenanceContacted, domain.MaintenancePlanned}, s.Statuses(known))
}

func TestStatusSelection_ToggleAll(t *testing.T) {
	known := domain.MaintenanceStatuses()
	onlyPlanned := AllStatuses().ToggleAll(known)
	assert.Equal(t, []domain.MaintenanceStatus{domain.MaintenancePlanned}, onlyPlanned.Statuses(known))
	assert.True(t, onlyPlanned.ToggleAll(known).IsAll())
}

func TestFilter_Visible(t *testing.T) {
	assigned := domain.MaintenanceTask{TechnicianID: "t-anna", Status: domain.MaintenancePlanned}
	unassigned := domain.MaintenanceTask{Status: domain.MaintenancePlanned}

	f := Filter{Technicians: SpecificTechnicians("t-ben")}
	assert.False(t, f.Visible(assigned))
	assert.False(t, f.Visible(unassigned))

	f.IncludeUnassigned = true
	assert.True(t, f.Visible(unassigned))

	f.Statuses = OnlyStatuses(domain.MaintenanceContacted)
	assert.False(t, f.Visible(unassigned), "status predicate applies to unassigned tasks too")
}

func TestFilter_ShowAllToggle(t *testing.T) {
	f := DefaultFilter(roster)
	assert.False(t, f.ShowingAll(roster))

	all := f.ToggleShowAll(roster)
	assert.True(t, all.ShowingAll(roster))
	assert.True(t, all.Technicians.IsAll())

	back := all.ToggleShowAll(roster)
	assert.Equal(t, []string{"t-anna"}, back.Technicians.IDs())
	assert.False(t, back.IncludeUnassigned)

	assert.True(t, DefaultFilter(nil).Technicians.IsAll())
}
