package calendar

import "github.com/alexanderramin/wartung/internal/domain"

// Unassigned is the technician bucket key for tasks without a technician.
const Unassigned = ""

// BucketByDay groups tasks by the calendar day of their scheduled date.
// Input order is kept within each day.
func BucketByDay(tasks []domain.MaintenanceTask) map[Date][]domain.MaintenanceTask {
	byDay := make(map[Date][]domain.MaintenanceTask)
	for _, t := range tasks {
		key := DateOf(t.ScheduledDate)
		byDay[key] = append(byDay[key], t)
	}
	return byDay
}

// GroupByTechnician groups tasks by technician id. Unassigned tasks land in
// the Unassigned bucket. Every task lands in exactly one bucket.
func GroupByTechnician(tasks []domain.MaintenanceTask) map[string][]domain.MaintenanceTask {
	byTech := make(map[string][]domain.MaintenanceTask)
	for _, t := range tasks {
		key := Unassigned
		if t.Assigned() {
			key = t.TechnicianID
		}
		byTech[key] = append(byTech[key], t)
	}
	return byTech
}
