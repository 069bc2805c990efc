package domain

import (
	"sort"

	"daytrack/internal/platform/dates"
)

// Buckets is the full classification of a task set relative to one day.
// Every input task lands in exactly one bucket; the buckets are disjoint and
// their union is the input set.
type Buckets struct {
	DueToday          []Task
	OverdueUnfinished []Task
	Upcoming          []Task
	Completed         []Task
}

// Classify partitions tasks against today by completion flag and plain
// string comparison of calendar dates. It never mutates its input.
//
// Bucket ordering:
//   - DueToday keeps insertion order (all dates are equal).
//   - OverdueUnfinished and Upcoming are sorted by ascending date, stable.
//   - Completed is sorted by completion timestamp, most recent first;
//     tasks completed at the same instant keep insertion order.
func Classify(tasks []Task, today dates.Day) Buckets {
	b := Buckets{}
	for _, t := range tasks {
		switch {
		case t.Completed:
			b.Completed = append(b.Completed, t)
		case t.Due == today:
			b.DueToday = append(b.DueToday, t)
		case t.Due.Before(today):
			b.OverdueUnfinished = append(b.OverdueUnfinished, t)
		default:
			b.Upcoming = append(b.Upcoming, t)
		}
	}
	sortByDate(b.OverdueUnfinished)
	sortByDate(b.Upcoming)
	sort.SliceStable(b.Completed, func(i, j int) bool {
		ti, tj := b.Completed[i].CompletedAt, b.Completed[j].CompletedAt
		if ti == nil || tj == nil {
			return false
		}
		return ti.After(*tj)
	})
	return b
}

// ActiveView is the user-facing working list: today's tasks plus, when carry
// over is enabled, unfinished tasks from previous days. Upcoming tasks are
// never merged in. With carry over disabled the overdue bucket still exists
// for reporting (counts), it is just excluded here.
func (b Buckets) ActiveView(carryOverEnabled bool) []Task {
	if !carryOverEnabled {
		return append([]Task(nil), b.DueToday...)
	}
	active := make([]Task, 0, len(b.OverdueUnfinished)+len(b.DueToday))
	active = append(active, b.OverdueUnfinished...)
	active = append(active, b.DueToday...)
	sortByDate(active)
	return active
}

// AllDueTodayComplete reports whether today's task set is non-empty and fully
// completed. An empty today-set is false: no vacuous celebration.
func AllDueTodayComplete(tasks []Task, today dates.Day) bool {
	seen := false
	for _, t := range tasks {
		if t.Due != today {
			continue
		}
		seen = true
		if !t.Completed {
			return false
		}
	}
	return seen
}

func sortByDate(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Due.Before(tasks[j].Due)
	})
}
