package app

import (
	"sort"

	"tableflip.dev/matchday/pkg/event"
	"tableflip.dev/matchday/pkg/store"
)

// ReportSection groups the events of one type.
type ReportSection struct {
	Type   string
	Events []event.Event
}

// ReportResult summarizes the events within a date range.
type ReportResult struct {
	From     event.Date
	To       event.Date
	Sections []ReportSection
	Total    int
}

// Report groups the events between from and to, inclusive, by type. The
// default types come first, then the others in name order. Bounds given in
// reverse are swapped.
func (a *App) Report(from, to event.Date) ReportResult {
	if from.After(to) {
		from, to = to, from
	}
	res := ReportResult{From: from, To: to}
	events := a.Events.List(store.Filter{Range: &store.DateRange{From: from, To: to}})

	byType := make(map[string][]event.Event)
	for _, e := range events {
		byType[e.Type] = append(byType[e.Type], e)
	}
	rank := make(map[string]int)
	for i, t := range event.DefaultTypes() {
		rank[t] = i + 1
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		ri, rj := rank[types[i]], rank[types[j]]
		switch {
		case ri != 0 && rj != 0:
			return ri < rj
		case ri != 0 || rj != 0:
			return ri != 0
		}
		return types[i] < types[j]
	})
	for _, t := range types {
		res.Sections = append(res.Sections, ReportSection{Type: t, Events: byType[t]})
		res.Total += len(byType[t])
	}
	return res
}
