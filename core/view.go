package core

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortRecent SortKey = "recent"
	SortOldest SortKey = "oldest"
	SortTitle  SortKey = "title"
)

// FilterAll matches every status or category.
const FilterAll = "all"

// ViewQuery configures Derive. Empty Status/Category mean "all";
// empty Search disables search; an unknown Sort keeps the filtered
// order.
type ViewQuery struct {
	Status   string
	Category string
	Search   string
	Sort     SortKey
}

// Derive produces the ordered subset of tasks to display. It is a
// pure function: it never mutates tasks and returns a new slice.
//
// A task is kept when its status and category match the respective
// filters and, if a search string is given, its title or description
// contains it case-insensitively. The sort is stable; "recent" and
// "oldest" order by UpdatedAt, "title" compares titles with a
// locale-aware collator.
func Derive(tasks []Task, q ViewQuery) []Task {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Status != "" && q.Status != FilterAll && string(t.Status) != q.Status {
			continue
		}
		if q.Category != "" && q.Category != FilterAll && string(t.Category) != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		out = append(out, t)
	}

	switch q.Sort {
	case SortRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		})
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAt.Before(out[j].UpdatedAt)
		})
	case SortTitle:
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	}

	return out
}

// Summary reports progress over the unfiltered collection.
type Summary struct {
	Total            int     `json:"total"`
	Completed        int     `json:"completed"`
	Pending          int     `json:"pending"`
	CompletedPercent float64 `json:"completedPercent"`
}

// Summarize computes counts and the completed percentage, 0 for an
// empty collection.
func Summarize(tasks []Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == StatusCompleted {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletedPercent = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}
