package dashboard

import (
	"time"

	"github.com/portfolio-suite/admin-dashboard/internal/portfolio/domain"
)

// Stats are the overview page numbers derived from the full project list.
type Stats struct {
	Total       int
	Featured    int
	LastUpdated string
}

const noDate = "–"

// Summarize derives the overview stats. Last-updated is the maximum over
// each project's update timestamp, falling back to its creation timestamp;
// the result is independent of input order.
func Summarize(projects []domain.Project) Stats {
	stats := Stats{Total: len(projects), LastUpdated: noDate}

	var latest time.Time
	for _, p := range projects {
		if p.Featured {
			stats.Featured++
		}

		ts := p.UpdatedAt
		if ts == "" {
			ts = p.CreatedAt
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			continue
		}
		if t.After(latest) {
			latest = t
		}
	}

	if !latest.IsZero() {
		stats.LastUpdated = latest.Format("Jan 2, 2006")
	}
	return stats
}

// FormatCreated renders a project creation timestamp for the table.
func FormatCreated(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Format("1/2/2006")
}
