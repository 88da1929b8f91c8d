package order

import (
	"sort"
	"strings"
	"time"
)

type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
	SortByStatus SortField = "status"
)

// Filter narrows and orders a customer's history. Zero-valued fields are
// skipped. Filters apply in sequence: search, status, date range, amount
// range; then the sort.
type Filter struct {
	Search    string
	Status    Status
	DateFrom  *time.Time
	DateTo    *time.Time
	MinAmount *float64
	MaxAmount *float64
	SortBy    SortField
	Ascending bool
}

// Stats aggregates the filtered result set.
type Stats struct {
	Count        int            `json:"count"`
	TotalSpent   float64        `json:"total_spent"`
	AvgOrder     float64        `json:"avg_order"`
	StatusCounts map[Status]int `json:"status_counts"`
}

// ApplyFilter produces a derived, read-only sequence; the source history is
// never mutated. Sorting is stable, so ties keep input order.
func ApplyFilter(orders []Order, f Filter) []Order {
	filtered := make([]Order, 0, len(orders))

	search := strings.ToLower(f.Search)
	for _, o := range orders {
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.DateFrom != nil && o.CreatedAt.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && o.CreatedAt.After(*f.DateTo) {
			continue
		}
		if f.MinAmount != nil && o.TotalAmount < *f.MinAmount {
			continue
		}
		if f.MaxAmount != nil && o.TotalAmount > *f.MaxAmount {
			continue
		}
		filtered = append(filtered, o)
	}

	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = SortByDate
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		var less bool
		switch sortBy {
		case SortByAmount:
			less = filtered[i].TotalAmount < filtered[j].TotalAmount
		case SortByStatus:
			less = filtered[i].Status < filtered[j].Status
		default:
			less = filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		}
		if f.Ascending {
			return less
		}
		return !less && !equalBy(sortBy, filtered[i], filtered[j])
	})

	return filtered
}

func equalBy(field SortField, a, b Order) bool {
	switch field {
	case SortByAmount:
		return a.TotalAmount == b.TotalAmount
	case SortByStatus:
		return a.Status == b.Status
	default:
		return a.CreatedAt.Equal(b.CreatedAt)
	}
}

func matchesSearch(o Order, search string) bool {
	if strings.Contains(strings.ToLower(o.OrderNumber), search) {
		return true
	}
	if strings.Contains(strings.ToLower(o.TrackingID), search) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.ProductName), search) {
			return true
		}
	}
	return false
}

// Summarize computes aggregate statistics over an already-filtered set.
func Summarize(orders []Order) Stats {
	stats := Stats{
		Count:        len(orders),
		StatusCounts: make(map[Status]int),
	}

	for _, o := range orders {
		stats.TotalSpent += o.TotalAmount
		stats.StatusCounts[o.Status]++
	}
	if stats.Count > 0 {
		stats.AvgOrder = stats.TotalSpent / float64(stats.Count)
	}

	return stats
}
