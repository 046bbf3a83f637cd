// Package storage defines persistence contracts for the dashboard's local
// activity journal.
//
// Content itself lives in the content backend; the journal only records what
// the dashboard did to it.
package storage

import (
	"context"
	"time"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
)

// DefaultRecentLimit bounds the activity feed on the dashboard.
const DefaultRecentLimit = 10

// Activity is one recorded mutation attempt.
type Activity struct {
	ID       string
	Op       content.Operation
	Kind     content.Kind
	ObjectID string
	Title    string
	Failed   bool
	Detail   string
	At       time.Time
}

// ActivityStore records and lists mutation attempts.
type ActivityStore interface {
	RecordActivity(ctx context.Context, activity Activity) error
	RecentActivity(ctx context.Context, limit int) ([]Activity, error)
}

// Store is the composite journal contract owned by the process.
type Store interface {
	ActivityStore
	Close() error
}
