package model

import "time"

// Priority is the urgency level of a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// RecurringPattern describes how often a recurring todo repeats.
type RecurringPattern string

const (
	RecurringDaily   RecurringPattern = "daily"
	RecurringWeekly  RecurringPattern = "weekly"
	RecurringMonthly RecurringPattern = "monthly"
)

// Todo is the central entity: a single to-do item owned by a user.
//
// CreatedAt/UpdatedAt are server-assigned on write; every mutation (including a
// completion toggle) refreshes UpdatedAt, so UpdatedAt >= CreatedAt always holds.
// Order is a manual sort hint preserved across updates.
type Todo struct {
	ID               string
	UserID           string
	Title            string
	Description      string
	Completed        bool
	Priority         Priority
	DueDate          *time.Time
	Reminder         *time.Time
	CategoryID       string // empty when uncategorized
	Tags             []string
	IsRecurring      bool
	RecurringPattern RecurringPattern // meaningful only when IsRecurring
	Order            int
	IsNotified       bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
