package gcalendar

import "context"

// ICalendar is the calendar surface the todo domain depends on.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}
