package events

import (
	"context"
	"time"
)

// Event types written to the events topic
const (
	StudentRegistered    = "student.registered"
	ProfessorRegistered  = "professor.registered"
	UniversityRegistered = "university.registered"
	FacultyRegistered    = "faculty.registered"
	DepartmentRegistered = "department.registered"
	CourseRegistered     = "course.registered"
	ChatCreated          = "chat.created"
	ChatMemberAdded      = "chat.member_added"
	MessagePosted        = "message.posted"
	StudentEnrolled      = "student.enrolled"
)

// Event is a domain fact emitted after a successful commit
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// New stamps an event with the current time
func New(eventType string, payload interface{}) Event {
	return Event{Type: eventType, OccurredAt: time.Now().UTC(), Payload: payload}
}

// Publisher delivers domain events to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event; used when no brokers are configured
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
