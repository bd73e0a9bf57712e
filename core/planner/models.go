package planner

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/doodhq/dood/core"
)

// DateFormat is the day-granularity bucketing key format. Events never move
// to another bucket after creation.
const DateFormat = "2006-01-02"

const (
	defaultStartTime = "09:00"
	defaultEndTime   = "10:00"
)

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"` // YYYY-MM-DD
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"` // not guaranteed to be later than StartTime
	Location    string    `json:"location,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

// Progress summarizes a date bucket: how many of its events are done.
type Progress struct {
	Date       string  `json:"date"`
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// NewEvent contains information needed to schedule a new Event.
type NewEvent struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required,isodate"`
	StartTime   string `json:"start_time" validate:"omitempty,hhmm"`
	EndTime     string `json:"end_time" validate:"omitempty,hhmm"`
	Location    string `json:"location"`
}

func (ne *NewEvent) Validate(validate *validator.Validate) error {
	ne.Title = core.CleanString(ne.Title)
	ne.Description = core.CleanString(ne.Description)
	ne.Date = core.CleanString(ne.Date)
	ne.StartTime = core.CleanString(ne.StartTime)
	ne.EndTime = core.CleanString(ne.EndTime)
	ne.Location = core.CleanString(ne.Location)

	return validate.Struct(ne)
}

// UpdateEvent defines what information may be provided to modify an existing
// Event. Date and Completed are not editable: the bucket is fixed at creation
// and completion only moves through ToggleCompleted.
type UpdateEvent struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" validate:"omitempty,hhmm"`
	EndTime     string `json:"end_time" validate:"omitempty,hhmm"`
	Location    string `json:"location"`
}

func (ue *UpdateEvent) Validate(validate *validator.Validate) error {
	ue.Title = core.CleanString(ue.Title)
	ue.Description = core.CleanString(ue.Description)
	ue.StartTime = core.CleanString(ue.StartTime)
	ue.EndTime = core.CleanString(ue.EndTime)
	ue.Location = core.CleanString(ue.Location)

	return validate.Struct(ue)
}
