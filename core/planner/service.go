package planner

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/doodhq/dood/core"
)

var (
	// errors
	ErrNotFound = errors.New("event not found")

	errTitleRequired = core.FieldError{Field: "title", Error: "this field is required"}
)

type (
	Repository interface {
		CreateEvent(evt Event) (Event, error)
		GetEventByID(id string) (Event, error)
		// QueryAllEvents returns every event in creation order.
		QueryAllEvents() ([]Event, error)
		// QueryEventsByDate returns the date's bucket in creation order.
		QueryEventsByDate(date string) ([]Event, error)
		UpdateEvent(evt Event) (Event, error)
		// DeleteEventByID is a no-op for an unknown id.
		DeleteEventByID(id string) error
	}

	ServiceInterface interface {
		Create(ne NewEvent) (Event, error)
		Update(id string, ue UpdateEvent) (Event, error)
		ToggleCompleted(id string) (Event, error)
		Delete(id string) error
		EventsForDate(date string) ([]Event, error)
		DatesWithEvents() ([]string, error)
		DailyProgress(date string) (Progress, error)
		EventsByHour(date string) ([24][]Event, error)
		PendingCompletions() []string
	}

	// Service owns the authoritative set of scheduled events and derives
	// per-day statistics and calendar markers. It is created empty at
	// composition time and discarded on shutdown; nothing is persisted.
	Service struct {
		repo      Repository
		signalTTL time.Duration

		mutex   sync.Mutex
		signals map[string]time.Time // event id -> completion highlight expiry

		now func() time.Time // mockable
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository, conf *core.Config) *Service {
	ttl := conf.CompletionSignalTTL
	if ttl <= 0 {
		ttl = time.Second
	}
	return &Service{
		repo:      repo,
		signalTTL: ttl,
		signals:   make(map[string]time.Time),
		now:       time.Now,
	}
}

// Create appends a new uncompleted Event to the selected date's bucket.
// An empty or all-whitespace title leaves the store unchanged.
func (svc *Service) Create(ne NewEvent) (Event, error) {
	if core.CleanString(ne.Title) == "" {
		return Event{}, core.NewValidationError(nil, errTitleRequired)
	}

	evt := Event{
		ID:          uuid.New().String(),
		Title:       core.CleanString(ne.Title),
		Description: ne.Description,
		Date:        ne.Date,
		StartTime:   ne.StartTime,
		EndTime:     ne.EndTime,
		Location:    ne.Location,
		CreatedAt:   svc.now().UTC(),
	}
	if evt.StartTime == "" {
		evt.StartTime = defaultStartTime
	}
	if evt.EndTime == "" {
		evt.EndTime = defaultEndTime
	}
	return svc.repo.CreateEvent(evt)
}

// Update merges the editable fields into the stored event. The date bucket
// and the completion flag are untouched. Returns ErrNotFound for an unknown
// id so callers can tell "nothing there" from "edited".
func (svc *Service) Update(id string, ue UpdateEvent) (Event, error) {
	if core.CleanString(ue.Title) == "" {
		return Event{}, core.NewValidationError(nil, errTitleRequired)
	}

	evt, err := svc.repo.GetEventByID(id)
	if err != nil {
		return Event{}, err
	}

	evt.Title = core.CleanString(ue.Title)
	evt.Description = ue.Description
	evt.Location = ue.Location
	if ue.StartTime != "" {
		evt.StartTime = ue.StartTime
	}
	if ue.EndTime != "" {
		evt.EndTime = ue.EndTime
	}
	return svc.repo.UpdateEvent(evt)
}

// ToggleCompleted flips the completion flag. Marking an event done (and only
// that transition) arms a one-shot completion signal that PendingCompletions
// exposes until it expires.
func (svc *Service) ToggleCompleted(id string) (Event, error) {
	evt, err := svc.repo.GetEventByID(id)
	if err != nil {
		return Event{}, err
	}

	evt.Completed = !evt.Completed
	evt, err = svc.repo.UpdateEvent(evt)
	if err != nil {
		return Event{}, err
	}

	if evt.Completed {
		svc.mutex.Lock()
		svc.signals[evt.ID] = svc.now().Add(svc.signalTTL)
		svc.mutex.Unlock()
	}
	return evt, nil
}

// Delete removes the event; deleting an unknown id is a no-op.
func (svc *Service) Delete(id string) error {
	svc.mutex.Lock()
	delete(svc.signals, id)
	svc.mutex.Unlock()

	return svc.repo.DeleteEventByID(id)
}

// EventsForDate returns the date's bucket ordered by start time ascending.
// HH:MM is fixed-width zero-padded so a plain string compare is enough;
// events starting at the same time keep creation order.
func (svc *Service) EventsForDate(date string) ([]Event, error) {
	events, err := svc.repo.QueryEventsByDate(date)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].StartTime < events[j].StartTime })
	return events, nil
}

// DatesWithEvents returns the sorted set of distinct dates holding at least
// one event, for calendar-widget highlighting.
func (svc *Service) DatesWithEvents() ([]string, error) {
	events, err := svc.repo.QueryAllEvents()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(events))
	dates := make([]string, 0, len(events))
	for _, evt := range events {
		if !seen[evt.Date] {
			seen[evt.Date] = true
			dates = append(dates, evt.Date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

// DailyProgress reports completed/total for the date's bucket. An empty
// bucket yields 0% rather than dividing by zero.
func (svc *Service) DailyProgress(date string) (Progress, error) {
	events, err := svc.repo.QueryEventsByDate(date)
	if err != nil {
		return Progress{}, err
	}

	prog := Progress{Date: date, Total: len(events)}
	for _, evt := range events {
		if evt.Completed {
			prog.Completed++
		}
	}
	if prog.Total > 0 {
		prog.Percentage = float64(prog.Completed) / float64(prog.Total) * 100
	}
	return prog, nil
}

// EventsByHour places each of the date's events into every hour bucket whose
// HH:00 boundary falls within the event's half-open [start, end) interval.
// A zero-width event (start == end) matches no bucket.
func (svc *Service) EventsByHour(date string) ([24][]Event, error) {
	var buckets [24][]Event

	events, err := svc.EventsForDate(date)
	if err != nil {
		return buckets, err
	}

	for hour := 0; hour < 24; hour++ {
		boundary := fmt.Sprintf("%02d:00", hour)
		for _, evt := range events {
			if evt.StartTime <= boundary && evt.EndTime > boundary {
				buckets[hour] = append(buckets[hour], evt)
			}
		}
	}
	return buckets, nil
}

// PendingCompletions returns the ids of events whose completion signal has
// not expired yet; expired signals are pruned on the way out.
func (svc *Service) PendingCompletions() []string {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	now := svc.now()
	ids := make([]string, 0, len(svc.signals))
	for id, expiry := range svc.signals {
		if now.Before(expiry) {
			ids = append(ids, id)
		} else {
			delete(svc.signals, id)
		}
	}
	sort.Strings(ids)
	return ids
}
