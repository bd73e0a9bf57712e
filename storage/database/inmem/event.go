package inmemdb

import (
	"sort"

	"github.com/doodhq/dood/core/planner"
)

type eventRepository struct {
	db *eventTable
}

func NewEventRepository(db *DB) planner.Repository {
	return &eventRepository{db: db.event}
}

// query returns events in insertion order. Callers hold the lock.
func (repo *eventRepository) query() []planner.Event {
	rows := make([]eventRow, 0, len(repo.db.table))
	for _, row := range repo.db.table {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	events := make([]planner.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.evt)
	}
	return events
}

func (repo *eventRepository) CreateEvent(evt planner.Event) (planner.Event, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.seq++
	repo.db.table[evt.ID] = eventRow{evt: evt, seq: repo.db.seq}
	return evt, nil
}

func (repo *eventRepository) GetEventByID(id string) (planner.Event, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if row, ok := repo.db.table[id]; ok {
		return row.evt, nil
	}
	return planner.Event{}, planner.ErrNotFound
}

func (repo *eventRepository) QueryAllEvents() ([]planner.Event, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *eventRepository) QueryEventsByDate(date string) ([]planner.Event, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	events := make([]planner.Event, 0)
	for _, evt := range repo.query() {
		if evt.Date == date {
			events = append(events, evt)
		}
	}
	return events, nil
}

func (repo *eventRepository) UpdateEvent(evt planner.Event) (planner.Event, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	row, ok := repo.db.table[evt.ID]
	if !ok {
		return planner.Event{}, planner.ErrNotFound
	}
	row.evt = evt
	repo.db.table[evt.ID] = row
	return evt, nil
}

func (repo *eventRepository) DeleteEventByID(id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	delete(repo.db.table, id)
	return nil
}
