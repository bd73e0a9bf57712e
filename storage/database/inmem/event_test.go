package inmemdb_test

import (
	"testing"

	"github.com/doodhq/dood/core/planner"
	inmemdb "github.com/doodhq/dood/storage/database/inmem"
	testutil "github.com/doodhq/dood/tests"
)

func newEventRepo(t *testing.T) planner.Repository {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	return inmemdb.NewEventRepository(db)
}

func TestEventRepository_CRUD(t *testing.T) {
	repo := newEventRepo(t)

	evt := testutil.CreateEvent(t, repo, "Study Biology", "2025-03-10", "09:00", "10:00", false)

	got, err := repo.GetEventByID(evt.ID)
	if err != nil {
		t.Fatalf("GetEventByID() failed: %v", err)
	}
	if got != evt {
		t.Errorf("GetEventByID() = %+v; want %+v", got, evt)
	}

	evt.Title = "Study Chemistry"
	if _, err = repo.UpdateEvent(evt); err != nil {
		t.Fatalf("UpdateEvent() failed: %v", err)
	}
	if got, _ = repo.GetEventByID(evt.ID); got.Title != "Study Chemistry" {
		t.Errorf("title after update = %q; want %q", got.Title, "Study Chemistry")
	}

	if err = repo.DeleteEventByID(evt.ID); err != nil {
		t.Fatalf("DeleteEventByID() failed: %v", err)
	}
	if _, err = repo.GetEventByID(evt.ID); err != planner.ErrNotFound {
		t.Errorf("GetEventByID() after delete = %v; want %v", err, planner.ErrNotFound)
	}
}

func TestEventRepository_notFound(t *testing.T) {
	repo := newEventRepo(t)

	if _, err := repo.GetEventByID("nope"); err != planner.ErrNotFound {
		t.Errorf("GetEventByID() = %v; want %v", err, planner.ErrNotFound)
	}
	if _, err := repo.UpdateEvent(planner.Event{ID: "nope"}); err != planner.ErrNotFound {
		t.Errorf("UpdateEvent() = %v; want %v", err, planner.ErrNotFound)
	}
	// deleting an unknown id is a silent no-op
	if err := repo.DeleteEventByID("nope"); err != nil {
		t.Errorf("DeleteEventByID() = %v; want nil", err)
	}
}

func TestEventRepository_insertionOrder(t *testing.T) {
	repo := newEventRepo(t)

	titles := []string{"Gym", "Study Biology", "Lunch", "Review Notes"}
	for _, title := range titles {
		testutil.CreateEvent(t, repo, title, "2025-03-10", "09:00", "10:00", false)
	}

	events, err := repo.QueryAllEvents()
	if err != nil {
		t.Fatalf("QueryAllEvents() failed: %v", err)
	}
	if len(events) != len(titles) {
		t.Fatalf("QueryAllEvents() = %d events; want %d", len(events), len(titles))
	}
	for i, evt := range events {
		if evt.Title != titles[i] {
			t.Errorf("events[%d] = %q; want %q", i, evt.Title, titles[i])
		}
	}
}

func TestEventRepository_QueryEventsByDate(t *testing.T) {
	repo := newEventRepo(t)

	testutil.CreateEvent(t, repo, "Gym", "2025-03-10", "08:00", "08:30", false)
	testutil.CreateEvent(t, repo, "Study Biology", "2025-03-11", "09:00", "10:00", false)

	events, err := repo.QueryEventsByDate("2025-03-10")
	if err != nil {
		t.Fatalf("QueryEventsByDate() failed: %v", err)
	}
	if len(events) != 1 || events[0].Title != "Gym" {
		t.Errorf("QueryEventsByDate() = %v; want [Gym]", events)
	}

	if events, _ = repo.QueryEventsByDate("2025-03-12"); len(events) != 0 {
		t.Errorf("QueryEventsByDate() on empty date = %v; want none", events)
	}
}
