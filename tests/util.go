package testutil

import (
	"testing"
	"time"

	"github.com/doodhq/dood/core/material"
	"github.com/doodhq/dood/core/planner"
)

func CreateEvent(
	t *testing.T,
	repo planner.Repository,
	title, date, startTime, endTime string,
	completed bool,
	createdAt ...time.Time,
) planner.Event {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	evt := planner.Event{
		ID:        title + "-" + date + "-" + startTime, // deterministic for fixtures
		Title:     title,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Completed: completed,
		CreatedAt: tstamp,
	}
	evt, err := repo.CreateEvent(evt)
	if err != nil {
		t.Fatalf("createEvent() failed: %v", err)
	}
	return evt
}

func CreateMaterial(t *testing.T, repo material.Repository, name string, size int64) material.Material {
	t.Helper()

	mat, err := repo.CreateMaterial(material.Material{
		ID:          name,
		Name:        name,
		Size:        size,
		ContentType: material.PDFContentType,
		UploadedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("createMaterial() failed: %v", err)
	}
	return mat
}
