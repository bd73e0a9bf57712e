// Package inmemdb is the ephemeral store backing a UI session: opened empty,
// thrown away on shutdown. There is deliberately no durable alternative.
package inmemdb

import (
	"sync"

	"github.com/doodhq/dood/core/material"
	"github.com/doodhq/dood/core/planner"
)

type (
	DB struct {
		event    *eventTable
		material *materialTable
	}

	eventRow struct {
		evt planner.Event
		seq int // insertion order, for stable queries
	}

	eventTable struct {
		table map[string]eventRow
		seq   int
		mutex sync.RWMutex
	}

	materialRow struct {
		mat material.Material
		seq int
	}

	materialTable struct {
		table map[string]materialRow
		seq   int
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		event:    &eventTable{table: make(map[string]eventRow)},
		material: &materialTable{table: make(map[string]materialRow)},
	}
	return db, nil
}
