package domain

import (
	"encoding/json"
	"time"
)

// EntityType identifies which record collection a mutation touched.
type EntityType string

const (
	EntityTrip   EntityType = "trip"
	EntityReview EntityType = "review"
)

// MutationAction is the kind of local change recorded for reconciliation.
type MutationAction string

const (
	MutationCreate MutationAction = "create"
	MutationUpdate MutationAction = "update"
	MutationDelete MutationAction = "delete"
)

// MutationEntry records one pending local change for later replay against
// the remote entity service. Entries are append-only and ordered by
// insertion (FIFO); nothing mutates an entry after it is written.
//
// Payload holds the affected record serialized as JSON, or just the record
// id for deletes.
type MutationEntry struct {
	EntityType EntityType      `json:"entity_type"`
	Action     MutationAction  `json:"action"`
	Payload    json.RawMessage `json:"payload"`
	Timestamp  time.Time       `json:"timestamp"`
}
