package model

import "time"

// SlotLock is an advisory lock serializing booking creation for one
// (court, date) pair. The lock is a document whose _id encodes the pair;
// a duplicate-key error on insert means another request holds it. ExpiresAt
// backs a TTL index so crashed holders cannot wedge a slot.
type SlotLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
