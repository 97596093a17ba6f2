// Package store is the durable key/value persistence boundary. Each
// collection lives whole under a fixed key as a JSON array; Save overwrites
// the prior value entirely and Load of a missing or corrupt value degrades
// to an empty collection instead of failing.
package store

import "context"

// Collection keys of the durable layout.
const (
	KeyComplaints = "complaints"
	KeyUsers      = "users"
	KeyOfficials  = "officials"
)

// Store loads and saves whole JSON collections. A failed Save must leave the
// previously saved value intact; callers surface the failure and keep their
// in-memory state consistent.
type Store interface {
	Load(ctx context.Context, key string, out any) error
	Save(ctx context.Context, key string, v any) error
}
