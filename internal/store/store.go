// Package store is the persistence adapter behind the tracker. All
// backends expose the same document-oriented contract: whole-collection
// loads, full-object puts keyed by id, hard removes, and a change
// subscription. Writes are last-write-wins; there are no transactions
// spanning documents.
package store

import "context"

// Collection names are stable across every backend.
const (
	Settings       = "settings"
	Creators       = "creators"
	Clients        = "clients"
	ContentEntries = "contentEntries"
	Notices        = "notices"
	Holidays       = "holidays"
	Shootings      = "shootings"
)

// Record is one stored document: an opaque JSON body under a string id.
type Record struct {
	ID   string
	Data []byte
}

type Op string

const (
	OpPut    Op = "put"
	OpRemove Op = "remove"
)

// Change describes a committed write, delivered to subscribers after
// the backend accepted it.
type Change struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Op         Op     `json:"op"`
}

type Store interface {
	// LoadAll returns every record of a collection in insertion order.
	LoadAll(ctx context.Context, collection string) ([]Record, error)
	Get(ctx context.Context, collection, id string) (*Record, error)
	Put(ctx context.Context, collection, id string, data []byte) error
	Remove(ctx context.Context, collection, id string) error
	BatchPut(ctx context.Context, collection string, records []Record) error
	// Subscribe registers fn for changes on a collection; an empty
	// collection name matches everything. The returned func cancels
	// the subscription.
	Subscribe(collection string, fn func(Change)) func()
	Close() error
}
