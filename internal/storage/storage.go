// Package storage defines the two-method persistence contract the data
// layer runs on. Values are raw JSON documents keyed by collection name.
//
// Known gap, carried over from the original design: adapters offer no
// optimistic-concurrency token or merge strategy. If two processes write
// the same key, the last full-collection Set wins.
package storage

import "errors"

// Collection keys.
const (
	KeyEvents        = "events"
	KeyEventDates    = "event_dates"
	KeyRegistrations = "registrations"
	KeyMediaConfig   = "media_config"
	KeyPromotions    = "promotions"
	KeyAdminSession  = "admin_session"
)

var ErrNotFound = errors.New("key not found")

// Store is the persistence adapter. Get returns ErrNotFound for an absent
// key; any backing store (file, embedded database, remote API) may sit
// behind these two operations without the data layer changing.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}
