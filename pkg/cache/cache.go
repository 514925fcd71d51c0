// Package cache stores rendered exports so repeated exports of the same
// call tree skip Graphviz.
//
// Entries are keyed by [RenderKey], a hash over everything that affects the
// output bytes: algorithm, input values, captured frame, format, label
// detail and layout metrics. [FileCache] keeps entries on disk with an
// optional expiry; [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// RenderKeyOpts lists the inputs of one export.
type RenderKeyOpts struct {
	Algorithm string  `json:"algo"`
	Values    []int   `json:"values"`
	Frame     int     `json:"frame"`
	Format    string  `json:"format"`
	Detailed  bool    `json:"detailed"`
	BoxSize   float64 `json:"box_size"`
	BoxGap    float64 `json:"box_gap"`
}

// RenderKey returns the cache key for an export with the given inputs.
func RenderKey(opts RenderKeyOpts) string {
	return hashKey("render", opts)
}
