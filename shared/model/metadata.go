package model

import "time"

// Metadata carries the record bookkeeping shared by every stored entity.
// Records are immutable after creation, so creation time is all there is.
type Metadata struct {
	CreatedAt time.Time `json:"-"`
}
