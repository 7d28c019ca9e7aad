// Package services binds typed entity shapes to the generic collection
// store: one service per storage key, adding uid synthesis and timestamp
// stamping on top of raw CRUD.
package services

import (
	"strconv"
	"time"
)

// NewUID builds a business-facing uid from a prefix and the current
// millisecond clock, e.g. "CAT1735689600000". Two calls inside the same
// millisecond collide; existing persisted data uses this scheme so it stays.
func NewUID(prefix string) string {
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func stampCreate(created, updated *time.Time) {
	now := time.Now().UTC()
	*created = now
	*updated = now
}

// stampUpdate forces updated_at into the patch so a client-supplied value
// can never win.
func stampUpdate(patch map[string]any) map[string]any {
	if patch == nil {
		patch = map[string]any{}
	}
	patch["updated_at"] = time.Now().UTC()
	return patch
}
