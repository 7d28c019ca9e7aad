// Package store implements generic CRUD over one storage key holding a JSON
// array of records. Every operation is a full read-modify-write of the array;
// there is no optimistic concurrency token, so concurrent writers to the same
// key are last-writer-wins. The application runs single-writer per key.
package store

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/pkg/errors"

	"kasirpos/internal/storage"
)

// ErrParse is returned when the stored value is not valid JSON for the
// collection. Callers match it with errors.Is.
var ErrParse = stderrors.New("corrupt collection data")

type record interface {
	GetID() int
	SetID(int)
}

// Collection binds one medium key to one record shape.
//
// Contract asymmetry, kept on purpose: All/Get/Add propagate storage and
// parse errors, while a missing target on Update returns (nil, nil) and on
// Delete returns (false, nil). Changing this changes caller semantics.
type Collection[T any, PT interface {
	record
	*T
}] struct {
	medium storage.Medium
	key    string
}

func NewCollection[T any, PT interface {
	record
	*T
}](medium storage.Medium, key string) *Collection[T, PT] {
	return &Collection[T, PT]{medium: medium, key: key}
}

// Key returns the storage key this collection persists under.
func (c *Collection[T, PT]) Key() string { return c.key }

// All returns every record in the collection; an absent key is an empty
// collection.
func (c *Collection[T, PT]) All(ctx context.Context) ([]T, error) {
	raw, err := c.medium.GetItem(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrapf(ErrParse, "key %q: %v", c.key, err)
	}
	return out, nil
}

// Get linear-scans for an exact id match and returns nil when absent.
// O(n), fine at single-tenant POS scale.
func (c *Collection[T, PT]) Get(ctx context.Context, id int) (*T, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if PT(&all[i]).GetID() == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

// Add assigns id = max(existing)+1 (1 on an empty collection), appends and
// persists. Deleting the highest-id record and re-adding reuses that id;
// existing persisted data depends on this behavior.
func (c *Collection[T, PT]) Add(ctx context.Context, rec T) (*T, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	next := 1
	for i := range all {
		if id := PT(&all[i]).GetID(); id >= next {
			next = id + 1
		}
	}
	PT(&rec).SetID(next)
	all = append(all, rec)
	if err := c.persist(ctx, all); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update shallow-merges patch (keyed by JSON field names) onto the existing
// record and persists. Returns (nil, nil) when the id does not exist.
func (c *Collection[T, PT]) Update(ctx context.Context, id int, patch map[string]any) (*T, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range all {
		if PT(&all[i]).GetID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}
	merged, err := mergePatch(all[idx], patch)
	if err != nil {
		return nil, err
	}
	// A patch cannot move a record to another id.
	PT(&merged).SetID(id)
	all[idx] = merged
	if err := c.persist(ctx, all); err != nil {
		return nil, err
	}
	return &all[idx], nil
}

// Delete filters the id out and persists. Returns false when nothing was
// removed; the collection is not rewritten in that case.
func (c *Collection[T, PT]) Delete(ctx context.Context, id int) (bool, error) {
	all, err := c.All(ctx)
	if err != nil {
		return false, err
	}
	kept := make([]T, 0, len(all))
	for i := range all {
		if PT(&all[i]).GetID() != id {
			kept = append(kept, all[i])
		}
	}
	if len(kept) == len(all) {
		return false, nil
	}
	if err := c.persist(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Collection[T, PT]) persist(ctx context.Context, all []T) error {
	buf, err := json.Marshal(all)
	if err != nil {
		return errors.Wrapf(ErrParse, "key %q: %v", c.key, err)
	}
	return c.medium.SetItem(ctx, c.key, buf)
}

// mergePatch applies the patch at the JSON level: the current record is
// flattened to a map, patch keys overwrite, and the result is decoded back.
// Unknown patch keys are dropped by the decode.
func mergePatch[T any](current T, patch map[string]any) (T, error) {
	var out T
	buf, err := json.Marshal(current)
	if err != nil {
		return out, errors.Wrap(ErrParse, err.Error())
	}
	var m map[string]any
	if err := json.Unmarshal(buf, &m); err != nil {
		return out, errors.Wrap(ErrParse, err.Error())
	}
	for k, v := range patch {
		m[k] = v
	}
	buf, err = json.Marshal(m)
	if err != nil {
		return out, errors.Wrap(ErrParse, err.Error())
	}
	if err := json.Unmarshal(buf, &out); err != nil {
		return out, errors.Wrap(ErrParse, err.Error())
	}
	return out, nil
}
