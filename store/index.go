package store

import (
	"context"
	"encoding/json"
	"slices"

	ghostwriter "github.com/Molefas/ghost-writer"
)

// readIndex returns the IDs listed under indexKey. A missing index is empty.
func readIndex(ctx context.Context, s ghostwriter.Store, indexKey string) ([]string, error) {
	data, err := s.Get(ctx, indexKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, ghostwriter.Errorf(ghostwriter.EPERSIST, "corrupt index %s: %v", indexKey, err)
	}
	return ids, nil
}

func writeIndex(ctx context.Context, s ghostwriter.Store, indexKey string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return ghostwriter.Errorf(ghostwriter.EINTERNAL, "encode index %s: %v", indexKey, err)
	}
	return s.Set(ctx, indexKey, data)
}

// AddToIndex appends id to the index unless it is already present.
// The index is not written when id is present.
func AddToIndex(ctx context.Context, s ghostwriter.Store, indexKey, id string) error {
	ids, err := readIndex(ctx, s, indexKey)
	if err != nil {
		return err
	}
	if slices.Contains(ids, id) {
		return nil
	}
	return writeIndex(ctx, s, indexKey, append(ids, id))
}

// AppendToIndex appends ids to the index with a single write. IDs already
// present are not repeated.
func AppendToIndex(ctx context.Context, s ghostwriter.Store, indexKey string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	existing, err := readIndex(ctx, s, indexKey)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(existing))
	for _, id := range existing {
		present[id] = true
	}
	for _, id := range ids {
		if !present[id] {
			present[id] = true
			existing = append(existing, id)
		}
	}
	return writeIndex(ctx, s, indexKey, existing)
}

// RemoveFromIndex removes every occurrence of id from the index.
func RemoveFromIndex(ctx context.Context, s ghostwriter.Store, indexKey, id string) error {
	ids, err := readIndex(ctx, s, indexKey)
	if err != nil {
		return err
	}
	return writeIndex(ctx, s, indexKey, slices.DeleteFunc(ids, func(v string) bool { return v == id }))
}

// GetAll returns the records listed in the index, in index order. IDs whose
// record is missing are skipped.
func GetAll[T any](ctx context.Context, s ghostwriter.Store, indexKey string, keyFn func(string) string) ([]*T, error) {
	ids, err := readIndex(ctx, s, indexKey)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*T{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyFn(id)
	}
	values, err := s.GetMany(ctx, keys)
	if err != nil {
		return nil, err
	}

	items := make([]*T, 0, len(keys))
	for _, k := range keys {
		data, ok := values[k]
		if !ok || data == nil {
			continue
		}
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, ghostwriter.Errorf(ghostwriter.EPERSIST, "corrupt record %s: %v", k, err)
		}
		items = append(items, &item)
	}
	return items, nil
}

// GetByID returns the record stored under key, or nil if it does not exist.
func GetByID[T any](ctx context.Context, s ghostwriter.Store, key string) (*T, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, ghostwriter.Errorf(ghostwriter.EPERSIST, "corrupt record %s: %v", key, err)
	}
	return &item, nil
}

func putRecord(ctx context.Context, s ghostwriter.Store, key string, v any) error {
	data, err := marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}

func marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, ghostwriter.Errorf(ghostwriter.EINTERNAL, "encode record: %v", err)
	}
	return data, nil
}
