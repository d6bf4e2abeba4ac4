package services

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ListOptions carries the optional listing parameters. Nil fields take the
// defaults: limit 10, offset 0, sort by "id", ascending.
type ListOptions struct {
	Limit  *int
	Offset *int
	Sort   *string
	Desc   *bool
}

const (
	defaultLimit   = 10
	defaultOffset  = 0
	defaultSortKey = "id"
)

// comparator orders two items by a single field: negative when a sorts
// before b, zero on ties.
type comparator[T any] func(a, b T) int

// listPage sorts, optionally reverses, and slices a fully materialized
// collection. The recognized sort keys are whatever the entity kind exposes
// in its comparator map; anything else is rejected. Sorting is stable, and a
// descending listing reverses the already-sorted sequence rather than
// inverting the comparator, so tie groups keep their ascending-pass order.
// The input slice is never mutated.
func listPage[T any](items []T, opts ListOptions, fields map[string]comparator[T]) ([]T, error) {
	limit := defaultLimit
	offset := defaultOffset
	sortKey := defaultSortKey
	desc := false

	if opts.Limit != nil {
		limit = *opts.Limit
	}
	if opts.Offset != nil {
		offset = *opts.Offset
	}
	if opts.Sort != nil && *opts.Sort != "" {
		sortKey = *opts.Sort
	}
	if opts.Desc != nil {
		desc = *opts.Desc
	}

	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: limit or offset is incorrect", ErrIllegalArgument)
	}
	cmp, ok := fields[sortKey]
	if !ok {
		return nil, fmt.Errorf("%w: such field as %s doesn't exist", ErrIllegalArgument, sortKey)
	}

	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j]) < 0
	})
	if desc {
		reverse(out)
	}

	if offset >= len(out) {
		return []T{}, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// slicePage applies raw skip-then-take without sorting, used by the per-user
// listings that keep store order.
func slicePage[T any](items []T, limit, offset *int) ([]T, error) {
	l := defaultLimit
	o := defaultOffset
	if limit != nil {
		l = *limit
	}
	if offset != nil {
		o = *offset
	}
	if l < 0 || o < 0 {
		return nil, fmt.Errorf("%w: limit or offset is incorrect", ErrIllegalArgument)
	}
	if o >= len(items) {
		return []T{}, nil
	}
	items = items[o:]
	if l < len(items) {
		items = items[:l]
	}
	return items, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func compareStrings(a, b string) int {
	return strings.Compare(a, b)
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
