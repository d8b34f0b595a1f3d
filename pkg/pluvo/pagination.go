package pluvo

import (
	"context"
	"errors"
)

// ErrNoMoreItems is returned by Iterator.Next once the sequence is drained.
var ErrNoMoreItems = errors.New("no more items")

// PageFunc fetches one page of a listing with the given window. Resource
// clients bind a PageFunc to an endpoint and filter set when they create a
// Sequence.
type PageFunc[T any] func(ctx context.Context, limit, offset int) (*Page[T], error)

// Sequence is a lazy, length-known view over a paged listing.
//
// Creating a Sequence eagerly fetches the first page, so Len reports the
// total count immediately and never triggers network calls. Iteration yields
// items in server order and fetches further pages transparently when it
// crosses the boundary of what has been materialized. Pages are fetched in
// increasing offset order and appended to the materialized items, so
// restarting iteration never refetches a page.
//
// A Sequence and its iterators are not safe for concurrent use.
type Sequence[T any] struct {
	ctx   context.Context
	fetch PageFunc[T]

	length int
	items  []T

	nextLimit  int
	nextOffset int
	exhausted  bool
}

// NewSequence creates a Sequence over the listing served by fetch, fetching
// the first page immediately.
//
// The window follows the API's limit/offset semantics: the first request uses
// the caller's limit from params only when it is smaller than pageSize,
// otherwise pageSize; the caller's offset shifts the start of the listing.
// The resulting length is the server's total count, capped by the caller's
// limit and reduced by the caller's offset.
func NewSequence[T any](ctx context.Context, pageSize int, params *ListParams, fetch PageFunc[T]) (*Sequence[T], error) {
	var initialLimit, initialOffset int
	if params != nil {
		initialLimit = params.Limit
		initialOffset = params.Offset
	}

	limit := pageSize
	if initialLimit > 0 && initialLimit <= pageSize {
		limit = initialLimit
	}

	offset := initialOffset

	page, err := fetch(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	length := initialLimit
	if initialLimit == 0 || initialLimit > page.Count {
		length = page.Count - initialOffset
		if length < 0 {
			length = 0
		}
	}

	seq := &Sequence[T]{
		ctx:    ctx,
		fetch:  fetch,
		length: length,
		items:  page.Data,
	}
	seq.advanceWindow(limit, offset)

	return seq, nil
}

// Len returns the total number of items in the sequence, as reported by the
// first page. It never triggers a network call.
func (s *Sequence[T]) Len() int {
	return s.length
}

// Items returns the items materialized so far. Iterating the sequence
// extends the returned slice's backing data.
func (s *Sequence[T]) Items() []T {
	return s.items
}

// Iterator returns an iterator positioned at the start of the sequence.
// Iterators share the sequence's materialized items, so a second pass over
// already-fetched pages is free.
func (s *Sequence[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{seq: s}
}

// All drains the sequence and returns every item in server order. On a page
// fetch failure it returns the items collected so far together with the
// error.
func (s *Sequence[T]) All() ([]T, error) {
	all := make([]T, 0, s.length)

	iterator := s.Iterator()
	for iterator.HasNext() {
		item, err := iterator.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return all, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach calls fn for each item in server order, fetching pages as needed.
// Iteration stops at the first error from a page fetch or from fn.
func (s *Sequence[T]) ForEach(fn func(T) error) error {
	iterator := s.Iterator()
	for iterator.HasNext() {
		item, err := iterator.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// fetchNext materializes the next page. The window only advances after a
// successful fetch, so a failed page can be retried by continuing iteration.
func (s *Sequence[T]) fetchNext() error {
	if s.exhausted || len(s.items) >= s.length {
		s.exhausted = true

		return nil
	}

	if s.nextLimit <= 0 {
		s.exhausted = true

		return nil
	}

	limit, offset := s.nextLimit, s.nextOffset

	page, err := s.fetch(s.ctx, limit, offset)
	if err != nil {
		return err
	}

	s.advanceWindow(limit, offset)

	// A short page means the listing shrank server-side; stop early.
	if len(page.Data) == 0 {
		s.exhausted = true
	}

	s.items = append(s.items, page.Data...)

	return nil
}

// advanceWindow computes the window of the page after the one just fetched.
// The limit shrinks on the final page so a full pass costs exactly
// ceil(length/pageSize) fetches.
func (s *Sequence[T]) advanceWindow(limit, offset int) {
	remaining := s.length - offset - limit
	if remaining < limit {
		s.nextLimit = remaining
	} else {
		s.nextLimit = limit
	}

	s.nextOffset = offset + limit
}

// Iterator walks a Sequence from the start.
type Iterator[T any] struct {
	seq   *Sequence[T]
	index int
}

// HasNext reports whether another item can be produced without knowing yet
// whether producing it will require a page fetch.
func (it *Iterator[T]) HasNext() bool {
	if it.index >= it.seq.length {
		return false
	}

	if it.index < len(it.seq.items) {
		return true
	}

	return !it.seq.exhausted
}

// Next returns the next item, fetching the next page when iteration crosses
// the materialized boundary. A fetch failure is returned as-is; items already
// yielded remain valid and a fresh call retries the failed page.
func (it *Iterator[T]) Next() (T, error) {
	var zero T

	for it.index >= len(it.seq.items) {
		if it.index >= it.seq.length || it.seq.exhausted {
			return zero, ErrNoMoreItems
		}

		err := it.seq.fetchNext()
		if err != nil {
			return zero, err
		}
	}

	if it.index >= it.seq.length {
		return zero, ErrNoMoreItems
	}

	item := it.seq.items[it.index]
	it.index++

	return item, nil
}
