// Package filter narrows an ordered collection to the entries whose display
// key starts with a search query.
package filter

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxQueryLength is the longest query accepted, in runes. Longer input is
// truncated, matching the limit of the on-screen keyboard.
const MaxQueryLength = 20

// lower folds s to lowercase. A Caser keeps state between calls, so each
// call gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// NormalizeQuery lowercases q and truncates it to MaxQueryLength runes.
func NormalizeQuery(q string) string {
	return lower(truncate(q))
}

func truncate(q string) string {
	if utf8.RuneCountInString(q) > MaxQueryLength {
		q = string([]rune(q)[:MaxQueryLength])
	}
	return q
}

// KeyFunc returns the display key an item is matched against.
type KeyFunc[T any] func(T) string

// RebuildHook observes every rebuild of the filtered view.
type RebuildHook func(query string, matches int)

// Option configures a Collection.
type Option[T any] func(*Collection[T])

// WithRebuildHook registers fn to run after each rebuild.
func WithRebuildHook[T any](fn RebuildHook) Option[T] {
	return func(c *Collection[T]) {
		c.onRebuild = fn
	}
}

// Collection is an immutable ordered base with a prefix-filtered view on
// top. The filtered view is always a subsequence of the base in base order.
// An empty query shows the whole base.
type Collection[T any] struct {
	base          []T
	filtered      []T
	key           KeyFunc[T]
	query         string
	previousQuery string
	onRebuild     RebuildHook
}

// New creates a collection over base. The slice is copied.
func New[T any](base []T, key KeyFunc[T], opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		base: append([]T(nil), base...),
		key:  key,
	}
	c.filtered = c.base
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetQuery changes the query and rebuilds the filtered view when the
// normalized query differs from the last one applied. It reports whether
// the view was rebuilt.
//
// Callers holding a cursor over the view must reset it when its position
// falls outside the new Len.
func (c *Collection[T]) SetQuery(q string) bool {
	// Keys are cut to the typed length before folding, since folding may
	// change the rune count (İ becomes i and a combining dot).
	typed := truncate(q)
	q = lower(typed)
	c.query = q

	switch {
	case q == "" && c.previousQuery != "":
		c.filtered = c.base
		c.previousQuery = ""
		c.rebuilt()
		return true
	case q != "" && q != c.previousQuery:
		c.filtered = c.match(q, utf8.RuneCountInString(typed))
		c.previousQuery = q
		c.rebuilt()
		return true
	}
	return false
}

func (c *Collection[T]) match(q string, n int) []T {
	out := make([]T, 0, len(c.base))
	for _, item := range c.base {
		if prefixOf(c.key(item), n) == q {
			out = append(out, item)
		}
	}
	return out
}

// prefixOf lowercases a copy of the first n runes of key.
func prefixOf(key string, n int) string {
	i := 0
	for pos := range key {
		if i == n {
			return lower(key[:pos])
		}
		i++
	}
	return lower(key)
}

func (c *Collection[T]) rebuilt() {
	if c.onRebuild != nil {
		c.onRebuild(c.previousQuery, len(c.filtered))
	}
}

// Query returns the normalized query currently applied.
func (c *Collection[T]) Query() string { return c.query }

// Len returns the number of entries in the filtered view.
func (c *Collection[T]) Len() int { return len(c.filtered) }

// At returns the i-th entry of the filtered view.
func (c *Collection[T]) At(i int) T { return c.filtered[i] }

// Items returns a copy of the filtered view.
func (c *Collection[T]) Items() []T {
	return append([]T(nil), c.filtered...)
}

// Base returns a copy of the unfiltered collection.
func (c *Collection[T]) Base() []T {
	return append([]T(nil), c.base...)
}

// Index returns the position in the filtered view of the first entry
// matching pred, or -1.
func (c *Collection[T]) Index(pred func(T) bool) int {
	for i, item := range c.filtered {
		if pred(item) {
			return i
		}
	}
	return -1
}
