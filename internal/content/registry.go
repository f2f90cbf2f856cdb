package content

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

type registryKey struct {
	key  Key
	lang language.Tag
}

// Registry is the merged (key, language) → Entry mapping. It is built
// once by Build and never mutated afterwards, so concurrent readers
// need no locking.
type Registry struct {
	entries map[registryKey]Entry
	sources map[registryKey]string
}

// Build folds tables in argument order into a Registry. A duplicate
// (key, language) across tables fails the build with a CollisionError
// naming both tables; every collision found is reported, not just the
// first.
func Build(tables ...Table) (*Registry, error) {
	reg := &Registry{
		entries: make(map[registryKey]Entry),
		sources: make(map[registryKey]string),
	}
	var errs []error
	for _, t := range tables {
		for _, e := range t.Entries {
			if !e.valid() {
				errs = append(errs, fmt.Errorf("table %q: malformed entry for key %q", t.Name, e.Key))
				continue
			}
			rk := registryKey{key: e.Key, lang: e.Lang}
			if first, ok := reg.sources[rk]; ok {
				errs = append(errs, &CollisionError{
					Key:    e.Key,
					Lang:   e.Lang,
					Tables: [2]string{first, t.Name},
				})
				continue
			}
			reg.entries[rk] = e
			reg.sources[rk] = t.Name
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return reg, nil
}

// Lookup returns the entry bound to (key, lang).
func (r *Registry) Lookup(key Key, lang language.Tag) (Entry, bool) {
	e, ok := r.entries[registryKey{key: key, lang: lang}]
	return e, ok
}

// Keys returns every distinct key in the registry, sorted.
func (r *Registry) Keys() []Key {
	seen := make(map[Key]struct{})
	for rk := range r.entries {
		seen[rk.key] = struct{}{}
	}
	keys := make([]Key, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Len is the number of (key, language) entries.
func (r *Registry) Len() int { return len(r.entries) }
