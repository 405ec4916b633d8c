// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"os"
	"strings"

	"github.com/z5labs/quarkuscache/config/key"
)

// LookupFunc reports the value registered under name and
// whether it was present at all.
type LookupFunc func(name string) (string, bool)

// Lookup represents a Source which resolves a fixed set of keys
// through a LookupFunc. Absent and empty values are skipped so
// they never replace a value set by a previous Source.
type Lookup struct {
	lookup LookupFunc
	keys   []key.Name
	nameOf func(key.Name) key.Keyer
}

// FromLookup returns a Source which looks each key up by its canonical name.
func FromLookup(f LookupFunc, keys ...key.Name) Lookup {
	return Lookup{
		lookup: f,
		keys:   keys,
		nameOf: func(n key.Name) key.Keyer { return n },
	}
}

// FromDottedLookup returns a Source which looks each key up by its
// dotted name but stores the value under the canonical name.
func FromDottedLookup(f LookupFunc, keys ...key.Name) Lookup {
	return Lookup{
		lookup: f,
		keys:   keys,
		nameOf: func(n key.Name) key.Keyer { return n.Dotted() },
	}
}

// FromEnv returns a Source which will apply the given keys
// from the environment variables available to the current process.
func FromEnv(keys ...key.Name) Lookup {
	return FromLookup(os.LookupEnv, keys...)
}

// Apply implements the Source interface.
func (src Lookup) Apply(store Store) error {
	if src.lookup == nil {
		return nil
	}
	for _, k := range src.keys {
		v, ok := src.lookup(src.nameOf(k).Key())
		if !ok || v == "" {
			continue
		}
		err := store.Set(k, v)
		if err != nil {
			return err
		}
	}
	return nil
}

// Environ returns a LookupFunc over a list of "key=value" pairs
// in the form returned by [os.Environ].
func Environ(pairs []string) LookupFunc {
	m := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		m[k] = v
	}
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}
