// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"

	"github.com/z5labs/quarkuscache/config/key"
)

// Map is an ordinary map[string]string but implements both
// the Source and Store interfaces.
type Map map[string]string

// Apply implements the Source interface. Every entry is set on the
// given store, including entries with an empty value.
func (m Map) Apply(store Store) error {
	for k, v := range m {
		err := store.Set(key.Name(k), v)
		if err != nil {
			return err
		}
	}
	return nil
}

// EmptyKeyError occurs when a Source tries to set a value without a key.
type EmptyKeyError struct {
	Value string
}

// Error implements the error interface.
func (e EmptyKeyError) Error() string {
	return fmt.Sprintf("attempted to set value to an empty key: %q", e.Value)
}

// Set implements the Store interface.
func (m Map) Set(k key.Keyer, v string) error {
	name := k.Key()
	if name == "" {
		return EmptyKeyError{Value: v}
	}
	m[name] = v
	return nil
}

func (m Map) clone() Map {
	c := make(Map, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
