// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/z5labs/quarkuscache/config/key"

	"github.com/mitchellh/mapstructure"
)

// Store represents a general key value structure.
type Store interface {
	Set(key.Keyer, string) error
}

// Source defines valid config sources as those who can
// serialize themselves into a key value like structure.
type Source interface {
	Apply(Store) error
}

// SourceFunc is a func variant of the [Source] interface.
type SourceFunc func(Store) error

// Apply implements the [Source] interface.
func (f SourceFunc) Apply(store Store) error {
	return f(store)
}

// Manager holds the key values produced by one or more Sources.
// A Manager is never mutated once returned by [Read].
type Manager struct {
	store Map
}

// Read applies each Source, in order, to a fresh copy of the values
// accumulated so far. Subsequent sources override previous sources.
// If any Source fails, no Manager is returned.
func Read(srcs ...Source) (*Manager, error) {
	store := make(Map)
	for _, src := range srcs {
		next := store.clone()
		err := src.Apply(next)
		if err != nil {
			return nil, err
		}
		store = next
	}
	m := &Manager{
		store: store,
	}
	return m, nil
}

// Apply implements the [Source] interface so a Manager can seed another [Read].
func (m *Manager) Apply(store Store) error {
	return m.store.Apply(store)
}

// Lookup returns the value stored for k and whether it was set.
func (m *Manager) Lookup(k key.Keyer) (string, bool) {
	v, ok := m.store[k.Key()]
	return v, ok
}

// Get returns the value stored for k or an empty string.
func (m *Manager) Get(k key.Keyer) string {
	return m.store[k.Key()]
}

// Keys returns every key currently set, sorted.
func (m *Manager) Keys() []string {
	keys := make([]string, 0, len(m.store))
	for k := range m.store {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the underlying key values.
func (m *Manager) Map() map[string]string {
	return m.store.clone()
}

// Unmarshal decodes the key values into v using the "config" struct tag.
// String values are decoded into [encoding.TextUnmarshaler] fields by
// calling UnmarshalText.
func (m *Manager) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "config",
		Result:     v,
		DecodeHook: composeDecodeHooks(textUnmarshalerHookFunc()),
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]string(m.store))
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to unmarshal a config
// value to a struct field whose type does not match the config
// value type, up to, coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type().Name(), e.to.Type().Name(), e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (interface{}, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t)
		u, ok := result.Interface().(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(reflect.ValueOf(data).String()))
		if err != nil {
			return nil, err
		}
		return result.Elem().Interface(), nil
	}
}
