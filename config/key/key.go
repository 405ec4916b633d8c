// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides types for strongly typed keys in key value pairs.
package key

import (
	"strings"
)

// Keyer is a common interface all value key types must implement.
type Keyer interface {
	Key() string
}

// Name represents a canonical key name, e.g. DEVELOCITY_QUARKUS_CACHE_ENABLED.
// Canonical names are upper snake case and are used as is for environment
// variables and configuration files.
type Name string

// Key implements the [Keyer] interface.
func (k Name) Key() string {
	return string(k)
}

// Dotted returns the lower dot case form of the name, e.g.
// develocity.quarkus.cache.enabled, as used by build tool properties.
func (k Name) Dotted() Dotted {
	return Dotted(strings.ReplaceAll(strings.ToLower(string(k)), "_", "."))
}

// Dotted represents a lower dot case key name.
type Dotted string

// Key implements the [Keyer] interface.
func (k Dotted) Key() string {
	return string(k)
}

// Canonical reverses [Name.Dotted].
func (k Dotted) Canonical() Name {
	return Name(strings.ReplaceAll(strings.ToUpper(string(k)), ".", "_"))
}
