// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package extension

import "fmt"

// ConfigLoadError occurs when the configuration file named by
// [ConfigFile] can not be read or parsed.
type ConfigLoadError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e ConfigLoadError) Error() string {
	return fmt.Sprintf("failed to load configuration file %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ConfigLoadError) Unwrap() error {
	return e.Cause
}
