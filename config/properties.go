// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"io"

	"github.com/z5labs/quarkuscache/config/key"
	"github.com/z5labs/quarkuscache/internal/try"

	"github.com/magiconair/properties"
)

// Properties represents a Source where its underlying format
// is a Java style .properties file.
type Properties struct {
	r io.Reader
}

// FromProperties returns a source which will apply its config
// from key value pairs parsed from the given io.Reader. If r
// implements io.Closer it is closed once read.
func FromProperties(r io.Reader) Properties {
	return Properties{r: r}
}

// InvalidPropertiesError occurs if the underlying io.Reader contains
// content which can not be parsed as properties.
type InvalidPropertiesError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidPropertiesError) Error() string {
	return fmt.Sprintf("invalid properties: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidPropertiesError) Unwrap() error {
	return e.cause
}

// Apply implements the Source interface. Every parsed entry is set,
// including entries with an empty value.
func (src Properties) Apply(store Store) (err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	p, err := ParseProperties(b)
	if err != nil {
		return err
	}
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		err = store.Set(key.Name(k), v)
		if err != nil {
			return err
		}
	}
	return nil
}

// ParseProperties parses b as ISO-8859-1 encoded properties with
// ${...} expansion disabled, matching java.util.Properties.
func ParseProperties(b []byte) (*properties.Properties, error) {
	l := &properties.Loader{
		Encoding:         properties.ISO_8859_1,
		DisableExpansion: true,
	}
	p, err := l.LoadBytes(b)
	if err != nil {
		return nil, InvalidPropertiesError{cause: err}
	}
	return p, nil
}
