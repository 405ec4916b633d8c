// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/z5labs/quarkuscache/config/key"

	"github.com/stretchr/testify/assert"
)

func TestRead(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if one of the Sources fails to apply itself to the store", func(t *testing.T) {
			srcErr := errors.New("failed to apply config")
			src := SourceFunc(func(s Store) error {
				return srcErr
			})

			m, err := Read(Map{"a": "b"}, src)
			if !assert.ErrorIs(t, err, srcErr) {
				return
			}
			if !assert.Nil(t, m) {
				return
			}
		})

		t.Run("if a Source sets an empty key", func(t *testing.T) {
			_, err := Read(Map{"": "value"})

			var kerr EmptyKeyError
			if !assert.ErrorAs(t, err, &kerr) {
				return
			}
			if !assert.Equal(t, "value", kerr.Value) {
				return
			}
		})
	})

	t.Run("will return empty Manager", func(t *testing.T) {
		t.Run("if no sources are provided", func(t *testing.T) {
			m, err := Read()
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Empty(t, m.Keys()) {
				return
			}
		})
	})

	t.Run("will override config values", func(t *testing.T) {
		t.Run("if multiple sources are provided", func(t *testing.T) {
			m, err := Read(
				FromProperties(strings.NewReader("hello=alice\nbye=alice")),
				FromProperties(strings.NewReader("hello=bob")),
			)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "bob", m.Get(key.Name("hello"))) {
				return
			}
			if !assert.Equal(t, "alice", m.Get(key.Name("bye"))) {
				return
			}
		})
	})

	t.Run("will not leak partial writes", func(t *testing.T) {
		t.Run("if a Source fails after setting values", func(t *testing.T) {
			base, err := Read(Map{"hello": "world"})
			if !assert.Nil(t, err) {
				return
			}

			_, err = Read(base, SourceFunc(func(s Store) error {
				if err := s.Set(key.Name("hello"), "partial"); err != nil {
					return err
				}
				return errors.New("failed")
			}))
			if !assert.Error(t, err) {
				return
			}
			if !assert.Equal(t, "world", base.Get(key.Name("hello"))) {
				return
			}
		})
	})

	t.Run("will be idempotent", func(t *testing.T) {
		t.Run("if a single Manager is used as the source", func(t *testing.T) {
			m, err := Read(Map{"hello": "world"})
			if !assert.Nil(t, err) {
				return
			}

			m2, err := Read(m)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, m, m2) {
				return
			}
		})
	})
}

func TestManager_Map(t *testing.T) {
	t.Run("will return a copy", func(t *testing.T) {
		t.Run("if the copy is modified", func(t *testing.T) {
			m, err := Read(Map{"hello": "world"})
			if !assert.Nil(t, err) {
				return
			}

			c := m.Map()
			c["hello"] = "changed"

			v, ok := m.Lookup(key.Name("hello"))
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, "world", v) {
				return
			}
		})
	})
}

type Custom struct {
	N int
}

func (c *Custom) UnmarshalText(b []byte) error {
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return err
	}
	c.N = n
	return nil
}

var unmarshalErr = errors.New("failed to unmarshal")

type UnmarshalTextFailure struct{}

func (x *UnmarshalTextFailure) UnmarshalText(b []byte) error {
	return unmarshalErr
}

func TestManager_Unmarshal(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if a nil result is provided", func(t *testing.T) {
			m, err := Read(Map{"hello": "world"})
			if !assert.Nil(t, err) {
				return
			}

			var v any
			err = m.Unmarshal(v)
			if !assert.Error(t, err) {
				return
			}
		})

		t.Run("if the encoding.TextUnmarshaler fails to UnmarshalText", func(t *testing.T) {
			m, err := Read(Map{"value": "10"})
			if !assert.Nil(t, err) {
				return
			}

			var cfg struct {
				Value UnmarshalTextFailure `config:"value"`
			}
			err = m.Unmarshal(&cfg)
			if !assert.Error(t, err) {
				return
			}
			if !assert.Contains(t, err.Error(), unmarshalErr.Error()) {
				return
			}
		})
	})

	t.Run("will unmarshal strings", func(t *testing.T) {
		t.Run("if the field is a string", func(t *testing.T) {
			m, err := Read(Map{"HELLO_WORLD": "world"})
			if !assert.Nil(t, err) {
				return
			}

			var cfg struct {
				Hello string `config:"HELLO_WORLD"`
			}
			err = m.Unmarshal(&cfg)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "world", cfg.Hello) {
				return
			}
		})
	})

	t.Run("will unmarshal encoding.TextUnmarshaler", func(t *testing.T) {
		t.Run("if the value is a string", func(t *testing.T) {
			m, err := Read(Map{"value": "10"})
			if !assert.Nil(t, err) {
				return
			}

			var cfg struct {
				Value Custom `config:"value"`
			}
			err = m.Unmarshal(&cfg)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, 10, cfg.Value.N) {
				return
			}
		})
	})
}
