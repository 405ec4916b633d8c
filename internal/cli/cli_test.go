// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/z5labs/quarkuscache/config"
	"github.com/z5labs/quarkuscache/extension"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, env []string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewCommand(Environment(config.Environ(env)))
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestCommand(t *testing.T) {
	t.Run("will print the default configuration", func(t *testing.T) {
		t.Run("if no overrides are given", func(t *testing.T) {
			out, _, err := execute(t, nil, "--basedir", t.TempDir())
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Contains(t, out, ".quarkus/quarkus-prod-config-dump") {
				return
			}
			if !assert.Contains(t, out, "target/quarkus-prod-dependency-checksums.txt") {
				return
			}
		})
	})

	t.Run("will apply project properties", func(t *testing.T) {
		t.Run("if they are defined with -D", func(t *testing.T) {
			out, _, err := execute(t,
				[]string{"DEVELOCITY_QUARKUS_BUILD_PROFILE=dev"},
				"--basedir", t.TempDir(),
				"-D", "develocity.quarkus.build.profile=staging",
				"-D", "develocity.quarkus.extra.output.dirs=a,b",
				"--output", "json",
			)
			if !assert.Nil(t, err) {
				return
			}

			var r struct {
				Settings struct {
					BuildProfile    string   `json:"buildProfile"`
					ExtraOutputDirs []string `json:"extraOutputDirs"`
				} `json:"settings"`
				Paths paths `json:"paths"`
			}
			err = json.Unmarshal([]byte(out), &r)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "staging", r.Settings.BuildProfile) {
				return
			}
			if !assert.Equal(t, []string{"a", "b"}, r.Settings.ExtraOutputDirs) {
				return
			}
			if !assert.Equal(t, ".quarkus/quarkus-staging-config-dump", r.Paths.DumpConfig) {
				return
			}
		})

		t.Run("if they are read from a properties file", func(t *testing.T) {
			dir := t.TempDir()
			propsFile := filepath.Join(dir, "project.properties")
			err := os.WriteFile(propsFile, []byte("develocity.quarkus.build.profile=staging\ndevelocity.quarkus.cache.enabled=false\n"), 0o600)
			require.NoError(t, err)

			out, _, err := execute(t, nil,
				"--basedir", dir,
				"--properties-file", propsFile,
				"-D", "develocity.quarkus.build.profile=qa",
				"--output", "yaml",
			)
			if !assert.Nil(t, err) {
				return
			}

			var r struct {
				Settings struct {
					CacheEnabled bool   `yaml:"cacheEnabled"`
					BuildProfile string `yaml:"buildProfile"`
				} `yaml:"settings"`
			}
			err = yaml.Unmarshal([]byte(out), &r)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.False(t, r.Settings.CacheEnabled) {
				return
			}
			if !assert.Equal(t, "qa", r.Settings.BuildProfile) {
				return
			}
		})
	})

	t.Run("will apply the configuration file", func(t *testing.T) {
		t.Run("if it is named by the environment", func(t *testing.T) {
			dir := t.TempDir()
			err := os.WriteFile(filepath.Join(dir, "cache.properties"), []byte("DEVELOCITY_QUARKUS_BUILD_PROFILE=ci\nCUSTOM=x\n"), 0o600)
			require.NoError(t, err)

			out, _, err := execute(t,
				[]string{"DEVELOCITY_QUARKUS_CONFIG_FILE=cache.properties"},
				"--basedir", dir,
				"--output", "properties",
			)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Contains(t, out, "DEVELOCITY_QUARKUS_BUILD_PROFILE = ci\n") {
				return
			}
			if !assert.Contains(t, out, "CUSTOM = x\n") {
				return
			}
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the configuration file does not exist", func(t *testing.T) {
			_, stderr, err := execute(t,
				[]string{"DEVELOCITY_QUARKUS_CONFIG_FILE=missing.properties"},
				"--basedir", t.TempDir(),
			)

			var lerr extension.ConfigLoadError
			if !assert.ErrorAs(t, err, &lerr) {
				return
			}
			if !assert.Contains(t, stderr, "failed to resolve configuration") {
				return
			}
		})

		t.Run("if a define is malformed", func(t *testing.T) {
			_, _, err := execute(t, nil, "-D", "no-separator")

			var derr InvalidDefineError
			if !assert.ErrorAs(t, err, &derr) {
				return
			}
		})

		t.Run("if the output format is unknown", func(t *testing.T) {
			_, _, err := execute(t, nil, "--output", "xml")

			var ferr UnknownFormatError
			if !assert.ErrorAs(t, err, &ferr) {
				return
			}
		})

		t.Run("if the log level is unknown", func(t *testing.T) {
			_, _, err := execute(t, nil, "--log-level", "loud")
			if !assert.Error(t, err) {
				return
			}
		})
	})

	t.Run("will read flags from the environment", func(t *testing.T) {
		t.Run("if the prefixed variable is set", func(t *testing.T) {
			t.Setenv("QUARKUS_CACHE_CONFIG_OUTPUT", "json")

			out, _, err := execute(t, nil, "--basedir", t.TempDir())
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, strings.HasPrefix(out, "{")) {
				return
			}
		})
	})

	t.Run("will write trace spans", func(t *testing.T) {
		t.Run("if tracing is enabled", func(t *testing.T) {
			_, stderr, err := execute(t, nil, "--basedir", t.TempDir(), "--trace")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Contains(t, stderr, `"Name":"Resolve"`) {
				return
			}
		})
	})
}
