// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package extension

import (
	"fmt"
	"strings"

	"github.com/z5labs/quarkuscache/config"
	"github.com/z5labs/quarkuscache/config/key"
)

// Configuration is a fully resolved set of build cache settings.
// It is read only and safe for concurrent use.
type Configuration struct {
	m *config.Manager
}

// Get returns the resolved value of k.
func (c *Configuration) Get(k Key) string {
	return c.m.Get(k)
}

// Lookup returns the value stored under name, which may be a key
// only ever set by the configuration file.
func (c *Configuration) Lookup(name string) (string, bool) {
	return c.m.Lookup(key.Name(name))
}

// Map returns a copy of every resolved entry keyed by canonical name.
func (c *Configuration) Map() map[string]string {
	return c.m.Map()
}

// Source returns the resolved entries as a [config.Source].
func (c *Configuration) Source() config.Source {
	return c.m
}

// CacheEnabled reports whether Quarkus build caching is enabled.
// Only the exact value "false" disables it.
func (c *Configuration) CacheEnabled() bool {
	return c.Get(CacheEnabled) != "false"
}

// NativeBuildInContainerRequired reports whether native builds must use
// the in-container build strategy. Only the exact value "false" disables it.
func (c *Configuration) NativeBuildInContainerRequired() bool {
	return c.Get(NativeBuildInContainerRequired) != "false"
}

// DumpConfigFileName is the file Quarkus dumps its build time properties into.
func (c *Configuration) DumpConfigFileName() string {
	folder := ".quarkus"
	if sub := c.Get(DumpConfigSubfolder); sub != "" {
		folder = fmt.Sprintf(".quarkus/%s", sub)
	}
	return fmt.Sprintf("%s/%s-%s-%s",
		folder,
		c.Get(DumpConfigPrefix),
		c.Get(BuildProfile),
		c.Get(DumpConfigSuffix),
	)
}

// CurrentConfigFileName is the file the track-config-changes goal
// writes the current property values into.
func (c *Configuration) CurrentConfigFileName() string {
	return c.targetFile("config-check")
}

// CurrentDependencyFileName lists the absolute paths of the
// application's runtime dependencies.
func (c *Configuration) CurrentDependencyFileName() string {
	return c.targetFile("dependencies.txt")
}

// CurrentDependencyChecksumsFileName lists the checksums of the
// application's runtime dependencies.
func (c *Configuration) CurrentDependencyChecksumsFileName() string {
	return c.targetFile("dependency-checksums.txt")
}

func (c *Configuration) targetFile(suffix string) string {
	return fmt.Sprintf("target/%s-%s-%s", c.Get(DumpConfigPrefix), c.Get(BuildProfile), suffix)
}

// ExtraOutputDirs returns the comma separated extra output directories.
// An unset value yields a single empty element.
func (c *Configuration) ExtraOutputDirs() []string {
	return splitList(c.Get(ExtraOutputDirs))
}

// ExtraOutputFiles returns the comma separated extra output files.
// An unset value yields a single empty element.
func (c *Configuration) ExtraOutputFiles() []string {
	return splitList(c.Get(ExtraOutputFiles))
}

// String implements the [fmt.Stringer] interface. The format is for
// diagnostics only.
func (c *Configuration) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range c.m.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(c.m.Get(key.Name(k)))
	}
	sb.WriteByte('}')
	return sb.String()
}
