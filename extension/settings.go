// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package extension

import "strings"

// Flag is a bool which is true unless its text form is exactly "false".
type Flag bool

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (f *Flag) UnmarshalText(b []byte) error {
	*f = Flag(string(b) != "false")
	return nil
}

// List is a comma separated list of values.
type List []string

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (l *List) UnmarshalText(b []byte) error {
	*l = splitList(string(b))
	return nil
}

// splitList splits s around commas and drops trailing empty elements.
// An empty s is the one exception and yields a single empty element.
func splitList(s string) []string {
	if s == "" {
		return []string{""}
	}
	parts := strings.Split(s, ",")
	n := len(parts)
	for n > 0 && parts[n-1] == "" {
		n--
	}
	return parts[:n]
}

// Settings is a typed view of a [Configuration].
type Settings struct {
	CacheEnabled                   Flag   `config:"DEVELOCITY_QUARKUS_CACHE_ENABLED" json:"cacheEnabled" yaml:"cacheEnabled"`
	ConfigFile                     string `config:"DEVELOCITY_QUARKUS_CONFIG_FILE" json:"configFile" yaml:"configFile"`
	BuildProfile                   string `config:"DEVELOCITY_QUARKUS_BUILD_PROFILE" json:"buildProfile" yaml:"buildProfile"`
	DumpConfigPrefix               string `config:"DEVELOCITY_QUARKUS_DUMP_CONFIG_PREFIX" json:"dumpConfigPrefix" yaml:"dumpConfigPrefix"`
	DumpConfigSuffix               string `config:"DEVELOCITY_QUARKUS_DUMP_CONFIG_SUFFIX" json:"dumpConfigSuffix" yaml:"dumpConfigSuffix"`
	DumpConfigSubfolder            string `config:"DEVELOCITY_QUARKUS_DUMP_CONFIG_SUBFOLDER" json:"dumpConfigSubfolder" yaml:"dumpConfigSubfolder"`
	ExtraOutputDirs                List   `config:"DEVELOCITY_QUARKUS_EXTRA_OUTPUT_DIRS" json:"extraOutputDirs" yaml:"extraOutputDirs"`
	ExtraOutputFiles               List   `config:"DEVELOCITY_QUARKUS_EXTRA_OUTPUT_FILES" json:"extraOutputFiles" yaml:"extraOutputFiles"`
	NativeBuildInContainerRequired Flag   `config:"DEVELOCITY_QUARKUS_NATIVE_BUILD_IN_CONTAINER_REQUIRED" json:"nativeBuildInContainerRequired" yaml:"nativeBuildInContainerRequired"`
}

// Settings decodes c into a [Settings].
func (c *Configuration) Settings() (Settings, error) {
	var s Settings
	err := c.m.Unmarshal(&s)
	return s, err
}
