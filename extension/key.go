// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package extension

import (
	"fmt"

	"github.com/z5labs/quarkuscache/config/key"
)

// Key identifies one of the build cache configuration options.
type Key int

const (
	CacheEnabled Key = iota
	ConfigFile
	BuildProfile
	DumpConfigPrefix
	DumpConfigSuffix
	DumpConfigSubfolder
	ExtraOutputDirs
	ExtraOutputFiles
	NativeBuildInContainerRequired

	numKeys
)

type keyInfo struct {
	id       string
	name     key.Name
	property key.Dotted
	def      string
}

var keyTable = [numKeys]keyInfo{
	CacheEnabled: {
		id:   "CacheEnabled",
		name: "DEVELOCITY_QUARKUS_CACHE_ENABLED",
		def:  "true",
	},
	ConfigFile: {
		id:   "ConfigFile",
		name: "DEVELOCITY_QUARKUS_CONFIG_FILE",
	},
	BuildProfile: {
		id:   "BuildProfile",
		name: "DEVELOCITY_QUARKUS_BUILD_PROFILE",
		def:  "prod",
	},
	DumpConfigPrefix: {
		id:   "DumpConfigPrefix",
		name: "DEVELOCITY_QUARKUS_DUMP_CONFIG_PREFIX",
		def:  "quarkus",
	},
	DumpConfigSuffix: {
		id:   "DumpConfigSuffix",
		name: "DEVELOCITY_QUARKUS_DUMP_CONFIG_SUFFIX",
		def:  "config-dump",
	},
	DumpConfigSubfolder: {
		id:   "DumpConfigSubfolder",
		name: "DEVELOCITY_QUARKUS_DUMP_CONFIG_SUBFOLDER",
	},
	ExtraOutputDirs: {
		id:   "ExtraOutputDirs",
		name: "DEVELOCITY_QUARKUS_EXTRA_OUTPUT_DIRS",
	},
	ExtraOutputFiles: {
		id:   "ExtraOutputFiles",
		name: "DEVELOCITY_QUARKUS_EXTRA_OUTPUT_FILES",
	},
	NativeBuildInContainerRequired: {
		id:   "NativeBuildInContainerRequired",
		name: "DEVELOCITY_QUARKUS_NATIVE_BUILD_IN_CONTAINER_REQUIRED",
		def:  "true",
	},
}

var keysByName = make(map[string]Key, 2*numKeys)

func init() {
	for i := range keyTable {
		k := Key(i)
		info := &keyTable[i]
		if info.name == "" {
			panic(fmt.Sprintf("extension: key %d has no canonical name", i))
		}
		info.property = info.name.Dotted()
		if info.property.Canonical() != info.name {
			panic(fmt.Sprintf("extension: property name %s does not map back to %s", info.property, info.name))
		}
		for _, n := range []string{string(info.name), string(info.property)} {
			if _, exists := keysByName[n]; exists {
				panic(fmt.Sprintf("extension: duplicate key name %s", n))
			}
			keysByName[n] = k
		}
	}
}

// Keys returns every Key in declaration order.
func Keys() []Key {
	ks := make([]Key, numKeys)
	for i := range ks {
		ks[i] = Key(i)
	}
	return ks
}

// ParseKey returns the Key whose canonical or property name is s.
func ParseKey(s string) (Key, bool) {
	k, ok := keysByName[s]
	return k, ok
}

// Name returns the canonical name, used for environment variables
// and configuration file entries.
func (k Key) Name() key.Name {
	return k.info().name
}

// PropertyName returns the name used to look k up in build tool project properties.
func (k Key) PropertyName() key.Dotted {
	return k.info().property
}

// Default returns the value k resolves to when nothing overrides it.
func (k Key) Default() string {
	return k.info().def
}

// Key implements the [key.Keyer] interface.
func (k Key) Key() string {
	return string(k.Name())
}

// String implements the [fmt.Stringer] interface.
func (k Key) String() string {
	if !k.valid() {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return k.info().id
}

func (k Key) valid() bool {
	return k >= 0 && k < numKeys
}

func (k Key) info() keyInfo {
	if !k.valid() {
		return keyInfo{}
	}
	return keyTable[k]
}

func keyNames() []key.Name {
	names := make([]key.Name, numKeys)
	for i := range keyTable {
		names[i] = keyTable[i].name
	}
	return names
}
