// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config provides layered key value configuration.
//
// Values are produced by a sequence of [Source]s which are applied, in order,
// by [Read]. Each Source writes into a fresh copy of the values accumulated so
// far, so a Source which fails leaves nothing half applied and subsequent
// sources override previous sources.
//
// # Sources
//
// [Map] sets every entry it holds, empty values included.
//
// [Lookup] resolves a fixed set of keys through a [LookupFunc] and skips
// absent or empty values:
//
//	m, err := config.Read(
//	    config.Map{"PROFILE": "prod"},
//	    config.FromEnv("PROFILE"),
//	    config.FromDottedLookup(props.Lookup, "PROFILE"),
//	)
//
// [Properties] parses a Java style .properties document and, like Map, sets
// every entry:
//
//	f := config.NewFileReader(os.DirFS(dir), "cache.properties")
//	m, err := config.Read(defaults, config.FromProperties(f))
//
// # Decoding
//
// [Manager.Unmarshal] decodes the resolved values into a struct using the
// "config" tag. Fields implementing [encoding.TextUnmarshaler] receive the raw
// string value.
package config
