// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package extension resolves the build cache configuration of the Quarkus
// build cache extension.
//
// A [Configuration] is resolved once per build from, in increasing precedence,
// built-in defaults, environment variables, build tool project properties and
// an optional properties file:
//
//	cfg, err := extension.Resolve(ctx, extension.NewProject(dir, extension.Properties{
//	    "develocity.quarkus.build.profile": "staging",
//	}))
//	if err != nil {
//	    return err
//	}
//	if cfg.CacheEnabled() {
//	    dump := cfg.DumpConfigFileName() // .quarkus/quarkus-staging-config-dump
//	}
//
// Environment variables and file entries use the canonical key names, e.g.
// DEVELOCITY_QUARKUS_CACHE_ENABLED. Project properties use the lower dot case
// form, e.g. develocity.quarkus.cache.enabled.
package extension
