// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package quarkuscache resolves the settings of the Develocity Quarkus
// build cache extension.
//
// The module is organised around two packages:
//
//   - config: layered key/value sources which are applied in order,
//     each one overriding the values written by the ones before it
//   - extension: the build cache [extension.Key] set, [extension.Resolve]
//     and the derived file names of a resolved [extension.Configuration]
//
// # Basic Usage
//
//	cfg, err := extension.Resolve(ctx, extension.NewProject(dir, extension.Properties{
//	    "develocity.quarkus.build.profile": "dev",
//	}))
//	if err != nil {
//	    return err
//	}
//	if !cfg.CacheEnabled() {
//	    return nil
//	}
//	dump := cfg.DumpConfigFileName()
//
// The quarkus-cache-config command prints a resolved configuration and is
// useful when debugging why a build did or did not hit the cache.
package quarkuscache
