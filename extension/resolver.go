// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package extension

import (
	"context"
	"errors"
	"os"

	"github.com/z5labs/quarkuscache/config"
	"github.com/z5labs/quarkuscache/config/key"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type resolveOptions struct {
	env    config.LookupFunc
	loader FileLoader
	log    *zap.Logger
}

// Option configures [Resolve] and [ResolveAll].
type Option func(*resolveOptions)

// Environment replaces the environment variable lookup, which
// defaults to [os.LookupEnv].
func Environment(f config.LookupFunc) Option {
	return func(ro *resolveOptions) {
		ro.env = f
	}
}

// WithFileLoader replaces the [FileLoader], which defaults to [PropertiesFileLoader].
func WithFileLoader(l FileLoader) Option {
	return func(ro *resolveOptions) {
		ro.loader = l
	}
}

// Logger sets the logger every applied override is reported to at debug level.
func Logger(logger *zap.Logger) Option {
	return func(ro *resolveOptions) {
		ro.log = logger
	}
}

func newResolveOptions(opts ...Option) resolveOptions {
	ro := resolveOptions{
		env:    os.LookupEnv,
		loader: PropertiesFileLoader{},
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&ro)
	}
	if ro.log == nil {
		ro.log = zap.NewNop()
	}
	return ro
}

// Resolve builds the [Configuration] of project by applying, in order:
//
//  1. the default of every [Key]
//  2. environment variables named by [Key.Name]
//  3. project properties named by [Key.PropertyName]
//  4. every entry of the file named by the resolved [ConfigFile], if any
//
// Stages 2 and 3 only apply non-empty values. Stage 4 applies every
// entry as is, so a file entry always wins, even when it is empty.
//
// A file which can not be loaded results in a [ConfigLoadError].
func Resolve(ctx context.Context, project Project, opts ...Option) (_ *Configuration, err error) {
	if project == nil {
		project = NewProject("", nil)
	}
	ro := newResolveOptions(opts...)

	_, span := otel.Tracer("extension").Start(ctx, "Resolve", trace.WithAttributes(
		attribute.String("project.basedir", project.BaseDir()),
	))
	defer span.End()
	defer func() {
		if err == nil {
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}()

	log := ro.log.With(zap.String("basedir", project.BaseDir()))

	names := keyNames()
	m, err := config.Read(
		stage(log, "default", defaults()),
		stage(log, "environment", config.FromLookup(ro.env, names...)),
		stage(log, "project", config.FromDottedLookup(project.Property, names...)),
	)
	if err != nil {
		return nil, err
	}

	path := m.Get(ConfigFile)
	if path == "" {
		log.Debug("no configuration file set")
		return &Configuration{m: m}, nil
	}

	entries, err := ro.loader.Load(project.BaseDir(), path)
	if err != nil {
		var lerr ConfigLoadError
		if errors.As(err, &lerr) {
			return nil, err
		}
		return nil, ConfigLoadError{
			Path:  ResolvePath(project.BaseDir(), path),
			Cause: err,
		}
	}

	m, err = config.Read(m, stage(log.With(zap.String("file", path)), "file", config.Map(entries)))
	if err != nil {
		return nil, err
	}
	return &Configuration{m: m}, nil
}

func defaults() config.Map {
	m := make(config.Map, numKeys)
	for _, k := range Keys() {
		m[k.Key()] = k.Default()
	}
	return m
}

func stage(log *zap.Logger, name string, src config.Source) config.Source {
	return config.SourceFunc(func(store config.Store) error {
		return src.Apply(loggedStore{
			store:  store,
			log:    log,
			source: name,
		})
	})
}

type loggedStore struct {
	store  config.Store
	log    *zap.Logger
	source string
}

func (s loggedStore) Set(k key.Keyer, v string) error {
	s.log.Debug(
		"applying configuration value",
		zap.String("source", s.source),
		zap.String("key", k.Key()),
		zap.String("value", v),
	)
	return s.store.Set(k, v)
}
