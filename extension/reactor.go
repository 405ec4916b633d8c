// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package extension

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// ResolveAll resolves the [Configuration] of each project, e.g. every
// module of a multi-module build, concurrently. The returned slice is
// index aligned with projects. The first failure cancels the rest.
func ResolveAll(ctx context.Context, projects []Project, opts ...Option) ([]*Configuration, error) {
	spanCtx, span := otel.Tracer("extension").Start(ctx, "ResolveAll", trace.WithAttributes(
		attribute.Int("projects", len(projects)),
	))
	defer span.End()

	cfgs := make([]*Configuration, len(projects))
	g, gctx := errgroup.WithContext(spanCtx)
	for i, p := range projects {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cfg, err := Resolve(gctx, p, opts...)
			if err != nil {
				return err
			}
			cfgs[i] = cfg
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return cfgs, nil
}
