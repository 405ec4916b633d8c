// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the quarkus-cache-config command.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/z5labs/quarkuscache/config"
	"github.com/z5labs/quarkuscache/extension"
	"github.com/z5labs/quarkuscache/internal/logging"
	"github.com/z5labs/quarkuscache/internal/tracing"
	"github.com/z5labs/quarkuscache/internal/try"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const envPrefix = "QUARKUS_CACHE_CONFIG"

type options struct {
	env config.LookupFunc
}

// Option configures the command returned by [NewCommand].
type Option func(*options)

// Environment replaces the environment variable lookup used to
// resolve the configuration. Defaults to [os.LookupEnv].
func Environment(f config.LookupFunc) Option {
	return func(o *options) {
		o.env = f
	}
}

// NewCommand returns the root quarkus-cache-config command.
func NewCommand(opts ...Option) *cobra.Command {
	o := &options{
		env: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(o)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "quarkus-cache-config",
		Short:         "Print the resolved Quarkus build cache configuration of a project",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer try.Recover(&err)

			defines, err := cmd.Flags().GetStringArray("define")
			if err != nil {
				return err
			}
			return run(cmd, runConfig{
				baseDir:        v.GetString("basedir"),
				propertiesFile: v.GetString("properties-file"),
				defines:        defines,
				output:         v.GetString("output"),
				logLevel:       v.GetString("log-level"),
				trace:          v.GetBool("trace"),
				env:            o.env,
			})
		},
	}

	flags := cmd.Flags()
	flags.String("basedir", ".", "project base directory the configuration file is resolved against")
	flags.StringArrayP("define", "D", nil, "project property as name=value, may be repeated")
	flags.String("properties-file", "", "properties file to read project properties from")
	flags.StringP("output", "o", "text", "output format: text, json, yaml or properties")
	flags.String("log-level", "error", "log level")
	flags.Bool("trace", false, "write trace spans to stderr")

	// BindPFlags only fails on a nil flag set.
	_ = v.BindPFlags(flags)

	return cmd
}

type runConfig struct {
	baseDir        string
	propertiesFile string
	defines        []string
	output         string
	logLevel       string
	trace          bool
	env            config.LookupFunc
}

func run(cmd *cobra.Command, rc runConfig) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := parseFormat(rc.output)
	if err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), rc.logLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	if rc.trace {
		tp, err := tracing.Local(ctx, "quarkus-cache-config", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		prev := otel.GetTracerProvider()
		otel.SetTracerProvider(tp)
		defer func() {
			otel.SetTracerProvider(prev)
			if serr := tp.Shutdown(ctx); serr != nil {
				log.Warn("failed to flush trace spans", zap.Error(serr))
			}
		}()
	}

	props, err := projectProperties(rc.propertiesFile, rc.defines)
	if err != nil {
		return err
	}

	cfg, err := extension.Resolve(
		ctx,
		extension.NewProject(rc.baseDir, props),
		extension.Environment(rc.env),
		extension.Logger(log),
	)
	if err != nil {
		log.Error("failed to resolve configuration", zap.Error(err))
		return err
	}
	log.Debug("resolved configuration", zap.Stringer("configuration", cfg))

	return write(cmd.OutOrStdout(), format, cfg)
}

// InvalidDefineError occurs when a -D value is not in name=value form.
type InvalidDefineError struct {
	Value string
}

// Error implements the [builtin.error] interface.
func (e InvalidDefineError) Error() string {
	return fmt.Sprintf("project property must be name=value: %q", e.Value)
}

func projectProperties(file string, defines []string) (extension.Properties, error) {
	props := make(extension.Properties)
	if file != "" {
		entries, err := extension.PropertiesFileLoader{}.Load("", file)
		if err != nil {
			return nil, fmt.Errorf("failed to read project properties %s: %w", file, err)
		}
		for k, v := range entries {
			props[k] = v
		}
	}
	for _, d := range defines {
		k, v, ok := strings.Cut(d, "=")
		if !ok || k == "" {
			return nil, InvalidDefineError{Value: d}
		}
		props[k] = v
	}
	return props, nil
}
