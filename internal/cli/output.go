// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/z5labs/quarkuscache/extension"

	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

type format string

const (
	formatText       format = "text"
	formatJSON       format = "json"
	formatYAML       format = "yaml"
	formatProperties format = "properties"
)

// UnknownFormatError occurs when the requested output format is not supported.
type UnknownFormatError struct {
	Format string
}

// Error implements the [builtin.error] interface.
func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format: %s", e.Format)
}

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(s)); f {
	case formatText, formatJSON, formatYAML, formatProperties:
		return f, nil
	default:
		return "", UnknownFormatError{Format: s}
	}
}

type paths struct {
	DumpConfig                 string `json:"dumpConfig" yaml:"dumpConfig"`
	CurrentConfig              string `json:"currentConfig" yaml:"currentConfig"`
	CurrentDependencies        string `json:"currentDependencies" yaml:"currentDependencies"`
	CurrentDependencyChecksums string `json:"currentDependencyChecksums" yaml:"currentDependencyChecksums"`
}

type report struct {
	Settings extension.Settings `json:"settings" yaml:"settings"`
	Paths    paths              `json:"paths" yaml:"paths"`
	Entries  map[string]string  `json:"entries" yaml:"entries"`
}

func newReport(cfg *extension.Configuration) (report, error) {
	s, err := cfg.Settings()
	if err != nil {
		return report{}, err
	}
	r := report{
		Settings: s,
		Paths: paths{
			DumpConfig:                 cfg.DumpConfigFileName(),
			CurrentConfig:              cfg.CurrentConfigFileName(),
			CurrentDependencies:        cfg.CurrentDependencyFileName(),
			CurrentDependencyChecksums: cfg.CurrentDependencyChecksumsFileName(),
		},
		Entries: cfg.Map(),
	}
	return r, nil
}

func write(w io.Writer, f format, cfg *extension.Configuration) error {
	switch f {
	case formatProperties:
		return writeProperties(w, cfg)
	case formatText:
		return writeText(w, cfg)
	}

	r, err := newReport(cfg)
	if err != nil {
		return err
	}
	if f == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(r)
		if err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func writeProperties(w io.Writer, cfg *extension.Configuration) error {
	entries := cfg.Map()
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := properties.NewProperties()
	p.DisableExpansion = true
	for _, k := range keys {
		_, _, err := p.Set(k, entries[k])
		if err != nil {
			return err
		}
	}
	_, err := p.Write(w, properties.ISO_8859_1)
	return err
}

func writeText(w io.Writer, cfg *extension.Configuration) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"cache enabled", fmt.Sprint(cfg.CacheEnabled())},
		{"native build in container required", fmt.Sprint(cfg.NativeBuildInContainerRequired())},
		{"build profile", cfg.Get(extension.BuildProfile)},
		{"configuration file", cfg.Get(extension.ConfigFile)},
		{"dump config file", cfg.DumpConfigFileName()},
		{"current config file", cfg.CurrentConfigFileName()},
		{"current dependency file", cfg.CurrentDependencyFileName()},
		{"current dependency checksums file", cfg.CurrentDependencyChecksumsFileName()},
		{"extra output dirs", strings.Join(cfg.ExtraOutputDirs(), ",")},
		{"extra output files", strings.Join(cfg.ExtraOutputFiles(), ",")},
	}
	for _, row := range rows {
		_, err := fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}
