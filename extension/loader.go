// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package extension

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/z5labs/quarkuscache/config"
)

// FileLoader reads the key value pairs of a configuration file.
// A relative path is resolved against baseDir.
type FileLoader interface {
	Load(baseDir, path string) (map[string]string, error)
}

// FileLoaderFunc is a func variant of the [FileLoader] interface.
type FileLoaderFunc func(baseDir, path string) (map[string]string, error)

// Load implements the [FileLoader] interface.
func (f FileLoaderFunc) Load(baseDir, path string) (map[string]string, error) {
	return f(baseDir, path)
}

// PropertiesFileLoader is the default [FileLoader]. It parses
// files in the .properties format.
type PropertiesFileLoader struct {
	// FS replaces the host file system when set. Paths are then
	// treated as slash separated paths inside FS.
	FS fs.FS
}

// Load implements the [FileLoader] interface.
func (l PropertiesFileLoader) Load(baseDir, p string) (map[string]string, error) {
	fsys, name := l.locate(baseDir, p)

	m, err := config.Read(config.FromProperties(config.NewFileReader(fsys, name)))
	if err != nil {
		return nil, err
	}
	return m.Map(), nil
}

func (l PropertiesFileLoader) locate(baseDir, p string) (fs.FS, string) {
	if l.FS != nil {
		full := p
		if !path.IsAbs(p) {
			full = path.Join(baseDir, p)
		}
		return l.FS, strings.TrimPrefix(path.Clean(full), "/")
	}

	full := ResolvePath(baseDir, p)
	return os.DirFS(filepath.Dir(full)), filepath.Base(full)
}

// ResolvePath joins p onto baseDir unless p is already absolute.
func ResolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
