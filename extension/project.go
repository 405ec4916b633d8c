// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package extension

// PropertySource provides the properties of the project being built.
type PropertySource interface {
	Property(name string) (string, bool)
}

// Properties is an ordinary map[string]string but implements
// the [PropertySource] interface.
type Properties map[string]string

// Property implements the [PropertySource] interface.
func (p Properties) Property(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// Project represents the build tool project a configuration is resolved for.
type Project interface {
	PropertySource

	// BaseDir is the directory relative configuration file paths are resolved against.
	BaseDir() string
}

type project struct {
	PropertySource
	baseDir string
}

func (p project) BaseDir() string {
	return p.baseDir
}

// NewProject returns a Project rooted at baseDir. A nil props
// is treated as a project without any properties.
func NewProject(baseDir string, props PropertySource) Project {
	if props == nil {
		props = Properties(nil)
	}
	return project{
		PropertySource: props,
		baseDir:        baseDir,
	}
}
