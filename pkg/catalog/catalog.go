// Package catalog models the component catalog: the static mapping from
// component name to the ordered list of path templates installed for that
// component. The catalog is loaded once from an embedded YAML resource and is
// immutable for the process lifetime.
package catalog

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/devops-template/devopstemplate/pkg/errors"
	"github.com/devops-template/devopstemplate/pkg/templates"
)

//go:embed catalog.yaml
var catalogData []byte

// Component identifies one named group of template files
type Component string

// The fixed component set. Operations reference these constants; an unknown
// name reaching Files is a programming error, not a user error.
const (
	Src        Component = "src"
	Tests      Component = "tests"
	Make       Component = "make"
	Setuptools Component = "setuptools"
	Docker     Component = "docker"
	Git        Component = "git"
	Readme     Component = "readme"
	Sonar      Component = "sonar"
)

// All lists every component in canonical installation order
var All = []Component{Src, Tests, Make, Setuptools, Git, Readme, Docker, Sonar}

// Catalog maps component names to their ordered path templates
type Catalog struct {
	components map[Component][]string
}

// Load parses and validates the embedded catalog resource
func Load() (*Catalog, error) {
	return Parse(catalogData)
}

// Parse builds a Catalog from raw YAML, validating every entry up front so
// malformed resources are rejected at load time instead of failing lazily
// per file.
func Parse(data []byte) (*Catalog, error) {
	var raw map[Component][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCatalogUnavailable,
			"component catalog is not well-formed YAML")
	}
	if len(raw) == 0 {
		return nil, errors.New(errors.ErrCatalogUnavailable, "component catalog is empty")
	}

	known := make(map[Component]bool, len(All))
	for _, name := range All {
		known[name] = true
	}

	for name, files := range raw {
		if !known[name] {
			return nil, errors.Newf(errors.ErrCatalogUnavailable,
				"catalog declares unexpected component %q", name)
		}
		if len(files) == 0 {
			return nil, errors.Newf(errors.ErrCatalogUnavailable,
				"component %q has no path templates", name)
		}
		for _, tmpl := range files {
			if err := templates.ValidatePathTemplate(tmpl); err != nil {
				return nil, errors.Wrapf(err, errors.ErrCatalogUnavailable,
					"component %q has malformed path template %q", name, tmpl)
			}
		}
	}
	for _, name := range All {
		if _, ok := raw[name]; !ok {
			return nil, errors.Newf(errors.ErrCatalogUnavailable,
				"catalog is missing component %q", name)
		}
	}

	return &Catalog{components: raw}, nil
}

// Files returns the ordered path templates for a component
func (c *Catalog) Files(name Component) ([]string, error) {
	files, ok := c.components[name]
	if !ok {
		return nil, errors.Newf(errors.ErrUnknownComponent,
			"component %q is not in the catalog", name).
			WithDetail("component", string(name))
	}
	out := make([]string, len(files))
	copy(out, files)
	return out, nil
}

// Components returns every component name in canonical installation order
func (c *Catalog) Components() []Component {
	out := make([]Component, len(All))
	copy(out, All)
	return out
}
