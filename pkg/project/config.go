// Package project composes installer calls into the three supported
// operations: create, manage and cookiecutter template generation.
package project

import (
	"strings"
)

// ProjectConfig carries the string fields rendered into paths and contents.
// JSON tags double as context variable names and as the cookiecutter
// descriptor schema.
type ProjectConfig struct {
	ProjectName        string `json:"project_name" koanf:"project_name"`
	ProjectSlug        string `json:"project_slug" koanf:"project_slug"`
	ProjectVersion     string `json:"project_version" koanf:"project_version"`
	ProjectURL         string `json:"project_url" koanf:"project_url"`
	ProjectDescription string `json:"project_description" koanf:"project_description"`
	AuthorName         string `json:"author_name" koanf:"author_name"`
	AuthorEmail        string `json:"author_email" koanf:"author_email"`
}

// contextKeys lists every context variable in descriptor order
var contextKeys = []string{
	"project_name",
	"project_slug",
	"project_version",
	"project_url",
	"project_description",
	"author_name",
	"author_email",
}

// Context returns the render context for this configuration
func (c ProjectConfig) Context() map[string]string {
	return map[string]string{
		"project_name":        c.ProjectName,
		"project_slug":        c.ProjectSlug,
		"project_version":     c.ProjectVersion,
		"project_url":         c.ProjectURL,
		"project_description": c.ProjectDescription,
		"author_name":         c.AuthorName,
		"author_email":        c.AuthorEmail,
	}
}

// MarkerContext returns a second-order context where every value is a marker
// expression embedding its own key name, so installed output becomes a
// generator template instead of a concrete project.
func (c ProjectConfig) MarkerContext() map[string]string {
	markers := make(map[string]string, len(contextKeys))
	for _, key := range contextKeys {
		markers[key] = "{{cookiecutter." + key + "}}"
	}
	return markers
}

// DeriveSlug turns a project name into its default slug: lower case with
// spaces and hyphens mapped to underscores.
func DeriveSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "-", "_")
	return slug
}

// CookiecutterSlugDefault is the slug default serialized into the generator
// descriptor: a cookiecutter expression evaluated by the downstream
// generator, not by this engine.
const CookiecutterSlugDefault = "{{ cookiecutter.project_name.lower().replace(' ', '_').replace('-', '_') }}"

// CookiecutterDirName is the synthetic project subdirectory whose name is
// itself a template-variable placeholder.
const CookiecutterDirName = "{{cookiecutter.project_slug}}"

// CreateOptions selects the components installed by Create
type CreateOptions struct {
	ProjectConfig

	AddScriptsDir   bool
	AddDocsDir      bool
	NoGitignoreFile bool
	NoReadmeFile    bool
	NoSonar         bool
}

// ManageOptions selects the components added by Manage to an existing project
type ManageOptions struct {
	ProjectConfig

	AddScriptsDir    bool
	AddDocsDir       bool
	AddGitignoreFile bool
	AddReadmeFile    bool
	AddSonar         bool
}
