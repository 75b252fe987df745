package project

import (
	"github.com/rs/zerolog"

	"github.com/devops-template/devopstemplate/pkg/catalog"
	"github.com/devops-template/devopstemplate/pkg/installer"
	"github.com/devops-template/devopstemplate/pkg/logging"
	"github.com/devops-template/devopstemplate/pkg/makefile"
	"github.com/devops-template/devopstemplate/pkg/types"
)

// baseComponents are installed unconditionally by Create
var baseComponents = []catalog.Component{
	catalog.Src,
	catalog.Tests,
	catalog.Make,
	catalog.Setuptools,
	catalog.Docker,
}

// Operations drives the installer for the three top-level actions
type Operations struct {
	installer  *installer.Installer
	fs         types.FS
	configurer func(projectDir string) types.BuildConfigurer
	logger     zerolog.Logger
}

// Option customizes Operations construction
type Option func(*Operations)

// WithBuildConfigurer overrides the build-file configurer factory; used by
// tests to observe the reconfiguration hand-off.
func WithBuildConfigurer(factory func(projectDir string) types.BuildConfigurer) Option {
	return func(o *Operations) {
		o.configurer = factory
	}
}

// New creates the operations facade over an installer and filesystem
func New(inst *installer.Installer, fsys types.FS, opts ...Option) *Operations {
	o := &Operations{
		installer: inst,
		fs:        fsys,
		configurer: func(projectDir string) types.BuildConfigurer {
			return makefile.NewConfigurer(fsys, projectDir)
		},
		logger: logging.GetLogger("project"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Create installs a new project from the template
func (o *Operations) Create(opts CreateOptions, sess installer.Session) ([]installer.FileOutcome, error) {
	o.logger.Info().Str("project_name", opts.ProjectName).Msg("create project from template")

	if err := o.installer.EnsureDirectory("", sess); err != nil {
		return nil, err
	}
	o.logger.Debug().Bool("scripts", opts.AddScriptsDir).Bool("docs", opts.AddDocsDir).Msg("auxiliary directories")
	if opts.AddScriptsDir {
		if err := o.installer.EnsureDirectory("scripts", sess); err != nil {
			return nil, err
		}
	}
	if opts.AddDocsDir {
		if err := o.installer.EnsureDirectory("docs", sess); err != nil {
			return nil, err
		}
	}

	context := opts.Context()
	var outcomes []installer.FileOutcome
	for _, name := range baseComponents {
		results, err := o.installer.InstallComponent(name, context, sess)
		outcomes = append(outcomes, results...)
		if err != nil {
			return outcomes, err
		}
	}

	conditional := []struct {
		name    catalog.Component
		enabled bool
	}{
		{catalog.Git, !opts.NoGitignoreFile},
		{catalog.Readme, !opts.NoReadmeFile},
		{catalog.Sonar, !opts.NoSonar},
	}
	for _, comp := range conditional {
		o.logger.Debug().Str("component", string(comp.name)).Bool("enabled", comp.enabled).Msg("conditional component")
		if !comp.enabled {
			continue
		}
		results, err := o.installer.InstallComponent(comp.name, context, sess)
		outcomes = append(outcomes, results...)
		if err != nil {
			return outcomes, err
		}
	}

	if err := o.configureBuildFile(sess, !opts.NoSonar); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

// Manage adds components to an already-existing project
func (o *Operations) Manage(opts ManageOptions, sess installer.Session) ([]installer.FileOutcome, error) {
	o.logger.Info().Msg("manage existing project")

	if opts.AddScriptsDir {
		if err := o.installer.EnsureDirectory("scripts", sess); err != nil {
			return nil, err
		}
	}
	if opts.AddDocsDir {
		if err := o.installer.EnsureDirectory("docs", sess); err != nil {
			return nil, err
		}
	}

	context := opts.Context()
	var outcomes []installer.FileOutcome
	conditional := []struct {
		name    catalog.Component
		enabled bool
	}{
		{catalog.Git, opts.AddGitignoreFile},
		{catalog.Readme, opts.AddReadmeFile},
		{catalog.Sonar, opts.AddSonar},
	}
	for _, comp := range conditional {
		o.logger.Debug().Str("component", string(comp.name)).Bool("enabled", comp.enabled).Msg("conditional component")
		if !comp.enabled {
			continue
		}
		results, err := o.installer.InstallComponent(comp.name, context, sess)
		outcomes = append(outcomes, results...)
		if err != nil {
			return outcomes, err
		}
	}

	if opts.AddSonar {
		if err := o.configureBuildFile(sess, true); err != nil {
			return outcomes, err
		}
	}
	return outcomes, nil
}

// configureBuildFile hands the variable mapping to the companion rewriter.
// Dry runs only log the intended reconfiguration: there is no installed
// Makefile to patch.
func (o *Operations) configureBuildFile(sess installer.Session, sonar bool) error {
	value := "False"
	if sonar {
		value = "True"
	}
	vars := map[string]string{"DOCKERSONAR": value}
	if sess.DryRun {
		o.logger.Info().Interface("vars", vars).Msg("dry run: would reconfigure build file")
		return nil
	}
	return o.configurer(sess.ProjectDir).Configure(vars)
}
