package project

import (
	"encoding/json"
	"path/filepath"

	"github.com/devops-template/devopstemplate/pkg/catalog"
	"github.com/devops-template/devopstemplate/pkg/errors"
	"github.com/devops-template/devopstemplate/pkg/filesystem"
	"github.com/devops-template/devopstemplate/pkg/installer"
)

const (
	cookiecutterDescriptor = "cookiecutter.json"
	cookiecutterReadme     = "README.md"
	cookiecutterReadmeBody = "# Cookiecutter Template\n"
)

// Cookiecutter exports the template as a cookiecutter-compatible directory:
// a descriptor and README at the root, and every component installed under a
// literal {{cookiecutter.project_slug}} directory with marker placeholders
// left in place for cookiecutter to resolve later.
func (o *Operations) Cookiecutter(config ProjectConfig, sess installer.Session) ([]installer.FileOutcome, error) {
	o.logger.Info().Str("target", sess.ProjectDir).Msg("export cookiecutter template")

	if err := o.installer.EnsureDirectory("", sess); err != nil {
		return nil, err
	}

	descriptor := config
	descriptor.ProjectSlug = CookiecutterSlugDefault
	data, err := json.MarshalIndent(descriptor, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode cookiecutter descriptor")
	}
	data = append(data, '\n')

	var outcomes []installer.FileOutcome
	outcome, err := o.writeRootFile(cookiecutterDescriptor, data, sess)
	if err != nil {
		return outcomes, err
	}
	outcomes = append(outcomes, outcome)

	outcome, err = o.writeRootFile(cookiecutterReadme, []byte(cookiecutterReadmeBody), sess)
	if err != nil {
		return outcomes, err
	}
	outcomes = append(outcomes, outcome)

	if err := o.installer.EnsureDirectory(CookiecutterDirName, sess); err != nil {
		return outcomes, err
	}

	sub := sess.WithProjectDir(filepath.Join(sess.ProjectDir, CookiecutterDirName))
	context := config.MarkerContext()
	for _, name := range catalog.All {
		results, err := o.installer.InstallComponent(name, context, sub)
		outcomes = append(outcomes, results...)
		if err != nil {
			return outcomes, err
		}
	}
	return outcomes, nil
}

// writeRootFile writes a generated file directly under the session root,
// subject to the same conflict policy as template files.
func (o *Operations) writeRootFile(name string, data []byte, sess installer.Session) (installer.FileOutcome, error) {
	target := filepath.Join(sess.ProjectDir, name)
	outcome := installer.FileOutcome{Path: target, Status: installer.StatusWritten}

	switch installer.CheckTarget(o.fs, target, sess) {
	case installer.Skip:
		o.logger.Debug().Str("path", target).Msg("target exists, skipping")
		outcome.Status = installer.StatusSkipped
		return outcome, nil
	case installer.Fail:
		return outcome, errors.New(errors.ErrTargetExists, "target file already exists").
			WithDetail("path", target)
	}

	if sess.DryRun {
		return outcome, nil
	}
	if err := filesystem.WriteFileAtomic(o.fs, target, data, 0o644); err != nil {
		return outcome, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", name).
			WithDetail("path", target)
	}
	return outcome, nil
}
