package installer

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/devops-template/devopstemplate/pkg/catalog"
	"github.com/devops-template/devopstemplate/pkg/errors"
	"github.com/devops-template/devopstemplate/pkg/filesystem"
	"github.com/devops-template/devopstemplate/pkg/logging"
	"github.com/devops-template/devopstemplate/pkg/templates"
	"github.com/devops-template/devopstemplate/pkg/types"
)

// Status classifies the per-file outcome of an installation
type Status string

const (
	// StatusWritten means the file was written (or would be, in dry-run)
	StatusWritten Status = "written"
	// StatusSkipped means the file exists and the session skipped it
	StatusSkipped Status = "skipped"
)

// FileOutcome reports what happened to a single target path
type FileOutcome struct {
	Component catalog.Component
	Path      string
	Status    Status
}

// Installer drives the catalog, renderer and conflict resolver to materialize
// components into a project tree.
type Installer struct {
	catalog   *catalog.Catalog
	templates *templates.Set
	fs        types.FS
	logger    zerolog.Logger
}

// New creates an installer over the given catalog, template set and filesystem
func New(cat *catalog.Catalog, set *templates.Set, fsys types.FS) *Installer {
	return &Installer{
		catalog:   cat,
		templates: set,
		fs:        fsys,
		logger:    logging.GetLogger("installer"),
	}
}

// InstallComponent installs every file of one component, returning per-file
// outcomes. It fails the whole component on the first Fail decision or
// rendering error; files already written earlier in the same component are
// not rolled back, since the conflict check has already cleared every
// pre-existing collision before the first write.
func (i *Installer) InstallComponent(name catalog.Component, context map[string]string, sess Session) ([]FileOutcome, error) {
	files, err := i.catalog.Files(name)
	if err != nil {
		return nil, err
	}

	outcomes := make([]FileOutcome, 0, len(files))
	for _, pathTemplate := range files {
		rendered, err := templates.RenderPath(pathTemplate, context)
		if err != nil {
			return outcomes, wrapComponent(err, name)
		}
		target := filepath.Join(sess.ProjectDir, rendered)

		switch CheckTarget(i.fs, target, sess) {
		case Skip:
			i.logger.Warn().Str("path", target).Msg("file exists, skipping")
			outcomes = append(outcomes, FileOutcome{Component: name, Path: target, Status: StatusSkipped})
			continue
		case Fail:
			return outcomes, errors.Newf(errors.ErrTargetExists,
				"file %s already exists (use skip or overwrite to control behavior)", target).
				WithDetail("path", target).
				WithDetail("component", string(name))
		}

		if !sess.DryRun {
			if err := i.writeTarget(pathTemplate, target, context); err != nil {
				return outcomes, wrapComponent(err, name)
			}
		}
		i.logger.Info().
			Str("template", pathTemplate).
			Str("path", target).
			Bool("dry_run", sess.DryRun).
			Msg("installed file")
		outcomes = append(outcomes, FileOutcome{Component: name, Path: target, Status: StatusWritten})
	}
	return outcomes, nil
}

// writeTarget renders the content template into a buffer and writes it in one
// atomic step, creating missing parent directories first.
func (i *Installer) writeTarget(pathTemplate, target string, context map[string]string) error {
	content, err := i.templates.RenderContent(pathTemplate, context)
	if err != nil {
		return err
	}
	parent := filepath.Dir(target)
	if _, statErr := i.fs.Stat(parent); statErr != nil {
		if err := i.fs.MkdirAll(parent, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create parent directory %s", parent)
		}
	}
	if err := filesystem.WriteFileAtomic(i.fs, target, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write %s", target).WithDetail("path", target)
	}
	return nil
}

// EnsureDirectory creates an auxiliary directory under the project root if it
// is not already present. Used for empty directories (scripts/, docs/) that
// belong to no component.
func (i *Installer) EnsureDirectory(name string, sess Session) error {
	dir := filepath.Join(sess.ProjectDir, name)
	if _, err := i.fs.Stat(dir); err == nil {
		i.logger.Debug().Str("path", dir).Msg("directory exists")
		return nil
	}
	if !sess.DryRun {
		if err := i.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create directory %s", dir).WithDetail("path", dir)
		}
	}
	i.logger.Info().Str("path", dir).Bool("dry_run", sess.DryRun).Msg("created directory")
	return nil
}

func wrapComponent(err error, name catalog.Component) error {
	var tmplErr *errors.TemplateError
	if e, ok := err.(*errors.TemplateError); ok {
		tmplErr = e
	} else {
		tmplErr = errors.Wrap(err, errors.ErrInternal, "component installation failed")
	}
	return tmplErr.WithDetail("component", string(name))
}
