// Package installer materializes catalog components into a target directory
// tree, gating every write through the conflict resolver.
package installer

import (
	"github.com/devops-template/devopstemplate/pkg/logging"
)

// Session carries the policy flags applied uniformly to every write of one
// operation, plus the current project root. Sessions are values: the
// cookiecutter root redirection derives a new session instead of mutating a
// shared one.
type Session struct {
	ProjectDir string
	Overwrite  bool
	Skip       bool
	DryRun     bool
}

// NewSession creates a session for one operation. Overwrite and skip may both
// be requested; skip takes precedence, which is deliberate policy rather than
// an error, so the combination is only warned about.
func NewSession(projectDir string, overwrite, skip, dryRun bool) Session {
	if overwrite && skip {
		logger := logging.GetLogger("installer")
		logger.Warn().
			Msg("both overwrite and skip requested; existing files will be skipped, not overwritten")
	}
	return Session{
		ProjectDir: projectDir,
		Overwrite:  overwrite,
		Skip:       skip,
		DryRun:     dryRun,
	}
}

// WithProjectDir returns a copy of the session rooted at dir
func (s Session) WithProjectDir(dir string) Session {
	s.ProjectDir = dir
	return s
}
