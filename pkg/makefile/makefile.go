// Package makefile is the companion build-file rewriter: it patches variable
// assignments inside one generated Makefile after installation. The engine
// only hands over a variable to value mapping; the file grammar lives here.
package makefile

import (
	"bufio"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/devops-template/devopstemplate/pkg/errors"
	"github.com/devops-template/devopstemplate/pkg/filesystem"
	"github.com/devops-template/devopstemplate/pkg/logging"
	"github.com/devops-template/devopstemplate/pkg/types"
)

// assignmentRe matches a top-level Makefile variable assignment, capturing
// the name, the assignment operator (=, :=, ?=, +=) with its surrounding
// whitespace, and the value.
var assignmentRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)(\s*[:?+]?=\s*)(.*)$`)

// Template is a parsed Makefile whose variable assignments can be rewritten
// while every other line is preserved byte-for-byte.
type Template struct {
	lines []string
}

// Parse reads a Makefile line by line
func Parse(r io.Reader) (*Template, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrBuildFileConfig, "failed to read Makefile")
	}
	return &Template{lines: lines}, nil
}

// Variables returns the names of all assigned variables in file order
func (t *Template) Variables() []string {
	var names []string
	seen := map[string]bool{}
	for _, line := range t.lines {
		if m := assignmentRe.FindStringSubmatch(line); m != nil && !seen[m[1]] {
			names = append(names, m[1])
			seen[m[1]] = true
		}
	}
	return names
}

// Write emits the Makefile with the given variables replaced. Assignment
// operators and spacing are preserved; lines not matching a requested
// variable are copied through unchanged.
func (t *Template) Write(w io.Writer, vars map[string]string) error {
	bw := bufio.NewWriter(w)
	for _, line := range t.lines {
		out := line
		if m := assignmentRe.FindStringSubmatch(line); m != nil {
			if value, ok := vars[m[1]]; ok {
				out = m[1] + m[2] + value
			}
		}
		if _, err := bw.WriteString(out + "\n"); err != nil {
			return errors.Wrap(err, errors.ErrBuildFileConfig, "failed to write Makefile")
		}
	}
	return bw.Flush()
}

// Configurer applies variable rewrites to the Makefile installed in one
// project directory. It implements types.BuildConfigurer.
type Configurer struct {
	fs   types.FS
	path string
}

// NewConfigurer creates a configurer for the Makefile under projectDir
func NewConfigurer(fsys types.FS, projectDir string) *Configurer {
	return &Configurer{fs: fsys, path: filepath.Join(projectDir, "Makefile")}
}

// Configure rewrites the assignments named in vars, in place
func (c *Configurer) Configure(vars map[string]string) error {
	logger := logging.GetLogger("makefile")

	data, err := c.fs.ReadFile(c.path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrBuildFileConfig,
			"failed to read build file %s", c.path)
	}
	tmpl, err := Parse(strings.NewReader(string(data)))
	if err != nil {
		return err
	}
	var buf strings.Builder
	if err := tmpl.Write(&buf, vars); err != nil {
		return err
	}
	if err := filesystem.WriteFileAtomic(c.fs, c.path, []byte(buf.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrBuildFileConfig,
			"failed to rewrite build file %s", c.path)
	}

	logger.Info().Str("path", c.path).Interface("vars", vars).Msg("reconfigured build file")
	return nil
}
