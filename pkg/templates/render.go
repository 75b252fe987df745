// Package templates implements the two-phase rendering pipeline: path
// templates are rendered through a deliberately restricted placeholder
// grammar, while file contents are rendered through Go's template engine
// against the same context mapping.
package templates

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path"
	"regexp"
	"strings"
	texttemplate "text/template"

	"github.com/devops-template/devopstemplate/pkg/errors"
	"github.com/devops-template/devopstemplate/pkg/logging"
)

// placeholderRe matches a single {{name}} path placeholder. The path grammar
// is plain variable names only - no expressions - so a rendered path is fully
// determined by the context's key set.
var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// ValidatePathTemplate rejects path templates whose brace sequences are not
// plain {{name}} placeholders.
func ValidatePathTemplate(template string) error {
	rest := placeholderRe.ReplaceAllString(template, "")
	if strings.Contains(rest, "{{") || strings.Contains(rest, "}}") {
		return errors.Newf(errors.ErrInvalidInput,
			"path template %q contains a brace sequence that is not a plain {{name}} placeholder", template)
	}
	return nil
}

// RenderPath substitutes {{name}} placeholders with their context values.
// Placeholders are resolved by exact name lookup; an unresolved name is an
// error, never a silent empty substitution. Substituted values are not
// re-scanned, so values containing marker syntax pass through verbatim.
func RenderPath(template string, context map[string]string) (string, error) {
	var missing string
	rendered := placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		value, ok := context[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return match
		}
		return value
	})
	if missing != "" {
		return "", errors.Newf(errors.ErrUnresolvedVariable,
			"path template %q references variable %q which is not in the context", template, missing).
			WithDetail("variable", missing)
	}
	return rendered, nil
}

// markupExtensions lists the file types for which autoescaping is
// semantically meaningful. Everything else is rendered as plain text so
// config and code files are never HTML-escaped.
var markupExtensions = map[string]bool{
	".html": true,
	".htm":  true,
	".xml":  true,
}

// Set is the engine's bundled content template set. Templates are addressed
// by their un-rendered path template string.
type Set struct {
	fsys fs.FS
}

// Default returns the template set bundled with the engine
func Default() *Set {
	return NewSet(assets)
}

// NewSet creates a template set backed by fsys; its file layout mirrors the
// catalog's path templates with placeholder braces stripped.
func NewSet(fsys fs.FS) *Set {
	return &Set{fsys: fsys}
}

// assetPath maps a template identifier (the un-rendered path template) onto
// the backing file name: "{{project_slug}}/__init__.py" is stored as
// "project_slug/__init__.py".
func assetPath(id string) string {
	return placeholderRe.ReplaceAllString(id, "$1")
}

// RenderContent looks up the content template for id, renders it against
// context and returns the full output. Rendering is atomic from the caller's
// perspective: output is produced into a buffer, so a failing render never
// leaves partial content behind.
func (s *Set) RenderContent(id string, context map[string]string) ([]byte, error) {
	logger := logging.GetLogger("templates")

	name := assetPath(id)
	raw, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTemplateNotFound,
			"content template %q is not bundled with the engine", id).
			WithDetail("template", id)
	}

	var buf bytes.Buffer
	if markupExtensions[path.Ext(name)] {
		err = executeHTML(id, string(raw), context, &buf)
	} else {
		err = executeText(id, string(raw), context, &buf)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("template", id).Int("bytes", buf.Len()).Msg("rendered content template")
	return buf.Bytes(), nil
}

func executeText(id, raw string, context map[string]string, buf *bytes.Buffer) error {
	tmpl, err := texttemplate.New(id).Option("missingkey=error").Parse(raw)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "content template %q does not parse", id)
	}
	return wrapExecError(id, tmpl.Execute(buf, context))
}

func executeHTML(id, raw string, context map[string]string, buf *bytes.Buffer) error {
	tmpl, err := htmltemplate.New(id).Option("missingkey=error").Parse(raw)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "content template %q does not parse", id)
	}
	return wrapExecError(id, tmpl.Execute(buf, context))
}

// wrapExecError classifies template execution failures: a missing map key is
// the caller's incomplete context, anything else is a packaging defect.
func wrapExecError(id string, err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "map has no entry for key") {
		return errors.Wrap(err, errors.ErrUnresolvedVariable,
			fmt.Sprintf("content template %q references a variable that is not in the context", id)).
			WithDetail("template", id)
	}
	return errors.Wrapf(err, errors.ErrInternal, "content template %q failed to render", id)
}
