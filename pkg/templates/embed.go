package templates

import (
	"embed"
	"io/fs"
)

// The bundled project template set. The all: prefix is required because the
// tree contains dot-files (.gitignore) and underscore names (__init__.py).
//
//go:embed all:assets
var assetsRoot embed.FS

// assets exposes the template files without the assets/ prefix so that file
// names line up with catalog path templates.
var assets fs.FS

func init() {
	sub, err := fs.Sub(assetsRoot, "assets")
	if err != nil {
		// The assets directory is part of the build; failing to mount it is
		// a packaging defect caught by any test that touches a template.
		panic("templates: embedded assets missing: " + err.Error())
	}
	assets = sub
}
