// pkg/catalog/catalog_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Embedded catalog resource
// PURPOSE: Test catalog loading, validation and component lookup

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devops-template/devopstemplate/pkg/errors"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	for _, name := range All {
		files, err := cat.Files(name)
		require.NoError(t, err, "component %s", name)
		assert.NotEmpty(t, files, "component %s", name)
	}
}

func TestFilesOrderIsPreserved(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	files, err := cat.Files(Setuptools)
	require.NoError(t, err)
	assert.Equal(t, []string{"setup.py", "setup.cfg", "MANIFEST.in", "requirements.txt"}, files)
}

func TestFilesUnknownComponent(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	_, err = cat.Files("gradle")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownComponent))
}

func TestParseRejectsMalformedResource(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml mapping", "- a\n- b\n"},
		{"empty", ""},
		{"unexpected component", "extra:\n  - a.txt\n"},
		{"empty file list", "src: []\n"},
		{"bad path template", "src:\n  - \"{{project_slug|lower}}/x\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogUnavailable))
		})
	}
}

func TestParseRequiresEveryComponent(t *testing.T) {
	// A resource missing even one known component is rejected outright.
	_, err := Parse([]byte("src:\n  - \"{{project_slug}}/__init__.py\"\n"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogUnavailable))
}

func TestComponentsCanonicalOrder(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	assert.Equal(t, All, cat.Components())
}
