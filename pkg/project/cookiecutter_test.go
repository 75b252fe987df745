// pkg/project/cookiecutter_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: MemoryFS, embedded catalog and template assets
// PURPOSE: Test cookiecutter template export

package project

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tmplerrors "github.com/devops-template/devopstemplate/pkg/errors"
	"github.com/devops-template/devopstemplate/pkg/installer"
)

func TestCookiecutterDescriptor(t *testing.T) {
	ops, fsys, _ := newTestOperations(t)
	sess := installer.NewSession("/work/template", false, false, false)

	_, err := ops.Cookiecutter(testConfig(), sess)
	require.NoError(t, err)

	data, err := fsys.ReadFile("/work/template/cookiecutter.json")
	require.NoError(t, err)

	var decoded ProjectConfig
	require.NoError(t, json.Unmarshal(data, &decoded))

	want := testConfig()
	want.ProjectSlug = CookiecutterSlugDefault
	assert.Equal(t, want, decoded)
}

func TestCookiecutterReadme(t *testing.T) {
	ops, fsys, _ := newTestOperations(t)
	sess := installer.NewSession("/work/template", false, false, false)

	_, err := ops.Cookiecutter(testConfig(), sess)
	require.NoError(t, err)

	data, err := fsys.ReadFile("/work/template/README.md")
	require.NoError(t, err)
	assert.Equal(t, "# Cookiecutter Template\n", string(data))
}

func TestCookiecutterMarkerPaths(t *testing.T) {
	ops, fsys, _ := newTestOperations(t)
	sess := installer.NewSession("/work/template", false, false, false)

	outcomes, err := ops.Cookiecutter(testConfig(), sess)
	require.NoError(t, err)

	// component files live under the literal placeholder directory
	root := "/work/template/{{cookiecutter.project_slug}}"
	info, err := fsys.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	for _, outcome := range outcomes {
		if outcome.Component == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(outcome.Path, root+"/"),
			"component file %s outside placeholder directory", outcome.Path)
	}

	// path variables render to marker expressions, not concrete values
	_, err = fsys.Stat(root + "/{{cookiecutter.project_slug}}/main.py")
	assert.NoError(t, err)
	_, err = fsys.Stat(root + "/demo_project/main.py")
	assert.Error(t, err)
}

func TestCookiecutterMarkerContents(t *testing.T) {
	ops, fsys, _ := newTestOperations(t)
	sess := installer.NewSession("/work/template", false, false, false)

	_, err := ops.Cookiecutter(testConfig(), sess)
	require.NoError(t, err)

	root := "/work/template/{{cookiecutter.project_slug}}"
	data, err := fsys.ReadFile(root + "/README.md")
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "{{cookiecutter.project_name}}")
	assert.NotContains(t, content, "Demo Project")

	data, err = fsys.ReadFile(root + "/setup.py")
	require.NoError(t, err)
	assert.Contains(t, string(data), "{{cookiecutter.project_version}}")

	data, err = fsys.ReadFile(root + "/Makefile")
	require.NoError(t, err)
	assert.Contains(t, string(data), "{{cookiecutter.project_slug}}")
}

func TestCookiecutterInstallsEveryComponent(t *testing.T) {
	ops, _, fake := newTestOperations(t)
	sess := installer.NewSession("/work/template", false, false, false)

	outcomes, err := ops.Cookiecutter(testConfig(), sess)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, outcome := range outcomes {
		seen[string(outcome.Component)] = true
	}
	for _, name := range []string{"src", "tests", "make", "setuptools", "docker", "git", "readme", "sonar"} {
		assert.True(t, seen[name], "missing component %s", name)
	}

	// the generated template keeps its own Makefile defaults
	assert.Empty(t, fake.calls)
}

func TestCookiecutterStrictFailsOnExistingDescriptor(t *testing.T) {
	ops, fsys, _ := newTestOperations(t)
	require.NoError(t, fsys.MkdirAll("/work/template", 0755))
	require.NoError(t, fsys.WriteFile("/work/template/cookiecutter.json", []byte("{}"), 0644))
	sess := installer.NewSession("/work/template", false, false, false)

	_, err := ops.Cookiecutter(testConfig(), sess)
	require.Error(t, err)
	assert.True(t, tmplerrors.IsErrorCode(err, tmplerrors.ErrTargetExists))

	data, readErr := fsys.ReadFile("/work/template/cookiecutter.json")
	require.NoError(t, readErr)
	assert.Equal(t, "{}", string(data))
}

func TestCookiecutterSkipLeavesDescriptor(t *testing.T) {
	ops, fsys, _ := newTestOperations(t)
	require.NoError(t, fsys.MkdirAll("/work/template", 0755))
	require.NoError(t, fsys.WriteFile("/work/template/cookiecutter.json", []byte("{}"), 0644))
	sess := installer.NewSession("/work/template", false, true, false)

	outcomes, err := ops.Cookiecutter(testConfig(), sess)
	require.NoError(t, err)

	require.NotEmpty(t, outcomes)
	assert.Equal(t, installer.StatusSkipped, outcomes[0].Status)
	data, err := fsys.ReadFile("/work/template/cookiecutter.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestCookiecutterDryRun(t *testing.T) {
	ops, fsys, _ := newTestOperations(t)
	sess := installer.NewSession("/work/template", false, false, true)

	outcomes, err := ops.Cookiecutter(testConfig(), sess)
	require.NoError(t, err)
	assert.NotEmpty(t, outcomes)
	assert.Zero(t, fsys.WriteCount())
	_, err = fsys.Stat("/work/template")
	assert.Error(t, err)
}
