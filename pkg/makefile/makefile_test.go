// pkg/makefile/makefile_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: MemoryFS
// PURPOSE: Test Makefile variable rewriting

package makefile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devops-template/devopstemplate/pkg/errors"
	"github.com/devops-template/devopstemplate/pkg/testutil"
)

const sampleMakefile = `PROJECT = demo
DOCKERSONAR = False
SRC := $(wildcard $(PROJECT)/*.py)
OPT ?= default

.PHONY: test
test:
	python -m pytest tests
`

func TestWriteRewritesRequestedVariables(t *testing.T) {
	tmpl, err := Parse(strings.NewReader(sampleMakefile))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, tmpl.Write(&buf, map[string]string{"DOCKERSONAR": "True"}))

	out := buf.String()
	assert.Contains(t, out, "DOCKERSONAR = True")
	assert.Contains(t, out, "PROJECT = demo")
	assert.Contains(t, out, "SRC := $(wildcard $(PROJECT)/*.py)")
	assert.Contains(t, out, "\tpython -m pytest tests\n")
}

func TestWritePreservesOperatorStyle(t *testing.T) {
	tmpl, err := Parse(strings.NewReader(sampleMakefile))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, tmpl.Write(&buf, map[string]string{"SRC": "a.py", "OPT": "custom"}))

	out := buf.String()
	assert.Contains(t, out, "SRC := a.py")
	assert.Contains(t, out, "OPT ?= custom")
}

func TestVariables(t *testing.T) {
	tmpl, err := Parse(strings.NewReader(sampleMakefile))
	require.NoError(t, err)
	assert.Equal(t, []string{"PROJECT", "DOCKERSONAR", "SRC", "OPT"}, tmpl.Variables())
}

func TestConfigurerRewritesInPlace(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/project", 0755))
	require.NoError(t, fsys.WriteFile("/project/Makefile", []byte(sampleMakefile), 0644))

	configurer := NewConfigurer(fsys, "/project")
	require.NoError(t, configurer.Configure(map[string]string{"DOCKERSONAR": "True"}))

	data, err := fsys.ReadFile("/project/Makefile")
	require.NoError(t, err)
	assert.Contains(t, string(data), "DOCKERSONAR = True")
	assert.NotContains(t, string(data), "DOCKERSONAR = False")
}

func TestConfigurerMissingMakefile(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	configurer := NewConfigurer(fsys, "/project")

	err := configurer.Configure(map[string]string{"DOCKERSONAR": "True"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBuildFileConfig))
}
