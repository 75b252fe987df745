// cmd/devopstemplate/root_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Embedded guide docs
// PURPOSE: Test command wiring, flag merging and guide topics

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devops-template/devopstemplate/pkg/config"
	"github.com/devops-template/devopstemplate/pkg/project"
)

func TestRootHasAllCommands(t *testing.T) {
	want := []string{"create", "manage", "cookiecutter", "genconfig", "guide", "version", "completion"}
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, name := range want {
		assert.True(t, names[name], "missing command %s", name)
	}
}

func TestGuideTopics(t *testing.T) {
	topics := guideTopics()
	assert.Contains(t, topics, "getting-started")
	assert.Contains(t, topics, "configuration")
	assert.Contains(t, topics, "cookiecutter")
}

func TestShowGuideTopicUnknown(t *testing.T) {
	err := showGuideTopic("no-such-topic")
	require.Error(t, err)
}

func TestMergeProjectConfigFlagOverrides(t *testing.T) {
	base := config.Defaults().Project

	cmd := createCmd
	require.NoError(t, cmd.Flags().Set("project-name", "Flag Project"))
	defer func() {
		require.NoError(t, cmd.Flags().Set("project-name", ""))
		cmd.Flags().Lookup("project-name").Changed = false
	}()

	merged := mergeProjectConfig(cmd, base, project.ProjectConfig{ProjectName: "Flag Project"})
	assert.Equal(t, "Flag Project", merged.ProjectName)
	// slug follows the name when not set explicitly
	assert.Equal(t, "flag_project", merged.ProjectSlug)
	// untouched fields keep their configured values
	assert.Equal(t, base.AuthorName, merged.AuthorName)
}

func TestMergeProjectConfigDefaultsPassThrough(t *testing.T) {
	base := config.Defaults().Project
	merged := mergeProjectConfig(manageCmd, base, project.ProjectConfig{})
	assert.Equal(t, base, merged)
}

func TestNewSessionUsesConfigDefaults(t *testing.T) {
	cfg := config.Config{}
	cfg.Behavior.SkipExists = true

	sess := newSession(manageCmd, cfg)
	assert.True(t, sess.Skip)
	assert.False(t, sess.Overwrite)
}
