// pkg/installer/conflict_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: MemoryFS
// PURPOSE: Test conflict decision ordering and flag precedence

package installer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devops-template/devopstemplate/pkg/testutil"
)

func TestCheckTargetDecisions(t *testing.T) {
	tests := []struct {
		name      string
		exists    bool
		overwrite bool
		skip      bool
		want      Decision
	}{
		{"missing target always proceeds", false, false, false, Proceed},
		{"missing target proceeds in skip mode", false, false, true, Proceed},
		{"existing target fails in strict mode", true, false, false, Fail},
		{"existing target skips in skip mode", true, false, true, Skip},
		{"existing target proceeds with overwrite", true, true, false, Proceed},
		{"skip wins over overwrite", true, true, true, Skip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testutil.NewMemoryFS()
			if tt.exists {
				require.NoError(t, fsys.WriteFile("/target", []byte("x"), 0644))
			}
			sess := NewSession("/", tt.overwrite, tt.skip, false)
			got := CheckTarget(fsys, "/target", sess)
			require.Equal(t, tt.want, got, "decision %s", got)
		})
	}
}

func TestDecisionString(t *testing.T) {
	require.Equal(t, "proceed", Proceed.String())
	require.Equal(t, "skip", Skip.String())
	require.Equal(t, "fail", Fail.String())
}

func TestWithProjectDirDerivesCopy(t *testing.T) {
	sess := NewSession("/project", false, false, true)
	sub := sess.WithProjectDir("/project/sub")

	require.Equal(t, "/project", sess.ProjectDir)
	require.Equal(t, "/project/sub", sub.ProjectDir)
	require.True(t, sub.DryRun)
}
