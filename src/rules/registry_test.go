package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/buildmatrix/src/platform"
)

type stubTarget struct{ name string }

func (s stubTarget) Name() string { return s.name }
func (stubTarget) Type() TargetType { return TypeProgram }
func (stubTarget) SetupBinaries(TargetInfo) BinarySet { return BinarySet{} }
func (stubTarget) MonolithicPlatforms(platform.Platform) []platform.Platform {
	return []platform.Platform{}
}
func (stubTarget) MonolithicConfigs(_, _ platform.Platform) []platform.Configuration {
	return []platform.Configuration{platform.Development}
}
func (stubTarget) FormalBuilds(platform.Platform) []FormalBuild { return []FormalBuild{} }

func TestRegistry(t *testing.T) {
	Register("registry-test-a", func() Target { return stubTarget{name: "registry-test-a"} })
	Register("registry-test-b", func() Target { return stubTarget{name: "registry-test-b"} })

	got, err := Get("registry-test-a")
	require.NoError(t, err)
	assert.Equal(t, "registry-test-a", got.Name())

	names := All()
	assert.Contains(t, names, "registry-test-a")
	assert.Contains(t, names, "registry-test-b")
	assert.IsNonDecreasing(t, names)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("registry-test-dup", func() Target { return stubTarget{} })
	assert.PanicsWithValue(t, "rules: duplicate target registration: registry-test-dup", func() {
		Register("registry-test-dup", func() Target { return stubTarget{} })
	})
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no-such-target")
	require.ErrorIs(t, err, ErrUnknownTarget)
	assert.Contains(t, err.Error(), "no-such-target")
}
