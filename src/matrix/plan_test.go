package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/buildmatrix/src/platform"
	"github.com/sofmeright/buildmatrix/src/rules/targets"
)

func TestResolveWin64(t *testing.T) {
	plan := Resolve(targets.StrategyGame{}, platform.Win64, nil)

	assert.Equal(t, "StrategyGame", plan.Target)
	assert.Equal(t, platform.Win64, plan.Host)
	assert.Equal(t, []string{"StrategyGame"}, plan.Binaries.ExtraModuleNames)
	assert.Empty(t, plan.Warnings)
	assert.Zero(t, plan.Skipped)

	ids := make([]string, 0, len(plan.Jobs))
	for _, j := range plan.Jobs {
		ids = append(ids, j.ID())
	}
	assert.Equal(t, []string{
		"StrategyGame/Win64/monolithic/Win64/Test",
		"StrategyGame/Win64/monolithic/Win32/Test",
		"StrategyGame/Win64/monolithic/Android/Test",
		"StrategyGame/Win64/formal/Android/Test",
	}, ids)

	formal := plan.Formal()
	require.Len(t, formal, 1)
	assert.False(t, formal[0].Client)
	assert.True(t, formal[0].Server)
	assert.Len(t, plan.Monolithic(), 3)
}

func TestResolveMac(t *testing.T) {
	plan := Resolve(targets.StrategyGame{}, platform.Mac, nil)

	mono := plan.Monolithic()
	require.Len(t, mono, 2)
	assert.Equal(t, platform.Mac, mono[0].Platform)
	assert.Equal(t, platform.IOS, mono[1].Platform)

	formal := plan.Formal()
	require.Len(t, formal, 1)
	assert.Equal(t, platform.IOS, formal[0].Platform)
	assert.Empty(t, plan.Warnings)
}

func TestResolveUnlistedHostWarns(t *testing.T) {
	plan := Resolve(targets.StrategyGame{}, platform.Linux, nil)

	assert.Empty(t, plan.Monolithic())
	formal := plan.Formal()
	require.Len(t, formal, 1)
	assert.Equal(t, platform.IOS, formal[0].Platform)

	require.Len(t, plan.Warnings, 2)
	assert.Contains(t, plan.Warnings[0], "no monolithic platforms on host Linux")
	assert.Contains(t, plan.Warnings[1], "fallback policy")
}

func TestResolveWithFilter(t *testing.T) {
	f, err := NewFilter([]string{"!^Win32$"}, nil)
	require.NoError(t, err)

	plan := Resolve(targets.StrategyGame{}, platform.Win64, f)
	assert.Equal(t, 1, plan.Skipped)
	for _, j := range plan.Jobs {
		assert.NotEqual(t, platform.Win32, j.Platform)
	}
	assert.Len(t, plan.Jobs, 3)
}

func TestResolveFilterByConfiguration(t *testing.T) {
	f, err := NewFilter(nil, []string{"^Shipping$"})
	require.NoError(t, err)

	plan := Resolve(targets.StrategyGame{}, platform.Mac, f)
	assert.Empty(t, plan.Jobs)
	assert.NotNil(t, plan.Jobs)
	assert.Equal(t, 3, plan.Skipped)
}

func TestPlanAccessorsNeverNil(t *testing.T) {
	p := &Plan{}
	assert.NotNil(t, p.Monolithic())
	assert.NotNil(t, p.Formal())
}
