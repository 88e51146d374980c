package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/buildmatrix/src/platform"
)

func TestPatternsMatch(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		value    string
		want     bool
	}{
		{"empty passes", nil, "Win64", true},
		{"include hit", []string{"^Win"}, "Win32", true},
		{"include miss", []string{"^Win"}, "Mac", false},
		{"exclude only", []string{"!Android"}, "Mac", true},
		{"exclude hit", []string{"!Android"}, "Android", false},
		{"exclude beats include", []string{"^Win", "!32$"}, "Win32", false},
		{"substring", []string{"Win"}, "AllDesktopWin", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := CompilePatterns(tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Match(tt.value))
		})
	}
}

func TestNilPatternsMatch(t *testing.T) {
	var p *Patterns
	assert.True(t, p.Match("anything"))
}

func TestCompilePatternsErrors(t *testing.T) {
	_, err := CompilePatterns([]string{"("})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")

	_, err = CompilePatterns([]string{"!"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty pattern")
}

func TestNewFilter(t *testing.T) {
	f, err := NewFilter(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.True(t, f.Keep(platform.Mac, platform.Test))

	f, err = NewFilter([]string{"^IOS$"}, []string{"Test"})
	require.NoError(t, err)
	assert.True(t, f.Keep(platform.IOS, platform.Test))
	assert.False(t, f.Keep(platform.Mac, platform.Test))
	assert.False(t, f.Keep(platform.IOS, platform.Shipping))

	_, err = NewFilter([]string{"["}, nil)
	require.ErrorContains(t, err, "platform filter")

	_, err = NewFilter(nil, []string{"["})
	require.ErrorContains(t, err, "configuration filter")
}
