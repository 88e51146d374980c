package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
	}{
		{"Win64", Win64},
		{"win64", Win64},
		{" MAC ", Mac},
		{"ios", IOS},
		{"android", Android},
		{"Linux", Linux},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlatform(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlatformUnknown(t *testing.T) {
	_, err := ParsePlatform("Amiga")
	require.ErrorIs(t, err, ErrUnknownPlatform)
	assert.Contains(t, err.Error(), `"Amiga"`)
}

func TestParseConfiguration(t *testing.T) {
	got, err := ParseConfiguration("test")
	require.NoError(t, err)
	assert.Equal(t, Test, got)

	_, err = ParseConfiguration("Profile")
	require.ErrorIs(t, err, ErrUnknownConfiguration)
}

func TestKnownListsAreCopies(t *testing.T) {
	ps := KnownPlatforms()
	ps[0] = "Mutated"
	assert.Equal(t, Win32, KnownPlatforms()[0])

	cs := KnownConfigurations()
	cs[0] = "Mutated"
	assert.Equal(t, Debug, KnownConfigurations()[0])
}

func TestIsKnown(t *testing.T) {
	assert.True(t, Win64.IsKnown())
	assert.False(t, Platform("Amiga").IsKnown())
	assert.True(t, Shipping.IsKnown())
	assert.False(t, Configuration("Profile").IsKnown())
}

func TestHostFor(t *testing.T) {
	tests := []struct {
		goos, goarch string
		want         Platform
	}{
		{"darwin", "arm64", Mac},
		{"darwin", "amd64", Mac},
		{"windows", "amd64", Win64},
		{"windows", "arm64", Win64},
		{"windows", "386", Win32},
		{"linux", "amd64", Linux},
		{"freebsd", "amd64", Platform("freebsd")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, hostFor(tt.goos, tt.goarch), "%s/%s", tt.goos, tt.goarch)
	}
}
