// Package platform holds the platform and build-configuration vocabulary shared
// by target rules and the orchestration layer. Both types are open: values not
// listed here are legal and simply unknown to this registry.
package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	ErrUnknownPlatform      = errors.New("unknown platform")
	ErrUnknownConfiguration = errors.New("unknown configuration")
)

// Platform identifies a machine class, either the host running a build or the
// platform a build is produced for.
type Platform string

const (
	Win32      Platform = "Win32"
	Win64      Platform = "Win64"
	Mac        Platform = "Mac"
	XboxOne    Platform = "XboxOne"
	PS4        Platform = "PS4"
	IOS        Platform = "IOS"
	Android    Platform = "Android"
	HTML5      Platform = "HTML5"
	Linux      Platform = "Linux"
	AllDesktop Platform = "AllDesktop"
	TVOS       Platform = "TVOS"
	Switch     Platform = "Switch"
)

// knownPlatforms is in registry declaration order.
var knownPlatforms = []Platform{
	Win32, Win64, Mac, XboxOne, PS4, IOS, Android, HTML5, Linux, AllDesktop, TVOS, Switch,
}

func (p Platform) String() string { return string(p) }

// IsKnown reports whether p is one of the registered platforms.
func (p Platform) IsKnown() bool {
	for _, k := range knownPlatforms {
		if k == p {
			return true
		}
	}
	return false
}

// KnownPlatforms returns the registered platforms in declaration order.
func KnownPlatforms() []Platform {
	out := make([]Platform, len(knownPlatforms))
	copy(out, knownPlatforms)
	return out
}

// ParsePlatform matches s case-insensitively against the registered platforms.
func ParsePlatform(s string) (Platform, error) {
	name := strings.TrimSpace(s)
	for _, k := range knownPlatforms {
		if strings.EqualFold(string(k), name) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// Configuration is the optimization and instrumentation posture of a build.
type Configuration string

const (
	Debug       Configuration = "Debug"
	DebugGame   Configuration = "DebugGame"
	Development Configuration = "Development"
	Shipping    Configuration = "Shipping"
	Test        Configuration = "Test"
)

var knownConfigurations = []Configuration{Debug, DebugGame, Development, Shipping, Test}

func (c Configuration) String() string { return string(c) }

// IsKnown reports whether c is one of the registered configurations.
func (c Configuration) IsKnown() bool {
	for _, k := range knownConfigurations {
		if k == c {
			return true
		}
	}
	return false
}

// KnownConfigurations returns the registered configurations in declaration order.
func KnownConfigurations() []Configuration {
	out := make([]Configuration, len(knownConfigurations))
	copy(out, knownConfigurations)
	return out
}

// ParseConfiguration matches s case-insensitively against the registered configurations.
func ParseConfiguration(s string) (Configuration, error) {
	name := strings.TrimSpace(s)
	for _, k := range knownConfigurations {
		if strings.EqualFold(string(k), name) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownConfiguration, s)
}

// Host returns the platform of the machine running this process.
func Host() Platform {
	return hostFor(runtime.GOOS, runtime.GOARCH)
}

func hostFor(goos, goarch string) Platform {
	switch goos {
	case "darwin":
		return Mac
	case "windows":
		if goarch == "386" {
			return Win32
		}
		return Win64
	case "linux":
		return Linux
	default:
		return Platform(goos)
	}
}
