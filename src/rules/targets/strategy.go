// Package targets holds the concrete target rules shipped with buildmatrix.
// Each target registers itself with the rules registry from init().
package targets

import (
	"github.com/sofmeright/buildmatrix/src/platform"
	"github.com/sofmeright/buildmatrix/src/rules"
)

// StrategyGameName is the registry name and module name of the StrategyGame target.
const StrategyGameName = "StrategyGame"

func init() {
	rules.Register(StrategyGameName, func() rules.Target { return StrategyGame{} })
}

// StrategyGame is the game target. Its monolithic and formal policies are
// hand-maintained tables; edit them when the release matrix changes.
type StrategyGame struct{}

func (StrategyGame) Name() string { return StrategyGameName }

func (StrategyGame) Type() rules.TargetType { return rules.TypeGame }

// SetupBinaries links the game module and declares no extra binaries.
func (StrategyGame) SetupBinaries(_ rules.TargetInfo) rules.BinarySet {
	return rules.BinarySet{
		ExtraModuleNames: []string{StrategyGameName},
		BinaryConfigs:    []rules.BinaryConfig{},
	}
}

func (StrategyGame) MonolithicPlatforms(host platform.Platform) []platform.Platform {
	switch host {
	case platform.Mac:
		return []platform.Platform{host, platform.IOS}
	case platform.Win64:
		return []platform.Platform{host, platform.Win32, platform.Android}
	default:
		return []platform.Platform{}
	}
}

// MonolithicConfigs is Test everywhere for now.
func (StrategyGame) MonolithicConfigs(_, _ platform.Platform) []platform.Configuration {
	return []platform.Configuration{platform.Test}
}

func (g StrategyGame) FormalBuilds(host platform.Platform) []rules.FormalBuild {
	switch host {
	case platform.Win64:
		return []rules.FormalBuild{
			{Platform: platform.Android, Configuration: platform.Test, IsClient: false, IsServer: true},
		}
	default:
		return g.formalFallback()
	}
}

// formalFallback covers every host not listed in FormalBuilds, Linux and
// untested hosts included. It matches the Mac assignment. This is a known
// policy gap: non-Windows hosts are all treated as the Mac farm.
func (StrategyGame) formalFallback() []rules.FormalBuild {
	return []rules.FormalBuild{
		{Platform: platform.IOS, Configuration: platform.Test, IsClient: false, IsServer: true},
	}
}

// FormalFallback reports whether host resolves through formalFallback.
// Mac is the host the fallback was written for, so it does not count.
func (StrategyGame) FormalFallback(host platform.Platform) bool {
	return host != platform.Win64 && host != platform.Mac
}
