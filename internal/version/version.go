// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Terminal scene viewer with playback, cobra CLI, viper config
// 0.2.0 - Stellar neighbourhood tiers, Local Group, JPL Horizons oracle with Meeus fallback
// 0.1.0 - Solar-system scene with didactic to realistic scaling, HTTP adapter
