package logger

// OutputCategory defines a category of output that can be enabled/disabled.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputAmbiguities OutputCategory = iota // Shadowed overloads

	// Level 1 (-v) - Informational
	OutputProgress // Per-pack progress
	OutputFiles    // Each file written

	// Level 2 (-vv) - Detailed
	OutputConfig    // Config values loaded/applied
	OutputTiming    // Stage timing
	OutputOverrides // Override units spliced in

	// Level 3 (-vvv) - Trace
	OutputBranches // Every synthesized ladder branch
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputAmbiguities: VerbosityUser,

	OutputProgress: VerbosityInfo,
	OutputFiles:    VerbosityInfo,

	OutputConfig:    VerbosityDebug,
	OutputTiming:    VerbosityDebug,
	OutputOverrides: VerbosityDebug,

	OutputBranches: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}
