package domain

import "time"

// DefaultWatchDebounce is the quiet period after the last file event before a watch rebuild starts.
const DefaultWatchDebounce = 200 * time.Millisecond

// Config is the resolved tool configuration after merging the config file and the environment.
type Config struct {
	// JDKHome is the toolchain root; tools are resolved as <JDKHome>/bin/<tool>.
	// When empty, tools are looked up on PATH.
	JDKHome string
	// Classpath holds extra entries appended to every compiler classpath.
	Classpath []string
	// CompilerArgs are passed to the compiler before the source list.
	CompilerArgs []string
	// MetaRoot is the directory holding per-source-tree metadata stores.
	MetaRoot string
	// Exclude holds glob patterns of sources to ignore, relative to the source root.
	Exclude []string
	// Debug enables debug logging.
	Debug bool
	// LogJSON switches log output to JSON lines.
	LogJSON bool
	// WatchDebounce is the debounce window used by watch mode.
	WatchDebounce time.Duration
	// Path is the config file the values were read from, empty when none was found.
	Path string
}

// ParseDebugFlag reports whether an environment value switches debug logging on.
func ParseDebugFlag(value string) bool {
	switch value {
	case "1", "true", "TRUE", "yes", "Y":
		return true
	default:
		return false
	}
}
