package config

// File represents the structure of the incjc.yaml configuration file.
type File struct {
	Version      string    `yaml:"version"`
	JDKHome      string    `yaml:"jdkHome"`
	Classpath    []string  `yaml:"classpath"`
	CompilerArgs []string  `yaml:"compilerArgs"`
	MetaRoot     string    `yaml:"metaRoot"`
	Exclude      []string  `yaml:"exclude"`
	Debug        bool      `yaml:"debug"`
	LogFormat    string    `yaml:"logFormat"`
	Watch        *WatchDTO `yaml:"watch"`
}

// WatchDTO holds the watch mode settings.
type WatchDTO struct {
	Debounce string `yaml:"debounce"`
}
