package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagDivs   = flag.Int("divs", 0, "Subdivisions per cube edge")
	flagOut    = flag.String("out", "", "Output directory")
	flagSize   = flag.Int("size", 0, "uvmap image size in pixels")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments left after the flags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDivs > 0 {
		cfg.Sphere.Divisions = *flagDivs
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagSize > 0 {
		cfg.Output.PlotSize = *flagSize
	}
}
