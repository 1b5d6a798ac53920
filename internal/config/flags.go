package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagInput      = flag.String("input", "", "Path to the grayscale depthmap image")
	flagOutput     = flag.String("output", "", "Path to the output STL file")
	flagWidth      = flag.Float64("width", 0, "Design width in mm")
	flagDepth      = flag.Float64("depth", 0, "Maximum carving depth in mm")
	flagBase       = flag.Float64("base", -1, "Base thickness in mm")
	flagResolution = flag.String("resolution", "", "Mesh resolution: W or WxH (default: image resolution)")
	flagLogFile    = flag.String("logfile", "", "Write logs to this file as well")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagInput != "" {
		cfg.Input = *flagInput
	}
	if *flagOutput != "" {
		cfg.Output = *flagOutput
	}
	if *flagWidth > 0 {
		cfg.Carve.WidthMM = *flagWidth
	}
	if *flagDepth > 0 {
		cfg.Carve.DepthMM = *flagDepth
	}
	if *flagBase >= 0 {
		cfg.Carve.BaseThicknessMM = *flagBase
	}
	if *flagResolution != "" {
		cfg.Resolution = *flagResolution
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
}
