// depthmap2mesh converts a grayscale depthmap image into a watertight
// solid STL mesh for CNC milling or 3D printing. Bright pixels map to
// the resting surface, dark pixels to the maximum carving depth; the
// solid is closed with vertical walls and a flat bottom.
//
// Usage:
//
//	depthmap2mesh -input relief.png -output relief.stl -width 120 -depth 6 -base 2
package main

import (
	"fmt"
	"os"

	"github.com/unixpickle/essentials"
	"go.uber.org/zap"

	"github.com/timothywong731/depthmap2mesh/internal/config"
	"github.com/timothywong731/depthmap2mesh/internal/logger"
	"github.com/timothywong731/depthmap2mesh/internal/pipeline"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	essentials.Must(err)

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run with -h for usage.")
		os.Exit(1)
	}

	resolution, err := cfg.ParseResolution()
	essentials.Must(err) // already checked by Validate

	err = pipeline.Run(pipeline.Options{
		Input:         cfg.Input,
		Output:        cfg.Output,
		Width:         cfg.Carve.WidthMM,
		Depth:         cfg.Carve.DepthMM,
		BaseThickness: cfg.Carve.BaseThicknessMM,
		Resolution:    resolution,
	})
	if err != nil {
		logger.Log.Error("conversion failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
