// Command spotlight animates a gradient star seen through an orbiting
// circular alpha mask.
//
// Usage:
//
//	spotlight [-mode png|gif|trace|term|window] [-backend software|rasterx|recording]
//	          [-width 400] [-height 400] [-frames 90] [-fps 30] [-o path]
//
// Examples:
//
//	spotlight -mode gif -o spotlight.gif
//	spotlight -mode term
//	spotlight -mode window -backend rasterx
package main

import (
	"os"

	"github.com/gogpu/spotlight"
	_ "github.com/gogpu/spotlight/backend/rasterx"  // Register "rasterx"
	_ "github.com/gogpu/spotlight/backend/software" // Register "software"
	"github.com/gogpu/spotlight/host"
	_ "github.com/gogpu/spotlight/recording" // Register "recording"
)

func main() {
	os.Exit(host.Main(spotlight.New(), os.Args[1:]))
}
