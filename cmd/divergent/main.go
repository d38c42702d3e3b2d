// divergent - A diverging colour palette generator
//
// divergent builds dark-light-dark colour ramps for data visualisation with
// continuous control over lightness and chroma along each arm, and checks
// the result against perceptual distance criteria.
package main

import (
	"os"

	"github.com/jmylchreest/divergent/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
