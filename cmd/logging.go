package cmd

import (
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

// setupLogging applies the configured level, then lets -v / -vv raise verbosity.
func setupLogging(ctx *cli.Context, configured log.Level) {
	log.SetLevel(configured)

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
