package cmd

import (
	"github.com/urfave/cli"

	"github.com/parkerwe/go-sampling-engine/pkg/log"
)

var logger = log.New("cli")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
