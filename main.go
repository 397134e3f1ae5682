// Package main is the entry point for the tinge application.
package main

import (
	"github.com/samber/lo"
	"github.com/tinge-cli/tinge/cmd"
	"github.com/tinge-cli/tinge/config"
	"github.com/tinge-cli/tinge/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
