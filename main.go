// Package main is the entry point for the codecharm application.
package main

import (
	"github.com/codecharm-icons/codecharm/cmd"
	"github.com/codecharm-icons/codecharm/config"
	"github.com/codecharm-icons/codecharm/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
