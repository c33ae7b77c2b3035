package main

import (
	"github.com/ae-scientist/tower/rpcmd"
)

type TowerCommand struct {
	Version func() `short:"v" long:"version" description:"Print the version of Tower and exit"`

	Run rpcmd.RunCommand `command:"run" description:"Run the research-run control plane."`
}
