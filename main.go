// main is the entry point for the tslabel CLI.
package main

import (
	"github.com/fweigt/tslabel/cmd"
	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/internal/sessiondb"
)

func main() {
	err := cmd.Execute()
	sessiondb.CloseStore()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
