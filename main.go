// main is the entry point for the talentscope CLI.
package main

import (
	"os"

	"github.com/minjaelee/talentscope/cmd"
	"github.com/minjaelee/talentscope/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("command failed", err)
		os.Exit(1)
	}
}
