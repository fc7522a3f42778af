package main

import (
	"os"

	"github.com/webtimed/webtimed/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
