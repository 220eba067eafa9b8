package main

import (
	"os"

	"github.com/minhvu2004/animewalls/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
