package main

import (
	"os"

	"github.com/pankajyadav-dev/ocean/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
