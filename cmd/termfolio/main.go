package main

import (
	"os"

	"termfolio/internal/cmd"
)

var version = "dev"

func main() {
	os.Exit(cmd.Execute(version))
}
