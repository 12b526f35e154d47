package main

import (
	"os"

	"github.com/tharlesamaro/git-ai/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)
	os.Exit(cli.ExitCode(cli.Execute()))
}
