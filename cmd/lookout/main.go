package main

import (
	"os"

	"lookout/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
