package main

import (
	"os"

	"tabmarks/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
