package main

import (
	"os"

	"cointransfer/cmd/cli-tool/commands"
)

func main() {
	os.Exit(commands.Execute())
}
