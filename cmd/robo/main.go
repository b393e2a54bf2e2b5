package main

import (
	"os"

	"github.com/Makepad-fr/robo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
