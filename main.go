// Command robo generates structured business plans from a short business
// description. Install with `go install github.com/Makepad-fr/robo@latest`.
package main

import (
	"os"

	"github.com/Makepad-fr/robo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
