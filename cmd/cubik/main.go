// Cubik - an interactive Rubik's Cube played from the terminal.
package main

import (
	"github.com/jaroslaw-wieczorek/cubik/internal/cli"
)

func main() {
	cli.Execute()
}
