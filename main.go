// Idiomatic entrypoint for the Cobra CLI; all handling lives in package cmd.
package main

import (
	"github.com/MRamiBalles/quantum-navigator/cmd"
)

func main() {
	cmd.Execute()
}
