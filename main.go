package main

import (
	"github.com/shredseq/shred/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
