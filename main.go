package main

import (
	"fmt"
	"os"

	"github.com/sheikhrachel/bordered-gol/utils"
)

func main() {
	stats, err := runGame(os.Stdout, utils.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %+v\n", err)
		os.Exit(1)
	}
	displaySummary(os.Stdout, stats)
}
