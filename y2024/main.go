// Command y2024 solves the Advent of Code 2024 puzzles.
//
//	go run ./y2024 -day 16
package main

import (
	"embed"

	"github.com/gridwalk/aoc"
)

func main() {
	aoc.Run(2024, sources, &solver{})
}

//go:embed day*.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}
