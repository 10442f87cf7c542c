package main

import (
	"strings"

	"github.com/gridwalk/aoc"
)

const freeBlock = -1

// diskBlocks expands a dense disk map into one file ID per block, with
// freeBlock marking free space.
func diskBlocks(dense string) []int {
	var out []int
	for i, n := range aoc.Digits(dense) {
		id := freeBlock
		if i%2 == 0 {
			id = i / 2
		}
		for j := 0; j < n; j++ {
			out = append(out, id)
		}
	}
	return out
}

func checksum(blocks []int) int {
	sum := 0
	for i, id := range blocks {
		if id != freeBlock {
			sum += i * id
		}
	}
	return sum
}

// compactBlocks moves single blocks from the end into the leftmost free
// space.
func compactBlocks(blocks []int) {
	i, j := 0, len(blocks)-1
	for {
		for i < j && blocks[i] != freeBlock {
			i++
		}
		for i < j && blocks[j] == freeBlock {
			j--
		}
		if i >= j {
			return
		}
		blocks[i], blocks[j] = blocks[j], freeBlock
	}
}

type span struct{ pos, len int }

// compactFiles moves whole files, highest ID first, into the leftmost
// free span that fits them, if that span is left of the file.
func compactFiles(blocks []int) {
	var files []span
	var free []span
	for i := 0; i < len(blocks); {
		j := i
		for j < len(blocks) && blocks[j] == blocks[i] {
			j++
		}
		if blocks[i] == freeBlock {
			free = append(free, span{i, j - i})
		} else {
			files = append(files, span{i, j - i})
		}
		i = j
	}
	for k := len(files) - 1; k >= 0; k-- {
		f := files[k]
		for fi := range free {
			sp := &free[fi]
			if sp.pos >= f.pos {
				break
			}
			if sp.len < f.len {
				continue
			}
			for n := 0; n < f.len; n++ {
				blocks[sp.pos+n], blocks[f.pos+n] = blocks[f.pos+n], freeBlock
			}
			sp.pos += f.len
			sp.len -= f.len
			break
		}
	}
}

/*
want=1928

2333133121414131402
*/
func (s solver) D9p1() any {
	blocks := diskBlocks(strings.TrimSpace(string(s.Input())))
	compactBlocks(blocks)
	return checksum(blocks)
}

// want=2858
func (s solver) D9p2() any {
	blocks := diskBlocks(strings.TrimSpace(string(s.Input())))
	compactFiles(blocks)
	return checksum(blocks)
}
