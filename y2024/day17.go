package main

import (
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/gridwalk/aoc"
)

// computer is the 3-bit machine: three registers and a program of
// octal instructions.
type computer struct {
	a, b, c int
	program []int
}

func parseComputer(in string) computer {
	var c computer
	for _, line := range strings.Split(in, "\n") {
		name, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(name) {
		case "Register A":
			c.a = aoc.Int(val)
		case "Register B":
			c.b = aoc.Int(val)
		case "Register C":
			c.c = aoc.Int(val)
		case "Program":
			c.program = aoc.Ints(strings.Split(strings.TrimSpace(val), ",")...)
		}
	}
	return c
}

// run executes the program from the current registers and returns its
// output.
func (c computer) run() []int {
	var out []int
	combo := func(op int) int {
		switch op {
		case 4:
			return c.a
		case 5:
			return c.b
		case 6:
			return c.c
		case 7:
			log.Fatal("combo operand 7 is reserved")
		}
		return op
	}
	for ip := 0; ip+1 < len(c.program); ip += 2 {
		op := c.program[ip+1]
		switch c.program[ip] {
		case 0: // adv
			c.a >>= combo(op)
		case 1: // bxl
			c.b ^= op
		case 2: // bst
			c.b = combo(op) % 8
		case 3: // jnz
			if c.a != 0 {
				ip = op - 2
			}
		case 4: // bxc
			c.b ^= c.c
		case 5: // out
			out = append(out, combo(op)%8)
		case 6: // bdv
			c.b = c.a >> combo(op)
		case 7: // cdv
			c.c = c.a >> combo(op)
		}
	}
	return out
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = fmt.Sprint(n)
	}
	return strings.Join(s, ",")
}

// quine returns the lowest A for which the program prints itself. The
// program is assumed to consume A three bits per output, so A is built
// one octal digit at a time, matching the output from its tail.
func quine(c computer) (int, bool) {
	candidates := []int{0}
	for i := len(c.program) - 1; i >= 0; i-- {
		var next []int
		for _, base := range candidates {
			for d := 0; d < 8; d++ {
				c.a = base<<3 | d
				if slices.Equal(c.run(), c.program[i:]) {
					next = append(next, c.a)
				}
			}
		}
		candidates = next
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return slices.Min(candidates), true
}

/*
want=4,6,3,5,6,3,5,2,1,0

Register A: 729
Register B: 0
Register C: 0

Program: 0,1,5,4,3,0
*/
func (s solver) D17p1() any {
	return joinInts(parseComputer(string(s.Input())).run())
}

/*
want=117440

Register A: 2024
Register B: 0
Register C: 0

Program: 0,3,5,4,3,0
*/
func (s solver) D17p2() any {
	a, ok := quine(parseComputer(string(s.Input())))
	if !ok {
		log.Fatal("no register value reproduces the program")
	}
	return a
}
