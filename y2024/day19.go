package main

import "strings"

type towelCounter struct {
	towels []string
	memo   map[string]int
}

// arrangements returns the number of ways design can be made from the
// towels, memoised on the remaining suffix.
func (tc *towelCounter) arrangements(design string) int {
	if design == "" {
		return 1
	}
	if n, ok := tc.memo[design]; ok {
		return n
	}
	n := 0
	for _, t := range tc.towels {
		if rest, ok := strings.CutPrefix(design, t); ok {
			n += tc.arrangements(rest)
		}
	}
	tc.memo[design] = n
	return n
}

func (s solver) towelDesigns() (*towelCounter, []string) {
	sections := s.Sections()
	tc := &towelCounter{memo: map[string]int{}}
	for _, t := range strings.Split(sections[0], ",") {
		if t = strings.TrimSpace(t); t != "" {
			tc.towels = append(tc.towels, t)
		}
	}
	var designs []string
	if len(sections) > 1 {
		designs = strings.Fields(sections[1])
	}
	return tc, designs
}

/*
want=6

r, wr, b, g, bwu, rb, gb, br

brwrr
bggr
gbbr
rrbgbr
ubwu
bwurrg
brgr
bbrgwb
*/
func (s solver) D19p1() any {
	tc, designs := s.towelDesigns()
	n := 0
	for _, d := range designs {
		if tc.arrangements(d) > 0 {
			n++
		}
	}
	return n
}

// want=16
func (s solver) D19p2() any {
	tc, designs := s.towelDesigns()
	n := 0
	for _, d := range designs {
		n += tc.arrangements(d)
	}
	return n
}
