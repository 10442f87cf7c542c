package main

import (
	"slices"
	"strings"

	"github.com/gridwalk/aoc"
	"tailscale.com/util/set"
)

// pageRules holds the "a|b" ordering rules: a must print before b.
type pageRules struct {
	before set.Set[[2]int]
}

func (r pageRules) compare(a, b int) int {
	switch {
	case r.before.Contains([2]int{a, b}):
		return -1
	case r.before.Contains([2]int{b, a}):
		return 1
	}
	return 0
}

func (s solver) printQueue() (pageRules, [][]int) {
	sections := s.Sections()
	rules := make(set.Set[[2]int])
	for _, line := range strings.Split(sections[0], "\n") {
		a, b, ok := strings.Cut(line, "|")
		if !ok {
			continue
		}
		rules.Add([2]int{aoc.Int(a), aoc.Int(b)})
	}
	var updates [][]int
	if len(sections) > 1 {
		for _, line := range strings.Split(sections[1], "\n") {
			if line != "" {
				updates = append(updates, aoc.Ints(strings.Split(line, ",")...))
			}
		}
	}
	return pageRules{rules}, updates
}

/*
want=143

47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
*/
func (s solver) D5p1() any {
	rules, updates := s.printQueue()
	sum := 0
	for _, u := range updates {
		if slices.IsSortedFunc(u, rules.compare) {
			sum += u[len(u)/2]
		}
	}
	return sum
}

// want=123
func (s solver) D5p2() any {
	rules, updates := s.printQueue()
	sum := 0
	for _, u := range updates {
		if slices.IsSortedFunc(u, rules.compare) {
			continue
		}
		slices.SortFunc(u, rules.compare)
		sum += u[len(u)/2]
	}
	return sum
}
