package main

import "github.com/gridwalk/aoc"

const pruneMod = 16777216

func nextSecret(x int) int {
	x = (x ^ x*64) % pruneMod
	x = (x ^ x/32) % pruneMod
	x = (x ^ x*2048) % pruneMod
	return x
}

func (s solver) secrets() []int {
	var out []int
	s.ForLines(func(line string) {
		if line != "" {
			out = append(out, aoc.Int(line))
		}
	})
	return out
}

// changeKey packs four consecutive price changes, each in -9..9, into an
// index below 19^4.
func changeKey(c [4]int) int {
	k := 0
	for _, v := range c {
		k = k*19 + v + 9
	}
	return k
}

// bestBananas returns the most bananas a single four-change sequence can
// buy across all buyers. Each buyer sells at the first occurrence only.
func bestBananas(seeds []int, steps int) int {
	const keys = 19 * 19 * 19 * 19
	totals := make([]int, keys)
	seenBy := make([]int, keys)
	for i, x := range seeds {
		buyer := i + 1
		var changes [4]int
		price := x % 10
		for step := 1; step <= steps; step++ {
			x = nextSecret(x)
			p := x % 10
			changes = [4]int{changes[1], changes[2], changes[3], p - price}
			price = p
			if step < 4 {
				continue
			}
			k := changeKey(changes)
			if seenBy[k] == buyer {
				continue
			}
			seenBy[k] = buyer
			totals[k] += p
		}
	}
	best := 0
	for _, t := range totals {
		best = max(best, t)
	}
	return best
}

/*
want=37327623

1
10
100
2024
*/
func (s solver) D22p1() any {
	sum := 0
	for _, x := range s.secrets() {
		for i := 0; i < 2000; i++ {
			x = nextSecret(x)
		}
		sum += x
	}
	return sum
}

/*
want=23

1
2
3
2024
*/
func (s solver) D22p2() any {
	return bestBananas(s.secrets(), 2000)
}
