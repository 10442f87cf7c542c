package main

import (
	"log"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
	"tailscale.com/util/set"
)

type gate struct {
	a, op, b, out string
}

type circuit struct {
	wires map[string]int
	gates map[string]gate // keyed by output wire
}

func parseCircuit(sections []string) circuit {
	c := circuit{wires: map[string]int{}, gates: map[string]gate{}}
	if len(sections) != 2 {
		log.Fatalf("circuit: got %d sections, want wires and gates", len(sections))
	}
	for _, line := range strings.Split(sections[0], "\n") {
		name, val, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		c.wires[name] = int(val[0] - '0')
	}
	for _, line := range strings.Split(sections[1], "\n") {
		f := strings.Fields(line)
		if len(f) != 5 || f[3] != "->" {
			continue
		}
		c.gates[f[4]] = gate{a: f[0], op: f[1], b: f[2], out: f[4]}
	}
	return c
}

// value evaluates wire w, memoising gate outputs into c.wires.
func (c circuit) value(w string) int {
	if v, ok := c.wires[w]; ok {
		return v
	}
	g, ok := c.gates[w]
	if !ok {
		log.Fatalf("wire %s has no driver", w)
	}
	a, b := c.value(g.a), c.value(g.b)
	var v int
	switch g.op {
	case "AND":
		v = a & b
	case "OR":
		v = a | b
	case "XOR":
		v = a ^ b
	default:
		log.Fatalf("unknown gate %q", g.op)
	}
	c.wires[w] = v
	return v
}

// zWires returns the output wires starting with z, most significant
// first.
func (c circuit) zWires() []string {
	var zs []string
	for _, w := range maps.Keys(c.gates) {
		if strings.HasPrefix(w, "z") {
			zs = append(zs, w)
		}
	}
	slices.Sort(zs)
	slices.Reverse(zs)
	return zs
}

func (c circuit) output() int {
	n := 0
	for _, z := range c.zWires() {
		n = n<<1 | c.value(z)
	}
	return n
}

func isInput(w string) bool {
	return strings.HasPrefix(w, "x") || strings.HasPrefix(w, "y")
}

// miswired returns the gate outputs that break the shape of a
// ripple-carry adder:
//
//   - every z comes from an XOR, except the top z, which is the final
//     carry and comes from an OR;
//   - an XOR not fed by inputs drives a z;
//   - an input XOR (other than bit 0) feeds a second XOR;
//   - an AND (other than bit 0's) feeds an OR.
func (c circuit) miswired() []string {
	feeds := map[string]set.Set[string]{} // wire → ops of gates reading it
	for _, g := range c.gates {
		for _, in := range []string{g.a, g.b} {
			if feeds[in] == nil {
				feeds[in] = make(set.Set[string])
			}
			feeds[in].Add(g.op)
		}
	}
	zs := c.zWires()
	top := ""
	if len(zs) > 0 {
		top = zs[0]
	}
	bit0 := func(g gate) bool {
		return g.a == "x00" || g.b == "x00"
	}

	bad := make(set.Set[string])
	for _, g := range c.gates {
		isZ := strings.HasPrefix(g.out, "z")
		switch {
		case g.out == top:
			if g.op != "OR" {
				bad.Add(g.out)
			}
		case isZ && g.op != "XOR":
			bad.Add(g.out)
		case g.op == "XOR" && !isInput(g.a) && !isZ:
			bad.Add(g.out)
		case g.op == "XOR" && isInput(g.a) && !bit0(g) && !feeds[g.out].Contains("XOR"):
			bad.Add(g.out)
		case g.op == "AND" && !bit0(g) && !feeds[g.out].Contains("OR"):
			bad.Add(g.out)
		}
	}
	out := bad.Slice()
	slices.Sort(out)
	return out
}

/*
want=4

x00: 1
x01: 1
x02: 1
y00: 0
y01: 1
y02: 0

x00 AND y00 -> z00
x01 XOR y01 -> z01
x02 OR y02 -> z02
*/
func (s solver) D24p1() any {
	return parseCircuit(s.Sections()).output()
}

func (s solver) D24p2() any {
	return strings.Join(parseCircuit(s.Sections()).miswired(), ",")
}
