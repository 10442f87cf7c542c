package aoc

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=co,de,ka,ta`,
			want:    sample{want: "co,de,ka,ta"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, want %+v", tt.comment, got, tt.want)
		}
	}
	if _, ok := parseSample("// just a comment"); ok {
		t.Errorf("parseSample without want= reported a sample")
	}
}

const testSource = `package main

/*
want=6

1 2 3
*/
func (s solver) D1p1() any { return nil }

// want=7
func (s solver) D1p2() any { return nil }

func (s solver) D2p1() any { return nil }
`

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples("day01.go", []byte(testSource))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d samples, want 2: %+v", len(got), got)
	}
	if s := got["D1p2"]; s.want != "7" || s.input != "1 2 3\n" {
		t.Errorf("D1p2 sample = %+v; want inherited input", s)
	}
	if _, ok := got["D2p1"]; ok {
		t.Errorf("D2p1 has no want= but got a sample")
	}

	if _, err := extractSamples("bad.go", []byte("package")); err == nil {
		t.Errorf("extractSamples on invalid source succeeded")
	}
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D1p1() any {
	sum := 0
	for _, f := range strings.Fields(string(s.Input())) {
		sum += Int(f)
	}
	return sum
}

func (s testSolver) D1p2() any {
	return len(s.Input())
}

func (s testSolver) D2p1() any { return "unused" }

func TestCheckSamples(t *testing.T) {
	fsys := fstest.MapFS{
		"day01.go":  {Data: []byte(testSource)},
		"notes.txt": {Data: []byte("want=99")},
	}
	res, err := CheckSamples(2024, fsys, &testSolver{})
	if err != nil {
		t.Fatal(err)
	}
	want := []SampleResult{
		{Day: 1, Part: "1", Name: "D1p1", Got: "6", Want: "6"},
		{Day: 1, Part: "2", Name: "D1p2", Got: "6", Want: "7"},
	}
	if len(res) != len(want) {
		t.Fatalf("CheckSamples = %+v, want %+v", res, want)
	}
	for i := range want {
		if res[i] != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, res[i], want[i])
		}
	}
	if !res[0].OK() || res[1].OK() {
		t.Errorf("OK() = %v, %v; want true, false", res[0].OK(), res[1].OK())
	}
}

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	var names []string
	for _, p := range days[1] {
		names = append(names, p.Name)
	}
	if got := strings.Join(names, ","); got != "D1p1,D1p2" {
		t.Errorf("day 1 parts = %s, want D1p1,D1p2", got)
	}
}

func TestSections(t *testing.T) {
	s := sample{input: "a\nb\n\nc\n\nd\n"}
	p := &Puzzle{SampleMode: true, sample: &s}
	got := p.Sections()
	if len(got) != 3 || got[0] != "a\nb" || got[2] != "d" {
		t.Errorf("Sections() = %q", got)
	}
}
