// Package aoc is a toolkit for solving Advent of Code puzzles: a runner
// that finds solver methods by name and checks them against the worked
// examples in their doc comments, plus grid, graph and shortest-path
// helpers shared between days.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"log"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
	"tailscale.com/types/logger"
)

// ErrNoSample is returned when a part has no want= doc comment.
var ErrNoSample = errors.New("no sample")

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{want: m[1], input: m[2]}, true
	}
	return sample{}, false
}

// extractSamples returns the samples found in the doc comments of src,
// keyed by function name. A sample without input reuses the input of the
// sample before it in the same file.
func extractSamples(name string, src []byte) (map[string]sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// extractAllSamples runs extractSamples over every .go file at the top of
// fsys.
func extractAllSamples(fsys fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, err
	}
	all := make(map[string]sample)
	for _, name := range names {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		samples, err := extractSamples(name, src)
		if err != nil {
			return nil, err
		}
		maps.Copy(all, samples)
	}
	return all, nil
}

// Puzzle is embedded in a solver struct and gives each part access to
// its input.
type Puzzle struct {
	Year int
	Day  int
	Part string

	// SampleMode is set while the worked example runs. Days whose
	// example uses different dimensions than the real puzzle check it.
	SampleMode bool

	// Logf receives debug output. It discards everything unless the
	// runner was started with -debug.
	Logf logger.Logf

	sample *sample
	input  []byte
}

func (p *Puzzle) Description() []byte {
	return MustGet(defaultFetcher.fileOrFetch(
		fmt.Sprintf("%d/%d.html", p.Year, p.Day),
		fmt.Sprintf("/%d/day/%d", p.Year, p.Day)))
}

// Input returns the example input in sample mode and the real puzzle
// input otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		if p.sample == nil {
			log.Fatalf("day %d part %s: %v", p.Day, p.Part, ErrNoSample)
		}
		return []byte(p.sample.input)
	}
	if p.input == nil {
		b, err := defaultFetcher.fileOrFetch(
			fmt.Sprintf("%d/%d.input", p.Year, p.Day),
			fmt.Sprintf("/%d/day/%d/input", p.Year, p.Day))
		if err != nil {
			log.Fatalf("day %d input: %v", p.Day, err)
		}
		p.input = b
	}
	return p.input
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, 1<<20)
	return s
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Sections splits the input on blank lines.
func (p *Puzzle) Sections() []string {
	in := strings.ReplaceAll(string(p.Input()), "\r\n", "\n")
	return strings.Split(strings.TrimRight(in, "\n"), "\n\n")
}

type part struct {
	Day  int
	Part string
	Name string
	idx  int // method index on the solver pointer
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the solver's methods named D{day}p{part}, which
// must have the signature func() any, grouped by day.
func extractMethods(x any) map[int][]part {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("solver: got %T; want pointer to struct", x)
	}
	if f := v.Elem().FieldByName("Puzzle"); !f.IsValid() || f.Type() != reflect.TypeOf((*Puzzle)(nil)) {
		log.Fatalf("solver %T must embed *aoc.Puzzle", x)
	}
	anyType := reflect.TypeOf((*any)(nil)).Elem()
	vt := v.Type()
	days := map[int][]part{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		m := methodRx.FindStringSubmatch(mt.Name)
		if m == nil {
			continue
		}
		if ft := mt.Type; ft.NumIn() != 1 || ft.NumOut() != 1 || ft.Out(0) != anyType {
			log.Fatalf("%s: got %v; want func() any", mt.Name, ft)
		}
		d := Int(m[1])
		days[d] = append(days[d], part{Day: d, Part: m[2], Name: mt.Name, idx: i})
	}
	for _, parts := range days {
		slices.SortFunc(parts, func(a, b part) int {
			return strings.Compare(a.Part, b.Part)
		})
	}
	return days
}

// call runs one part with p installed as the solver's Puzzle.
func call(slvr any, pt part, p *Puzzle) any {
	v := reflect.ValueOf(slvr)
	v.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	return v.Method(pt.idx).Call(nil)[0].Interface()
}

// SampleResult is the outcome of running one part on its worked example.
type SampleResult struct {
	Day  int
	Part string
	Name string
	Got  string
	Want string
}

func (r SampleResult) OK() bool { return r.Got == r.Want }

// CheckSamples runs every part that has a want= doc comment in sources
// against its example and reports the answers, ordered by day and part.
func CheckSamples(year int, sources fs.FS, slvr any) ([]SampleResult, error) {
	samples, err := extractAllSamples(sources)
	if err != nil {
		return nil, err
	}
	days := extractMethods(slvr)
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)

	var out []SampleResult
	for _, d := range dayNums {
		for _, pt := range days[d] {
			s, ok := samples[pt.Name]
			if !ok {
				continue
			}
			p := &Puzzle{
				Year:       year,
				Day:        d,
				Part:       pt.Part,
				SampleMode: true,
				Logf:       logger.Discard,
				sample:     &s,
			}
			out = append(out, SampleResult{
				Day:  d,
				Part: pt.Part,
				Name: pt.Name,
				Got:  fmt.Sprint(call(slvr, pt, p)),
				Want: s.want,
			})
		}
	}
	return out, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagExamples   bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.BoolVar(&flagExamples, "examples", false, "print the example blocks from the puzzle page")
}

var initFlags = sync.OnceFunc(flag.Parse)

func runDay(slvr any, year int, parts []part, samples map[string]sample) {
	logf := logger.Discard
	if flagDebug {
		logf = log.Printf
	}
	for _, pt := range parts {
		if flagPart != "" && pt.Part != flagPart {
			continue
		}
		p := &Puzzle{Year: year, Day: pt.Day, Part: pt.Part, Logf: logf}

		if s, ok := samples[pt.Name]; ok && !flagSkipSample {
			p.SampleMode, p.sample = true, &s
			t0 := time.Now()
			got := fmt.Sprint(call(slvr, pt, p))
			if got != s.want {
				fmt.Printf("Part %s sample: %v ❌; want %v\n", pt.Part, got, s.want)
				return
			}
			log.Printf("day %d part %s sample ok (%v)", pt.Day, pt.Part, time.Since(t0).Round(time.Microsecond))
			p.SampleMode = false
		}
		if flagOnlySample {
			continue
		}
		p.Input() // prime the input so the timing excludes the download
		t0 := time.Now()
		got := call(slvr, pt, p)
		fmt.Printf("Part %s: %v\n", pt.Part, got)
		log.Printf("day %d part %s took %v", pt.Day, pt.Part, time.Since(t0).Round(time.Microsecond))
	}
}

func printExamples(year, day int) {
	p := &Puzzle{Year: year, Day: day}
	examples, err := ParseExamples(p.Description())
	if err != nil {
		log.Fatalf("day %d: %v", day, err)
	}
	for i, ex := range examples {
		fmt.Printf("--- example %d ---\n%s", i+1, ex)
	}
}

// Run solves the puzzles of year with slvr, a pointer to a struct that
// embeds *Puzzle and has methods named D{day}p{part}. sources holds the
// Go files declaring those methods, from which the worked examples are
// read.
func Run(year int, sources fs.FS, slvr any) {
	samples, err := extractAllSamples(sources)
	if err != nil {
		log.Fatal(err)
	}
	days := extractMethods(slvr)
	initFlags()

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	if flagCurDay != -1 {
		if _, ok := days[flagCurDay]; !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		dayNums = []int{flagCurDay}
	}
	for i, d := range dayNums {
		if i > 0 {
			fmt.Println()
		}
		if flagExamples {
			printExamples(year, d)
			continue
		}
		fmt.Println("Day", d)
		runDay(slvr, year, days[d], samples)
	}
}
