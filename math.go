package aoc

import (
	"log"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	var in []int
	for _, c := range line {
		in = append(in, Digit(c))
	}
	return in
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

// NumDigits returns the number of decimal digits in n.
func NumDigits(n int) int {
	if n < 0 {
		n = -n
	}
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Pow10 returns 10**n.
func Pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// LCM returns the least common multiple of the integers.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("no integers")
	}
	result := 1
	for _, v := range integers {
		result = result * v / GCD(result, v)
	}
	return result
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// ParseBinary parses a binary string.
func ParseBinary(in string) int64 {
	return MustGet(strconv.ParseInt(strings.TrimPrefix(in, "0b"), 2, 64))
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	var out []int
	for _, v := range s {
		out = append(out, Int(v))
	}
	return out
}

// Fields splits s around any of the separator runes and parses every
// non-empty piece as an int.
func Fields(s, seps string) []int {
	return Ints(strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})...)
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
