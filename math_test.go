package aoc

import "testing"

func TestNumbers(t *testing.T) {
	if got := LCM(11, 7); got != 77 {
		t.Errorf("LCM(11, 7) = %d", got)
	}
	if got := LCM(4, 6, 10); got != 60 {
		t.Errorf("LCM(4, 6, 10) = %d", got)
	}
	if got := GCD(84, 36); got != 12 {
		t.Errorf("GCD(84, 36) = %d", got)
	}
	for n, want := range map[int]int{0: 1, 9: 1, 10: 2, 2024: 4, -512: 3} {
		if got := NumDigits(n); got != want {
			t.Errorf("NumDigits(%d) = %d, want %d", n, got, want)
		}
	}
	if got := Pow10(3); got != 1000 {
		t.Errorf("Pow10(3) = %d", got)
	}
	if got := Sum(Fields("p=0,4 v=3,-3", "pv=, ")...); got != 4 {
		t.Errorf("Sum(Fields) = %d, want 4", got)
	}
	if got := Or("", "x", "y"); got != "x" {
		t.Errorf("Or = %q", got)
	}
	if got := ParseBinary("0b101"); got != 5 {
		t.Errorf("ParseBinary = %d", got)
	}
}
