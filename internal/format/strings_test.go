package format

import "testing"

func TestFit(t *testing.T) {
	if got := Fit("abcde", 4); got != "ab… " {
		t.Errorf("Fit(abcde, 4) = %q, want %q", got, "ab… ")
	}
	if got := Fit("abcde", 10); got != "abcde     " {
		t.Errorf("Fit(abcde, 10) = %q, want %q", got, "abcde     ")
	}
	if got := Fit("", 3); got != "   " {
		t.Errorf("Fit(\"\", 3) = %q, want three spaces", got)
	}
}

func TestFitExactWidth(t *testing.T) {
	inputs := []string{"", "a", "ab", "héllo wörld", "日本語のテキスト", "exactly", "a much longer input string"}
	for _, s := range inputs {
		for width := 2; width <= 12; width++ {
			got := Fit(s, width)
			if n := RuneLen(got); n != width {
				t.Errorf("Fit(%q, %d) = %q (%d runes), want %d runes", s, width, got, n, width)
			}
		}
	}
}

func TestFitTinyWidth(t *testing.T) {
	// Below the ellipsis minimum content is hard-truncated, still at
	// exactly the requested width.
	if got := Fit("abcde", 1); got != "a" {
		t.Errorf("Fit(abcde, 1) = %q, want %q", got, "a")
	}
	if got := Fit("abcde", 0); got != "" {
		t.Errorf("Fit(abcde, 0) = %q, want empty", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("5.5000001", 3); got != "5.5" {
		t.Errorf("TruncateRunes = %q, want 5.5", got)
	}
	if got := TruncateRunes("short", 10); got != "short" {
		t.Errorf("TruncateRunes = %q, want short", got)
	}
	if got := TruncateRunes("héllo", 2); got != "hé" {
		t.Errorf("TruncateRunes = %q, want hé", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q, want %q", got, "ab   ")
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight = %q, want input unchanged", got)
	}
}
