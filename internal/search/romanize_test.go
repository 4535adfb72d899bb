package search

import "testing"

func TestRomanize_Chinese(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"two character name", "李四", "lisi"},
		{"two character name 2", "张三", "zhangsan"},
		{"three character name", "张三丰", "zhangsanfeng"},
		{"single character", "王", "wang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Romanize(tt.input); got != tt.expected {
				t.Errorf("Romanize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRomanize_LatinPassthrough(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii lower-cased", "Alice Smith", "alice smith"},
		{"already lowercase", "bob", "bob"},
		{"digits and punctuation", "agent-007", "agent-007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Romanize(tt.input); got != tt.expected {
				t.Errorf("Romanize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRomanize_DiacriticsFold(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"umlaut", "Müller", "muller"},
		{"acute accent", "José", "jose"},
		{"grave and circumflex", "Àlbèrt Crêpe", "albert crepe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Romanize(tt.input); got != tt.expected {
				t.Errorf("Romanize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRomanize_MixedScript(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"han then latin", "张san", "zhangsan"},
		{"latin then han", "A张", "azhang"},
		{"han with space", "张 三", "zhang san"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Romanize(tt.input); got != tt.expected {
				t.Errorf("Romanize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRomanize_UnmappableRunesPassThrough(t *testing.T) {
	// Runes with no transliteration survive unchanged instead of erroring.
	if got := Romanize("李😀四"); got != "li😀si" {
		t.Errorf("Romanize(%q) = %q, want %q", "李😀四", got, "li😀si")
	}
}

func TestRomanize_Empty(t *testing.T) {
	if got := Romanize(""); got != "" {
		t.Errorf("Romanize(\"\") = %q, want empty string", got)
	}
}

func TestRomanize_Deterministic(t *testing.T) {
	inputs := []string{"张三丰", "Alice", "李四2026", "Müller 王"}
	for _, input := range inputs {
		first := Romanize(input)
		for i := 0; i < 3; i++ {
			if got := Romanize(input); got != first {
				t.Fatalf("Romanize(%q) not deterministic: %q then %q", input, first, got)
			}
		}
	}
}
