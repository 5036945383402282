package names

import "testing"

func TestCountry(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"[COL] ", "COL"},
		{" [COL] ", "COL"},
		{" [] ", ""},
		{" Invalid ", ""},
		{"[COL] [ESP]", ""}, // ambiguous
		{"[col]", ""},       // lowercase
		{"[COLO]", ""},      // four letters
		{"Juan Perez [ARG]", "ARG"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Country(tt.raw); got != tt.want {
				t.Errorf("Country(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRemoveSeeds(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "range seed with trailing spaces",
			raw:  "Pedro Gutiérrez Pedro Gutiérrez [5/8]  ",
			want: "Pedro Gutiérrez Pedro Gutiérrez",
		},
		{
			name: "single seed with trailing tab",
			raw:  "Manuel Orozco [1]\t",
			want: "Manuel Orozco",
		},
		{
			name: "leading whitespace kept",
			raw:  "  Ana Diaz [2]",
			want: "  Ana Diaz",
		},
		{
			name: "country code untouched",
			raw:  "Ana Diaz [COL]",
			want: "Ana Diaz [COL]",
		},
		{
			name: "no annotation",
			raw:  "Ana Diaz",
			want: "Ana Diaz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveSeeds(tt.raw)
			if got != tt.want {
				t.Errorf("RemoveSeeds(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			if again := RemoveSeeds(got); again != got {
				t.Errorf("RemoveSeeds not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"  Manuel Orozco [1] [COL] ", "Manuel Orozco"},
		{"[ESP] Ana Diaz [3/4]", "Ana Diaz"},
		{"Ana Diaz ", "Ana Diaz"},
		{"Bye", "Bye"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := Clean(tt.raw)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			if again := Clean(got); again != got {
				t.Errorf("Clean not idempotent: %q -> %q", got, again)
			}
		})
	}
}

// A single pass removes the innermost annotation only, so nested brackets
// need more than one pass to disappear.
func TestNestedSeeds(t *testing.T) {
	for _, fn := range []struct {
		name  string
		strip func(string) string
	}{
		{"RemoveSeeds", RemoveSeeds},
		{"Clean", Clean},
	} {
		t.Run(fn.name, func(t *testing.T) {
			once := fn.strip("[[1]1]")
			if once != "[1]" {
				t.Errorf("%s(%q) = %q, want %q", fn.name, "[[1]1]", once, "[1]")
			}
			if twice := fn.strip(once); twice != "" {
				t.Errorf("%s(%q) = %q, want empty", fn.name, once, twice)
			}
		})
	}
}
