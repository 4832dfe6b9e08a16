package language

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"two letter", "es", "es", false},
		{"three letter", "spa", "es", false},
		{"regional variant", "es-MX", "es", false},
		{"uppercase", "EN", "en", false},
		{"padded", "  en  ", "en", false},
		{"empty", "", "", true},
		{"unknown", "zz", "", true},
		{"garbage", "not a language", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	if got := Display("es"); got != "Spanish" {
		t.Fatalf("Display(es) = %q", got)
	}
	if got := Display("en"); got != "English" {
		t.Fatalf("Display(en) = %q", got)
	}
	if got := Display("???"); got != "???" {
		t.Fatalf("unparseable codes must pass through, got %q", got)
	}
}
