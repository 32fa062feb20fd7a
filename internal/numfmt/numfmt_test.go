package numfmt

import "testing"

func TestParseGrouped(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "plain integer", input: "1000", want: 1000},
		{name: "grouped integer", input: "1,000,000", want: 1000000},
		{name: "leading and trailing spaces", input: " 25,000 ", want: 25000},
		{name: "zero", input: "0", want: 0},
		{name: "negative", input: "-1,500", want: -1500},
		{name: "empty string", input: "", wantErr: true},
		{name: "separators only", input: ",,,", wantErr: true},
		{name: "non-numeric", input: "abc", wantErr: true},
		{name: "mixed digits and letters", input: "12a4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGrouped(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseGrouped(%q) = %d, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGrouped(%q) returned unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseGrouped(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatGrouped(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1000000, "1,000,000"},
		{-25000, "-25,000"},
	}

	for _, tt := range tests {
		if got := FormatGrouped(tt.input); got != tt.want {
			t.Errorf("FormatGrouped(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatGroupedFloat(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{100000, "100,000"},
		{1234567.5, "1,234,567.5"},
	}

	for _, tt := range tests {
		if got := FormatGroupedFloat(tt.input); got != tt.want {
			t.Errorf("FormatGroupedFloat(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 999, 1000, 123456789} {
		got, err := ParseGrouped(FormatGrouped(n))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", n, err)
		}
		if got != n {
			t.Errorf("round trip of %d = %d", n, got)
		}
	}
}
