package numeric

import (
	"errors"
	"testing"
)

func TestParseMagnitude(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"Integer", "100", "100", false},
		{"Thousands", "1,320", "1320", false},
		{"Decimal", "12.50", "12.50", false},
		{"Currency", "₫ 95,000", "95000", false},
		{"Whitespace", " 7 ", "7", false},
		{"Text", "abc", "", true},
		{"Empty", "", "", true},
		{"Infinity", "Inf", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMagnitude(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMagnitude(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrNotANumber) {
					t.Errorf("error %v is not ErrNotANumber", err)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("ParseMagnitude(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestSum(t *testing.T) {
	got, err := Sum("1,000", "0.1", "0.2")
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "1000.3" {
		t.Errorf("Sum() = %s, want 1000.3", got)
	}
	if _, err := Sum("1", "x"); !errors.Is(err, ErrNotANumber) {
		t.Errorf("Sum() error = %v, want ErrNotANumber", err)
	}
}

func TestFormatVietnamese(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "---"},
		{"0", "0"},
		{"999", "999"},
		{"1000", "1.000"},
		{"1,320", "1.320"},
		{"1234567.5", "1.234.567,5"},
		{"12.3456", "12,346"},
		{"12.500", "12,5"},
		{"-2500", "-2.500"},
		{"n/a", "n/a"},
	}
	for _, tt := range tests {
		if got := FormatVietnamese(tt.in); got != tt.want {
			t.Errorf("FormatVietnamese(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
