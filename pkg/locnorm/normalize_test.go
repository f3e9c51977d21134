package locnorm

import (
	"testing"

	"github.com/xyproto/randomstring"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"Province prefix", "Tỉnh Hà Nội", "hanoi"},
		{"Plain ascii", "ha noi", "hanoi"},
		{"Uppercase accents", "HÀ NỘI", "hanoi"},
		{"City prefix", "Thành phố Hồ Chí Minh", "hochiminh"},
		{"Abbreviated city prefix", "TP. Hồ Chí Minh", "hochiminh"},
		{"Ward prefix", "Phường Bến Nghé", "bennghe"},
		{"Commune prefix", "Xã Tân Thành", "tanthanh"},
		{"Only one prefix", "Tỉnh Tỉnh Lộ", "tinhlo"},
		{"D stroke", "Đắk Lắk", "daklak"},
		{"Trailing total", "An Giang Total", "angiang"},
		{"Leading all", "All Cần Thơ", "cantho"},
		{"Vietnamese aggregate", "Đồng Tháp Tổng cộng", "dongthap"},
		{"Bare all kept", "All", "all"},
		{"Punctuation", "Bà Rịa - Vũng Tàu", "bariavungtau"},
		{"Digits kept", "Phường 12", "12"},
		{"Extra whitespace", "  Tân \t Thành  ", "tanthanh"},
		{"Decomposed input", "Hà Nội", "hanoi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Tỉnh Hà Nội", "Xã All", "Total", "tất cả", "Thị xã Sơn Tây", "  ", "Ω≈ç√",
	}
	for range 200 {
		inputs = append(inputs, randomstring.HumanFriendlyEnglishString(12))
		inputs = append(inputs, "Xã "+randomstring.HumanFriendlyEnglishString(6)+" total")
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestIsAggregate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"All", true},
		{"TOTAL", true},
		{"Tất cả", true},
		{"Tổng cộng", true},
		{"Tân Thành", false},
	}
	for _, tt := range tests {
		if got := IsAggregate(tt.in); got != tt.want {
			t.Errorf("IsAggregate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal("Tỉnh An Giang", "an giang") {
		t.Errorf("Equal() = false for prefixed variant")
	}
	if Equal("Tân Thành", "Tân Phú") {
		t.Errorf("Equal() = true for different wards")
	}
}
