package compiler

import (
	"reflect"
	"testing"

	apiSheet "agrimap/pkg/api/sheet"
)

func blankHeader(width int) [][]string {
	h := make([][]string, apiSheet.HeaderRows)
	for i := range h {
		h[i] = make([]string, width)
	}
	return h
}

func TestCompileCropTotalHeuristic(t *testing.T) {
	matrix := blankHeader(5)
	matrix[0][4] = "Lúa Total"
	matrix = append(matrix, []string{"An Giang", "All", "100", "20", "50"})

	got := Compile(t.Context(), matrix, nil)
	if len(got.Locations) != 1 {
		t.Fatalf("got %d locations, want 1", len(got.Locations))
	}
	loc := got.Locations[0]
	if loc.TotalArea != "100" || loc.Opportunity != "20" {
		t.Errorf("location figures = %q/%q, want 100/20", loc.TotalArea, loc.Opportunity)
	}
	if len(loc.Crops) != 1 {
		t.Fatalf("got %d crops, want 1", len(loc.Crops))
	}
	if loc.Crops[0].Name != "Lúa" || loc.Crops[0].TotalArea != "50" {
		t.Errorf("crop = %+v, want Lúa with totalArea 50", loc.Crops[0])
	}
}

func TestCompileTotalsPrecedence(t *testing.T) {
	matrix := blankHeader(4)
	matrix = append(matrix,
		[]string{"An Giang Total", "", "12", "0"},
		[]string{"An Giang", "All", "5", "2"},
		[]string{"An Giang", "Tân Thành", "3", "1"},
	)
	got := Compile(t.Context(), matrix, nil)
	if len(got.Locations) != 2 {
		t.Fatalf("got %d locations, want 2", len(got.Locations))
	}
	if p := got.Locations[0]; p.TotalArea != "12" || p.Opportunity != "2" {
		t.Errorf("province record = %q/%q, want 12/2", p.TotalArea, p.Opportunity)
	}
	if w := got.Locations[1]; w.TotalArea != "3" {
		t.Errorf("ward record totalArea = %q, want own value 3", w.TotalArea)
	}
}

func TestCompileTotalsAfterProvinceRow(t *testing.T) {
	matrix := blankHeader(4)
	matrix = append(matrix,
		[]string{"Cần Thơ", "", "5", "2"},
		[]string{"Cần Thơ", "Total", "40", "9"},
	)
	got := Compile(t.Context(), matrix, nil)
	if len(got.Locations) != 1 {
		t.Fatalf("got %d locations, want 1", len(got.Locations))
	}
	if p := got.Locations[0]; p.TotalArea != "40" || p.Opportunity != "9" {
		t.Errorf("province record = %q/%q, want 40/9", p.TotalArea, p.Opportunity)
	}
}

func productHeader() [][]string {
	return [][]string{
		{"Tỉnh", "Xã", "", "Cây", "Lúa", "", "", "", "", "Cà phê", "Sầu riêng Total"},
		{"", "", "", "", "Đẻ nhánh", "", "", "Đẻ nhánh Total", "Trổ", "Ra hoa", ""},
		{"", "", "", "", "Rầy nâu", "Đạo ôn", "Rầy nâu", "", "Đạo ôn", "", ""},
		{"", "", "", "", "Anvil", "Filia", "Chess", "Diện tích thực tế", "Tilt", "Actara", "Diện tích thực tế"},
	}
}

func TestCompileNestedRecord(t *testing.T) {
	products := [][]string{
		{"name", "legacy", "new", "price"},
		{"Anvil", "http://old/anvil", "http://new/anvil", "100"},
		{"Tilt", "http://old/tilt", "", "50"},
	}
	matrix := append(productHeader(),
		[]string{"An Giang", "Tân Thành", "10", "4", "3", "0", "2", "8", "1", "", "0"},
	)
	got := Compile(t.Context(), matrix, products)
	if len(got.Locations) != 1 {
		t.Fatalf("got %d locations, want 1", len(got.Locations))
	}

	want := []apiSheet.CropRecord{
		{
			Name:        "Lúa",
			TotalArea:   "0",
			Opportunity: "0",
			Stages: []apiSheet.StageRecord{
				{
					// the "Đẻ nhánh Total" column folds into the same stage
					Name:        "Đẻ nhánh",
					TotalArea:   "8",
					Opportunity: "0",
					Medicines: []apiSheet.MedicineEntry{
						{Name: "Anvil", Value: "3", Pest: "Rầy nâu", ImageURL: "http://new/anvil"},
						{Name: "Chess", Value: "2", Pest: "Rầy nâu", ImageURL: "0"},
					},
					Pests: []string{"Rầy nâu"},
				},
				{
					Name:        "Trổ",
					TotalArea:   "0",
					Opportunity: "0",
					Medicines: []apiSheet.MedicineEntry{
						{Name: "Tilt", Value: "1", Pest: "Đạo ôn", ImageURL: "http://old/tilt"},
					},
					Pests: []string{"Đạo ôn"},
				},
			},
		},
	}
	if gotCrops := got.Locations[0].Crops; !reflect.DeepEqual(gotCrops, want) {
		t.Errorf("Crops =\n%+v\nwant\n%+v", gotCrops, want)
	}
}

func TestCompileAbsenceEquivalence(t *testing.T) {
	withEmpty := append(productHeader(), []string{"An Giang", "Tân Thành", "1", "1", "", "", "", "", "", "", ""})
	withZero := append(productHeader(), []string{"An Giang", "Tân Thành", "1", "1", "0", "0", "0", "0", "0", "0", "0"})

	a := Compile(t.Context(), withEmpty, [][]string{{"h"}})
	b := Compile(t.Context(), withZero, [][]string{{"h"}})
	if !reflect.DeepEqual(a.Locations, b.Locations) {
		t.Errorf("empty and zero cells compile differently:\n%+v\n%+v", a.Locations, b.Locations)
	}
	if len(a.Locations[0].Crops) != 0 {
		t.Errorf("absent cells produced crops: %+v", a.Locations[0].Crops)
	}
}

func TestCompileCropInvariant(t *testing.T) {
	matrix := append(productHeader(),
		[]string{"An Giang", "", "1", "1", "5", "", "", "", "", "7", "9"},
		[]string{"An Giang", "Tân Thành", "1", "1", "", "", "", "", "", "", ""},
		[]string{"Cần Thơ", "Phường 1"},
	)
	got := Compile(t.Context(), matrix, [][]string{{"h"}})
	for _, loc := range got.Locations {
		for _, crop := range loc.Crops {
			if len(crop.Stages) == 0 && apiSheet.IsAbsent(crop.TotalArea) {
				t.Errorf("%s/%s: crop %q has no stages and no area", loc.Province, loc.Ward, crop.Name)
			}
		}
	}
	first := got.Locations[0]
	names := []string{}
	for _, c := range first.Crops {
		names = append(names, c.Name)
	}
	if !reflect.DeepEqual(names, []string{"Lúa", "Cà phê", "Sầu riêng"}) {
		t.Errorf("crop order = %v", names)
	}
	if first.Crops[2].TotalArea != "9" || len(first.Crops[2].Stages) != 0 {
		t.Errorf("total-only crop = %+v", first.Crops[2])
	}
}

func TestCompileShortRows(t *testing.T) {
	matrix := append(productHeader(),
		[]string{"An Giang"},
		[]string{"", ""},
		[]string{"Đồng Tháp", "Mỹ An", "", "", "4"},
	)
	got := Compile(t.Context(), matrix, [][]string{{"h"}})
	if len(got.Locations) != 3 {
		t.Fatalf("got %d locations, want one per data row", len(got.Locations))
	}
	if got.Locations[0].TotalArea != "0" || got.Locations[0].Opportunity != "0" {
		t.Errorf("short row figures = %+v", got.Locations[0])
	}
	blank := got.Locations[1]
	if blank.Province != "" || blank.Ward != "" || blank.TotalArea != "0" || len(blank.Crops) != 0 {
		t.Errorf("blank row record = %+v", blank)
	}
	if got.Locations[2].Province != "Đồng Tháp" || len(got.Locations[2].Crops) != 1 {
		t.Errorf("row order or crops wrong: %+v", got.Locations[2])
	}
}

func TestCompileSkipBlankRows(t *testing.T) {
	matrix := append(productHeader(),
		[]string{"An Giang", "All", "5"},
		[]string{"", "", "", "", "4"},
		[]string{},
		[]string{"Đồng Tháp", "Mỹ An", "", "", "4"},
	)
	c, err := NewCompiler(WithProductTable([][]string{{"h"}}), WithSkipBlankRows())
	if err != nil {
		t.Fatalf("NewCompiler() error = %v", err)
	}
	got := c.Compile(t.Context(), matrix)
	var provinces []string
	for _, rec := range got.Locations {
		provinces = append(provinces, rec.Province)
	}
	if want := []string{"An Giang", "Đồng Tháp"}; !reflect.DeepEqual(provinces, want) {
		t.Errorf("provinces = %v, want %v", provinces, want)
	}
}

func TestCompileTooFewRows(t *testing.T) {
	for _, matrix := range [][][]string{nil, {}, {{"a"}, {"b"}, {"c"}}} {
		got := Compile(t.Context(), matrix, nil)
		if len(got.Locations) != 0 || got.Locations == nil {
			t.Errorf("Compile(%v).Locations = %v, want empty", matrix, got.Locations)
		}
		if got.ProductCatalog == nil {
			t.Errorf("Compile(%v).ProductCatalog is nil", matrix)
		}
	}
}

func TestCompileEmbeddedCatalog(t *testing.T) {
	matrix := [][]string{
		{"", "", "", "", "Lúa", ""},
		{"", "", "", "", "Mạ", ""},
		{"", "", "", "", "http://img/anvil", "http://img/area"},
		{"", "", "", "", "Anvil", "Diện tích thực tế"},
		{"An Giang", "Tân Thành", "1", "1", "2", "3"},
	}
	got := Compile(t.Context(), matrix, nil)
	want := apiSheet.ProductCatalog{"Anvil": {Image: "http://img/anvil", Price: "0"}}
	if !reflect.DeepEqual(got.ProductCatalog, want) {
		t.Errorf("ProductCatalog = %v, want %v", got.ProductCatalog, want)
	}
	med := got.Locations[0].Crops[0].Stages[0].Medicines
	if len(med) != 1 || med[0].ImageURL != "http://img/anvil" || med[0].Pest != "" {
		t.Errorf("medicines = %+v", med)
	}
}

func TestNewCompilerCustomToken(t *testing.T) {
	c, err := NewCompiler(WithTotalToken("tổng"))
	if err != nil {
		t.Fatalf("NewCompiler() error = %v", err)
	}
	matrix := blankHeader(5)
	matrix[0][4] = "Lúa tổng"
	matrix = append(matrix,
		[]string{"An Giang tổng", "", "99", ""},
		[]string{"An Giang", "", "1", "1", "6"},
	)
	got := c.Compile(t.Context(), matrix)
	if len(got.Locations) != 1 {
		t.Fatalf("got %d locations, want 1", len(got.Locations))
	}
	loc := got.Locations[0]
	if loc.TotalArea != "99" || loc.Crops[0].TotalArea != "6" {
		t.Errorf("location = %+v", loc)
	}
}
