package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	apiSheet "agrimap/pkg/api/sheet"
	num "agrimap/pkg/numeric"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func figure(v string) string {
	if apiSheet.IsAbsent(v) {
		return num.Placeholder
	}
	return num.FormatVietnamese(v)
}

// writeText prints a location record the way the info panel lays it out.
func writeText(w io.Writer, title string, rec apiSheet.LocationRecord) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "  Tổng diện tích thực tế: %s ha\n", figure(rec.TotalArea))
	fmt.Fprintf(&b, "  Cơ hội thị trường: %s\n", figure(rec.Opportunity))
	for _, crop := range rec.Crops {
		fmt.Fprintf(&b, "  %s: %s ha, cơ hội %s\n", crop.Name, figure(crop.TotalArea), figure(crop.Opportunity))
		for _, stage := range crop.Stages {
			fmt.Fprintf(&b, "    %s: %s ha", stage.Name, figure(stage.TotalArea))
			if len(stage.Pests) > 0 {
				fmt.Fprintf(&b, " [%s]", strings.Join(stage.Pests, ", "))
			}
			b.WriteByte('\n')
			for _, m := range stage.Medicines {
				fmt.Fprintf(&b, "      %s: %s\n", m.Name, figure(m.Value))
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
