package streams_test

import (
	"context"
	"fmt"
	"strings"

	"agrimap/pkg/streams"
)

func ExampleNewCsvStream() {
	csvData := "Tỉnh,Xã,,,Lúa Total\nAn Giang,All,100,20,50\n"
	s, err := streams.NewCsvStream(strings.NewReader(csvData))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rows, _ := streams.ReadAll(context.Background(), s)
	for _, r := range rows {
		fmt.Println(len(r), r)
	}

	// Output:
	// 5 [Tỉnh Xã   Lúa Total]
	// 5 [An Giang All 100 20 50]
}

func ExampleNewJsonStream() {
	jsonData := `[{"foo":1},{"foo":2}]`
	s := streams.NewJsonStream(strings.NewReader(jsonData))
	ctx := context.Background()

	count := 0
	for {
		_, err := s.ReadJsonToken(ctx)
		if err != nil {
			break
		}
		count++
	}
	fmt.Println(count)
	// Output:
	// 10
}
