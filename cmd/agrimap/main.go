package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"agrimap/pkg/aggregator"
	apiAdmin "agrimap/pkg/api/admin"
	apiSheet "agrimap/pkg/api/sheet"
	"agrimap/pkg/catalog"
	"agrimap/pkg/compiler"
	"agrimap/pkg/matcher"

	"github.com/spf13/pflag"
)

var (
	logPath         string
	matrixPath      string
	sheetName       string
	productsPath    string
	adminPath       string
	charset         string
	outputPath      string
	provinceCode    string
	wardCode        string
	driveThumbnails bool
	skipBlankRows   bool
	summary         bool
	textOutput      bool
	verbose         bool
	logCfg          slog.HandlerOptions = slog.HandlerOptions{
		Level: slog.LevelError,
	}
)

// logOutput keeps stdout free for the result unless it goes to a file.
func logOutput(resultPath string) *os.File {
	if resultPath == "" {
		return os.Stderr
	}
	return os.Stdout
}

func cmdLineParse() {
	pflag.StringVarP(&logPath, "log", "l", "", "path to log file. Default is stderr, or stdout when --output is set")
	pflag.StringVarP(&matrixPath, "matrix", "m", "", "path to the crop-area sheet export (.csv or .xlsx)")
	pflag.StringVar(&sheetName, "sheet", "", "worksheet to read from an .xlsx matrix. Default is the first sheet")
	pflag.StringVarP(&productsPath, "products", "p", "", "path to the product table CSV [name, legacy image, new image, price]")
	pflag.StringVarP(&adminPath, "admin", "a", "", "path to the administrative hierarchy JSON")
	pflag.StringVar(&charset, "charset", "utf-8", "charset of CSV inputs: utf-8, windows-1258 or windows-1252")
	pflag.StringVarP(&outputPath, "output", "o", "", "path to write the result to. Default is stdout")
	pflag.StringVar(&provinceCode, "province", "", "province code to look up in the compiled data")
	pflag.StringVar(&wardCode, "ward", "", "ward code inside --province to look up")
	pflag.BoolVar(&driveThumbnails, "drive-thumbnails", false, "rewrite Google Drive image links to thumbnail links")
	pflag.BoolVar(&skipBlankRows, "skip-blank-rows", false, "drop data rows whose province and ward cells are both empty")
	pflag.BoolVar(&summary, "summary", false, "print per-crop area totals over all provinces instead of the dataset")
	pflag.BoolVar(&textOutput, "text", false, "print a looked-up location as text instead of JSON")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) logging")
	pflag.Parse()
}

func newCompiler(products [][]string) (*compiler.Compiler, error) {
	var opts []compiler.CompilerOption
	if products != nil {
		opts = append(opts, compiler.WithProductTable(products))
	}
	if skipBlankRows {
		opts = append(opts, compiler.WithSkipBlankRows())
	}
	if driveThumbnails {
		opts = append(opts, compiler.WithCatalogOptions(catalog.WithDriveThumbnails()))
	}
	return compiler.NewCompiler(opts...)
}

func selection(h apiAdmin.Hierarchy) (apiAdmin.SelectedLocation, error) {
	if wardCode != "" {
		sel, ok := h.SelectWard(apiAdmin.Code(provinceCode), apiAdmin.Code(wardCode))
		if !ok {
			return sel, fmt.Errorf("ward %q of province %q not found in hierarchy", wardCode, provinceCode)
		}
		return sel, nil
	}
	sel, ok := h.SelectProvince(apiAdmin.Code(provinceCode))
	if !ok {
		return sel, fmt.Errorf("province %q not found in hierarchy", provinceCode)
	}
	return sel, nil
}

func run(ctx context.Context, out io.Writer) error {
	in, err := loadInputs(ctx)
	if err != nil {
		return err
	}
	c, err := newCompiler(in.products)
	if err != nil {
		return err
	}
	result := c.Compile(ctx, in.matrix)

	if summary {
		records := make(chan apiSheet.LocationRecord, len(result.Locations))
		for _, rec := range result.Locations {
			records <- rec
		}
		close(records)
		totals, err := aggregator.NewCropAreaSum(nil).Process(ctx, records)
		if err != nil {
			return err
		}
		return writeJSON(out, totals)
	}

	if provinceCode == "" {
		return writeJSON(out, result)
	}

	sel, err := selection(in.hierarchy)
	if err != nil {
		return err
	}
	rec, ok := matcher.NewIndex(in.hierarchy, result.Locations).Match(sel)
	if !ok {
		slog.InfoContext(ctx, "No data for location", slog.String("type", sel.Type.String()), slog.String("name", sel.Name))
		if textOutput {
			_, err := fmt.Fprintf(out, "%s\n  Không có dữ liệu\n", sel.Name)
			return err
		}
		return writeJSON(out, nil)
	}
	if textOutput {
		return writeText(out, sel.Name, rec)
	}
	return writeJSON(out, rec)
}

func main() {
	cmdLineParse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if verbose {
		logCfg.Level = slog.LevelDebug
	}
	output := logOutput(outputPath)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file %q: %v", logPath, err)
		}
		defer f.Close()
		output = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(output, &logCfg)))

	if matrixPath == "" {
		log.Fatal("Please provide the sheet export using --matrix")
	}
	if provinceCode != "" && adminPath == "" {
		log.Fatal("--province needs the administrative hierarchy, provide it with --admin")
	}
	if wardCode != "" && provinceCode == "" {
		log.Fatal("--ward needs --province")
	}

	var dst io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			log.Fatalf("failed to create output file %q: %v", outputPath, err)
		}
		defer f.Close()
		dst = f
	}

	if err := run(ctx, dst); err != nil {
		slog.Error("Error compiling sheet", "error", err)
		stop()
		os.Exit(1)
	}
}
