package streams

import "errors"

var (
	errUnknownCharset = errors.New("unknown charset")
	errNoSheets       = errors.New("workbook has no sheets")
	errSheetMissing   = errors.New("sheet not found in workbook")
)
