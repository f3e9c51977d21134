package streams

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CsvOption configures a CSV stream
type CsvOption func(*csvConfig) error

type csvConfig struct {
	decoder transform.Transformer
	comma   rune
}

// WithCharset decodes the input from the named charset. Supported names are
// utf-8 (default, BOM stripped), windows-1258 (legacy Vietnamese exports) and
// windows-1252.
func WithCharset(name string) CsvOption {
	return func(c *csvConfig) error {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "", "utf-8", "utf8":
			c.decoder = unicode.BOMOverride(unicode.UTF8.NewDecoder())
		case "windows-1258", "cp1258":
			c.decoder = charmap.Windows1258.NewDecoder()
		case "windows-1252", "cp1252":
			c.decoder = charmap.Windows1252.NewDecoder()
		default:
			return fmt.Errorf("%w: %q", errUnknownCharset, name)
		}
		return nil
	}
}

// WithComma sets the field delimiter
func WithComma(r rune) CsvOption {
	return func(c *csvConfig) error {
		c.comma = r
		return nil
	}
}
