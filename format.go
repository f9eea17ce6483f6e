package valuescale

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatterKind discriminates the persisted formatter states.
type FormatterKind string

const (
	// DecimalFormat prints fixed decimals with the digit grouping and
	// decimal separator of a locale, e.g. "1,234.50" for "en".
	DecimalFormat FormatterKind = "decimal"

	// CompactFormat prints values with SI prefixes, e.g. "1.5 k".
	CompactFormat FormatterKind = "compact"
)

// DefaultLocale and DefaultDecimals configure the formatter of a new scale.
const (
	DefaultLocale   = "en"
	DefaultDecimals = 2
	maxDecimals     = 15
)

// FormatterState is the persisted form of a Formatter.
type FormatterState struct {
	Kind     FormatterKind `json:"kind"`
	Locale   string        `json:"locale"`
	Decimals int           `json:"decimals"`
}

// DefaultFormatterState is the state of the formatter of a new scale.
func DefaultFormatterState() FormatterState {
	return FormatterState{Kind: DecimalFormat, Locale: DefaultLocale, Decimals: DefaultDecimals}
}

// A Formatter turns axis values into label texts.
type Formatter interface {
	Format(v float64) string
	State() FormatterState
}

// NewFormatter builds the formatter described by st.
func NewFormatter(st FormatterState) (Formatter, error) {
	switch st.Kind {
	case DecimalFormat, "":
		return NewDecimalFormatter(st.Locale, st.Decimals)
	case CompactFormat:
		return NewCompactFormatter(st.Decimals)
	}
	return nil, invalid("formatter", "unknown kind %q", st.Kind)
}

func checkDecimals(d int) error {
	if d < 0 || d > maxDecimals {
		return invalid("formatter", "decimals %d outside [0,%d]", d, maxDecimals)
	}
	return nil
}

// roundTo rounds v to d decimals and removes negative zero so that
// e.g. -0.0001 is not printed as "-0.00".
func roundTo(v float64, d int) float64 {
	p := math.Pow10(d)
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// ----------------------------------------------------------------------------
// DecimalFormatter

// DecimalFormatter formats values with a fixed number of decimals
// according to the conventions of a locale.
type DecimalFormatter struct {
	locale   string
	decimals int
	printer  *message.Printer
}

// NewDecimalFormatter returns a formatter for the BCP 47 locale tag (an
// empty locale selects DefaultLocale).
func NewDecimalFormatter(locale string, decimals int) (*DecimalFormatter, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("valuescale: formatter: locale %q: %v: %w", locale, err, ErrInvalidOption)
	}
	if err := checkDecimals(decimals); err != nil {
		return nil, err
	}
	return &DecimalFormatter{
		locale:   locale,
		decimals: decimals,
		printer:  message.NewPrinter(tag),
	}, nil
}

func (f *DecimalFormatter) Format(v float64) string {
	if !finite(v) {
		return ""
	}
	return f.printer.Sprint(number.Decimal(roundTo(v, f.decimals), number.Scale(f.decimals)))
}

func (f *DecimalFormatter) State() FormatterState {
	return FormatterState{Kind: DecimalFormat, Locale: f.locale, Decimals: f.decimals}
}

// ----------------------------------------------------------------------------
// CompactFormatter

// CompactFormatter prints values with SI prefixes and at most Decimals
// decimals, trailing zeros removed.
type CompactFormatter struct {
	decimals int
}

// NewCompactFormatter returns a compact formatter.
func NewCompactFormatter(decimals int) (*CompactFormatter, error) {
	if err := checkDecimals(decimals); err != nil {
		return nil, err
	}
	return &CompactFormatter{decimals: decimals}, nil
}

func (f *CompactFormatter) Format(v float64) string {
	if !finite(v) {
		return ""
	}
	return strings.TrimSpace(humanize.SIWithDigits(roundTo(v, f.decimals), f.decimals, ""))
}

func (f *CompactFormatter) State() FormatterState {
	return FormatterState{Kind: CompactFormat, Decimals: f.decimals}
}
