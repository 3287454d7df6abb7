// Package filter applies one predicate to a dataset and returns the matching
// records in dataset order.
package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"csvsift/internal/records"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrInvalidRange = errors.New("invalid range")
	ErrEmptyValue   = errors.New("value cannot be empty")
	ErrNotNumeric   = errors.New("value is not a whole number")
)

// Predicate decides whether a record belongs in a result.
type Predicate interface {
	// Match reports whether rec matches. An error means the record could not
	// be evaluated and is left out of the result.
	Match(rec records.Record) (bool, error)
	// Describe is the heading printed above the results.
	Describe() string
}

// Result is the ordered subset of a dataset selected by one predicate.
type Result struct {
	Records     []records.Record
	Skipped     int // rows whose field could not be evaluated
	Description string
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool { return len(r.Records) == 0 }

// Apply runs p over every record of ds in order. ds is not modified.
func Apply(ds *records.Dataset, p Predicate) Result {
	res := Result{Description: p.Describe()}
	if ds == nil {
		return res
	}
	for _, rec := range ds.Records {
		ok, err := p.Match(rec)
		if err != nil {
			res.Skipped++
			continue
		}
		if ok {
			res.Records = append(res.Records, rec)
		}
	}
	return res
}

// =============================================================================
// RANGE
// =============================================================================

// RangeFilter matches records whose integer field lies in [Min, Max].
// When Min == Max it is an equality filter.
type RangeFilter struct {
	Kind Kind
	Min  int
	Max  int
}

// NewRange validates 0 <= lo <= hi.
func NewRange(kind Kind, lo, hi int) (*RangeFilter, error) {
	if !kind.IsRange() {
		return nil, fmt.Errorf("%w: %s is not a numeric filter", ErrInvalidRange, kind)
	}
	if lo < 0 {
		return nil, fmt.Errorf("%w: minimum %s cannot be less than 0", ErrInvalidRange, kind.Noun())
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: minimum %s cannot be greater than maximum %s", ErrInvalidRange, kind.Noun(), kind.Noun())
	}
	return &RangeFilter{Kind: kind, Min: lo, Max: hi}, nil
}

func (f *RangeFilter) Match(rec records.Record) (bool, error) {
	raw := rec.Get(f.Kind.Field())
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrNotNumeric, f.Kind.Field(), raw)
	}
	if f.Min == f.Max {
		return n == f.Min, nil
	}
	return f.Min <= n && n <= f.Max, nil
}

func (f *RangeFilter) Describe() string {
	if f.Min == f.Max {
		return fmt.Sprintf("Filtered results for %s = %d:", f.Kind.Noun(), f.Min)
	}
	return fmt.Sprintf("Filtered results for %s between %d and %d:", f.Kind.Noun(), f.Min, f.Max)
}

// =============================================================================
// TEXT
// =============================================================================

// TextFilter matches records whose field equals Value after title-casing both.
type TextFilter struct {
	Kind  Kind
	Value string // already title-cased
}

// NewText trims and title-cases value, rejecting empty input.
func NewText(kind Kind, value string) (*TextFilter, error) {
	if kind.IsRange() {
		return nil, fmt.Errorf("%s is a numeric filter", kind)
	}
	value = TitleCase(strings.TrimSpace(value))
	if value == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyValue, kind.Noun())
	}
	return &TextFilter{Kind: kind, Value: value}, nil
}

func (f *TextFilter) Match(rec records.Record) (bool, error) {
	return TitleCase(rec.Get(f.Kind.Field())) == f.Value, nil
}

func (f *TextFilter) Describe() string {
	return fmt.Sprintf("Filtered results for %s = %s:", f.Kind.Noun(), f.Value)
}

// TitleCase upper-cases the first letter of each word and lower-cases the rest.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
