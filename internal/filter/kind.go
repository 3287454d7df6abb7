package filter

import (
	"fmt"
	"strings"

	"csvsift/internal/records"
)

// Kind selects which field a predicate looks at. Values double as menu codes.
type Kind int

const (
	KindAge Kind = iota + 1
	KindCity
	KindLastName
	KindFirstName
	KindID
)

// Kinds lists every kind in menu order.
var Kinds = []Kind{KindAge, KindCity, KindLastName, KindFirstName, KindID}

var kindInfo = map[Kind]struct {
	label string // menu label
	noun  string // used in prompts and result headings
	field string
	rng   bool
}{
	KindAge:       {"Age (min to max)", "age", records.FieldAge, true},
	KindCity:      {"City", "city", records.FieldCity, false},
	KindLastName:  {"Last Name", "last name", records.FieldLastName, false},
	KindFirstName: {"First Name", "first name", records.FieldFirstName, false},
	KindID:        {"ID (min to max)", "ID", records.FieldID, true},
}

// Label is the menu text for k.
func (k Kind) Label() string { return kindInfo[k].label }

// Noun is the lower-case name used in prompts ("age", "last name", "ID").
func (k Kind) Noun() string { return kindInfo[k].noun }

// Field is the record field k filters on.
func (k Kind) Field() string { return kindInfo[k].field }

// IsRange reports whether k takes a numeric min/max instead of a text value.
func (k Kind) IsRange() bool { return kindInfo[k].rng }

// Code is the menu code for k.
func (k Kind) Code() string { return fmt.Sprint(int(k)) }

func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.field
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseCode maps a menu code ("1".."5") to its kind.
func ParseCode(code string) (Kind, bool) {
	code = strings.TrimSpace(code)
	for _, k := range Kinds {
		if k.Code() == code {
			return k, true
		}
	}
	return 0, false
}

// ParseName maps a field name such as "age" or "last_name" to its kind.
func ParseName(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "_")
	for _, k := range Kinds {
		if k.Field() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown filter %q (valid: id, first_name, last_name, age, city)", name)
}
