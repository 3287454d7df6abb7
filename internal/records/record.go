// Package records holds the Record and Dataset types and reads and writes them
// as comma-delimited files with a header row.
package records

// Well-known field names of the people files csvsift works on.
const (
	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldAge         = "age"
	FieldCity        = "city"
	FieldPhoneNumber = "phone_number"
)

// Record is one data row as an ordered field name -> value mapping.
// All values are kept as text; numeric fields are parsed by whoever needs them.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord pairs keys with values. Missing values become empty strings and
// values without a key are dropped.
func NewRecord(keys, values []string) Record {
	m := make(map[string]string, len(keys))
	for i, k := range keys {
		if i < len(values) {
			m[k] = values[i]
		} else {
			m[k] = ""
		}
	}
	return Record{keys: keys, values: m}
}

// Get returns the value of field, or "" when the record has no such field.
func (r Record) Get(field string) string {
	return r.values[field]
}

// Lookup returns the value of field and whether the field exists.
func (r Record) Lookup(field string) (string, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Keys returns the field names in file order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Values returns the field values in key order.
func (r Record) Values() []string {
	out := make([]string, len(r.keys))
	for i, k := range r.keys {
		out[i] = r.values[k]
	}
	return out
}

// Equal reports whether both records carry the same keys in the same order
// with the same values.
func (r Record) Equal(o Record) bool {
	if len(r.keys) != len(o.keys) {
		return false
	}
	for i, k := range r.keys {
		if o.keys[i] != k || o.values[k] != r.values[k] {
			return false
		}
	}
	return true
}

// Dataset is the full ordered set of records loaded from one file.
// Filters never modify it.
type Dataset struct {
	Path    string
	Header  []string
	Records []Record
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}
