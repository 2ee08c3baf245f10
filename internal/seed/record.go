package seed

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is one generated row. Fields keep their insertion order, which is the
// column order of CSV and SQL output and the key order of JSON and YAML.
type Record struct {
	fields *orderedmap.OrderedMap[string, any]
}

// NewRecord creates an empty record.
func NewRecord() Record {
	return Record{fields: orderedmap.New[string, any]()}
}

// Set adds or replaces a field. Replacing keeps the original position.
func (r Record) Set(key string, value any) {
	r.fields.Set(key, value)
}

// Get returns a field value.
func (r Record) Get(key string) (any, bool) {
	return r.fields.Get(key)
}

// Len returns the number of fields.
func (r Record) Len() int {
	return r.fields.Len()
}

// Keys returns the field names in order.
func (r Record) Keys() []string {
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Values returns the field values in key order.
func (r Record) Values() []any {
	values := make([]any, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value)
	}
	return values
}

// MarshalJSON encodes the record as a JSON object in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	return r.fields.MarshalJSON()
}

// MarshalYAML encodes the record as a YAML mapping in field order.
func (r Record) MarshalYAML() (interface{}, error) {
	return r.fields.MarshalYAML()
}
