package entity

import "maps"

// Record is the storage shape shared by every entity kind: a flat mapping of
// JSON field names to values. Values are strings, booleans, string lists or
// nested records.
type Record map[string]any

// Kind tags the collection a record belongs to.
type Kind string

const (
	KindClient    Kind = "client"
	KindTpp       Kind = "tpp"
	KindOrg       Kind = "org"
	KindScope     Kind = "scope"
	KindClientOrg Kind = "clientOrg"
	KindTppOrg    Kind = "tppOrg"
	KindEnv       Kind = "env"
)

// Kinds lists every kind in seeding order.
func Kinds() []Kind {
	return []Kind{KindClient, KindTpp, KindScope, KindOrg, KindClientOrg, KindTppOrg, KindEnv}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) String() string { return string(k) }

// Entity is implemented by every contract type. ToRecord is the single
// serialization path into the store and onto the wire.
type Entity interface {
	Kind() Kind
	ID() string
	ToRecord() Record
}

// Clone returns a copy of r. Nested records and string lists are copied too,
// so the clone can be mutated without touching the original.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

// Merge returns a new record with patch applied on top of r.
func (r Record) Merge(patch Record) Record {
	out := r.Clone()
	if out == nil {
		out = make(Record, len(patch))
	}
	maps.Copy(out, patch.Clone())
	return out
}

// String returns the value under key when it is a string.
func (r Record) String(key string) (string, bool) {
	v, ok := r[key].(string)
	return v, ok
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Record:
		return val.Clone()
	case map[string]any:
		return Record(val).Clone()
	case []string:
		return append([]string(nil), val...)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// AsRecord converts a nested value into a Record. JSON and YAML decoders
// produce plain maps, so both shapes are accepted.
func AsRecord(v any) (Record, bool) {
	switch val := v.(type) {
	case Record:
		return val, true
	case map[string]any:
		return Record(val), true
	default:
		return nil, false
	}
}

// AsStrings converts a list value into a string slice.
func AsStrings(v any) ([]string, bool) {
	switch val := v.(type) {
	case []string:
		return val, true
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func stringOr(r Record, key, fallback string) string {
	if v, ok := r.String(key); ok {
		return v
	}
	return fallback
}

func boolOr(r Record, key string, fallback bool) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return fallback
}

func stringsOr(r Record, key string) []string {
	if v, ok := AsStrings(r[key]); ok {
		return append([]string{}, v...)
	}
	return []string{}
}

func recordOr(r Record, key string) Record {
	if v, ok := AsRecord(r[key]); ok {
		return v
	}
	return Record{}
}
