package lang

import (
	"encoding/json"
	"strconv"
)

// Native converts a variable to its native Go representation: int64,
// float64, bool, or string for scalars; []any for arrays and lists;
// map[string]any for structs. A scalar whose text fails to parse is kept as
// its literal string.
func (v *Variable) Native() any {
	switch v.kind {
	case TypeInt:
		if n, err := strconv.ParseInt(v.raw, 10, 64); err == nil {
			return n
		}

		return v.raw

	case TypeDouble:
		if f, err := strconv.ParseFloat(v.raw, 64); err == nil {
			return f
		}

		return v.raw

	case TypeBool:
		return v.raw == "true"

	case TypeString:
		return v.raw

	case TypeArray, TypeList:
		elems := make([]any, len(v.items))
		for i, child := range v.items {
			elems[i] = child.Native()
		}

		return elems

	case TypeStruct:
		return v.toMap()

	default:
		return nil
	}
}

func (v *Variable) toMap() map[string]any {
	m := make(map[string]any, len(v.items))
	for _, child := range v.items {
		m[child.name] = child.Native()
	}

	return m
}

// MarshalJSON implements json.Marshaler for Variable.
func (v *Variable) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Native())
}

// ToMap converts the document's tree to a native Go map keyed by top-level
// variable names.
func (d *Document) ToMap() map[string]any {
	return d.root.toMap()
}

// MarshalJSON implements json.Marshaler for Document.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}
