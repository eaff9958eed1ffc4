package validation

import (
	"encoding/json"
	"math"
	"slices"

	"github.com/ArowuTest/blood-donation-backend/internal/apperr"
	"go.mongodb.org/mongo-driver/bson"
)

// protected fields are owned by the store and the service, never by clients
var protected = map[string]bool{
	"id":        true,
	"_id":       true,
	"createdAt": true,
	"updatedAt": true,
}

// ValidateCreate checks payload against the schema for creation and returns
// the subset of known fields, normalised, ready to be decoded over a model
// carrying defaults. Unknown keys are dropped.
func ValidateCreate(s *Schema, payload map[string]any) (map[string]any, error) {
	if len(payload) == 0 {
		return nil, apperr.MalformedPayload(nil)
	}
	for _, name := range s.Required() {
		if isEmpty(payload[name]) {
			return nil, apperr.MissingField(name)
		}
	}

	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		raw, ok := payload[f.Name]
		if !ok || raw == nil {
			continue
		}
		v, err := normalize(&f, raw)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		out[f.Name] = v
	}
	return out, nil
}

// ValidateUpdate checks a partial update payload against the schema's
// allow-list and returns the $set document. Required-ness is not re-checked:
// an update may carry any subset of fields.
func ValidateUpdate(s *Schema, payload map[string]any) (bson.M, error) {
	if len(payload) == 0 {
		return nil, apperr.MalformedPayload(nil)
	}
	// sorted so the reported field is deterministic
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	set := bson.M{}
	for _, k := range keys {
		f, ok := s.Lookup(k)
		if !ok || protected[k] {
			return nil, apperr.Validation("Field not updatable: %s", k)
		}
		v, err := normalize(f, payload[k])
		if err != nil {
			return nil, err
		}
		if v == nil {
			if f.Enum != nil && f.Type == String {
				return nil, apperr.Validation("Invalid %s: %v", k, payload[k])
			}
			v = zeroValue(f)
		}
		set[k] = v
	}
	return set, nil
}

// Decode copies normalised fields onto dst, which should already carry the
// kind's defaults. Fields absent from fields keep their defaults.
func Decode(fields map[string]any, dst any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return apperr.MalformedPayload(err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return apperr.MalformedPayload(err)
	}
	return nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

// normalize type-checks v against f and converts it to the value stored.
// A nil result means "treat as unset".
func normalize(f *Field, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch f.Type {
	case String:
		s, ok := v.(string)
		if !ok {
			return nil, invalidValue(f.Name)
		}
		if s == "" {
			if f.Enum != nil {
				return nil, nil
			}
			return s, nil
		}
		if f.Enum != nil && !slices.Contains(f.Enum, s) {
			return nil, apperr.Validation("Invalid %s: %s", f.Name, s)
		}
		return s, nil
	case Int:
		n, ok := toInt(v)
		if !ok {
			return nil, invalidValue(f.Name)
		}
		return n, nil
	case Number:
		n, ok := toFloat(v)
		if !ok {
			return nil, invalidValue(f.Name)
		}
		return n, nil
	case Bool:
		b, ok := v.(bool)
		if !ok {
			return nil, invalidValue(f.Name)
		}
		return b, nil
	case StringList:
		list, ok := toStrings(v)
		if !ok {
			return nil, invalidValue(f.Name)
		}
		for _, s := range list {
			if f.Enum != nil && !slices.Contains(f.Enum, s) {
				return nil, apperr.Validation("Invalid %s: %s", f.Name, s)
			}
		}
		return list, nil
	case Object:
		return normalizeObject(f, v)
	default:
		return nil, invalidValue(f.Name)
	}
}

func normalizeObject(f *Field, v any) (any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		// an empty JSON array is how loosely-typed clients send an empty object
		if arr, isArr := v.([]any); isArr && len(arr) == 0 {
			return bson.M{}, nil
		}
		return nil, invalidValue(f.Name)
	}
	out := bson.M{}
	for k, sv := range obj {
		typ, ok := f.Sub[k]
		if !ok {
			return nil, apperr.Validation("Unknown field: %s.%s", f.Name, k)
		}
		if sv == nil {
			continue
		}
		nv, err := normalize(&Field{Name: f.Name + "." + k, Type: typ}, sv)
		if err != nil {
			return nil, err
		}
		out[k] = nv
	}
	return out, nil
}

func zeroValue(f *Field) any {
	switch f.Type {
	case Int:
		return int64(0)
	case Number:
		return float64(0)
	case Bool:
		return false
	case StringList:
		return []string{}
	case Object:
		return bson.M{}
	default:
		return ""
	}
}

func invalidValue(name string) error {
	return apperr.Validation("Invalid value for field: %s", name)
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(n)
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

// floatToInt accepts whole numbers that fit in an int64
func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toStrings(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
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
