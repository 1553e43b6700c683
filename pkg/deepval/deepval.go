package deepval

import (
	"reflect"
	"time"

	"github.com/dmitrymomot/formkit/pkg/file"
)

// Equal reports structural equality of two field values.
//
// Objects (map[string]any) and arrays ([]any) are compared recursively.
// time.Time values are compared by instant, not by wall-clock
// representation or monotonic reading. *file.File values are compared
// by pointer identity first, then by metadata, so a re-picked file with
// identical metadata still counts as unchanged. Everything else falls
// back to reflect.DeepEqual.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case *file.File:
		bv, ok := b.(*file.File)
		if !ok {
			return false
		}
		if av == bv {
			return true
		}
		if av == nil || bv == nil {
			return false
		}
		return av.Filename == bv.Filename && av.Size == bv.Size && av.MIMEType == bv.MIMEType
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return false
		}
		return av.Equal(bv)
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			other, ok := bv[k]
			if !ok || !Equal(v, other) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i, v := range av {
			if !Equal(v, bv[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// Clone returns an independent snapshot of a field value.
//
// Objects and arrays are cloned recursively. time.Time is copied as a
// new value holding the same instant. *file.File is returned by
// reference: cloning it would break identity-based comparison and
// duplicate metadata for no benefit. Scalars are returned as-is.
func Clone(v any) any {
	switch tv := v.(type) {
	case nil:
		return nil
	case *file.File:
		return tv
	case time.Time:
		return tv
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, val := range tv {
			out[k] = Clone(val)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, val := range tv {
			out[i] = Clone(val)
		}
		return out
	default:
		return v
	}
}
