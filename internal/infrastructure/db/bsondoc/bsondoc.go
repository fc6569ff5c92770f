// Package bsondoc converts driver-decoded BSON values into domain documents
// so every store hands out the same value shapes.
package bsondoc

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nextier/cms-api/internal/core/domain"
)

// ToDocument converts a decoded BSON map into a domain.Document.
//
//	bson.A / []any          → []any
//	bson.M / bson.D         → domain.Document
//	primitive.DateTime      → time.Time (UTC)
//	primitive.ObjectID      → hex string
func ToDocument(m bson.M) domain.Document {
	out := make(domain.Document, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}

func normalize(v any) any {
	switch t := v.(type) {
	case bson.M:
		return ToDocument(t)
	case domain.Document:
		return ToDocument(bson.M(t))
	case map[string]any:
		return ToDocument(bson.M(t))
	case bson.D:
		d := make(domain.Document, len(t))
		for _, e := range t {
			d[e.Key] = normalize(e.Value)
		}
		return d
	case bson.A:
		return normalizeSlice(t)
	case []any:
		return normalizeSlice(t)
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.ObjectID:
		return t.Hex()
	default:
		return v
	}
}

func normalizeSlice(items []any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = normalize(item)
	}
	return out
}

// Matches reports whether every filter key is present in doc with an equal
// value. An empty filter matches everything. Filter values go through the
// BSON codec first so they compare in the shape a stored value decodes to,
// and numbers compare by value across int32, int64 and double.
func Matches(doc, filter domain.Document) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(canonical(got), canonical(encoded(want))) {
			return false
		}
	}
	return true
}

// encoded returns v as it would read back after being stored.
func encoded(v any) any {
	raw, err := bson.Marshal(bson.M{"v": v})
	if err != nil {
		return normalize(v)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return normalize(v)
	}
	return normalize(m["v"])
}

func canonical(v any) any {
	switch t := v.(type) {
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case float64:
		return t
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = canonical(item)
		}
		return out
	case domain.Document:
		out := make(domain.Document, len(t))
		for k, item := range t {
			out[k] = canonical(item)
		}
		return out
	default:
		return v
	}
}
