package domain

import "fmt"

// StoreIDKey is the key under which the store-native identifier appears in a
// Document returned by a store adapter, already rendered as an ID.
const StoreIDKey = "_id"

// PublicIDKey is the key clients see after normalization.
const PublicIDKey = "id"

// Document is a schemaless record: whatever fields the client sent, plus the
// store-assigned identifier. Values carry whatever types the JSON or BSON
// decoder produced.
type Document map[string]any

// Normalize maps a store-native document to its public representation: the
// identifier moves from "_id" to a string "id" field. The input is not
// mutated.
func Normalize(d Document) Document {
	out := make(Document, len(d))
	for k, v := range d {
		if k == StoreIDKey {
			continue
		}
		out[k] = v
	}
	if raw, ok := d[StoreIDKey]; ok {
		out[PublicIDKey] = fmt.Sprint(raw)
	}
	return out
}

// ID is the untyped view of a document's identifier, if present.
func (d Document) ID() (ID, bool) {
	switch v := d[StoreIDKey].(type) {
	case ID:
		return v, true
	case string:
		return ID(v), true
	}
	return "", false
}
