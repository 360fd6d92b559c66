package domain

// ID is an opaque document identifier assigned by the store. Its wire form is
// 24 hex characters; anything else is rejected before the store is touched.
type ID string

// ParseID validates and canonicalizes an identifier. Uppercase hex is
// accepted but folded to lowercase, so a hotel has exactly one hotel_id
// spelling no matter how the client wrote the path.
func ParseID(s string) (ID, error) {
	if len(s) != 24 {
		return "", &InvalidIDError{Value: s}
	}
	b := []byte(s)
	for i, c := range b {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
			b[i] = c + ('a' - 'A')
		default:
			return "", &InvalidIDError{Value: s}
		}
	}
	return ID(b), nil
}

func (id ID) String() string { return string(id) }
