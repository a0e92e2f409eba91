package uuidbin

import "encoding/hex"

// UUIDToBin parses a textual UUID into its 16-byte binary form, the
// equivalent of MySQL's UUID_TO_BIN(). The input may be in any of the three
// accepted formats. If swap is true the timestamp bytes are reordered so that
// the binary value of a time-based UUID sorts chronologically; the same flag
// must then be passed to BinToUUID to recover the text form.
func UUIDToBin(s string, swap bool) (UUID, error) {
	uuid, err := Parse(s)
	if err != nil {
		return Nil, err
	}
	if swap {
		swapTimestamp(&uuid)
	}
	return uuid, nil
}

// BinToUUID formats a 16-byte binary UUID as canonical lowercase dashed
// text, the equivalent of MySQL's BIN_TO_UUID(). If swap is true the value
// is assumed to have been stored with reordered timestamp bytes and is
// unswapped first. Any input length other than 16 yields ErrInvalidLength.
func BinToUUID(b []byte, swap bool) (string, error) {
	uuid, err := FromBytes(b)
	if err != nil {
		return "", err
	}
	if swap {
		unswapTimestamp(&uuid)
	}
	return uuid.String(), nil
}

// FromBytes creates a UUID from a byte slice
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}
