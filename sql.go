package uuidbin

import (
	"database/sql/driver"
	"fmt"
)

// BinaryUUID is a UUID whose database image is the swapped 16-byte binary
// form, suitable for a BINARY(16) column: time-based (version 1) UUIDs
// stored through it sort chronologically, which keeps inserts clustered at
// the right-hand side of the primary key index. The swap is harmless but
// pointless for random (version 4) UUIDs.
//
// Value always writes the swapped form and Scan always unswaps a 16-byte
// source, so the flag discipline required by UUIDToBin/BinToUUID is handled
// by the type itself. Textual sources are parsed as-is.
type BinaryUUID UUID

// UUID returns the identifier in natural field order.
func (u BinaryUUID) UUID() UUID {
	return UUID(u)
}

// String returns the canonical string representation of the UUID
func (u BinaryUUID) String() string {
	return UUID(u).String()
}

// Value implements the driver.Valuer interface. The returned value is the
// 16-byte binary form with timestamp bytes reordered.
func (u BinaryUUID) Value() (driver.Value, error) {
	b := UUID(u)
	swapTimestamp(&b)
	return b[:], nil
}

// Scan implements the sql.Scanner interface. A 16-byte source is taken as
// the swapped binary form; textual sources are parsed like UUID.Scan.
func (u *BinaryUUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = BinaryUUID(id)
		return nil
	case []byte:
		if len(src) == 16 {
			var id UUID
			copy(id[:], src)
			unswapTimestamp(&id)
			*u = BinaryUUID(id)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = BinaryUUID(id)
		return nil
	default:
		return fmt.Errorf("uuidbin: cannot scan type %T into BinaryUUID", src)
	}
}
