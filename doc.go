// Package uuidbin converts between the textual representation of a UUID and its
// compact 16-byte binary form, compatible with MySQL's IS_UUID(), UUID_TO_BIN()
// and BIN_TO_UUID() functions.
//
// The package never generates UUIDs. It validates, parses and formats existing
// ones, and optionally reorders the timestamp bytes of time-based UUIDs so that
// the binary form sorts chronologically - the layout recommended for BINARY(16)
// primary keys:
//   - https://dev.mysql.com/doc/refman/8.0/en/miscellaneous-functions.html
//   - https://mariadb.com/kb/en/library/guiduuid-performance/
//
// Three textual forms are accepted:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//
// Output text is always the canonical lowercase dashed form.
//
// Basic Usage:
//
//	if !uuidbin.IsUUID(s) {
//	    return fmt.Errorf("not a UUID: %q", s)
//	}
//
//	// Text to binary, timestamp bytes reordered for index locality.
//	bin, err := uuidbin.UUIDToBin("6ccd780c-baba-1026-9564-0040f4311e29", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// And back. The swap flag must match the one used for encoding.
//	text, err := uuidbin.BinToUUID(bin.Bytes(), true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Database Storage:
//
// BinaryUUID implements driver.Valuer and sql.Scanner with the swapped 16-byte
// column image, so a BINARY(16) primary key clusters time-based UUIDs:
//
//	_, err := db.Exec("INSERT INTO events (id, name) VALUES (?, ?)",
//	    uuidbin.BinaryUUID(id), name)
//
// Host Bindings:
//
// The udf subpackage adapts the three operations to a host function-registration
// boundary: argument count and types are validated once at registration, after
// which each call shuttles raw bytes and NULL markers.
//
// Thread Safety:
//
// Every operation is a pure function over fixed-size buffers. There is no shared
// state; all functions are safe for concurrent use without synchronization.
package uuidbin
