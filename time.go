package uuidbin

import (
	"encoding/binary"
	"time"
)

// gregorianToUnix is the number of 100ns intervals between the UUID epoch
// (1582-10-15, the start of the Gregorian calendar) and the Unix epoch.
const gregorianToUnix = 122192928000000000

// Timestamp extracts the 60-bit timestamp of a version-1 UUID, counted in
// 100ns intervals since the Gregorian epoch. It returns 0 for any other
// version: the timestamp fields only carry clock values in version 1, which
// is also the only version the swap transform benefits.
func (u UUID) Timestamp() uint64 {
	if u.Version() != VersionTimeBased {
		return 0
	}
	low := uint64(binary.BigEndian.Uint32(u[0:4]))
	mid := uint64(binary.BigEndian.Uint16(u[4:6]))
	hi := uint64(binary.BigEndian.Uint16(u[6:8]) & 0x0fff)
	return hi<<48 | mid<<32 | low
}

// Time returns the embedded timestamp as a time.Time for a version-1 UUID,
// and the zero time for any other version.
func (u UUID) Time() time.Time {
	ts := u.Timestamp()
	if ts == 0 {
		return time.Time{}
	}
	ticks := int64(ts) - gregorianToUnix
	return time.Unix(ticks/10000000, (ticks%10000000)*100)
}
