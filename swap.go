package uuidbin

// The timestamp of a version-1 UUID is split across the first three fields
// with the low-order bytes first: time_low[0:4], time_mid[4:6], time_hi[6:8].
// Stored as-is, consecutive timestamps scatter across an index. The two
// transforms below reorder those eight bytes so the high-order time bytes
// lead, preserving each field's internal byte order. Bytes [8:16) are never
// touched.

// swapTimestamp rewrites bytes [0:8) from
// (time_low, time_mid, time_hi) to (time_hi, time_mid, time_low).
func swapTimestamp(u *UUID) {
	var low [4]byte
	copy(low[:], u[0:4])
	u[0], u[1] = u[6], u[7]
	u[2], u[3] = u[4], u[5]
	copy(u[4:8], low[:])
}

// unswapTimestamp is the exact inverse of swapTimestamp, recovering
// (time_low, time_mid, time_hi) order.
func unswapTimestamp(u *UUID) {
	var low [4]byte
	copy(low[:], u[4:8])
	u[4], u[5] = u[2], u[3]
	u[6], u[7] = u[0], u[1]
	copy(u[0:4], low[:])
}
