package vtf

// ComputeMipLevels derives the mip count the console header does not store.
//
// With noMip set the texture has a single level. Otherwise the smaller
// dimension is halved until it reaches 1, counting the starting level, so
// 256x256 gives 9 and 3x5 gives 2. A zero dimension never enters the loop
// and yields 1.
func ComputeMipLevels(width, height uint16, noMip bool) uint8 {
	if noMip {
		return 1
	}
	size := min(width, height)
	count := uint8(1)
	for size > 1 {
		size >>= 1
		count++
	}
	return count
}
