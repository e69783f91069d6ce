package chipdb

func isPowerOfTwo(v uint32) bool {
	return v&(v-1) == 0
}

// GuessSectorSize infers the sector size of a part that is not in the
// table, or whose measured flash size disagrees with it.
func GuessSectorSize(flashSizeKB uint32) uint32 {
	/* Every part with 4096 byte sectors has a flash size that is not a
	 * power of two */
	if !isPowerOfTwo(flashSizeKB) {
		return 4096
	}

	if flashSizeKB <= 128 {
		return 1024
	}

	return 2048
}
