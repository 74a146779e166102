package utils

// HasFlag returns whether the given flags include every bit of flag.
func HasFlag[T ~uint8 | ~uint16 | ~uint32 | ~uint64](flags, flag T) bool {
	return flags&flag == flag
}
