package services

// The two hash functions below are the only sources of pseudo-randomness in
// the generation core. They are fixed, order-sensitive string hashes so that
// identical briefs always reproduce identical creative choices across runs
// and across implementations. Do not replace them with runtime hashing.

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// hash32 is FNV-1a over the string's code points.
func hash32(s string) uint32 {
	h := uint32(fnvOffset32)
	for _, r := range s {
		h ^= uint32(r)
		h *= fnvPrime32
	}
	return h
}

// pickByHash deterministically selects one option by bucketing the key's
// 32-bit hash. Returns the zero value for an empty option list.
func pickByHash[T any](key string, options []T) T {
	var zero T
	if len(options) == 0 {
		return zero
	}
	return options[int(hash32(key)%uint32(len(options)))]
}

// hashString31 is the classic 31-multiplier string hash with 32-bit
// wraparound, used to split compositions by slug/site id independently of
// the numeric seed.
func hashString31(s string) int {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}

// pickBySeed selects list[abs(seed) % len]. Empty lists yield "".
func pickBySeed(list []string, seed int) string {
	if len(list) == 0 {
		return ""
	}
	if seed < 0 {
		seed = -seed
	}
	return list[seed%len(list)]
}
