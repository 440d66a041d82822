package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash32_KnownValues(t *testing.T) {
	assert.Equal(t, uint32(2166136261), hash32(""))
	assert.Equal(t, uint32(3826002220), hash32("a"))
}

func TestHash32_Deterministic(t *testing.T) {
	key := "kora-footwear|ecommerce|zapatillas urbanas|sell_online|"
	assert.Equal(t, hash32(key), hash32(key))
}

func TestHashString31_KnownValueAndSign(t *testing.T) {
	// ((97*31)+98)*31+99
	assert.Equal(t, 96354, hashString31("abc"))
	assert.Equal(t, 0, hashString31(""))
	assert.GreaterOrEqual(t, hashString31("a very long key that wraps the 32-bit accumulator around zero"), 0)
}

func TestPickByHash_BucketsWithinOptions(t *testing.T) {
	options := []string{"a", "b", "c"}
	picked := pickByHash("some-key", options)
	assert.Contains(t, options, picked)

	// Empty options yield the zero value.
	assert.Equal(t, "", pickByHash("some-key", []string{}))
}

func TestPickBySeed_NegativeSeedAndEmptyList(t *testing.T) {
	list := []string{"x", "y"}
	assert.Equal(t, pickBySeed(list, 3), pickBySeed(list, -3))
	assert.Equal(t, "", pickBySeed(nil, 7))
}
