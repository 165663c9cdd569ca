package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trustmesh/reputation/model/market"
)

func TestHexToAddress(t *testing.T) {
	a := market.HexToAddress("0000000000000001")
	assert.Equal(t, market.BytesToAddress([]byte{1}), a)
	assert.Equal(t, "0000000000000001", a.Hex())
	assert.Equal(t, a.Hex(), a.String())

	// a 0x prefix is accepted
	assert.Equal(t, a, market.HexToAddress("0x0000000000000001"))
}

func TestBytesToAddress(t *testing.T) {
	// short input is left-padded with zeroes
	a := market.BytesToAddress([]byte{0xde, 0xad})
	assert.Equal(t, "000000000000dead", a.Hex())

	// long input is cropped from the left
	b := market.BytesToAddress([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.Equal(t, []byte{2, 3, 4, 5, 6, 7, 8, 9}, b.Bytes())
}

func TestAddressIsEmpty(t *testing.T) {
	assert.True(t, market.EmptyAddress.IsEmpty())
	assert.True(t, market.Address{}.IsEmpty())
	assert.False(t, market.BytesToAddress([]byte{1}).IsEmpty())
}
