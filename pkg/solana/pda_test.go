package solana

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProgramAddress_Agrees_With_Create(t *testing.T) {
	programID := sha256.Sum256([]byte("some program"))
	seeds := [][]byte{[]byte("config")}

	addr, bump, err := FindProgramAddressBytes(seeds, programID[:])
	require.NoError(t, err)

	recreated, err := CreateProgramAddressBytes(append(seeds, []byte{bump}), programID[:])
	require.NoError(t, err)
	assert.True(t, bytes.Equal(addr, recreated))

	assert.False(t, IsOnCurve(addr))
}

func TestFindProgramAddress_Is_Deterministic(t *testing.T) {
	programID := sha256.Sum256([]byte("another program"))
	seeds := [][]byte{[]byte("nft"), bytes.Repeat([]byte{7}, 32)}

	addr1, bump1, err := FindProgramAddressBytes(seeds, programID[:])
	require.NoError(t, err)
	addr2, bump2, err := FindProgramAddressBytes(seeds, programID[:])
	require.NoError(t, err)

	assert.Equal(t, bump1, bump2)
	assert.True(t, bytes.Equal(addr1, addr2))
}

func TestCreateProgramAddress_Rejects_Degenerate_Seeds(t *testing.T) {
	programID := sha256.Sum256([]byte("prog"))

	_, err := CreateProgramAddressBytes([][]byte{bytes.Repeat([]byte{1}, 33)}, programID[:])
	assert.Equal(t, ErrSeedLength, err)

	tooMany := make([][]byte, MaxSeeds+1)
	for i := range tooMany {
		tooMany[i] = []byte{byte(i)}
	}
	_, err = CreateProgramAddressBytes(tooMany, programID[:])
	assert.Equal(t, ErrSeedLength, err)

	_, err = CreateProgramAddressBytes([][]byte{[]byte("seed")}, []byte("short"))
	assert.Equal(t, ErrAddressLength, err)
}
