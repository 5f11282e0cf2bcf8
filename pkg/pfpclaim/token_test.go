package pfpclaim

import (
	"testing"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/sealevel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalTokenMint_RejectsWrongSize(t *testing.T) {
	mint := TokenMint{Supply: 1, IsInitialized: true}
	data := mint.Marshal()
	require.Equal(t, TokenMintAcctSize, len(data))

	_, err := unmarshalTokenMint(append(data, 0))
	assert.Equal(t, sealevel.InstrErrInvalidAccountData, err)

	_, err = unmarshalTokenMint(data[:len(data)-1])
	assert.Equal(t, sealevel.InstrErrInvalidAccountData, err)
}

func TestUnmarshalTokenAccount_RejectsWrongSize(t *testing.T) {
	tokenAcct := TokenAccount{Amount: 1, State: 1}
	data := tokenAcct.Marshal()
	require.Equal(t, TokenAcctSize, len(data))

	_, err := unmarshalTokenAccount(append(data, 0))
	assert.Equal(t, sealevel.InstrErrInvalidAccountData, err)

	_, err = unmarshalTokenAccount(data[:len(data)-1])
	assert.Equal(t, sealevel.InstrErrInvalidAccountData, err)
}
