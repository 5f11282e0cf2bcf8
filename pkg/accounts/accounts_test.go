package accounts

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemAccounts_Get_Set(t *testing.T) {
	accts := NewMemAccounts()

	privKey, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	pubkey := privKey.PublicKey()

	_, err = accts.GetAccount(pubkey)
	assert.Equal(t, ErrAccountNotFound, err)

	acct := &Account{Key: pubkey, Lamports: 1000, Data: []byte{1, 2, 3}}
	require.NoError(t, accts.SetAccount(pubkey, acct))

	got, err := accts.GetAccount(pubkey)
	require.NoError(t, err)
	assert.Equal(t, acct, got)
}

func TestPersistentAccounts_RoundTrip(t *testing.T) {
	accts, err := OpenPersistentAccounts(t.TempDir())
	require.NoError(t, err)
	defer accts.Close()

	ownerPrivKey, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	privKey, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	pubkey := privKey.PublicKey()

	_, err = accts.GetAccount(pubkey)
	assert.Equal(t, ErrAccountNotFound, err)

	acct := &Account{
		Key:       pubkey,
		Lamports:  12345,
		Data:      []byte("record bytes"),
		Owner:     ownerPrivKey.PublicKey(),
		RentEpoch: 100,
	}
	require.NoError(t, accts.SetAccount(pubkey, acct))

	got, err := accts.GetAccount(pubkey)
	require.NoError(t, err)
	assert.Equal(t, acct.Lamports, got.Lamports)
	assert.Equal(t, acct.Data, got.Data)
	assert.Equal(t, acct.Owner, got.Owner)
	assert.Equal(t, pubkey, got.Key)
}
