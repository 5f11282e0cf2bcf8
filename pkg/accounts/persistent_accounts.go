package accounts

import (
	"bytes"
	"errors"
	"fmt"

	"git.mills.io/prologic/bitcask"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// PersistentAccounts is an Accounts implementation backed by an on-disk
// bitcask store, keyed by account address.
type PersistentAccounts struct {
	db *bitcask.Bitcask
}

func OpenPersistentAccounts(path string) (*PersistentAccounts, error) {
	db, err := bitcask.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open accounts db at %s: %w", path, err)
	}
	return &PersistentAccounts{db: db}, nil
}

func (p *PersistentAccounts) GetAccount(pubkey solana.PublicKey) (*Account, error) {
	acctBytes, err := p.db.Get(pubkey[:])
	if err != nil {
		if errors.Is(err, bitcask.ErrKeyNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("error whilst retrieving account %s: %w", pubkey, err)
	}

	decoder := bin.NewBinDecoder(acctBytes)
	acct := new(Account)

	err = acct.UnmarshalWithDecoder(decoder)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize account %s from accounts db", pubkey)
	}

	acct.Key = pubkey
	return acct, nil
}

func (p *PersistentAccounts) SetAccount(pubkey solana.PublicKey, acct *Account) error {
	writer := new(bytes.Buffer)
	encoder := bin.NewBinEncoder(writer)

	err := acct.MarshalWithEncoder(encoder)
	if err != nil {
		return fmt.Errorf("failed to serialize account %s for storage", pubkey)
	}

	err = p.db.Put(pubkey[:], writer.Bytes())
	if err != nil {
		return fmt.Errorf("error setting account for %s: %w", pubkey, err)
	}

	return nil
}

func (p *PersistentAccounts) Close() error {
	return p.db.Close()
}
