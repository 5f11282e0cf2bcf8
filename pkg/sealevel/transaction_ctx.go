package sealevel

import (
	"github.com/Gaimin-io-Limited/solana-programs/pkg/accounts"
	"github.com/gagliardetto/solana-go"
)

// TransactionAccounts is the per-invocation account snapshot. Accounts are
// borrowed one at a time per index; an outstanding borrow blocks re-borrowing
// until dropped.
type TransactionAccounts struct {
	Accounts []*accounts.Account
	Touched  []bool
	Locked   []bool
}

func NewTransactionAccounts(accts []accounts.Account) *TransactionAccounts {
	txAccounts := &TransactionAccounts{
		Accounts: make([]*accounts.Account, len(accts)),
		Touched:  make([]bool, len(accts)),
		Locked:   make([]bool, len(accts)),
	}
	for idx := range accts {
		acct := accts[idx]
		txAccounts.Accounts[idx] = &acct
	}
	return txAccounts
}

func (ta *TransactionAccounts) Len() uint64 {
	return uint64(len(ta.Accounts))
}

func (ta *TransactionAccounts) GetAccount(idx uint64) (*accounts.Account, error) {
	if idx >= ta.Len() {
		return nil, InstrErrNotEnoughAccountKeys
	}
	return ta.Accounts[idx], nil
}

func (ta *TransactionAccounts) Borrow(idx uint64) (*accounts.Account, error) {
	if idx >= ta.Len() {
		return nil, InstrErrNotEnoughAccountKeys
	}
	if ta.Locked[idx] {
		return nil, InstrErrAccountBorrowOutstanding
	}
	ta.Locked[idx] = true
	return ta.Accounts[idx], nil
}

func (ta *TransactionAccounts) Unborrow(idx uint64) {
	if idx < ta.Len() {
		ta.Locked[idx] = false
	}
}

func (ta *TransactionAccounts) Touch(idx uint64) error {
	if idx >= ta.Len() {
		return InstrErrNotEnoughAccountKeys
	}
	ta.Touched[idx] = true
	return nil
}

type TransactionCtx struct {
	Accounts *TransactionAccounts
	instrCtx *InstructionCtx
}

func NewTransactionCtx(txAccounts *TransactionAccounts) *TransactionCtx {
	return &TransactionCtx{Accounts: txAccounts}
}

func (txCtx *TransactionCtx) KeyOfAccountAtIndex(idx uint64) (solana.PublicKey, error) {
	acct, err := txCtx.Accounts.GetAccount(idx)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return acct.Key, nil
}

func (txCtx *TransactionCtx) IndexOfAccount(pubkey solana.PublicKey) (uint64, error) {
	for idx, acct := range txCtx.Accounts.Accounts {
		if acct.Key == pubkey {
			return uint64(idx), nil
		}
	}
	return 0, InstrErrMissingAccount
}

func (txCtx *TransactionCtx) CurrentInstructionCtx() (*InstructionCtx, error) {
	if txCtx.instrCtx == nil {
		return nil, InstrErrMissingAccount
	}
	return txCtx.instrCtx, nil
}

func (txCtx *TransactionCtx) configureInstructionCtx(instrCtx *InstructionCtx) {
	txCtx.instrCtx = instrCtx
}
