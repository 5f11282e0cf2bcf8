package sealevel

import "github.com/gagliardetto/solana-go"

type AccountMeta struct {
	Pubkey     solana.PublicKey
	IsSigner   bool
	IsWritable bool
}

type Instruction struct {
	Accounts  []AccountMeta
	Data      []byte
	ProgramId solana.PublicKey
}

type InstructionAccount struct {
	IndexInTransaction uint64
	IsSigner           bool
	IsWritable         bool
}

// InstructionAcctsFromAccountMetas resolves account metas against the
// transaction account list, preserving the meta order.
func InstructionAcctsFromAccountMetas(instrAcctMetas []AccountMeta, txAccounts *TransactionAccounts) []InstructionAccount {
	var instrAccts []InstructionAccount

	for _, accountMeta := range instrAcctMetas {
		idxInTx := -1
		for pos, acct := range txAccounts.Accounts {
			if acct.Key == accountMeta.Pubkey {
				idxInTx = pos
				break
			}
		}
		if idxInTx == -1 {
			idxInTx = len(txAccounts.Accounts)
		}

		newInstrAcct := InstructionAccount{
			IndexInTransaction: uint64(idxInTx),
			IsSigner:           accountMeta.IsSigner,
			IsWritable:         accountMeta.IsWritable,
		}
		instrAccts = append(instrAccts, newInstrAcct)
	}

	return instrAccts
}
