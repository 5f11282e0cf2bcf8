package sealevel

import (
	"errors"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/safemath"
	"github.com/gagliardetto/solana-go"
	"k8s.io/klog/v2"
)

var (
	SystemProgErrAccountAlreadyInUse = errors.New("SystemProgErrAccountAlreadyInUse")
)

const SystemProgMaxPermittedDataLen = 10 * 1024 * 1024

// CreateAccount funds a fresh account at the rent-exempt minimum for the
// declared size and hands it to the owning program. It stands in for the
// system-program CPI a deployed program would issue: the payer must have
// signed the instruction, and the target must not be in use yet.
func CreateAccount(execCtx *ExecutionCtx, payerInstrIdx uint64, newAcctInstrIdx uint64, space uint64, owner solana.PublicKey) error {
	txCtx := execCtx.TransactionContext
	instrCtx, err := txCtx.CurrentInstructionCtx()
	if err != nil {
		return err
	}

	isSigner, err := instrCtx.IsInstructionAccountSigner(payerInstrIdx)
	if err != nil {
		return err
	}
	if !isSigner {
		return InstrErrMissingRequiredSignature
	}

	if space > SystemProgMaxPermittedDataLen {
		return InstrErrInvalidArgument
	}

	rent := execCtx.RentSysvar()
	lamports := rent.MinimumBalance(space)

	newAcct, err := instrCtx.BorrowInstructionAccount(txCtx, newAcctInstrIdx)
	if err != nil {
		return err
	}
	defer newAcct.Drop()

	if newAcct.Lamports() > 0 {
		klog.Errorf("CreateAccount: account %s already in use (non-zero lamports)", newAcct.Key())
		return SystemProgErrAccountAlreadyInUse
	}
	if len(newAcct.Data()) != 0 {
		klog.Errorf("CreateAccount: account %s already in use (non-empty data)", newAcct.Key())
		return SystemProgErrAccountAlreadyInUse
	}

	payer, err := instrCtx.BorrowInstructionAccount(txCtx, payerInstrIdx)
	if err != nil {
		return err
	}
	defer payer.Drop()

	if lamports > payer.Lamports() {
		klog.Errorf("CreateAccount: insufficient lamports %d, need %d", payer.Lamports(), lamports)
		return InstrErrInsufficientFunds
	}

	newLamports, err := safemath.CheckedSubU64(payer.Lamports(), lamports)
	if err != nil {
		return InstrErrInsufficientFunds
	}

	// Mutating size, owner and balance directly models the system-program
	// CPI; the owning program takes over through the guarded setters from
	// here on.
	err = payer.Touch()
	if err != nil {
		return err
	}
	err = newAcct.Touch()
	if err != nil {
		return err
	}

	payer.Account.Lamports = newLamports
	newAcct.Account.Lamports = lamports
	newAcct.Account.Data = make([]byte, space)
	newAcct.Account.Owner = owner

	return nil
}

// DeleteAccount reclaims a program-owned account: its balance moves to the
// receiver and its data is zeroed, which the runtime treats as deletion.
func DeleteAccount(target *BorrowedAccount, receiver *BorrowedAccount) error {
	err := receiver.CheckedAddLamports(target.Lamports())
	if err != nil {
		return err
	}

	err = target.SetLamports(0)
	if err != nil {
		return err
	}

	err = target.Touch()
	if err != nil {
		return err
	}
	for i := range target.Account.Data {
		target.Account.Data[i] = 0
	}

	return nil
}
