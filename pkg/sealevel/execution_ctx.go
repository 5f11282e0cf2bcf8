package sealevel

import (
	"github.com/Gaimin-io-Limited/solana-programs/pkg/accounts"
	"github.com/Gaimin-io-Limited/solana-programs/pkg/cu"
	"k8s.io/klog/v2"
)

// ExecutionCtx is the environment of a single instruction invocation: a
// fixed snapshot of transaction accounts plus the wider account universe
// used for sysvar reads.
type ExecutionCtx struct {
	Accounts           accounts.Accounts
	TransactionContext *TransactionCtx
	ComputeMeter       cu.ComputeMeter
}

// ProcessInstruction configures the instruction context and runs the
// program named by the last program index. Execution is synchronous: the
// call returns the first validation failure or nil after all writes.
func (execCtx *ExecutionCtx) ProcessInstruction(instrData []byte, instructionAccts []InstructionAccount, programIndices []uint64) error {
	if len(programIndices) == 0 {
		return InstrErrUnsupportedProgramId
	}

	txCtx := execCtx.TransactionContext
	programIdxInTx := programIndices[len(programIndices)-1]

	programKey, err := txCtx.KeyOfAccountAtIndex(programIdxInTx)
	if err != nil {
		return err
	}

	txCtx.configureInstructionCtx(&InstructionCtx{
		programId:           programKey,
		ProgramIdIndexInTx:  programIdxInTx,
		InstructionAccounts: instructionAccts,
		Data:                instrData,
	})

	return execCtx.ExecuteInstruction()
}

func (execCtx *ExecutionCtx) ExecuteInstruction() error {
	txCtx := execCtx.TransactionContext
	instrCtx, err := txCtx.CurrentInstructionCtx()
	if err != nil {
		return err
	}

	programAcct, err := instrCtx.BorrowProgramAccount(txCtx)
	if err != nil {
		klog.Infof("BorrowProgramAccount failed: %s", err)
		return InstrErrUnsupportedProgramId
	}

	ownerId := programAcct.Owner()
	programKey := programAcct.Key()
	programAcct.Drop()

	var builtinId = ownerId
	if ownerId == NativeLoaderAddr {
		builtinId = programKey
	}

	nativeProgramFn, err := resolveNativeProgramById(builtinId)
	if err != nil {
		return err
	}

	klog.V(2).Infof("calling native program %s", builtinId)
	return nativeProgramFn(execCtx)
}
