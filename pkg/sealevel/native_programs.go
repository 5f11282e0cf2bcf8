package sealevel

import (
	"github.com/Gaimin-io-Limited/solana-programs/pkg/base58"
	"github.com/gagliardetto/solana-go"
)

const NativeLoaderAddrStr = "NativeLoader1111111111111111111111111111111"

var NativeLoaderAddr = base58.MustDecodeFromString(NativeLoaderAddrStr)

const SystemProgramAddrStr = "11111111111111111111111111111111"

var SystemProgramAddr = base58.MustDecodeFromString(SystemProgramAddrStr)

type NativeProgramFn func(execCtx *ExecutionCtx) error

var nativePrograms = make(map[solana.PublicKey]NativeProgramFn)

// RegisterNativeProgram binds a program address to its execute entrypoint.
// Program packages register themselves at init time.
func RegisterNativeProgram(programId solana.PublicKey, fn NativeProgramFn) {
	nativePrograms[programId] = fn
}

func resolveNativeProgramById(programId solana.PublicKey) (NativeProgramFn, error) {
	fn, exists := nativePrograms[programId]
	if !exists {
		return nil, InstrErrUnsupportedProgramId
	}
	return fn, nil
}
