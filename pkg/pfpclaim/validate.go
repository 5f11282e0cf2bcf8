package pfpclaim

import (
	"bytes"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/sealevel"
	pda "github.com/Gaimin-io-Limited/solana-programs/pkg/solana"
	"github.com/gagliardetto/solana-go"
	"k8s.io/klog/v2"
)

func assertSigner(acct *sealevel.BorrowedAccount) error {
	if !acct.IsSigner() {
		klog.Errorf("expected a signature from %s", acct.Key())
		return sealevel.InstrErrMissingRequiredSignature
	}
	return nil
}

// assertDerivedFrom checks that the account sits at the canonical PDA for
// the given seeds and returns the canonical bump.
func assertDerivedFrom(acct *sealevel.BorrowedAccount, programId solana.PublicKey, seeds [][]byte) (byte, error) {
	addr, bump, err := pda.FindProgramAddressBytes(seeds, programId.Bytes())
	if err != nil {
		return 0, sealevel.InstrErrInvalidSeeds
	}
	if !bytes.Equal(addr, acct.Key().Bytes()) {
		klog.Errorf("account %s is not the PDA derived from program %s", acct.Key(), programId)
		return 0, sealevel.InstrErrInvalidSeeds
	}
	return bump, nil
}

// assertDerivedFromWithBump checks the account against the PDA for seeds
// that already include a caller-supplied bump. Derivation failures (bump on
// the curve) fail closed.
func assertDerivedFromWithBump(acct *sealevel.BorrowedAccount, programId solana.PublicKey, seedsWithBump [][]byte) error {
	addr, err := pda.CreateProgramAddressBytes(seedsWithBump, programId.Bytes())
	if err != nil {
		return sealevel.InstrErrInvalidSeeds
	}
	if !bytes.Equal(addr, acct.Key().Bytes()) {
		klog.Errorf("account %s is not the PDA derived from program %s with the given bump", acct.Key(), programId)
		return sealevel.InstrErrInvalidSeeds
	}
	return nil
}

// isInitialized reports whether the account exists on chain. An account
// with zero lamports is treated as never created.
func isInitialized(acct *sealevel.BorrowedAccount) bool {
	return acct.Lamports() != 0
}

func assertInitialized(acct *sealevel.BorrowedAccount) error {
	if !isInitialized(acct) {
		return sealevel.InstrErrUninitializedAccount
	}
	return nil
}

func assertUninitialized(acct *sealevel.BorrowedAccount) error {
	if isInitialized(acct) {
		return sealevel.InstrErrAccountAlreadyInitialized
	}
	return nil
}
