package sealevel

import (
	"fmt"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/base58"
	bin "github.com/gagliardetto/binary"
)

const SysvarRentAddrStr = "SysvarRent111111111111111111111111111111111"

var SysvarRentAddr = base58.MustDecodeFromString(SysvarRentAddrStr)

const SysvarRentStructLen = 17

const (
	defaultLamportsPerByteYear = 3480
	defaultExemptionThreshold  = 2.0
	defaultBurnPercent         = 50
	acctStorageOverhead        = 128
)

type SysvarRent struct {
	LamportsPerUint8Year uint64
	ExemptionThreshold   float64
	BurnPercent          byte
}

func DefaultRentSysvar() SysvarRent {
	return SysvarRent{
		LamportsPerUint8Year: defaultLamportsPerByteYear,
		ExemptionThreshold:   defaultExemptionThreshold,
		BurnPercent:          defaultBurnPercent,
	}
}

func (sr *SysvarRent) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	sr.LamportsPerUint8Year, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return fmt.Errorf("failed to read LamportsPerUint8Year when decoding SysvarRent: %w", err)
	}

	sr.ExemptionThreshold, err = decoder.ReadFloat64(bin.LE)
	if err != nil {
		return fmt.Errorf("failed to read ExemptionThreshold when decoding SysvarRent: %w", err)
	}

	sr.BurnPercent, err = decoder.ReadByte()
	if err != nil {
		return fmt.Errorf("failed to read BurnPercent when decoding SysvarRent: %w", err)
	}

	return
}

func (sr *SysvarRent) MinimumBalance(dataLen uint64) uint64 {
	return uint64(float64((dataLen+acctStorageOverhead)*sr.LamportsPerUint8Year) * sr.ExemptionThreshold)
}

// RentSysvar returns the rent parameters from the account universe, falling
// back to the chain defaults when no rent sysvar account is present.
func (execCtx *ExecutionCtx) RentSysvar() SysvarRent {
	if execCtx.Accounts == nil {
		return DefaultRentSysvar()
	}

	rentAcct, err := execCtx.Accounts.GetAccount(SysvarRentAddr)
	if err != nil {
		return DefaultRentSysvar()
	}

	var rent SysvarRent
	dec := bin.NewBinDecoder(rentAcct.Data)
	if rent.UnmarshalWithDecoder(dec) != nil {
		return DefaultRentSysvar()
	}
	return rent
}
