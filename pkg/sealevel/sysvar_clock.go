package sealevel

import (
	"bytes"
	"fmt"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/accounts"
	"github.com/Gaimin-io-Limited/solana-programs/pkg/base58"
	bin "github.com/gagliardetto/binary"
)

const SysvarClockAddrStr = "SysvarC1ock11111111111111111111111111111111"

var SysvarClockAddr = base58.MustDecodeFromString(SysvarClockAddrStr)

const SysvarClockStructLen = 40

type SysvarClock struct {
	Slot                uint64
	EpochStartTimestamp int64
	Epoch               uint64
	LeaderScheduleEpoch uint64
	UnixTimestamp       int64
}

func (sc *SysvarClock) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	sc.Slot, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return fmt.Errorf("failed to read Slot when decoding SysvarClock: %w", err)
	}

	sc.EpochStartTimestamp, err = decoder.ReadInt64(bin.LE)
	if err != nil {
		return fmt.Errorf("failed to read EpochStartTimestamp when decoding SysvarClock: %w", err)
	}

	sc.Epoch, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return fmt.Errorf("failed to read Epoch when decoding SysvarClock: %w", err)
	}

	sc.LeaderScheduleEpoch, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return fmt.Errorf("failed to read LeaderScheduleEpoch when decoding SysvarClock: %w", err)
	}

	sc.UnixTimestamp, err = decoder.ReadInt64(bin.LE)
	if err != nil {
		return fmt.Errorf("failed to read UnixTimestamp when decoding SysvarClock: %w", err)
	}
	return
}

func (sc *SysvarClock) MarshalWithEncoder(encoder *bin.Encoder) error {
	_ = encoder.WriteUint64(sc.Slot, bin.LE)
	_ = encoder.WriteInt64(sc.EpochStartTimestamp, bin.LE)
	_ = encoder.WriteUint64(sc.Epoch, bin.LE)
	_ = encoder.WriteUint64(sc.LeaderScheduleEpoch, bin.LE)
	return encoder.WriteInt64(sc.UnixTimestamp, bin.LE)
}

func (sc *SysvarClock) Marshal() []byte {
	buf := new(bytes.Buffer)
	encoder := bin.NewBinEncoder(buf)
	err := sc.MarshalWithEncoder(encoder)
	if err != nil {
		panic("shouldn't fail")
	}
	return buf.Bytes()
}

func ReadClockSysvar(accts accounts.Accounts) (SysvarClock, error) {
	var clock SysvarClock

	clockAcct, err := accts.GetAccount(SysvarClockAddr)
	if err != nil {
		return clock, InstrErrMissingAccount
	}

	dec := bin.NewBinDecoder(clockAcct.Data)
	err = clock.UnmarshalWithDecoder(dec)
	if err != nil {
		return clock, InstrErrInvalidAccountData
	}

	return clock, nil
}

// ClockSysvar reads the clock account from the execution context's account
// universe. Every timestamped operation derives "now" from it.
func (execCtx *ExecutionCtx) ClockSysvar() (SysvarClock, error) {
	if execCtx.Accounts == nil {
		return SysvarClock{}, InstrErrMissingAccount
	}
	return ReadClockSysvar(execCtx.Accounts)
}
