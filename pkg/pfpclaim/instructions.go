package pfpclaim

import (
	"bytes"
	"unicode/utf8"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/sealevel"
	bin "github.com/gagliardetto/binary"
)

const (
	ClaimProgramInstrTypeConfig = iota
	ClaimProgramInstrTypeDelete
	ClaimProgramInstrTypeNft
	ClaimProgramInstrTypeCreateClaim
	ClaimProgramInstrTypeClaim
)

// ClaimSeedLength is the byte length of the caller-chosen random seed that
// distinguishes claim records belonging to the same wallet.
const ClaimSeedLength = 32

const (
	configArgsLen      = 5 * 4
	createClaimArgsLen = 1 + ClaimSeedLength + BnbChainWalletAddressLength
	claimArgsLen       = 3
)

type ConfigArgs struct {
	ClaimableFrom           int32
	AccumulatedReward       int32
	InitialReward           int32
	TotalAccumulationPeriod int32
	GenerationDuration      int32
}

type CreateClaimArgs struct {
	Bump                  byte
	Seed                  [ClaimSeedLength]byte
	BnbChainWalletAddress string
}

type ClaimArgs struct {
	TokenAcctBump   byte
	TokenRecordBump byte
	NftRecordBump   byte
}

// ClaimInstruction is the decoded form of one claim program instruction.
// Exactly one of the Args fields is set, matching InstrType.
type ClaimInstruction struct {
	InstrType       uint8
	ConfigArgs      *ConfigArgs
	CreateClaimArgs *CreateClaimArgs
	ClaimArgs       *ClaimArgs
}

func (args *ConfigArgs) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	args.ClaimableFrom, err = decoder.ReadInt32(bin.LE)
	if err != nil {
		return err
	}

	args.AccumulatedReward, err = decoder.ReadInt32(bin.LE)
	if err != nil {
		return err
	}

	args.InitialReward, err = decoder.ReadInt32(bin.LE)
	if err != nil {
		return err
	}

	args.TotalAccumulationPeriod, err = decoder.ReadInt32(bin.LE)
	if err != nil {
		return err
	}

	args.GenerationDuration, err = decoder.ReadInt32(bin.LE)
	return err
}

func (args *ConfigArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
	_ = encoder.WriteInt32(args.ClaimableFrom, bin.LE)
	_ = encoder.WriteInt32(args.AccumulatedReward, bin.LE)
	_ = encoder.WriteInt32(args.InitialReward, bin.LE)
	_ = encoder.WriteInt32(args.TotalAccumulationPeriod, bin.LE)
	return encoder.WriteInt32(args.GenerationDuration, bin.LE)
}

func (args *CreateClaimArgs) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	bump, err := decoder.ReadByte()
	if err != nil {
		return err
	}
	args.Bump = bump

	seed, err := decoder.ReadBytes(ClaimSeedLength)
	if err != nil {
		return err
	}
	copy(args.Seed[:], seed)

	walletAddr, err := decoder.ReadBytes(BnbChainWalletAddressLength)
	if err != nil {
		return err
	}
	if !utf8.Valid(walletAddr) {
		return ClaimProgErrInvalidString
	}
	args.BnbChainWalletAddress = string(walletAddr)

	return nil
}

func (args *CreateClaimArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := encoder.WriteByte(args.Bump)
	if err != nil {
		return err
	}
	err = encoder.WriteBytes(args.Seed[:], false)
	if err != nil {
		return err
	}

	walletAddr := make([]byte, BnbChainWalletAddressLength)
	copy(walletAddr, args.BnbChainWalletAddress)
	return encoder.WriteBytes(walletAddr, false)
}

func (args *ClaimArgs) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	tokenAcctBump, err := decoder.ReadByte()
	if err != nil {
		return err
	}
	args.TokenAcctBump = tokenAcctBump

	tokenRecordBump, err := decoder.ReadByte()
	if err != nil {
		return err
	}
	args.TokenRecordBump = tokenRecordBump

	nftRecordBump, err := decoder.ReadByte()
	if err != nil {
		return err
	}
	args.NftRecordBump = nftRecordBump

	return nil
}

func (args *ClaimArgs) MarshalWithEncoder(encoder *bin.Encoder) error {
	_ = encoder.WriteByte(args.TokenAcctBump)
	_ = encoder.WriteByte(args.TokenRecordBump)
	return encoder.WriteByte(args.NftRecordBump)
}

// ParseInstruction decodes instruction data into a ClaimInstruction.
// Payload lengths are exact: trailing bytes are rejected the same way as
// missing ones.
func ParseInstruction(data []byte) (ClaimInstruction, error) {
	var instr ClaimInstruction

	if len(data) == 0 {
		return instr, sealevel.InstrErrInvalidInstructionData
	}

	instr.InstrType = data[0]
	rest := data[1:]

	switch instr.InstrType {
	case ClaimProgramInstrTypeConfig:
		if len(rest) != configArgsLen {
			return instr, sealevel.InstrErrInvalidInstructionData
		}
		var args ConfigArgs
		dec := bin.NewBinDecoder(rest)
		if args.UnmarshalWithDecoder(dec) != nil {
			return instr, sealevel.InstrErrInvalidInstructionData
		}
		instr.ConfigArgs = &args

	case ClaimProgramInstrTypeDelete, ClaimProgramInstrTypeNft:
		if len(rest) != 0 {
			return instr, sealevel.InstrErrInvalidInstructionData
		}

	case ClaimProgramInstrTypeCreateClaim:
		if len(rest) != createClaimArgsLen {
			return instr, sealevel.InstrErrInvalidInstructionData
		}
		var args CreateClaimArgs
		dec := bin.NewBinDecoder(rest)
		err := args.UnmarshalWithDecoder(dec)
		if err == ClaimProgErrInvalidString {
			return instr, err
		} else if err != nil {
			return instr, sealevel.InstrErrInvalidInstructionData
		}
		instr.CreateClaimArgs = &args

	case ClaimProgramInstrTypeClaim:
		if len(rest) != claimArgsLen {
			return instr, sealevel.InstrErrInvalidInstructionData
		}
		var args ClaimArgs
		dec := bin.NewBinDecoder(rest)
		if args.UnmarshalWithDecoder(dec) != nil {
			return instr, sealevel.InstrErrInvalidInstructionData
		}
		instr.ClaimArgs = &args

	default:
		return instr, ClaimProgErrInvalidInstruction
	}

	return instr, nil
}

// ConfigInstructionData builds the wire form of a Config instruction.
func ConfigInstructionData(args *ConfigArgs) []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	_ = enc.WriteByte(ClaimProgramInstrTypeConfig)
	err := args.MarshalWithEncoder(enc)
	if err != nil {
		panic("shouldn't fail")
	}
	return buf.Bytes()
}

func DeleteInstructionData() []byte {
	return []byte{ClaimProgramInstrTypeDelete}
}

func NftInstructionData() []byte {
	return []byte{ClaimProgramInstrTypeNft}
}

func CreateClaimInstructionData(args *CreateClaimArgs) []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	_ = enc.WriteByte(ClaimProgramInstrTypeCreateClaim)
	err := args.MarshalWithEncoder(enc)
	if err != nil {
		panic("shouldn't fail")
	}
	return buf.Bytes()
}

func ClaimInstructionData(args *ClaimArgs) []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	_ = enc.WriteByte(ClaimProgramInstrTypeClaim)
	err := args.MarshalWithEncoder(enc)
	if err != nil {
		panic("shouldn't fail")
	}
	return buf.Bytes()
}
