package pfpclaim

import (
	"bytes"
	"unicode/utf8"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/sealevel"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// BnbChainWalletAddressLength is the fixed byte length of the BNB chain
// wallet address carried in a claim record (hex address without 0x prefix).
const BnbChainWalletAddressLength = 40

const (
	ConfigAcctSize      = 2*solana.PublicKeyLength + 5*4
	NftRecordAcctSize   = 3 * 4
	ClaimRecordAcctSize = 2*4 + solana.PublicKeyLength + BnbChainWalletAddressLength
)

// Config holds the program-wide reward parameters. A single config account
// exists per deployment, derived from the "config" seed.
type Config struct {
	Authority            solana.PublicKey
	Creator              solana.PublicKey
	ClaimableFrom        int32
	AccumulatedReward    int32
	InitialReward        int32
	AccumulationDuration int32
	GenerationDuration   int32
}

// NftRecord tracks reward accrual for one registered NFT, derived from the
// "nft" seed and the mint address.
type NftRecord struct {
	ClaimedAmount int32
	TotalAmount   int32
	LastClaimAt   int32
}

// ClaimRecord accumulates rewards claimed by one wallet under one random
// seed, derived from the "claim" seed, the wallet address and the seed.
type ClaimRecord struct {
	Generation            int32
	Amount                int32
	Owner                 solana.PublicKey
	BnbChainWalletAddress string
}

func (config *Config) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	authority, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(config.Authority[:], authority)

	creator, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(config.Creator[:], creator)

	config.ClaimableFrom, err = decoder.ReadInt32(bin.LE)
	if err != nil {
		return err
	}

	config.AccumulatedReward, err = decoder.ReadInt32(bin.LE)
	if err != nil {
		return err
	}

	config.InitialReward, err = decoder.ReadInt32(bin.LE)
	if err != nil {
		return err
	}

	config.AccumulationDuration, err = decoder.ReadInt32(bin.LE)
	if err != nil {
		return err
	}

	config.GenerationDuration, err = decoder.ReadInt32(bin.LE)
	return err
}

func (config *Config) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := encoder.WriteBytes(config.Authority.Bytes(), false)
	if err != nil {
		return err
	}
	err = encoder.WriteBytes(config.Creator.Bytes(), false)
	if err != nil {
		return err
	}
	err = encoder.WriteInt32(config.ClaimableFrom, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteInt32(config.AccumulatedReward, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteInt32(config.InitialReward, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteInt32(config.AccumulationDuration, bin.LE)
	if err != nil {
		return err
	}
	return encoder.WriteInt32(config.GenerationDuration, bin.LE)
}

func (nftRecord *NftRecord) UnmarshalWithDecoder(decoder *bin.Decoder) (err error) {
	nftRecord.ClaimedAmount, err = decoder.ReadInt32(bin.LE)
	if err != nil {
		return err
	}

	nftRecord.TotalAmount, err = decoder.ReadInt32(bin.LE)
	if err != nil {
		return err
	}

	nftRecord.LastClaimAt, err = decoder.ReadInt32(bin.LE)
	return err
}

func (nftRecord *NftRecord) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := encoder.WriteInt32(nftRecord.ClaimedAmount, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteInt32(nftRecord.TotalAmount, bin.LE)
	if err != nil {
		return err
	}
	return encoder.WriteInt32(nftRecord.LastClaimAt, bin.LE)
}

func (claimRecord *ClaimRecord) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error
	claimRecord.Generation, err = decoder.ReadInt32(bin.LE)
	if err != nil {
		return err
	}

	claimRecord.Amount, err = decoder.ReadInt32(bin.LE)
	if err != nil {
		return err
	}

	owner, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(claimRecord.Owner[:], owner)

	walletAddr, err := decoder.ReadBytes(BnbChainWalletAddressLength)
	if err != nil {
		return err
	}
	if !utf8.Valid(walletAddr) {
		return ClaimProgErrInvalidString
	}
	claimRecord.BnbChainWalletAddress = string(walletAddr)

	return nil
}

func (claimRecord *ClaimRecord) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := encoder.WriteInt32(claimRecord.Generation, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteInt32(claimRecord.Amount, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteBytes(claimRecord.Owner.Bytes(), false)
	if err != nil {
		return err
	}

	walletAddr := make([]byte, BnbChainWalletAddressLength)
	copy(walletAddr, claimRecord.BnbChainWalletAddress)
	return encoder.WriteBytes(walletAddr, false)
}

func unmarshalConfig(data []byte) (Config, error) {
	var config Config
	dec := bin.NewBinDecoder(data)
	if config.UnmarshalWithDecoder(dec) != nil {
		return config, sealevel.InstrErrInvalidAccountData
	}
	return config, nil
}

func unmarshalNftRecord(data []byte) (NftRecord, error) {
	var nftRecord NftRecord
	dec := bin.NewBinDecoder(data)
	if nftRecord.UnmarshalWithDecoder(dec) != nil {
		return nftRecord, sealevel.InstrErrInvalidAccountData
	}
	return nftRecord, nil
}

func unmarshalClaimRecord(data []byte) (ClaimRecord, error) {
	var claimRecord ClaimRecord
	dec := bin.NewBinDecoder(data)
	err := claimRecord.UnmarshalWithDecoder(dec)
	if err == ClaimProgErrInvalidString {
		return claimRecord, err
	} else if err != nil {
		return claimRecord, sealevel.InstrErrInvalidAccountData
	}
	return claimRecord, nil
}

func marshalConfig(config *Config) []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	err := config.MarshalWithEncoder(enc)
	if err != nil {
		panic("shouldn't fail")
	}
	return buf.Bytes()
}

func marshalNftRecord(nftRecord *NftRecord) []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	err := nftRecord.MarshalWithEncoder(enc)
	if err != nil {
		panic("shouldn't fail")
	}
	return buf.Bytes()
}

func marshalClaimRecord(claimRecord *ClaimRecord) []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	err := claimRecord.MarshalWithEncoder(enc)
	if err != nil {
		panic("shouldn't fail")
	}
	return buf.Bytes()
}
