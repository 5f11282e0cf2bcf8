package pfpclaim

import (
	"bytes"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/sealevel"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

const (
	TokenMintAcctSize = 82
	TokenAcctSize     = 165
)

// TokenMint is the SPL token mint layout. Optional fields use the COption
// encoding: a little-endian u32 tag followed by the payload, which is
// present on the wire even when the tag says none.
type TokenMint struct {
	MintAuthority   *solana.PublicKey
	Supply          uint64
	Decimals        byte
	IsInitialized   bool
	FreezeAuthority *solana.PublicKey
}

// TokenAccount is the SPL token account layout.
type TokenAccount struct {
	Mint            solana.PublicKey
	Owner           solana.PublicKey
	Amount          uint64
	Delegate        *solana.PublicKey
	State           byte
	IsNative        *uint64
	DelegatedAmount uint64
	CloseAuthority  *solana.PublicKey
}

func readCOptionPubkey(decoder *bin.Decoder) (*solana.PublicKey, error) {
	tag, err := decoder.ReadUint32(bin.LE)
	if err != nil {
		return nil, err
	}

	keyBytes, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return nil, err
	}

	if tag == 0 {
		return nil, nil
	}

	var key solana.PublicKey
	copy(key[:], keyBytes)
	return &key, nil
}

func writeCOptionPubkey(encoder *bin.Encoder, key *solana.PublicKey) error {
	var tag uint32
	var payload solana.PublicKey
	if key != nil {
		tag = 1
		payload = *key
	}

	err := encoder.WriteUint32(tag, bin.LE)
	if err != nil {
		return err
	}
	return encoder.WriteBytes(payload.Bytes(), false)
}

func readCOptionU64(decoder *bin.Decoder) (*uint64, error) {
	tag, err := decoder.ReadUint32(bin.LE)
	if err != nil {
		return nil, err
	}

	value, err := decoder.ReadUint64(bin.LE)
	if err != nil {
		return nil, err
	}

	if tag == 0 {
		return nil, nil
	}
	return &value, nil
}

func writeCOptionU64(encoder *bin.Encoder, value *uint64) error {
	var tag uint32
	var payload uint64
	if value != nil {
		tag = 1
		payload = *value
	}

	err := encoder.WriteUint32(tag, bin.LE)
	if err != nil {
		return err
	}
	return encoder.WriteUint64(payload, bin.LE)
}

func (mint *TokenMint) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	mintAuthority, err := readCOptionPubkey(decoder)
	if err != nil {
		return err
	}
	mint.MintAuthority = mintAuthority

	mint.Supply, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	mint.Decimals, err = decoder.ReadByte()
	if err != nil {
		return err
	}

	mint.IsInitialized, err = decoder.ReadBool()
	if err != nil {
		return err
	}

	mint.FreezeAuthority, err = readCOptionPubkey(decoder)
	return err
}

func (mint *TokenMint) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := writeCOptionPubkey(encoder, mint.MintAuthority)
	if err != nil {
		return err
	}
	err = encoder.WriteUint64(mint.Supply, bin.LE)
	if err != nil {
		return err
	}
	err = encoder.WriteByte(mint.Decimals)
	if err != nil {
		return err
	}
	err = encoder.WriteBool(mint.IsInitialized)
	if err != nil {
		return err
	}
	return writeCOptionPubkey(encoder, mint.FreezeAuthority)
}

func (mint *TokenMint) Marshal() []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	err := mint.MarshalWithEncoder(enc)
	if err != nil {
		panic("shouldn't fail")
	}
	return buf.Bytes()
}

func (tokenAcct *TokenAccount) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	mint, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(tokenAcct.Mint[:], mint)

	owner, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(tokenAcct.Owner[:], owner)

	tokenAcct.Amount, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	tokenAcct.Delegate, err = readCOptionPubkey(decoder)
	if err != nil {
		return err
	}

	tokenAcct.State, err = decoder.ReadByte()
	if err != nil {
		return err
	}

	tokenAcct.IsNative, err = readCOptionU64(decoder)
	if err != nil {
		return err
	}

	tokenAcct.DelegatedAmount, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	tokenAcct.CloseAuthority, err = readCOptionPubkey(decoder)
	return err
}

func (tokenAcct *TokenAccount) MarshalWithEncoder(encoder *bin.Encoder) error {
	err := encoder.WriteBytes(tokenAcct.Mint.Bytes(), false)
	if err != nil {
		return err
	}
	err = encoder.WriteBytes(tokenAcct.Owner.Bytes(), false)
	if err != nil {
		return err
	}
	err = encoder.WriteUint64(tokenAcct.Amount, bin.LE)
	if err != nil {
		return err
	}
	err = writeCOptionPubkey(encoder, tokenAcct.Delegate)
	if err != nil {
		return err
	}
	err = encoder.WriteByte(tokenAcct.State)
	if err != nil {
		return err
	}
	err = writeCOptionU64(encoder, tokenAcct.IsNative)
	if err != nil {
		return err
	}
	err = encoder.WriteUint64(tokenAcct.DelegatedAmount, bin.LE)
	if err != nil {
		return err
	}
	return writeCOptionPubkey(encoder, tokenAcct.CloseAuthority)
}

func (tokenAcct *TokenAccount) Marshal() []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	err := tokenAcct.MarshalWithEncoder(enc)
	if err != nil {
		panic("shouldn't fail")
	}
	return buf.Bytes()
}

func unmarshalTokenMint(data []byte) (TokenMint, error) {
	var mint TokenMint
	if len(data) != TokenMintAcctSize {
		return mint, sealevel.InstrErrInvalidAccountData
	}
	dec := bin.NewBinDecoder(data)
	if mint.UnmarshalWithDecoder(dec) != nil {
		return mint, sealevel.InstrErrInvalidAccountData
	}
	return mint, nil
}

func unmarshalTokenAccount(data []byte) (TokenAccount, error) {
	var tokenAcct TokenAccount
	if len(data) != TokenAcctSize {
		return tokenAcct, sealevel.InstrErrInvalidAccountData
	}
	dec := bin.NewBinDecoder(data)
	if tokenAcct.UnmarshalWithDecoder(dec) != nil {
		return tokenAcct, sealevel.InstrErrInvalidAccountData
	}
	return tokenAcct, nil
}
