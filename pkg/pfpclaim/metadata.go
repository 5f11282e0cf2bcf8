package pfpclaim

import (
	"bytes"
	"strings"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/sealevel"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// account discriminants assigned by the token metadata program
const (
	MetadataV1Key  byte = 4
	TokenRecordKey byte = 11
)

type TokenStandard byte

const (
	TokenStandardNonFungible TokenStandard = iota
	TokenStandardFungibleAsset
	TokenStandardFungible
	TokenStandardNonFungibleEdition
	TokenStandardProgrammableNonFungible
	TokenStandardProgrammableNonFungibleEdition
)

type TokenState byte

const (
	TokenStateUnlocked TokenState = iota
	TokenStateLocked
	TokenStateListed
)

type MetadataCreator struct {
	Address  solana.PublicKey
	Verified bool
	Share    byte
}

// Metadata is the token metadata account layout, decoded through the
// token standard field. Fields past it are tolerated but ignored.
type Metadata struct {
	Key                  byte
	UpdateAuthority      solana.PublicKey
	Mint                 solana.PublicKey
	Name                 string
	Symbol               string
	Uri                  string
	SellerFeeBasisPoints uint16
	Creators             []MetadataCreator
	PrimarySaleHappened  bool
	IsMutable            bool
	EditionNonce         *byte
	TokenStandard        *TokenStandard
}

// TokenRecord is the token record account header for programmable NFTs.
// Only the leading fields matter here; the delegate fields that follow are
// ignored.
type TokenRecord struct {
	Key   byte
	Bump  byte
	State TokenState
}

// Borsh strings are a little-endian u32 length followed by that many bytes.
// On-chain metadata pads them with trailing NULs to a fixed size.
func readBorshString(decoder *bin.Decoder) (string, error) {
	length, err := decoder.ReadUint32(bin.LE)
	if err != nil {
		return "", err
	}

	raw, err := decoder.ReadBytes(int(length))
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(raw), "\x00"), nil
}

func writeBorshString(encoder *bin.Encoder, s string) error {
	err := encoder.WriteUint32(uint32(len(s)), bin.LE)
	if err != nil {
		return err
	}
	return encoder.WriteBytes([]byte(s), false)
}

func (metadata *Metadata) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error
	metadata.Key, err = decoder.ReadByte()
	if err != nil {
		return err
	}

	updateAuthority, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(metadata.UpdateAuthority[:], updateAuthority)

	mint, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(metadata.Mint[:], mint)

	metadata.Name, err = readBorshString(decoder)
	if err != nil {
		return err
	}

	metadata.Symbol, err = readBorshString(decoder)
	if err != nil {
		return err
	}

	metadata.Uri, err = readBorshString(decoder)
	if err != nil {
		return err
	}

	metadata.SellerFeeBasisPoints, err = decoder.ReadUint16(bin.LE)
	if err != nil {
		return err
	}

	hasCreators, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	if hasCreators {
		numCreators, err := decoder.ReadUint32(bin.LE)
		if err != nil {
			return err
		}
		for i := uint32(0); i < numCreators; i++ {
			var creator MetadataCreator
			address, err := decoder.ReadBytes(solana.PublicKeyLength)
			if err != nil {
				return err
			}
			copy(creator.Address[:], address)

			creator.Verified, err = decoder.ReadBool()
			if err != nil {
				return err
			}

			creator.Share, err = decoder.ReadByte()
			if err != nil {
				return err
			}
			metadata.Creators = append(metadata.Creators, creator)
		}
	}

	metadata.PrimarySaleHappened, err = decoder.ReadBool()
	if err != nil {
		return err
	}

	metadata.IsMutable, err = decoder.ReadBool()
	if err != nil {
		return err
	}

	hasEditionNonce, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	if hasEditionNonce {
		nonce, err := decoder.ReadByte()
		if err != nil {
			return err
		}
		metadata.EditionNonce = &nonce
	}

	hasTokenStandard, err := decoder.ReadBool()
	if err != nil {
		return err
	}
	if hasTokenStandard {
		standard, err := decoder.ReadByte()
		if err != nil {
			return err
		}
		tokenStandard := TokenStandard(standard)
		metadata.TokenStandard = &tokenStandard
	}

	return nil
}

func (metadata *Metadata) MarshalWithEncoder(encoder *bin.Encoder) error {
	_ = encoder.WriteByte(metadata.Key)
	_ = encoder.WriteBytes(metadata.UpdateAuthority.Bytes(), false)
	_ = encoder.WriteBytes(metadata.Mint.Bytes(), false)

	err := writeBorshString(encoder, metadata.Name)
	if err != nil {
		return err
	}
	err = writeBorshString(encoder, metadata.Symbol)
	if err != nil {
		return err
	}
	err = writeBorshString(encoder, metadata.Uri)
	if err != nil {
		return err
	}

	err = encoder.WriteUint16(metadata.SellerFeeBasisPoints, bin.LE)
	if err != nil {
		return err
	}

	if metadata.Creators != nil {
		_ = encoder.WriteBool(true)
		err = encoder.WriteUint32(uint32(len(metadata.Creators)), bin.LE)
		if err != nil {
			return err
		}
		for _, creator := range metadata.Creators {
			_ = encoder.WriteBytes(creator.Address.Bytes(), false)
			_ = encoder.WriteBool(creator.Verified)
			err = encoder.WriteByte(creator.Share)
			if err != nil {
				return err
			}
		}
	} else {
		_ = encoder.WriteBool(false)
	}

	_ = encoder.WriteBool(metadata.PrimarySaleHappened)
	_ = encoder.WriteBool(metadata.IsMutable)

	if metadata.EditionNonce != nil {
		_ = encoder.WriteBool(true)
		_ = encoder.WriteByte(*metadata.EditionNonce)
	} else {
		_ = encoder.WriteBool(false)
	}

	if metadata.TokenStandard != nil {
		_ = encoder.WriteBool(true)
		return encoder.WriteByte(byte(*metadata.TokenStandard))
	}
	return encoder.WriteBool(false)
}

func (metadata *Metadata) Marshal() []byte {
	buf := new(bytes.Buffer)
	enc := bin.NewBinEncoder(buf)
	err := metadata.MarshalWithEncoder(enc)
	if err != nil {
		panic("shouldn't fail")
	}
	return buf.Bytes()
}

func (tokenRecord *TokenRecord) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error
	tokenRecord.Key, err = decoder.ReadByte()
	if err != nil {
		return err
	}

	tokenRecord.Bump, err = decoder.ReadByte()
	if err != nil {
		return err
	}

	state, err := decoder.ReadByte()
	if err != nil {
		return err
	}
	tokenRecord.State = TokenState(state)

	return nil
}

func (tokenRecord *TokenRecord) Marshal() []byte {
	return []byte{tokenRecord.Key, tokenRecord.Bump, byte(tokenRecord.State)}
}

func unmarshalMetadata(data []byte) (Metadata, error) {
	var metadata Metadata
	dec := bin.NewBinDecoder(data)
	if metadata.UnmarshalWithDecoder(dec) != nil {
		return metadata, sealevel.InstrErrInvalidAccountData
	}
	if metadata.Key != MetadataV1Key {
		return metadata, sealevel.InstrErrInvalidAccountData
	}
	return metadata, nil
}

func unmarshalTokenRecord(data []byte) (TokenRecord, error) {
	var tokenRecord TokenRecord
	dec := bin.NewBinDecoder(data)
	if tokenRecord.UnmarshalWithDecoder(dec) != nil {
		return tokenRecord, sealevel.InstrErrInvalidAccountData
	}
	if tokenRecord.Key != TokenRecordKey {
		return tokenRecord, sealevel.InstrErrInvalidAccountData
	}
	return tokenRecord, nil
}
