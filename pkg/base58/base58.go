package base58

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

func Encode(data []byte) string {
	return base58.Encode(data)
}

func DecodeFromString(str string) (solana.PublicKey, error) {
	var pubkey solana.PublicKey
	decoded, err := base58.Decode(str)
	if err != nil {
		return pubkey, err
	}
	if len(decoded) != solana.PublicKeyLength {
		return pubkey, fmt.Errorf("expected %d bytes, got %d", solana.PublicKeyLength, len(decoded))
	}
	copy(pubkey[:], decoded)
	return pubkey, nil
}

func MustDecodeFromString(str string) solana.PublicKey {
	pubkey, err := DecodeFromString(str)
	if err != nil {
		panic("invalid base58 address: " + str)
	}
	return pubkey
}
