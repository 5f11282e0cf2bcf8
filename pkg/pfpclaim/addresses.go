package pfpclaim

import (
	"github.com/Gaimin-io-Limited/solana-programs/pkg/base58"
)

// ClaimProgramAddrStr is the on-chain address of the GMRX claim program.
const ClaimProgramAddrStr = "5F3cxBveNySn873yhSih7XcXTXDTnkhKoNAMWPnRNYjQ"

var ClaimProgramAddr = base58.MustDecodeFromString(ClaimProgramAddrStr)

const TokenProgramAddrStr = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

var TokenProgramAddr = base58.MustDecodeFromString(TokenProgramAddrStr)

const TokenMetadataProgramAddrStr = "metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s"

var TokenMetadataProgramAddr = base58.MustDecodeFromString(TokenMetadataProgramAddrStr)

const AssociatedTokenProgramAddrStr = "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"

var AssociatedTokenProgramAddr = base58.MustDecodeFromString(AssociatedTokenProgramAddrStr)
