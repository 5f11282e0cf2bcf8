package derive

import (
	"encoding/hex"
	"fmt"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/base58"
	"github.com/Gaimin-io-Limited/solana-programs/pkg/pfpclaim"
	pda "github.com/Gaimin-io-Limited/solana-programs/pkg/solana"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var (
	Cmd = cobra.Command{
		Use:   "derive",
		Short: "Derive claim program PDAs",
		Run:   run,
	}

	mint   string
	wallet string
	seed   string
)

func init() {
	Cmd.Flags().StringVarP(&mint, "mint", "m", "", "NFT mint address for the NFT record PDA")
	Cmd.Flags().StringVarP(&wallet, "wallet", "w", "", "Wallet address for the claim record PDA")
	Cmd.Flags().StringVarP(&seed, "seed", "s", "", "Claim seed as hex (32 bytes), used with --wallet")
}

func printPda(name string, seeds [][]byte) {
	addr, bump, err := pda.FindProgramAddressBytes(seeds, pfpclaim.ClaimProgramAddr.Bytes())
	if err != nil {
		klog.Exitf("failed to derive %s PDA: %v", name, err)
	}
	fmt.Printf("%s: %s (bump %d)\n", name, base58.Encode(addr), bump)
}

func run(c *cobra.Command, args []string) {
	printPda("config", [][]byte{[]byte(pfpclaim.ConfigPdaSeed)})

	if mint != "" {
		mintKey, err := base58.DecodeFromString(mint)
		if err != nil {
			klog.Exitf("invalid mint address: %v", err)
		}
		printPda("nft_record", [][]byte{[]byte(pfpclaim.NftPdaSeed), mintKey.Bytes()})
	}

	if wallet != "" {
		walletKey, err := base58.DecodeFromString(wallet)
		if err != nil {
			klog.Exitf("invalid wallet address: %v", err)
		}

		seedBytes, err := hex.DecodeString(seed)
		if err != nil {
			klog.Exitf("invalid seed hex: %v", err)
		}
		if len(seedBytes) != pfpclaim.ClaimSeedLength {
			klog.Exitf("seed must be %d bytes, got %d", pfpclaim.ClaimSeedLength, len(seedBytes))
		}

		printPda("claim_record", [][]byte{[]byte(pfpclaim.ClaimPdaSeed), walletKey.Bytes(), seedBytes})
	}
}
