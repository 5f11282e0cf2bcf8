package decode

import (
	"encoding/hex"
	"fmt"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/base58"
	"github.com/Gaimin-io-Limited/solana-programs/pkg/pfpclaim"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var Cmd = cobra.Command{
	Use:   "decode <instruction-data-hex>",
	Short: "Decode claim program instruction data",
	Args:  cobra.ExactArgs(1),
	Run:   run,
}

func run(c *cobra.Command, args []string) {
	data, err := hex.DecodeString(args[0])
	if err != nil {
		klog.Exitf("invalid hex: %v", err)
	}

	instr, err := pfpclaim.ParseInstruction(data)
	if err != nil {
		if code, ok := pfpclaim.TranslateClaimProgErr(err); ok {
			klog.Exitf("invalid instruction (custom error %d): %v", code, err)
		}
		klog.Exitf("invalid instruction: %v", err)
	}

	switch instr.InstrType {
	case pfpclaim.ClaimProgramInstrTypeConfig:
		a := instr.ConfigArgs
		fmt.Println("Config")
		fmt.Printf("  claimable_from:            %d\n", a.ClaimableFrom)
		fmt.Printf("  accumulated_reward:        %d\n", a.AccumulatedReward)
		fmt.Printf("  initial_reward:            %d\n", a.InitialReward)
		fmt.Printf("  total_accumulation_period: %d\n", a.TotalAccumulationPeriod)
		fmt.Printf("  generation_duration:       %d\n", a.GenerationDuration)
	case pfpclaim.ClaimProgramInstrTypeDelete:
		fmt.Println("Delete")
	case pfpclaim.ClaimProgramInstrTypeNft:
		fmt.Println("Nft")
	case pfpclaim.ClaimProgramInstrTypeCreateClaim:
		a := instr.CreateClaimArgs
		fmt.Println("CreateClaim")
		fmt.Printf("  bump:                     %d\n", a.Bump)
		fmt.Printf("  seed:                     %s\n", base58.Encode(a.Seed[:]))
		fmt.Printf("  bnb_chain_wallet_address: %s\n", a.BnbChainWalletAddress)
	case pfpclaim.ClaimProgramInstrTypeClaim:
		a := instr.ClaimArgs
		fmt.Println("Claim")
		fmt.Printf("  token_acct_bump:   %d\n", a.TokenAcctBump)
		fmt.Printf("  token_record_bump: %d\n", a.TokenRecordBump)
		fmt.Printf("  nft_record_bump:   %d\n", a.NftRecordBump)
	}
}
