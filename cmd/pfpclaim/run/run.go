package run

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/accounts"
	"github.com/Gaimin-io-Limited/solana-programs/pkg/base58"
	"github.com/Gaimin-io-Limited/solana-programs/pkg/cu"
	"github.com/Gaimin-io-Limited/solana-programs/pkg/pfpclaim"
	"github.com/Gaimin-io-Limited/solana-programs/pkg/sealevel"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

var (
	Cmd = cobra.Command{
		Use:   "run <fixture.yaml>",
		Short: "Execute a claim program instruction against a fixture",
		Args:  cobra.ExactArgs(1),
		Run:   run,
	}

	dbPath    string
	cuBudget  uint64
	noCuLimit bool
)

func init() {
	Cmd.Flags().StringVarP(&dbPath, "db", "d", "", "Persist resulting accounts to a bitcask db at this path")
	Cmd.Flags().Uint64Var(&cuBudget, "cu-budget", 0, "Compute unit budget for the instruction (0 uses the default)")
	Cmd.Flags().BoolVar(&noCuLimit, "no-cu-limit", false, "Log instead of fail when the compute budget runs out")
}

type fixtureClock struct {
	Slot          uint64 `yaml:"slot"`
	UnixTimestamp int64  `yaml:"unix_timestamp"`
}

type fixtureAccountMeta struct {
	Pubkey   string `yaml:"pubkey"`
	Signer   bool   `yaml:"signer"`
	Writable bool   `yaml:"writable"`
}

type fixtureInstruction struct {
	ProgramId string               `yaml:"program_id"`
	Data      string               `yaml:"data"`
	Accounts  []fixtureAccountMeta `yaml:"accounts"`
}

type fixtureAccount struct {
	Pubkey     string `yaml:"pubkey"`
	Lamports   uint64 `yaml:"lamports"`
	Owner      string `yaml:"owner"`
	Data       string `yaml:"data"`
	Executable bool   `yaml:"executable"`
}

type fixture struct {
	Clock       fixtureClock       `yaml:"clock"`
	Instruction fixtureInstruction `yaml:"instruction"`
	Accounts    []fixtureAccount   `yaml:"accounts"`
}

func buildAccount(fa *fixtureAccount) (accounts.Account, error) {
	var acct accounts.Account

	key, err := base58.DecodeFromString(fa.Pubkey)
	if err != nil {
		return acct, fmt.Errorf("invalid account pubkey %q: %w", fa.Pubkey, err)
	}
	acct.Key = key

	if fa.Owner != "" {
		owner, err := base58.DecodeFromString(fa.Owner)
		if err != nil {
			return acct, fmt.Errorf("invalid owner %q: %w", fa.Owner, err)
		}
		acct.Owner = owner
	} else {
		acct.Owner = sealevel.SystemProgramAddr
	}

	if fa.Data != "" {
		data, err := hex.DecodeString(fa.Data)
		if err != nil {
			return acct, fmt.Errorf("invalid account data hex for %s: %w", fa.Pubkey, err)
		}
		acct.Data = data
	}

	acct.Lamports = fa.Lamports
	acct.Executable = fa.Executable
	return acct, nil
}

func run(c *cobra.Command, args []string) {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		klog.Exitf("failed to read fixture: %v", err)
	}

	var fx fixture
	err = yaml.Unmarshal(raw, &fx)
	if err != nil {
		klog.Exitf("failed to parse fixture: %v", err)
	}

	programId, err := base58.DecodeFromString(fx.Instruction.ProgramId)
	if err != nil {
		klog.Exitf("invalid program id: %v", err)
	}

	instrData, err := hex.DecodeString(fx.Instruction.Data)
	if err != nil {
		klog.Exitf("invalid instruction data hex: %v", err)
	}

	var txAcctList []accounts.Account
	programIdx := -1
	for i := range fx.Accounts {
		acct, err := buildAccount(&fx.Accounts[i])
		if err != nil {
			klog.Exit(err)
		}
		if acct.Key == programId {
			programIdx = i
		}
		txAcctList = append(txAcctList, acct)
	}

	if programIdx == -1 {
		// native programs need no on-chain body, so synthesize one
		programIdx = len(txAcctList)
		txAcctList = append(txAcctList, accounts.Account{
			Key:        programId,
			Lamports:   1,
			Owner:      sealevel.NativeLoaderAddr,
			Executable: true,
		})
	}

	var acctsBackend accounts.Accounts
	if dbPath != "" {
		db, err := accounts.OpenPersistentAccounts(dbPath)
		if err != nil {
			klog.Exit(err)
		}
		defer db.Close()
		acctsBackend = db
	} else {
		acctsBackend = accounts.NewMemAccounts()
	}

	clock := sealevel.SysvarClock{Slot: fx.Clock.Slot, UnixTimestamp: fx.Clock.UnixTimestamp}
	clockAcct := accounts.Account{Key: sealevel.SysvarClockAddr, Lamports: 1, Data: clock.Marshal()}
	err = acctsBackend.SetAccount(sealevel.SysvarClockAddr, &clockAcct)
	if err != nil {
		klog.Exit(err)
	}

	var acctMetas []sealevel.AccountMeta
	for _, meta := range fx.Instruction.Accounts {
		pubkey, err := base58.DecodeFromString(meta.Pubkey)
		if err != nil {
			klog.Exitf("invalid instruction account pubkey %q: %v", meta.Pubkey, err)
		}
		acctMetas = append(acctMetas, sealevel.AccountMeta{
			Pubkey:     pubkey,
			IsSigner:   meta.Signer,
			IsWritable: meta.Writable,
		})
	}

	txAccounts := sealevel.NewTransactionAccounts(txAcctList)
	instrAccts := sealevel.InstructionAcctsFromAccountMetas(acctMetas, txAccounts)

	meter := cu.NewComputeMeterDefault()
	if cuBudget > 0 {
		meter = cu.NewComputeMeter(cuBudget)
	}
	if noCuLimit {
		meter.Disable()
	}

	execCtx := sealevel.ExecutionCtx{
		Accounts:           acctsBackend,
		TransactionContext: sealevel.NewTransactionCtx(txAccounts),
		ComputeMeter:       meter,
	}

	err = execCtx.ProcessInstruction(instrData, instrAccts, []uint64{uint64(programIdx)})
	if err != nil {
		if execCtx.ComputeMeter.Exceeded() {
			klog.Exitf("instruction ran out of compute units after %d: %v", execCtx.ComputeMeter.Used(), err)
		}
		if code, ok := pfpclaim.TranslateClaimProgErr(err); ok {
			klog.Exitf("instruction failed with custom error %d: %v", code, err)
		}
		klog.Exitf("instruction failed with error code %d: %v", sealevel.TranslateErrToInstrErrCode(err), err)
	}

	fmt.Printf("instruction succeeded, %d compute units consumed, %d remaining\n",
		execCtx.ComputeMeter.Used(), execCtx.ComputeMeter.Remaining())

	for idx, touched := range txAccounts.Touched {
		if !touched {
			continue
		}
		acct := txAccounts.Accounts[idx]
		fmt.Printf("account %s:\n", acct.Key)
		fmt.Printf("  lamports: %d\n", acct.Lamports)
		fmt.Printf("  owner:    %s\n", acct.Owner)
		fmt.Printf("  data:     %s\n", hex.EncodeToString(acct.Data))

		if dbPath != "" {
			err = acctsBackend.SetAccount(acct.Key, acct)
			if err != nil {
				klog.Exit(err)
			}
		}
	}
}
