package pfpclaim

import (
	"math"
	"testing"

	"github.com/Gaimin-io-Limited/solana-programs/pkg/accounts"
	"github.com/Gaimin-io-Limited/solana-programs/pkg/cu"
	"github.com/Gaimin-io-Limited/solana-programs/pkg/sealevel"
	pda "github.com/Gaimin-io-Limited/solana-programs/pkg/solana"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	txIdxProgram = iota
	txIdxAuthority
	txIdxCreator
	txIdxConfig
	txIdxSystem
	txIdxWallet
	txIdxMint
	txIdxMetadata
	txIdxEdition
	txIdxNftRecord
	txIdxToken
	txIdxTokenRecord
	txIdxClaim
)

const testLamports = uint64(10_000_000_000)

func testRandomPubkey(t *testing.T) solana.PublicKey {
	privKey, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return privKey.PublicKey()
}

func testFindPda(t *testing.T, programId solana.PublicKey, seeds ...[]byte) (solana.PublicKey, byte) {
	addr, bump, err := pda.FindProgramAddressBytes(seeds, programId.Bytes())
	require.NoError(t, err)
	var key solana.PublicKey
	copy(key[:], addr)
	return key, bump
}

// claimTestEnv is a transaction account universe holding every account the
// claim program touches, prefilled with a valid initialized state. Tests
// clear or corrupt individual accounts before running an instruction.
type claimTestEnv struct {
	t *testing.T

	authority solana.PublicKey
	creator   solana.PublicKey
	wallet    solana.PublicKey
	mint      solana.PublicKey

	configKey       solana.PublicKey
	metadataKey     solana.PublicKey
	editionKey      solana.PublicKey
	nftRecordKey    solana.PublicKey
	nftRecordBump   byte
	tokenKey        solana.PublicKey
	tokenBump       byte
	tokenRecordKey  solana.PublicKey
	tokenRecordBump byte
	claimSeed       [ClaimSeedLength]byte
	claimKey        solana.PublicKey
	claimBump       byte

	txAccts *sealevel.TransactionAccounts
}

func newClaimTestEnv(t *testing.T) *claimTestEnv {
	env := &claimTestEnv{t: t}

	env.authority = testRandomPubkey(t)
	env.creator = testRandomPubkey(t)
	env.wallet = testRandomPubkey(t)
	env.mint = testRandomPubkey(t)

	env.configKey, _ = testFindPda(t, ClaimProgramAddr, []byte(ConfigPdaSeed))
	env.nftRecordKey, env.nftRecordBump = testFindPda(t, ClaimProgramAddr,
		[]byte(NftPdaSeed), env.mint.Bytes())

	env.metadataKey, _ = testFindPda(t, TokenMetadataProgramAddr,
		[]byte(metadataSeed), TokenMetadataProgramAddr.Bytes(), env.mint.Bytes())
	env.editionKey, _ = testFindPda(t, TokenMetadataProgramAddr,
		[]byte(metadataSeed), TokenMetadataProgramAddr.Bytes(), env.mint.Bytes(), []byte(editionSeed))

	env.tokenKey, env.tokenBump = testFindPda(t, AssociatedTokenProgramAddr,
		env.wallet.Bytes(), TokenProgramAddr.Bytes(), env.mint.Bytes())
	env.tokenRecordKey, env.tokenRecordBump = testFindPda(t, TokenMetadataProgramAddr,
		[]byte(metadataSeed), TokenMetadataProgramAddr.Bytes(), env.mint.Bytes(),
		[]byte(tokenRecordSeed), env.tokenKey.Bytes())

	for i := range env.claimSeed {
		env.claimSeed[i] = byte(i * 7)
	}
	env.claimKey, env.claimBump = testFindPda(t, ClaimProgramAddr,
		[]byte(ClaimPdaSeed), env.wallet.Bytes(), env.claimSeed[:])

	config := Config{
		Authority:            env.authority,
		Creator:              env.creator,
		ClaimableFrom:        1000,
		AccumulatedReward:    9000,
		InitialReward:        1000,
		AccumulationDuration: 9,
		GenerationDuration:   3600,
	}

	mintState := TokenMint{
		MintAuthority: &env.editionKey,
		Supply:        1,
		Decimals:      0,
		IsInitialized: true,
	}

	tokenStandard := TokenStandardProgrammableNonFungible
	metadata := Metadata{
		Key:             MetadataV1Key,
		UpdateAuthority: env.creator,
		Mint:            env.mint,
		Name:            "PFP",
		Symbol:          "PFP",
		Uri:             "https://example.com/pfp.json",
		Creators: []MetadataCreator{
			{Address: env.creator, Verified: true, Share: 100},
		},
		IsMutable:     true,
		TokenStandard: &tokenStandard,
	}

	tokenAcct := TokenAccount{
		Mint:   env.mint,
		Owner:  env.wallet,
		Amount: 1,
		State:  1,
	}

	tokenRecord := TokenRecord{Key: TokenRecordKey, Bump: env.tokenRecordBump, State: TokenStateLocked}

	nftRecord := NftRecord{ClaimedAmount: 0, TotalAmount: 10000, LastClaimAt: 1000}

	claimRecord := ClaimRecord{
		Generation:            0,
		Amount:                0,
		Owner:                 env.wallet,
		BnbChainWalletAddress: testWalletAddr,
	}

	env.txAccts = sealevel.NewTransactionAccounts([]accounts.Account{
		{Key: ClaimProgramAddr, Lamports: 1, Owner: sealevel.NativeLoaderAddr, Executable: true},
		{Key: env.authority, Lamports: testLamports, Owner: sealevel.SystemProgramAddr},
		{Key: env.creator, Lamports: 1, Owner: sealevel.SystemProgramAddr},
		{Key: env.configKey, Lamports: 1_392_000, Data: marshalConfig(&config), Owner: ClaimProgramAddr},
		{Key: sealevel.SystemProgramAddr, Lamports: 1, Owner: sealevel.NativeLoaderAddr, Executable: true},
		{Key: env.wallet, Lamports: testLamports, Owner: sealevel.SystemProgramAddr},
		{Key: env.mint, Lamports: 1, Data: mintState.Marshal(), Owner: TokenProgramAddr},
		{Key: env.metadataKey, Lamports: 1, Data: metadata.Marshal(), Owner: TokenMetadataProgramAddr},
		{Key: env.editionKey, Lamports: 1, Data: []byte{1}, Owner: TokenMetadataProgramAddr},
		{Key: env.nftRecordKey, Lamports: 974_400, Data: marshalNftRecord(&nftRecord), Owner: ClaimProgramAddr},
		{Key: env.tokenKey, Lamports: 1, Data: tokenAcct.Marshal(), Owner: TokenProgramAddr},
		{Key: env.tokenRecordKey, Lamports: 1, Data: tokenRecord.Marshal(), Owner: TokenMetadataProgramAddr},
		{Key: env.claimKey, Lamports: 1_670_400, Data: marshalClaimRecord(&claimRecord), Owner: ClaimProgramAddr},
	})

	return env
}

func (env *claimTestEnv) account(idx uint64) *accounts.Account {
	acct, err := env.txAccts.GetAccount(idx)
	require.NoError(env.t, err)
	return acct
}

// clear resets an account to its never-created state.
func (env *claimTestEnv) clear(idx uint64) {
	acct := env.account(idx)
	acct.Lamports = 0
	acct.Data = nil
	acct.Owner = sealevel.SystemProgramAddr
}

func (env *claimTestEnv) execCtx(now int32) *sealevel.ExecutionCtx {
	mem := accounts.NewMemAccounts()
	clock := sealevel.SysvarClock{UnixTimestamp: int64(now)}
	clockAcct := accounts.Account{Key: sealevel.SysvarClockAddr, Lamports: 1, Data: clock.Marshal()}
	err := mem.SetAccount(sealevel.SysvarClockAddr, &clockAcct)
	require.NoError(env.t, err)

	return &sealevel.ExecutionCtx{
		Accounts:           mem,
		TransactionContext: sealevel.NewTransactionCtx(env.txAccts),
		ComputeMeter:       cu.NewComputeMeterDefault(),
	}
}

func (env *claimTestEnv) run(now int32, instrData []byte, acctMetas []sealevel.AccountMeta) error {
	instrAccts := sealevel.InstructionAcctsFromAccountMetas(acctMetas, env.txAccts)
	execCtx := env.execCtx(now)
	return execCtx.ProcessInstruction(instrData, instrAccts, []uint64{txIdxProgram})
}

func (env *claimTestEnv) runConfig(now int32, args *ConfigArgs, authoritySigns bool) error {
	acctMetas := []sealevel.AccountMeta{
		{Pubkey: env.authority, IsSigner: authoritySigns, IsWritable: true},
		{Pubkey: env.creator},
		{Pubkey: env.configKey, IsWritable: true},
		{Pubkey: sealevel.SystemProgramAddr},
	}
	return env.run(now, ConfigInstructionData(args), acctMetas)
}

func (env *claimTestEnv) runDelete(now int32, signer solana.PublicKey, target solana.PublicKey, receiver solana.PublicKey) error {
	acctMetas := []sealevel.AccountMeta{
		{Pubkey: signer, IsSigner: true},
		{Pubkey: target, IsWritable: true},
		{Pubkey: receiver, IsWritable: true},
		{Pubkey: env.configKey},
	}
	return env.run(now, DeleteInstructionData(), acctMetas)
}

func (env *claimTestEnv) runNft(now int32, payer solana.PublicKey) error {
	acctMetas := []sealevel.AccountMeta{
		{Pubkey: payer, IsSigner: true, IsWritable: true},
		{Pubkey: env.mint},
		{Pubkey: env.metadataKey},
		{Pubkey: env.editionKey},
		{Pubkey: env.nftRecordKey, IsWritable: true},
		{Pubkey: env.configKey},
		{Pubkey: sealevel.SystemProgramAddr},
	}
	return env.run(now, NftInstructionData(), acctMetas)
}

func (env *claimTestEnv) runCreateClaim(now int32, args *CreateClaimArgs) error {
	acctMetas := []sealevel.AccountMeta{
		{Pubkey: env.wallet, IsSigner: true, IsWritable: true},
		{Pubkey: env.claimKey, IsWritable: true},
		{Pubkey: env.configKey},
		{Pubkey: sealevel.SystemProgramAddr},
	}
	return env.run(now, CreateClaimInstructionData(args), acctMetas)
}

func (env *claimTestEnv) runClaim(now int32, args *ClaimArgs, walletSigns bool) error {
	acctMetas := []sealevel.AccountMeta{
		{Pubkey: env.wallet, IsSigner: walletSigns},
		{Pubkey: env.tokenKey},
		{Pubkey: env.tokenRecordKey},
		{Pubkey: env.nftRecordKey, IsWritable: true},
		{Pubkey: env.claimKey, IsWritable: true},
		{Pubkey: env.configKey},
	}
	return env.run(now, ClaimInstructionData(args), acctMetas)
}

func (env *claimTestEnv) claimArgs() *ClaimArgs {
	return &ClaimArgs{
		TokenAcctBump:   env.tokenBump,
		TokenRecordBump: env.tokenRecordBump,
		NftRecordBump:   env.nftRecordBump,
	}
}

func (env *claimTestEnv) createClaimArgs() *CreateClaimArgs {
	return &CreateClaimArgs{
		Bump:                  env.claimBump,
		Seed:                  env.claimSeed,
		BnbChainWalletAddress: testWalletAddr,
	}
}

func testConfigArgs() *ConfigArgs {
	return &ConfigArgs{
		ClaimableFrom:           1000,
		AccumulatedReward:       9000,
		InitialReward:           1000,
		TotalAccumulationPeriod: 81000,
		GenerationDuration:      3600,
	}
}

// Full lifecycle: config creation, NFT registration, claim record creation,
// two claims, then deletion of the NFT record by the authority.
func TestClaimProgram_EndToEnd(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxConfig)
	env.clear(txIdxNftRecord)
	env.clear(txIdxClaim)

	// create the config
	err := env.runConfig(500, testConfigArgs(), true)
	require.NoError(t, err)

	configAcct := env.account(txIdxConfig)
	assert.Equal(t, ClaimProgramAddr, configAcct.Owner)
	assert.NotZero(t, configAcct.Lamports)

	config, err := unmarshalConfig(configAcct.Data)
	require.NoError(t, err)
	assert.Equal(t, env.authority, config.Authority)
	assert.Equal(t, env.creator, config.Creator)
	assert.Equal(t, int32(9), config.AccumulationDuration)

	// register the NFT
	err = env.runNft(500, env.authority)
	require.NoError(t, err)

	nftRecord, err := unmarshalNftRecord(env.account(txIdxNftRecord).Data)
	require.NoError(t, err)
	assert.Equal(t, NftRecord{ClaimedAmount: 0, TotalAmount: 10000, LastClaimAt: 1000}, nftRecord)

	// registering again is a no-op
	err = env.runNft(600, env.authority)
	require.NoError(t, err)
	recordData := env.account(txIdxNftRecord).Data
	unchanged, err := unmarshalNftRecord(recordData)
	require.NoError(t, err)
	assert.Equal(t, nftRecord, unchanged)

	// create the claim record
	err = env.runCreateClaim(500, env.createClaimArgs())
	require.NoError(t, err)

	claimRecord, err := unmarshalClaimRecord(env.account(txIdxClaim).Data)
	require.NoError(t, err)
	assert.Equal(t, int32(0), claimRecord.Generation)
	assert.Equal(t, int32(0), claimRecord.Amount)
	assert.Equal(t, env.wallet, claimRecord.Owner)
	assert.Equal(t, testWalletAddr, claimRecord.BnbChainWalletAddress)

	// first claim pays the initial reward plus accrual
	err = env.runClaim(1100, env.claimArgs(), true)
	require.NoError(t, err)

	claimRecord, err = unmarshalClaimRecord(env.account(txIdxClaim).Data)
	require.NoError(t, err)
	assert.Equal(t, int32(1011), claimRecord.Amount)

	nftRecord, err = unmarshalNftRecord(env.account(txIdxNftRecord).Data)
	require.NoError(t, err)
	assert.Equal(t, int32(1011), nftRecord.ClaimedAmount)
	assert.Equal(t, int32(1100), nftRecord.LastClaimAt)

	// second claim accrues from the previous claim only
	err = env.runClaim(1200, env.claimArgs(), true)
	require.NoError(t, err)

	claimRecord, err = unmarshalClaimRecord(env.account(txIdxClaim).Data)
	require.NoError(t, err)
	assert.Equal(t, int32(1022), claimRecord.Amount)

	// the authority reclaims the NFT record
	authorityLamports := env.account(txIdxAuthority).Lamports
	nftRecordLamports := env.account(txIdxNftRecord).Lamports

	err = env.runDelete(1300, env.authority, env.nftRecordKey, env.authority)
	require.NoError(t, err)

	nftRecordAcct := env.account(txIdxNftRecord)
	assert.Zero(t, nftRecordAcct.Lamports)
	for _, b := range nftRecordAcct.Data {
		assert.Zero(t, b)
	}
	assert.Equal(t, authorityLamports+nftRecordLamports, env.account(txIdxAuthority).Lamports)
}

func TestClaimProgram_Config_MissingSignature(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxConfig)

	err := env.runConfig(500, testConfigArgs(), false)
	assert.Equal(t, sealevel.InstrErrMissingRequiredSignature, err)
}

func TestClaimProgram_Config_AlreadyInitialized(t *testing.T) {
	env := newClaimTestEnv(t)

	err := env.runConfig(500, testConfigArgs(), true)
	assert.Equal(t, sealevel.InstrErrAccountAlreadyInitialized, err)
}

func TestClaimProgram_Config_InvalidArgs(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxConfig)

	args := testConfigArgs()
	args.AccumulatedReward = 0
	err := env.runConfig(500, args, true)
	assert.Equal(t, ClaimProgErrInvalidConfig, err)

	args = testConfigArgs()
	args.GenerationDuration = -1
	err = env.runConfig(500, args, true)
	assert.Equal(t, ClaimProgErrInvalidConfig, err)

	args = testConfigArgs()
	args.InitialReward = -1
	err = env.runConfig(500, args, true)
	assert.Equal(t, ClaimProgErrInvalidConfig, err)

	// accumulation duration rounds down to zero
	args = testConfigArgs()
	args.TotalAccumulationPeriod = 100
	err = env.runConfig(500, args, true)
	assert.Equal(t, ClaimProgErrInvalidConfig, err)
}

func TestClaimProgram_Config_RewardSumOverflow(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxConfig)

	args := &ConfigArgs{
		ClaimableFrom:           1000,
		AccumulatedReward:       1,
		InitialReward:           math.MaxInt32,
		TotalAccumulationPeriod: 1,
		GenerationDuration:      0,
	}
	err := env.runConfig(500, args, true)
	assert.Equal(t, sealevel.InstrErrArithmeticOverflow, err)
}

func TestClaimProgram_Delete_PermissionDenied(t *testing.T) {
	env := newClaimTestEnv(t)

	err := env.runDelete(500, env.wallet, env.nftRecordKey, env.wallet)
	assert.Equal(t, ClaimProgErrPermissionDenied, err)
}

func TestClaimProgram_Delete_TargetNotOwnedByProgram(t *testing.T) {
	env := newClaimTestEnv(t)

	err := env.runDelete(500, env.authority, env.mint, env.authority)
	assert.Equal(t, sealevel.InstrErrInvalidAccountOwner, err)
}

func TestClaimProgram_Delete_ConfigUninitialized(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxConfig)

	err := env.runDelete(500, env.authority, env.nftRecordKey, env.authority)
	assert.Equal(t, sealevel.InstrErrUninitializedAccount, err)
}

func TestClaimProgram_Nft_Idempotent_SkipsValidation(t *testing.T) {
	env := newClaimTestEnv(t)

	// the mint is invalid, but the record already exists so registration
	// short-circuits before any NFT validation
	env.account(txIdxMint).Owner = sealevel.SystemProgramAddr

	err := env.runNft(500, env.wallet)
	require.NoError(t, err)
}

func TestClaimProgram_Nft_MintNotOwnedByTokenProgram(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxNftRecord)
	env.account(txIdxMint).Owner = sealevel.SystemProgramAddr

	err := env.runNft(500, env.authority)
	assert.Equal(t, ClaimProgErrInvalidNft, err)
}

func TestClaimProgram_Nft_WrongEditionAddress(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxNftRecord)

	acctMetas := []sealevel.AccountMeta{
		{Pubkey: env.authority, IsSigner: true, IsWritable: true},
		{Pubkey: env.mint},
		{Pubkey: env.metadataKey},
		{Pubkey: env.metadataKey}, // edition position holds the metadata PDA
		{Pubkey: env.nftRecordKey, IsWritable: true},
		{Pubkey: env.configKey},
		{Pubkey: sealevel.SystemProgramAddr},
	}
	err := env.run(500, NftInstructionData(), acctMetas)
	assert.Equal(t, sealevel.InstrErrInvalidSeeds, err)
}

func TestClaimProgram_Nft_WrongMintAuthority(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxNftRecord)

	other := testRandomPubkey(t)
	mintState := TokenMint{MintAuthority: &other, Supply: 1, IsInitialized: true}
	env.account(txIdxMint).Data = mintState.Marshal()

	err := env.runNft(500, env.authority)
	assert.Equal(t, ClaimProgErrInvalidNft, err)
}

func TestClaimProgram_Nft_InvalidTokenStandard(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxNftRecord)

	metadata, err := unmarshalMetadata(env.account(txIdxMetadata).Data)
	require.NoError(t, err)

	standard := TokenStandardNonFungible
	metadata.TokenStandard = &standard
	env.account(txIdxMetadata).Data = metadata.Marshal()

	err = env.runNft(500, env.authority)
	assert.Equal(t, ClaimProgErrInvalidTokenStandard, err)

	metadata.TokenStandard = nil
	env.account(txIdxMetadata).Data = metadata.Marshal()

	err = env.runNft(500, env.authority)
	assert.Equal(t, ClaimProgErrInvalidTokenStandard, err)
}

func TestClaimProgram_Nft_InvalidCreator(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxNftRecord)

	metadata, err := unmarshalMetadata(env.account(txIdxMetadata).Data)
	require.NoError(t, err)
	metadata.Creators[0].Verified = false
	env.account(txIdxMetadata).Data = metadata.Marshal()

	// a regular payer cannot register an NFT without a verified creator
	err = env.runNft(500, env.wallet)
	assert.Equal(t, ClaimProgErrInvalidCreator, err)

	// the config authority can override the creator check
	err = env.runNft(500, env.authority)
	require.NoError(t, err)
}

func TestClaimProgram_CreateClaim_WrongBump(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxClaim)

	args := env.createClaimArgs()
	args.Bump--
	err := env.runCreateClaim(500, args)
	assert.Equal(t, sealevel.InstrErrInvalidSeeds, err)
}

func TestClaimProgram_CreateClaim_AlreadyInitialized(t *testing.T) {
	env := newClaimTestEnv(t)

	err := env.runCreateClaim(500, env.createClaimArgs())
	assert.Equal(t, sealevel.InstrErrAccountAlreadyInitialized, err)
}

func TestClaimProgram_CreateClaim_Generation(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxClaim)

	// generation duration is 3600, so the bucket changes hourly
	err := env.runCreateClaim(7250, env.createClaimArgs())
	require.NoError(t, err)

	claimRecord, err := unmarshalClaimRecord(env.account(txIdxClaim).Data)
	require.NoError(t, err)
	assert.Equal(t, int32(2), claimRecord.Generation)
}

func TestClaimProgram_Claim_MissingSignature(t *testing.T) {
	env := newClaimTestEnv(t)

	err := env.runClaim(1100, env.claimArgs(), false)
	assert.Equal(t, sealevel.InstrErrMissingRequiredSignature, err)
}

func TestClaimProgram_Claim_BeforeClaimableFrom(t *testing.T) {
	env := newClaimTestEnv(t)

	err := env.runClaim(500, env.claimArgs(), true)
	assert.Equal(t, ClaimProgErrClaimingNotAvailable, err)
}

func TestClaimProgram_Claim_TokenNotOwnedByTokenProgram(t *testing.T) {
	env := newClaimTestEnv(t)
	env.account(txIdxToken).Owner = sealevel.SystemProgramAddr

	err := env.runClaim(1100, env.claimArgs(), true)
	assert.Equal(t, ClaimProgErrInvalidTokenAccount, err)
}

func TestClaimProgram_Claim_TokenNotOwnedByWallet(t *testing.T) {
	env := newClaimTestEnv(t)

	tokenAcct, err := unmarshalTokenAccount(env.account(txIdxToken).Data)
	require.NoError(t, err)
	tokenAcct.Owner = testRandomPubkey(t)
	env.account(txIdxToken).Data = tokenAcct.Marshal()

	err = env.runClaim(1100, env.claimArgs(), true)
	assert.Equal(t, ClaimProgErrInvalidTokenAccount, err)
}

func TestClaimProgram_Claim_ZeroNftBalance(t *testing.T) {
	env := newClaimTestEnv(t)

	tokenAcct, err := unmarshalTokenAccount(env.account(txIdxToken).Data)
	require.NoError(t, err)
	tokenAcct.Amount = 0
	env.account(txIdxToken).Data = tokenAcct.Marshal()

	err = env.runClaim(1100, env.claimArgs(), true)
	assert.Equal(t, ClaimProgErrZeroNftBalance, err)
}

func TestClaimProgram_Claim_TokenAccountUnlocked(t *testing.T) {
	env := newClaimTestEnv(t)

	tokenRecord := TokenRecord{Key: TokenRecordKey, Bump: env.tokenRecordBump, State: TokenStateUnlocked}
	env.account(txIdxTokenRecord).Data = tokenRecord.Marshal()

	err := env.runClaim(1100, env.claimArgs(), true)
	assert.Equal(t, ClaimProgErrTokenAccountUnlocked, err)
}

func TestClaimProgram_Claim_WrongTokenAcctBump(t *testing.T) {
	env := newClaimTestEnv(t)

	args := env.claimArgs()
	args.TokenAcctBump--
	err := env.runClaim(1100, args, true)
	assert.Equal(t, sealevel.InstrErrInvalidSeeds, err)
}

func TestClaimProgram_Claim_NftRecordUninitialized(t *testing.T) {
	env := newClaimTestEnv(t)
	env.clear(txIdxNftRecord)

	err := env.runClaim(1100, env.claimArgs(), true)
	assert.Equal(t, sealevel.InstrErrUninitializedAccount, err)
}

func TestClaimProgram_Claim_AmountExhausted(t *testing.T) {
	env := newClaimTestEnv(t)

	nftRecord := NftRecord{ClaimedAmount: 10000, TotalAmount: 10000, LastClaimAt: 1000}
	env.account(txIdxNftRecord).Data = marshalNftRecord(&nftRecord)

	err := env.runClaim(1100, env.claimArgs(), true)
	assert.Equal(t, ClaimProgErrAmountExhausted, err)
}

func TestClaimProgram_Claim_ClaimRecordNotOwned(t *testing.T) {
	env := newClaimTestEnv(t)

	claimRecord := ClaimRecord{
		Owner:                 testRandomPubkey(t),
		BnbChainWalletAddress: testWalletAddr,
	}
	env.account(txIdxClaim).Data = marshalClaimRecord(&claimRecord)

	err := env.runClaim(1100, env.claimArgs(), true)
	assert.Equal(t, ClaimProgErrPermissionDenied, err)
}

func TestClaimProgram_Claim_ExhaustionAfterClamp(t *testing.T) {
	env := newClaimTestEnv(t)

	// far enough in the future to clamp the reward to everything left
	err := env.runClaim(1000000, env.claimArgs(), true)
	require.NoError(t, err)

	claimRecord, err := unmarshalClaimRecord(env.account(txIdxClaim).Data)
	require.NoError(t, err)
	assert.Equal(t, int32(10000), claimRecord.Amount)

	// any further claim fails
	err = env.runClaim(2000000, env.claimArgs(), true)
	assert.Equal(t, ClaimProgErrAmountExhausted, err)
}

func TestClaimProgram_Claim_RegressedClockKeepsAmounts(t *testing.T) {
	env := newClaimTestEnv(t)

	err := env.runClaim(1100, env.claimArgs(), true)
	require.NoError(t, err)

	claimRecord, err := unmarshalClaimRecord(env.account(txIdxClaim).Data)
	require.NoError(t, err)
	assert.Equal(t, int32(1011), claimRecord.Amount)

	// the clock moved backwards past the last claim; nothing accrues and
	// neither record goes down
	err = env.runClaim(1050, env.claimArgs(), true)
	require.NoError(t, err)

	claimRecord, err = unmarshalClaimRecord(env.account(txIdxClaim).Data)
	require.NoError(t, err)
	assert.Equal(t, int32(1011), claimRecord.Amount)

	nftRecord, err := unmarshalNftRecord(env.account(txIdxNftRecord).Data)
	require.NoError(t, err)
	assert.Equal(t, int32(1011), nftRecord.ClaimedAmount)
}

func TestClaimProgram_Claim_ReadonlyNftRecord(t *testing.T) {
	env := newClaimTestEnv(t)

	acctMetas := []sealevel.AccountMeta{
		{Pubkey: env.wallet, IsSigner: true},
		{Pubkey: env.tokenKey},
		{Pubkey: env.tokenRecordKey},
		{Pubkey: env.nftRecordKey},
		{Pubkey: env.claimKey, IsWritable: true},
		{Pubkey: env.configKey},
	}
	err := env.run(1100, ClaimInstructionData(env.claimArgs()), acctMetas)
	assert.Equal(t, sealevel.InstrErrReadonlyDataModified, err)

	// the claim record stays untouched on the error path
	claimRecord, err := unmarshalClaimRecord(env.account(txIdxClaim).Data)
	require.NoError(t, err)
	assert.Equal(t, int32(0), claimRecord.Amount)
}

func TestClaimProgram_ComputeBudgetExceeded(t *testing.T) {
	env := newClaimTestEnv(t)

	acctMetas := []sealevel.AccountMeta{
		{Pubkey: env.authority, IsSigner: true},
		{Pubkey: env.nftRecordKey, IsWritable: true},
		{Pubkey: env.authority, IsWritable: true},
		{Pubkey: env.configKey},
	}
	instrAccts := sealevel.InstructionAcctsFromAccountMetas(acctMetas, env.txAccts)

	execCtx := env.execCtx(500)
	execCtx.ComputeMeter = cu.NewComputeMeter(CUClaimProgramDefaultComputeUnits - 1)

	err := execCtx.ProcessInstruction(DeleteInstructionData(), instrAccts, []uint64{txIdxProgram})
	assert.Equal(t, sealevel.InstrErrComputationalBudgetExceeded, err)
	assert.True(t, execCtx.ComputeMeter.Exceeded())
}

func TestClaimProgram_UnknownInstruction(t *testing.T) {
	env := newClaimTestEnv(t)

	err := env.run(500, []byte{0xaa}, []sealevel.AccountMeta{
		{Pubkey: env.authority, IsSigner: true},
	})
	assert.Equal(t, ClaimProgErrInvalidInstruction, err)
}

func TestClaimProgram_NotEnoughAccounts(t *testing.T) {
	env := newClaimTestEnv(t)

	err := env.run(500, DeleteInstructionData(), []sealevel.AccountMeta{
		{Pubkey: env.authority, IsSigner: true},
	})
	assert.Equal(t, sealevel.InstrErrNotEnoughAccountKeys, err)
}
