package pfpclaim

import (
	"github.com/Gaimin-io-Limited/solana-programs/pkg/safemath"
	"github.com/Gaimin-io-Limited/solana-programs/pkg/sealevel"
	"k8s.io/klog/v2"
)

const CUClaimProgramDefaultComputeUnits = 750

const (
	ConfigPdaSeed = "config"
	NftPdaSeed    = "nft"
	ClaimPdaSeed  = "claim"
)

// Seeds used by the token metadata program for its own PDAs.
const (
	metadataSeed    = "metadata"
	editionSeed     = "edition"
	tokenRecordSeed = "token_record"
)

func init() {
	sealevel.RegisterNativeProgram(ClaimProgramAddr, ClaimProgramExecute)
}

// ClaimProgramExecute is the claim program entrypoint: it decodes the
// instruction and dispatches to the matching handler.
func ClaimProgramExecute(execCtx *sealevel.ExecutionCtx) error {
	err := execCtx.ComputeMeter.Consume(CUClaimProgramDefaultComputeUnits)
	if err != nil {
		return sealevel.InstrErrComputationalBudgetExceeded
	}

	txCtx := execCtx.TransactionContext
	instrCtx, err := txCtx.CurrentInstructionCtx()
	if err != nil {
		return err
	}

	instr, err := ParseInstruction(instrCtx.Data)
	if err != nil {
		return err
	}

	switch instr.InstrType {
	case ClaimProgramInstrTypeConfig:
		klog.V(2).Infof("ClaimProgram: Config")
		err = ClaimProgramConfig(execCtx, instr.ConfigArgs)
	case ClaimProgramInstrTypeDelete:
		klog.V(2).Infof("ClaimProgram: Delete")
		err = ClaimProgramDelete(execCtx)
	case ClaimProgramInstrTypeNft:
		klog.V(2).Infof("ClaimProgram: Nft")
		err = ClaimProgramNft(execCtx)
	case ClaimProgramInstrTypeCreateClaim:
		klog.V(2).Infof("ClaimProgram: CreateClaim")
		err = ClaimProgramCreateClaim(execCtx, instr.CreateClaimArgs)
	case ClaimProgramInstrTypeClaim:
		klog.V(2).Infof("ClaimProgram: Claim")
		err = ClaimProgramClaim(execCtx, instr.ClaimArgs)
	default:
		err = ClaimProgErrInvalidInstruction
	}

	return err
}

// ClaimProgramConfig creates the singleton config account. Anyone may send
// it while the config does not exist yet; the sender becomes the authority.
//
// Account references:
//   0. `[SIGNER]` authority and rent payer
//   1. `[]` creator of claimable NFTs
//   2. `[WRITE]` config PDA
//   3. `[]` system program
func ClaimProgramConfig(execCtx *sealevel.ExecutionCtx, args *ConfigArgs) error {
	txCtx := execCtx.TransactionContext
	instrCtx, err := txCtx.CurrentInstructionCtx()
	if err != nil {
		return err
	}

	err = instrCtx.CheckNumOfInstructionAccounts(4)
	if err != nil {
		return err
	}

	programId := instrCtx.ProgramId()

	authority, err := instrCtx.BorrowInstructionAccount(txCtx, 0)
	if err != nil {
		return err
	}
	err = assertSigner(authority)
	if err != nil {
		authority.Drop()
		return err
	}
	authorityKey := authority.Key()
	authority.Drop()

	creator, err := instrCtx.BorrowInstructionAccount(txCtx, 1)
	if err != nil {
		return err
	}
	creatorKey := creator.Key()
	creator.Drop()

	configAcct, err := instrCtx.BorrowInstructionAccount(txCtx, 2)
	if err != nil {
		return err
	}
	_, err = assertDerivedFrom(configAcct, programId, [][]byte{[]byte(ConfigPdaSeed)})
	if err != nil {
		configAcct.Drop()
		return err
	}
	err = assertUninitialized(configAcct)
	configAcct.Drop()
	if err != nil {
		return err
	}

	if args.AccumulatedReward <= 0 {
		klog.Errorf("ClaimProgramConfig: config data is invalid")
		return ClaimProgErrInvalidConfig
	}

	accumulationDuration := args.TotalAccumulationPeriod / args.AccumulatedReward

	if args.InitialReward < 0 || accumulationDuration <= 0 || args.GenerationDuration < 0 {
		klog.Errorf("ClaimProgramConfig: config data is invalid")
		return ClaimProgErrInvalidConfig
	}

	// The per-NFT total must fit in an i32.
	_, err = safemath.CheckedAddI32(args.InitialReward, args.AccumulatedReward)
	if err != nil {
		return sealevel.InstrErrArithmeticOverflow
	}

	err = sealevel.CreateAccount(execCtx, 0, 2, ConfigAcctSize, programId)
	if err != nil {
		return err
	}

	config := Config{
		Authority:            authorityKey,
		Creator:              creatorKey,
		ClaimableFrom:        args.ClaimableFrom,
		AccumulatedReward:    args.AccumulatedReward,
		InitialReward:        args.InitialReward,
		AccumulationDuration: accumulationDuration,
		GenerationDuration:   args.GenerationDuration,
	}

	configAcct, err = instrCtx.BorrowInstructionAccount(txCtx, 2)
	if err != nil {
		return err
	}
	defer configAcct.Drop()

	return configAcct.SetData(marshalConfig(&config))
}

// ClaimProgramDelete reclaims a program-owned account, sending its lamports
// to the receiver. Only the config authority may send it.
//
// Account references:
//   0. `[SIGNER]` config authority
//   1. `[WRITE]` account to delete
//   2. `[WRITE]` account receiving the lamports
//   3. `[]` config PDA
func ClaimProgramDelete(execCtx *sealevel.ExecutionCtx) error {
	txCtx := execCtx.TransactionContext
	instrCtx, err := txCtx.CurrentInstructionCtx()
	if err != nil {
		return err
	}

	err = instrCtx.CheckNumOfInstructionAccounts(4)
	if err != nil {
		return err
	}

	programId := instrCtx.ProgramId()

	configAcct, err := instrCtx.BorrowInstructionAccount(txCtx, 3)
	if err != nil {
		return err
	}
	_, err = assertDerivedFrom(configAcct, programId, [][]byte{[]byte(ConfigPdaSeed)})
	if err != nil {
		configAcct.Drop()
		return err
	}
	err = assertInitialized(configAcct)
	if err != nil {
		configAcct.Drop()
		return err
	}
	config, err := unmarshalConfig(configAcct.Data())
	configAcct.Drop()
	if err != nil {
		return err
	}

	authority, err := instrCtx.BorrowInstructionAccount(txCtx, 0)
	if err != nil {
		return err
	}
	err = assertSigner(authority)
	if err != nil {
		authority.Drop()
		return err
	}
	authorityKey := authority.Key()
	authority.Drop()

	if config.Authority != authorityKey {
		return ClaimProgErrPermissionDenied
	}

	target, err := instrCtx.BorrowInstructionAccount(txCtx, 1)
	if err != nil {
		return err
	}
	defer target.Drop()

	if !target.IsOwnedByCurrentProgram() {
		klog.Errorf("ClaimProgramDelete: target %s is not owned by this program", target.Key())
		return sealevel.InstrErrInvalidAccountOwner
	}

	receiver, err := instrCtx.BorrowInstructionAccount(txCtx, 2)
	if err != nil {
		return err
	}
	defer receiver.Drop()

	return sealevel.DeleteAccount(target, receiver)
}

// ClaimProgramNft registers an NFT as claimable by creating its record.
// Registering an already registered NFT succeeds without effect. The NFT
// must be a programmable NFT by a creator the config names, unless the
// config authority itself is the payer.
//
// Account references:
//   0. `[SIGNER]` rent payer
//   1. `[]` NFT mint account
//   2. `[]` NFT metadata account
//   3. `[]` NFT edition account
//   4. `[WRITE]` NFT record PDA
//   5. `[]` config PDA
//   6. `[]` system program
func ClaimProgramNft(execCtx *sealevel.ExecutionCtx) error {
	txCtx := execCtx.TransactionContext
	instrCtx, err := txCtx.CurrentInstructionCtx()
	if err != nil {
		return err
	}

	err = instrCtx.CheckNumOfInstructionAccounts(7)
	if err != nil {
		return err
	}

	programId := instrCtx.ProgramId()

	configAcct, err := instrCtx.BorrowInstructionAccount(txCtx, 5)
	if err != nil {
		return err
	}
	_, err = assertDerivedFrom(configAcct, programId, [][]byte{[]byte(ConfigPdaSeed)})
	if err != nil {
		configAcct.Drop()
		return err
	}
	err = assertInitialized(configAcct)
	if err != nil {
		configAcct.Drop()
		return err
	}
	config, err := unmarshalConfig(configAcct.Data())
	configAcct.Drop()
	if err != nil {
		return err
	}

	payer, err := instrCtx.BorrowInstructionAccount(txCtx, 0)
	if err != nil {
		return err
	}
	err = assertSigner(payer)
	if err != nil {
		payer.Drop()
		return err
	}
	payerKey := payer.Key()
	payer.Drop()

	mint, err := instrCtx.BorrowInstructionAccount(txCtx, 1)
	if err != nil {
		return err
	}
	mintKey := mint.Key()
	mintOwner := mint.Owner()
	mintData := make([]byte, len(mint.Data()))
	copy(mintData, mint.Data())
	mint.Drop()

	nftRecordAcct, err := instrCtx.BorrowInstructionAccount(txCtx, 4)
	if err != nil {
		return err
	}
	_, err = assertDerivedFrom(nftRecordAcct, programId, [][]byte{[]byte(NftPdaSeed), mintKey.Bytes()})
	if err != nil {
		nftRecordAcct.Drop()
		return err
	}
	if isInitialized(nftRecordAcct) {
		// Registration is idempotent.
		nftRecordAcct.Drop()
		klog.V(2).Infof("ClaimProgramNft: NFT %s is already registered", mintKey)
		return nil
	}
	nftRecordAcct.Drop()

	if mintOwner != TokenProgramAddr {
		klog.Errorf("ClaimProgramNft: mint %s is not owned by the token program", mintKey)
		return ClaimProgErrInvalidNft
	}

	edition, err := instrCtx.BorrowInstructionAccount(txCtx, 3)
	if err != nil {
		return err
	}
	editionSeeds := [][]byte{
		[]byte(metadataSeed),
		TokenMetadataProgramAddr.Bytes(),
		mintKey.Bytes(),
		[]byte(editionSeed),
	}
	_, err = assertDerivedFrom(edition, TokenMetadataProgramAddr, editionSeeds)
	if err != nil {
		edition.Drop()
		return err
	}
	err = assertInitialized(edition)
	if err != nil {
		edition.Drop()
		return err
	}
	editionKey := edition.Key()
	edition.Drop()

	mintState, err := unmarshalTokenMint(mintData)
	if err != nil {
		return err
	}
	if mintState.MintAuthority == nil || *mintState.MintAuthority != editionKey {
		klog.Errorf("ClaimProgramNft: unexpected mint authority")
		return ClaimProgErrInvalidNft
	}

	metadataAcct, err := instrCtx.BorrowInstructionAccount(txCtx, 2)
	if err != nil {
		return err
	}
	metadataSeeds := [][]byte{
		[]byte(metadataSeed),
		TokenMetadataProgramAddr.Bytes(),
		mintKey.Bytes(),
	}
	_, err = assertDerivedFrom(metadataAcct, TokenMetadataProgramAddr, metadataSeeds)
	if err != nil {
		metadataAcct.Drop()
		return err
	}
	metadata, err := unmarshalMetadata(metadataAcct.Data())
	metadataAcct.Drop()
	if err != nil {
		return err
	}

	if metadata.TokenStandard == nil {
		return ClaimProgErrInvalidTokenStandard
	}
	switch *metadata.TokenStandard {
	case TokenStandardProgrammableNonFungible, TokenStandardProgrammableNonFungibleEdition:
	default:
		return ClaimProgErrInvalidTokenStandard
	}

	validCreator := false
	for _, creator := range metadata.Creators {
		if creator.Verified && creator.Address == config.Creator {
			validCreator = true
			break
		}
	}
	if !validCreator && config.Authority != payerKey {
		return ClaimProgErrInvalidCreator
	}

	err = sealevel.CreateAccount(execCtx, 0, 4, NftRecordAcctSize, programId)
	if err != nil {
		return err
	}

	nftRecord := NftRecord{
		ClaimedAmount: 0,
		TotalAmount:   config.InitialReward + config.AccumulatedReward,
		LastClaimAt:   config.ClaimableFrom,
	}

	nftRecordAcct, err = instrCtx.BorrowInstructionAccount(txCtx, 4)
	if err != nil {
		return err
	}
	defer nftRecordAcct.Drop()

	return nftRecordAcct.SetData(marshalNftRecord(&nftRecord))
}

// ClaimProgramCreateClaim creates an empty claim record for the signing
// wallet under a caller-chosen seed and bump.
//
// Account references:
//   0. `[SIGNER]` user wallet and rent payer
//   1. `[WRITE]` claim record PDA
//   2. `[]` config PDA
//   3. `[]` system program
func ClaimProgramCreateClaim(execCtx *sealevel.ExecutionCtx, args *CreateClaimArgs) error {
	txCtx := execCtx.TransactionContext
	instrCtx, err := txCtx.CurrentInstructionCtx()
	if err != nil {
		return err
	}

	err = instrCtx.CheckNumOfInstructionAccounts(4)
	if err != nil {
		return err
	}

	programId := instrCtx.ProgramId()

	wallet, err := instrCtx.BorrowInstructionAccount(txCtx, 0)
	if err != nil {
		return err
	}
	err = assertSigner(wallet)
	if err != nil {
		wallet.Drop()
		return err
	}
	walletKey := wallet.Key()
	wallet.Drop()

	configAcct, err := instrCtx.BorrowInstructionAccount(txCtx, 2)
	if err != nil {
		return err
	}
	_, err = assertDerivedFrom(configAcct, programId, [][]byte{[]byte(ConfigPdaSeed)})
	if err != nil {
		configAcct.Drop()
		return err
	}
	err = assertInitialized(configAcct)
	if err != nil {
		configAcct.Drop()
		return err
	}
	config, err := unmarshalConfig(configAcct.Data())
	configAcct.Drop()
	if err != nil {
		return err
	}

	claimAcct, err := instrCtx.BorrowInstructionAccount(txCtx, 1)
	if err != nil {
		return err
	}
	claimSeedsWithBump := [][]byte{
		[]byte(ClaimPdaSeed),
		walletKey.Bytes(),
		args.Seed[:],
		{args.Bump},
	}
	err = assertDerivedFromWithBump(claimAcct, programId, claimSeedsWithBump)
	if err != nil {
		claimAcct.Drop()
		return err
	}
	err = assertUninitialized(claimAcct)
	claimAcct.Drop()
	if err != nil {
		return err
	}

	err = sealevel.CreateAccount(execCtx, 0, 1, ClaimRecordAcctSize, programId)
	if err != nil {
		return err
	}

	clock, err := execCtx.ClockSysvar()
	if err != nil {
		return err
	}
	now := int32(clock.UnixTimestamp)

	var generation int32
	if config.GenerationDuration != 0 {
		generation = now / config.GenerationDuration
	}

	claimRecord := ClaimRecord{
		Generation:            generation,
		Amount:                0,
		Owner:                 walletKey,
		BnbChainWalletAddress: args.BnbChainWalletAddress,
	}

	claimAcct, err = instrCtx.BorrowInstructionAccount(txCtx, 1)
	if err != nil {
		return err
	}
	defer claimAcct.Drop()

	return claimAcct.SetData(marshalClaimRecord(&claimRecord))
}

// ClaimProgramClaim accrues the reward earned by a locked NFT held in the
// signing wallet's associated token account and adds it to a claim record
// owned by that wallet.
//
// Account references:
//   0. `[SIGNER]` user wallet
//   1. `[]` associated token account holding the NFT
//   2. `[]` token record account
//   3. `[WRITE]` NFT record PDA
//   4. `[WRITE]` claim record PDA
//   5. `[]` config PDA
func ClaimProgramClaim(execCtx *sealevel.ExecutionCtx, args *ClaimArgs) error {
	txCtx := execCtx.TransactionContext
	instrCtx, err := txCtx.CurrentInstructionCtx()
	if err != nil {
		return err
	}

	err = instrCtx.CheckNumOfInstructionAccounts(6)
	if err != nil {
		return err
	}

	programId := instrCtx.ProgramId()

	wallet, err := instrCtx.BorrowInstructionAccount(txCtx, 0)
	if err != nil {
		return err
	}
	err = assertSigner(wallet)
	if err != nil {
		wallet.Drop()
		return err
	}
	walletKey := wallet.Key()
	wallet.Drop()

	token, err := instrCtx.BorrowInstructionAccount(txCtx, 1)
	if err != nil {
		return err
	}

	if token.Owner() != TokenProgramAddr {
		token.Drop()
		klog.Errorf("ClaimProgramClaim: token account does not belong to the token program")
		return ClaimProgErrInvalidTokenAccount
	}

	tokenAcct, err := unmarshalTokenAccount(token.Data())
	if err != nil {
		token.Drop()
		return err
	}

	tokenSeedsWithBump := [][]byte{
		walletKey.Bytes(),
		TokenProgramAddr.Bytes(),
		tokenAcct.Mint.Bytes(),
		{args.TokenAcctBump},
	}
	err = assertDerivedFromWithBump(token, AssociatedTokenProgramAddr, tokenSeedsWithBump)
	if err != nil {
		token.Drop()
		return err
	}
	tokenKey := token.Key()
	token.Drop()

	if tokenAcct.Owner != walletKey {
		klog.Errorf("ClaimProgramClaim: token account does not belong to the user")
		return ClaimProgErrInvalidTokenAccount
	}
	if tokenAcct.Amount == 0 {
		klog.Errorf("ClaimProgramClaim: token account does not hold the NFT")
		return ClaimProgErrZeroNftBalance
	}

	tokenRecordAcct, err := instrCtx.BorrowInstructionAccount(txCtx, 2)
	if err != nil {
		return err
	}
	tokenRecordSeedsWithBump := [][]byte{
		[]byte(metadataSeed),
		TokenMetadataProgramAddr.Bytes(),
		tokenAcct.Mint.Bytes(),
		[]byte(tokenRecordSeed),
		tokenKey.Bytes(),
		{args.TokenRecordBump},
	}
	err = assertDerivedFromWithBump(tokenRecordAcct, TokenMetadataProgramAddr, tokenRecordSeedsWithBump)
	if err != nil {
		tokenRecordAcct.Drop()
		return err
	}
	tokenRecord, err := unmarshalTokenRecord(tokenRecordAcct.Data())
	tokenRecordAcct.Drop()
	if err != nil {
		return err
	}

	if tokenRecord.State != TokenStateLocked {
		klog.Errorf("ClaimProgramClaim: token account is unlocked")
		return ClaimProgErrTokenAccountUnlocked
	}

	configAcct, err := instrCtx.BorrowInstructionAccount(txCtx, 5)
	if err != nil {
		return err
	}
	_, err = assertDerivedFrom(configAcct, programId, [][]byte{[]byte(ConfigPdaSeed)})
	if err != nil {
		configAcct.Drop()
		return err
	}
	err = assertInitialized(configAcct)
	if err != nil {
		configAcct.Drop()
		return err
	}
	config, err := unmarshalConfig(configAcct.Data())
	configAcct.Drop()
	if err != nil {
		return err
	}

	clock, err := execCtx.ClockSysvar()
	if err != nil {
		return err
	}
	now := int32(clock.UnixTimestamp)

	if now < config.ClaimableFrom {
		klog.Errorf("ClaimProgramClaim: claiming is not available yet")
		return ClaimProgErrClaimingNotAvailable
	}

	nftRecordAcct, err := instrCtx.BorrowInstructionAccount(txCtx, 3)
	if err != nil {
		return err
	}
	defer nftRecordAcct.Drop()

	nftRecordSeedsWithBump := [][]byte{
		[]byte(NftPdaSeed),
		tokenAcct.Mint.Bytes(),
		{args.NftRecordBump},
	}
	err = assertDerivedFromWithBump(nftRecordAcct, programId, nftRecordSeedsWithBump)
	if err != nil {
		return err
	}
	err = assertInitialized(nftRecordAcct)
	if err != nil {
		return err
	}
	nftRecord, err := unmarshalNftRecord(nftRecordAcct.Data())
	if err != nil {
		return err
	}

	// both records get written below; reject before touching either
	err = nftRecordAcct.DataCanBeChanged()
	if err != nil {
		return err
	}

	reward, err := AccrueReward(now, &config, &nftRecord)
	if err != nil {
		return err
	}

	claimAcct, err := instrCtx.BorrowInstructionAccount(txCtx, 4)
	if err != nil {
		return err
	}
	defer claimAcct.Drop()

	err = assertInitialized(claimAcct)
	if err != nil {
		return err
	}
	claimRecord, err := unmarshalClaimRecord(claimAcct.Data())
	if err != nil {
		return err
	}

	if claimRecord.Owner != walletKey {
		klog.Errorf("ClaimProgramClaim: claim record does not belong to this wallet")
		return ClaimProgErrPermissionDenied
	}

	newAmount, err := safemath.CheckedAddI32(claimRecord.Amount, reward)
	if err != nil {
		return sealevel.InstrErrArithmeticOverflow
	}
	claimRecord.Amount = newAmount

	err = claimAcct.SetData(marshalClaimRecord(&claimRecord))
	if err != nil {
		return err
	}

	nftRecord.LastClaimAt = now
	nftRecord.ClaimedAmount += reward

	return nftRecordAcct.SetData(marshalNftRecord(&nftRecord))
}
