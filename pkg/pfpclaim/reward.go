package pfpclaim

// AccrueReward computes the reward earned by a registered NFT since its
// last claim. The first claim pays the one-time initial reward on top of
// the accrued amount. One unit accrues per full accumulation duration
// elapsed, and the result is clamped so the lifetime total never exceeds
// the record's total amount.
func AccrueReward(now int32, config *Config, nftRecord *NftRecord) (int32, error) {
	if nftRecord.ClaimedAmount >= nftRecord.TotalAmount {
		return 0, ClaimProgErrAmountExhausted
	}

	var baseReward int32
	if nftRecord.ClaimedAmount == 0 {
		baseReward = config.InitialReward
	}

	// the ledger clock can regress between claims; nothing accrues then,
	// and the claimed amount never decreases
	stakeDuration := now - nftRecord.LastClaimAt
	if stakeDuration < 0 {
		stakeDuration = 0
	}
	reward := baseReward + stakeDuration/config.AccumulationDuration

	remaining := nftRecord.TotalAmount - nftRecord.ClaimedAmount
	if reward > remaining {
		reward = remaining
	}

	return reward, nil
}
