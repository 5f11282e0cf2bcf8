package pfpclaim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRewardConfig() Config {
	return Config{
		ClaimableFrom:        0,
		AccumulatedReward:    9000,
		InitialReward:        1000,
		AccumulationDuration: 9,
		GenerationDuration:   3600,
	}
}

func TestAccrueReward_FirstClaimPaysInitialReward(t *testing.T) {
	config := testRewardConfig()
	nftRecord := NftRecord{ClaimedAmount: 0, TotalAmount: 10000, LastClaimAt: 0}

	reward, err := AccrueReward(100, &config, &nftRecord)
	require.NoError(t, err)
	assert.Equal(t, int32(1000+100/9), reward)
}

func TestAccrueReward_SubsequentClaimAccruesOnly(t *testing.T) {
	config := testRewardConfig()
	nftRecord := NftRecord{ClaimedAmount: 1011, TotalAmount: 10000, LastClaimAt: 100}

	reward, err := AccrueReward(200, &config, &nftRecord)
	require.NoError(t, err)
	assert.Equal(t, int32(100/9), reward)
}

func TestAccrueReward_PartialPeriodPaysNothing(t *testing.T) {
	config := testRewardConfig()
	nftRecord := NftRecord{ClaimedAmount: 1011, TotalAmount: 10000, LastClaimAt: 100}

	// 8 seconds is less than one accumulation period
	reward, err := AccrueReward(108, &config, &nftRecord)
	require.NoError(t, err)
	assert.Equal(t, int32(0), reward)
}

func TestAccrueReward_RegressedClockAccruesNothing(t *testing.T) {
	config := testRewardConfig()
	nftRecord := NftRecord{ClaimedAmount: 1011, TotalAmount: 10000, LastClaimAt: 200}

	// the clock moved backwards past the last claim
	reward, err := AccrueReward(100, &config, &nftRecord)
	require.NoError(t, err)
	assert.Equal(t, int32(0), reward)
}

func TestAccrueReward_RegressedClockFirstClaimPaysInitialRewardOnly(t *testing.T) {
	config := testRewardConfig()
	nftRecord := NftRecord{ClaimedAmount: 0, TotalAmount: 10000, LastClaimAt: 20000}

	reward, err := AccrueReward(100, &config, &nftRecord)
	require.NoError(t, err)
	assert.Equal(t, int32(1000), reward)
}

func TestAccrueReward_ClampedToRemaining(t *testing.T) {
	config := testRewardConfig()
	nftRecord := NftRecord{ClaimedAmount: 9990, TotalAmount: 10000, LastClaimAt: 0}

	reward, err := AccrueReward(1000000, &config, &nftRecord)
	require.NoError(t, err)
	assert.Equal(t, int32(10), reward)
}

func TestAccrueReward_Exhausted(t *testing.T) {
	config := testRewardConfig()
	nftRecord := NftRecord{ClaimedAmount: 10000, TotalAmount: 10000, LastClaimAt: 0}

	_, err := AccrueReward(1000000, &config, &nftRecord)
	assert.Equal(t, ClaimProgErrAmountExhausted, err)
}

func TestAccrueReward_LifetimeTotalNeverExceedsTotalAmount(t *testing.T) {
	config := testRewardConfig()
	nftRecord := NftRecord{ClaimedAmount: 0, TotalAmount: 10000, LastClaimAt: 0}

	var lifetime int32
	now := int32(0)
	for {
		now += 50000
		reward, err := AccrueReward(now, &config, &nftRecord)
		if err != nil {
			assert.Equal(t, ClaimProgErrAmountExhausted, err)
			break
		}
		nftRecord.ClaimedAmount += reward
		nftRecord.LastClaimAt = now
		lifetime += reward
	}
	assert.Equal(t, nftRecord.TotalAmount, lifetime)
}
