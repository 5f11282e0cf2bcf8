package pfpclaim

import "errors"

var (
	ClaimProgErrInvalidInstruction    = errors.New("ClaimProgErrInvalidInstruction")
	ClaimProgErrPermissionDenied      = errors.New("ClaimProgErrPermissionDenied")
	ClaimProgErrClaimingNotAvailable  = errors.New("ClaimProgErrClaimingNotAvailable")
	ClaimProgErrAmountExhausted       = errors.New("ClaimProgErrAmountExhausted")
	ClaimProgErrInvalidConfig         = errors.New("ClaimProgErrInvalidConfig")
	ClaimProgErrInvalidNft            = errors.New("ClaimProgErrInvalidNft")
	ClaimProgErrInvalidTokenStandard  = errors.New("ClaimProgErrInvalidTokenStandard")
	ClaimProgErrInvalidCreator        = errors.New("ClaimProgErrInvalidCreator")
	ClaimProgErrInvalidTokenAccount   = errors.New("ClaimProgErrInvalidTokenAccount")
	ClaimProgErrZeroNftBalance        = errors.New("ClaimProgErrZeroNftBalance")
	ClaimProgErrTokenAccountUnlocked  = errors.New("ClaimProgErrTokenAccountUnlocked")
	ClaimProgErrInvalidString         = errors.New("ClaimProgErrInvalidString")
)

const (
	ClaimProgErrCodeInvalidInstruction = iota
	ClaimProgErrCodePermissionDenied
	ClaimProgErrCodeClaimingNotAvailable
	ClaimProgErrCodeAmountExhausted
	ClaimProgErrCodeInvalidConfig
	ClaimProgErrCodeInvalidNft
	ClaimProgErrCodeInvalidTokenStandard
	ClaimProgErrCodeInvalidCreator
	ClaimProgErrCodeInvalidTokenAccount
	ClaimProgErrCodeZeroNftBalance
	ClaimProgErrCodeTokenAccountUnlocked
	ClaimProgErrCodeInvalidString
)

// TranslateClaimProgErr maps a claim program error to its numeric custom
// error code. The second return is false for errors outside this program.
func TranslateClaimProgErr(err error) (uint32, bool) {
	switch err {
	case ClaimProgErrInvalidInstruction:
		return ClaimProgErrCodeInvalidInstruction, true
	case ClaimProgErrPermissionDenied:
		return ClaimProgErrCodePermissionDenied, true
	case ClaimProgErrClaimingNotAvailable:
		return ClaimProgErrCodeClaimingNotAvailable, true
	case ClaimProgErrAmountExhausted:
		return ClaimProgErrCodeAmountExhausted, true
	case ClaimProgErrInvalidConfig:
		return ClaimProgErrCodeInvalidConfig, true
	case ClaimProgErrInvalidNft:
		return ClaimProgErrCodeInvalidNft, true
	case ClaimProgErrInvalidTokenStandard:
		return ClaimProgErrCodeInvalidTokenStandard, true
	case ClaimProgErrInvalidCreator:
		return ClaimProgErrCodeInvalidCreator, true
	case ClaimProgErrInvalidTokenAccount:
		return ClaimProgErrCodeInvalidTokenAccount, true
	case ClaimProgErrZeroNftBalance:
		return ClaimProgErrCodeZeroNftBalance, true
	case ClaimProgErrTokenAccountUnlocked:
		return ClaimProgErrCodeTokenAccountUnlocked, true
	case ClaimProgErrInvalidString:
		return ClaimProgErrCodeInvalidString, true
	default:
		return 0, false
	}
}
