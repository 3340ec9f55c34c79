package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrTierTooLow       = errors.New("template requires a higher subscription tier")
	ErrRenderFailed     = errors.New("could not render preview, please retry")

	ErrInvalidCustomization = errors.New("invalid customization")

	ErrCreditNotEnough      = errors.New("not enough credits")
	ErrSelfReferral         = errors.New("cannot redeem your own referral code")
	ErrAlreadyReferred      = errors.New("a referral code was already redeemed")
	ErrReferralCodeNotFound = errors.New("referral code not found")
)
