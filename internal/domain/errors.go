package domain

import "errors"

var (
	ErrCredentialsMissing  = errors.New("provider credentials missing")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrMalformedResponse   = errors.New("malformed provider response")
	ErrEmptyResult         = errors.New("provider returned empty result")
	ErrRateLimited         = errors.New("provider rate limit exceeded")
	ErrNoSummary           = errors.New("no summary found")
	ErrNoResults           = errors.New("no results found")
	ErrCityNotFound        = errors.New("city not found")
)
