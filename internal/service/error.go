package service

import "errors"

// Error definitions for the service package.
var (
	ErrNoText          = errors.New("no text provided")
	ErrSynthesisFailed = errors.New("synthesis failed")
)
