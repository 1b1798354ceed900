package schema

import (
	"errors"
)

var (
	ErrInvalidPage  = errors.New("invalid_page")
	ErrInvalidSize  = errors.New("invalid_page_size")
	ErrNullDomain   = errors.New("null_domain")
	ErrOfferTimeout = errors.New("offer_submission_cancelled")
)
