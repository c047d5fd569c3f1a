package biddingerrors

import (
	"errors"
	"fmt"
)

// Lookup errors
var (
	ErrNotFound        = errors.New("not found")
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	ErrBuyerNotFound   = fmt.Errorf("buyer %w", ErrNotFound)
	ErrSellerNotFound  = fmt.Errorf("seller %w", ErrNotFound)
	ErrBidNotFound     = fmt.Errorf("bid %w", ErrNotFound)
)

// business logic errors
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrDeadlinePassed  = errors.New("bid deadline passed")
)

// ErrProxyOrderViolated means the store returned proxy bids out of floor order
var ErrProxyOrderViolated = errors.New("proxy bids not ordered by floor")
