package domain

import "fmt"

// BalanceMode selects how the kitty balance is computed.
type BalanceMode string

const (
	// BalanceGross sums what the kitty received.
	BalanceGross BalanceMode = "gross"
	// BalanceNet subtracts what the kitty paid out.
	BalanceNet BalanceMode = "net"
)

// ParseBalanceMode accepts "gross", "net" or "" (gross).
func ParseBalanceMode(s string) (BalanceMode, error) {
	switch BalanceMode(s) {
	case "", BalanceGross:
		return BalanceGross, nil
	case BalanceNet:
		return BalanceNet, nil
	default:
		return "", fmt.Errorf("%w: balance mode %q", ErrInvalidArgument, s)
	}
}
