package txbuilder

import (
	"fmt"
	"regexp"

	"github.com/holiman/uint256"

	"cointransfer/internal/domain"
)

// denomPattern is the Cosmos SDK denomination grammar.
const denomPattern = `[a-zA-Z][a-zA-Z0-9/:._-]{2,127}`

var (
	denomRE = regexp.MustCompile(`^` + denomPattern + `$`)
	// coinRE splits the magnitude from anything that starts like a denomination.
	coinRE = regexp.MustCompile(`^([0-9]+)([a-zA-Z].*)$`)
)

// ValidDenom reports whether denom is syntactically a Cosmos denomination.
func ValidDenom(denom string) bool { return denomRE.MatchString(denom) }

// ParseCoin parses "<amount><denom>" such as "1000uosmo". A zero amount is
// accepted here and rejected by Build. A well-formed amount followed by a
// malformed denomination is an invalid denomination, not a malformed coin.
func ParseCoin(s string) (domain.Coin, error) {
	m := coinRE.FindStringSubmatch(s)
	if m == nil {
		return domain.Coin{}, fmt.Errorf("%w: coin %q: want <amount><denom>, e.g. 1000uosmo", domain.ErrInvalidArgument, s)
	}
	if !ValidDenom(m[2]) {
		return domain.Coin{}, fmt.Errorf("%w: coin %q: denomination %q", domain.ErrInvalidDenomination, s, m[2])
	}
	amount, err := uint256.FromDecimal(m[1])
	if err != nil {
		return domain.Coin{}, fmt.Errorf("%w: coin %q: amount: %v", domain.ErrInvalidArgument, s, err)
	}
	return domain.Coin{Denom: m[2], Amount: *amount}, nil
}
