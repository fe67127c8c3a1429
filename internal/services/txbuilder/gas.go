package txbuilder

import (
	"fmt"
	"math"
	"math/big"
	"regexp"

	"github.com/holiman/uint256"

	"cointransfer/internal/domain"
)

var gasPriceRE = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)(` + denomPattern + `)$`)

// GasPrice is a decimal price per unit of gas, e.g. 0.025uosmo.
type GasPrice struct {
	Denom  string
	raw    string
	amount *big.Rat
}

// ParseGasPrice parses "<decimal><denom>".
func ParseGasPrice(s string) (GasPrice, error) {
	m := gasPriceRE.FindStringSubmatch(s)
	if m == nil {
		return GasPrice{}, fmt.Errorf("%w: gas price %q: want <decimal><denom>, e.g. 0.025uosmo", domain.ErrInvalidArgument, s)
	}
	r, ok := new(big.Rat).SetString(m[1])
	if !ok {
		return GasPrice{}, fmt.Errorf("%w: gas price %q", domain.ErrInvalidArgument, s)
	}
	return GasPrice{Denom: m[2], raw: m[1], amount: r}, nil
}

// String renders the price as given, e.g. 0.025uosmo.
func (p GasPrice) String() string { return p.raw + p.Denom }

// Fee returns the fee for gasLimit units of gas, rounded up to a whole unit.
// A fee that does not fit in 256 bits is an invalid argument.
func (p GasPrice) Fee(gasLimit uint64) (domain.Fee, error) {
	total := new(big.Int)
	if p.amount != nil {
		prod := new(big.Rat).Mul(p.amount, new(big.Rat).SetInt(new(big.Int).SetUint64(gasLimit)))
		q, r := new(big.Int).QuoRem(prod.Num(), prod.Denom(), new(big.Int))
		if r.Sign() != 0 {
			q.Add(q, big.NewInt(1))
		}
		total = q
	}
	amount, overflow := uint256.FromBig(total)
	if overflow {
		return domain.Fee{}, fmt.Errorf("%w: fee for %d gas at %s overflows", domain.ErrInvalidArgument, gasLimit, p)
	}
	return domain.Fee{Amount: domain.Coin{Denom: p.Denom, Amount: *amount}, GasLimit: gasLimit}, nil
}

// AdjustGas scales a simulated gas figure by adjustment, rounding up.
func AdjustGas(simulated uint64, adjustment float64) uint64 {
	if adjustment <= 0 {
		return simulated
	}
	v := math.Ceil(float64(simulated) * adjustment)
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v)
}
