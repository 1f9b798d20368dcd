package tx

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/txkit7000-backend/pkg/safe"
)

// SatoshisFromBTC converts a decimal BTC amount to satoshis, rejecting
// negative and non-finite values.
func SatoshisFromBTC(value float64) (uint64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	return safe.Uint64(int64(amt))
}
