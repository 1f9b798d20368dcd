// Package main implements txbuild, a CLI that assembles a coinbase
// transaction paying a base58check address and prints the raw hex.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/goodnatureofminers/txkit7000-backend/internal/tx"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

var config struct {
	Height  int64   `long:"height" env:"TXBUILD_HEIGHT" description:"block height pushed as the first script element" required:"true"`
	Address string  `long:"address" env:"TXBUILD_ADDRESS" description:"base58check destination address" required:"true"`
	Amount  float64 `long:"amount" env:"TXBUILD_AMOUNT" description:"reward amount in BTC" default:"50"`
	Extra   string  `long:"extra" env:"TXBUILD_EXTRA" description:"extra script sig bytes, hex"`
	Message string  `long:"message" env:"TXBUILD_MESSAGE" description:"optional transaction message"`
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	extra, err := hex.DecodeString(config.Extra)
	if err != nil {
		logger.Fatal("Decode extra script sig hex", zap.Error(err))
	}
	input, err := tx.CoinbaseInput(config.Height, nil, extra)
	if err != nil {
		logger.Fatal("Build coinbase input", zap.Error(err))
	}
	amount, err := tx.SatoshisFromBTC(config.Amount)
	if err != nil {
		logger.Fatal("Convert amount", zap.Error(err))
	}
	output, err := tx.PayToAddressOutput(amount, config.Address)
	if err != nil {
		logger.Fatal("Build output", zap.Error(err))
	}

	txn := tx.New(tx.Options{Messages: config.Message != ""})
	txn.Inputs = []tx.Input{input}
	txn.Outputs = []tx.Output{output}
	if config.Message != "" {
		txn.Message = []byte(config.Message)
	}

	raw, err := txn.Assemble()
	if err != nil {
		logger.Fatal("Assemble transaction", zap.Error(err))
	}
	txid, err := txn.LEHexHash()
	if err != nil {
		logger.Fatal("Hash transaction", zap.Error(err))
	}

	logger.Info("assembled coinbase transaction",
		zap.Int64("height", config.Height),
		zap.Uint64("satoshis", amount),
		zap.String("txid", txid),
	)
	fmt.Println(hex.EncodeToString(raw))
}
