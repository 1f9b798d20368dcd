// Package main implements txdecode, a CLI that disassembles a raw hex
// transaction and prints its structural view as JSON.
package main

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/goodnatureofminers/txkit7000-backend/internal/tx"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

var config struct {
	Hex string `long:"hex" env:"TXDECODE_HEX" description:"raw transaction hex; read from stdin when empty"`
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

	rawHex := config.Hex
	if rawHex == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Fatal("Read stdin", zap.Error(err))
		}
		rawHex = strings.TrimSpace(string(data))
	}
	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		logger.Fatal("Decode hex", zap.Error(err))
	}

	parsed, err := tx.Parse(raw, tx.Options{})
	if err != nil {
		logger.Fatal("Disassemble transaction", zap.Error(err))
	}
	view, err := parsed.View()
	if err != nil {
		logger.Fatal("Build transaction view", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		logger.Fatal("Encode transaction view", zap.Error(err))
	}
}
