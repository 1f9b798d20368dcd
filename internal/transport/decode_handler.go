// Package transport exposes HTTP handlers for the codec service.
package transport

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/goodnatureofminers/txkit7000-backend/internal/metrics"
	"github.com/goodnatureofminers/txkit7000-backend/internal/tx"
	"go.uber.org/zap"
)

// DecodeRequest is the POST body accepted by DecodeHandler.
type DecodeRequest struct {
	RawHex string `json:"raw_hex"`
}

// DecodeHandler disassembles raw transaction hex into the structural view.
type DecodeHandler struct {
	logger *zap.Logger
}

// NewDecodeHandler returns a DecodeHandler instance.
func NewDecodeHandler(logger *zap.Logger) *DecodeHandler {
	return &DecodeHandler{logger: logger}
}

func (h *DecodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	raw, err := hex.DecodeString(req.RawHex)
	if err != nil {
		http.Error(w, "raw_hex is not valid hex", http.StatusBadRequest)
		return
	}

	parsed, err := tx.Parse(raw, tx.Options{})
	metrics.ObserveCodec("decode", err, started)
	if err != nil {
		h.logger.Debug("transaction rejected", zap.Error(err))
		http.Error(w, "malformed transaction: "+err.Error(), http.StatusBadRequest)
		return
	}

	view, err := parsed.View()
	if err != nil {
		h.logger.Error("build transaction view", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}
