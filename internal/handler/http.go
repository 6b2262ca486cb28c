package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"smacross/strategies/smacross"
	"smacross/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var maxPayloadBytes int64 = 16 << 20

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

// Routes exposes POST /invoke and POST /backtest.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /invoke", func(w http.ResponseWriter, r *http.Request) {
		requestID, payload, ok := h.readPayload(w, r)
		if !ok {
			return
		}
		resp, err := h.invoke(r.Context(), requestID, payload)
		h.respond(w, requestID, resp, err)
	})
	mux.HandleFunc("POST /backtest", func(w http.ResponseWriter, r *http.Request) {
		requestID, payload, ok := h.readPayload(w, r)
		if !ok {
			return
		}
		report, err := h.backtest(r.Context(), requestID, payload)
		h.respond(w, requestID, report, err)
	})
	return mux
}

func (h *Handler) readPayload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		status := http.StatusBadRequest
		if errors.As(err, new(*http.MaxBytesError)) {
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, errorBody{Error: err.Error(), RequestID: requestID})
		return requestID, nil, false
	}
	return requestID, payload, true
}

func (h *Handler) respond(w http.ResponseWriter, requestID string, body any, err error) {
	if err != nil {
		writeJSON(w, statusFor(err), errorBody{Error: err.Error(), RequestID: requestID})
		return
	}
	if err := writeJSON(w, http.StatusOK, body); err != nil {
		h.logger.Error("write response", zap.String("request_id", requestID), zap.Error(err))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrDeserialization), errors.Is(err, ErrUnknownStrategy):
		return http.StatusBadRequest
	case errors.Is(err, smacross.ErrInvalidParameters), errors.Is(err, types.ErrMalformedNumericField):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
