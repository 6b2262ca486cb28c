// Package handler serves signal and backtest invocations over decoded JSON
// events.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"smacross/internal/engine"
	"smacross/strategies/smacross"
	"smacross/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

const (
	invokedMessage = "Invoked directly!"
	smaPrefix      = "SMA Signal: "
	macdPrefix     = "MACD Signal: "
)

// Response echoes the invocation input next to the computed signal texts.
type Response struct {
	Message   string          `json:"message"`
	Input     json.RawMessage `json:"input"`
	Signals   []string        `json:"signals"`
	RequestID string          `json:"request_id"`
}

type Handler struct {
	n1             int
	n2             int
	params         smacross.Params
	policy         types.ParsePolicy
	initialBalance decimal.Decimal
	logger         *zap.Logger
}

// NewHandler builds a handler. n1 and n2 are the periods used when an event
// omits them; policy applies unless the event sets strict.
func NewHandler(n1, n2 int, params smacross.Params, policy types.ParsePolicy, initialBalance decimal.Decimal, logger *zap.Logger) *Handler {
	return &Handler{
		n1:             n1,
		n2:             n2,
		params:         params,
		policy:         policy,
		initialBalance: initialBalance,
		logger:         logger,
	}
}

// Invoke computes the signals for payload with the strategy it names.
func (h *Handler) Invoke(ctx context.Context, payload []byte) (Response, error) {
	return h.invoke(ctx, uuid.NewString(), payload)
}

// Backtest replays the lot-tracking strategy over payload and reports the
// simulated balance.
func (h *Handler) Backtest(ctx context.Context, payload []byte) (types.BacktestReport, error) {
	return h.backtest(ctx, uuid.NewString(), payload)
}

func (h *Handler) invoke(ctx context.Context, requestID string, payload []byte) (Response, error) {
	log := h.logger.With(zap.String("request_id", requestID))
	ev, candles, policy, err := h.prepare(ctx, log, payload)
	if err != nil {
		return Response{}, err
	}

	signals, prefix, err := h.signals(ev, candles, policy)
	if err != nil {
		log.Warn("strategy failed", zap.String("strategy", ev.Strategy), zap.Error(err))
		return Response{}, err
	}
	texts := types.SignalStrings(signals, prefix)
	for _, s := range texts {
		log.Debug("signal", zap.String("signal", s))
	}
	log.Info("signals computed", zap.String("strategy", ev.Strategy), zap.Int("signals", len(texts)))

	return Response{
		Message:   invokedMessage,
		Input:     append(json.RawMessage(nil), payload...),
		Signals:   texts,
		RequestID: requestID,
	}, nil
}

func (h *Handler) backtest(ctx context.Context, requestID string, payload []byte) (types.BacktestReport, error) {
	log := h.logger.With(zap.String("request_id", requestID))
	ev, candles, policy, err := h.prepare(ctx, log, payload)
	if err != nil {
		return types.BacktestReport{}, err
	}

	balance := h.initialBalance
	if ev.InitialBalance != nil {
		balance = *ev.InitialBalance
	}
	cfg := engine.NewStrategyConfig(ev.N1, ev.N2, h.params, policy)
	report, err := engine.Backtest(candles, ev.Positions, balance, cfg)
	if err != nil {
		log.Warn("backtest failed", zap.Error(err))
		return types.BacktestReport{}, err
	}
	log.Info("backtest finished",
		zap.Int("positions", len(ev.Positions)),
		zap.Int("signals", len(report.Signals)),
		zap.Int("trades", report.TradeCount),
		zap.String("profit_loss", report.ProfitLoss.String()),
	)
	return report, nil
}

// prepare decodes and parses the event and validates its periods against the
// candle count.
func (h *Handler) prepare(ctx context.Context, log *zap.Logger, payload []byte) (Event, []types.Candle, types.ParsePolicy, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, nil, h.policy, err
	}
	ev, err := DecodeEvent(payload, h.n1, h.n2)
	if err != nil {
		log.Warn("rejected event", zap.Error(err))
		return Event{}, nil, h.policy, err
	}
	policy := h.policy
	if ev.Strict != nil {
		policy = types.PolicyFor(*ev.Strict)
	}
	log.Info("received event",
		zap.String("strategy", ev.Strategy),
		zap.Int("candles", len(ev.HistoricalData)),
		zap.Int("n1", ev.N1),
		zap.Int("n2", ev.N2),
		zap.Stringer("policy", policy),
	)

	candles, err := types.ParseCandles(ev.HistoricalData, policy)
	if err != nil {
		log.Warn("rejected candles", zap.Error(err))
		return Event{}, nil, policy, err
	}
	if err := smacross.ValidatePeriods(ev.N1, ev.N2, len(candles)); err != nil {
		log.Warn("rejected periods", zap.Error(err))
		return Event{}, nil, policy, err
	}
	return ev, candles, policy, nil
}

func (h *Handler) signals(ev Event, candles []types.Candle, policy types.ParsePolicy) ([]types.Signal, string, error) {
	switch ev.Strategy {
	case StrategySMA:
		signals, err := smacross.SimpleSignals(candles, ev.N1, ev.N2)
		return signals, smaPrefix, err
	case StrategySMAPositions:
		seed, err := types.ParseLots(ev.Positions, policy)
		if err != nil {
			return nil, "", err
		}
		signals, err := smacross.CrossingSignals(candles, ev.N1, ev.N2, seed, h.params)
		return signals, smaPrefix, err
	case StrategyMACD:
		signals, err := smacross.MACDSignals(candles, smacross.DefaultMACDFast, smacross.DefaultMACDSlow, smacross.DefaultMACDSignal)
		return signals, macdPrefix, err
	}
	return nil, "", fmt.Errorf("%w %q", ErrUnknownStrategy, ev.Strategy)
}
