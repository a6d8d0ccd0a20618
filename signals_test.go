package replica

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitEngineCreated(_ *testing.T) {
	// Should not panic
	emitEngineCreated(context.Background(), "application/msgpack", "application/xml")
}

func TestEmitCloneStart(_ *testing.T) {
	emitCloneStart(context.Background(), "main.Order", 2, false)
}

func TestEmitStrategyAttempt_Success(_ *testing.T) {
	emitStrategyAttempt(context.Background(), strategyRecursive, "main.Order", true, nil)
}

func TestEmitStrategyAttempt_Error(_ *testing.T) {
	emitStrategyAttempt(context.Background(), strategyFull, "main.Order", false, errors.New("test error"))
}

func TestEmitCloneComplete_Success(_ *testing.T) {
	emitCloneComplete(context.Background(), "main.Order", strategyRecursive, StatusPartial, 100*time.Millisecond, nil)
}

func TestEmitCloneComplete_Error(_ *testing.T) {
	emitCloneComplete(context.Background(), "main.Order", strategyNone, StatusFailed, 100*time.Millisecond, errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	// Verify signals are properly initialized
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalEngineCreated", SignalEngineCreated},
		{"SignalCloneStart", SignalCloneStart},
		{"SignalStrategyAttempt", SignalStrategyAttempt},
		{"SignalCloneComplete", SignalCloneComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	// Verify keys are properly initialized
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyBinaryCodec", KeyBinaryCodec},
		{"KeyTextCodec", KeyTextCodec},
		{"KeyTypeName", KeyTypeName},
		{"KeyStrategy", KeyStrategy},
		{"KeyStatus", KeyStatus},
		{"KeyTrusted", KeyTrusted},
		{"KeyComplete", KeyComplete},
		{"KeyDepth", KeyDepth},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}

func TestStrategy_String(t *testing.T) {
	tests := []struct {
		strat strategy
		want  string
	}{
		{strategyNone, "none"},
		{strategyFull, "full"},
		{strategyRecursive, "recursive"},
		{strategyText, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.strat.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
