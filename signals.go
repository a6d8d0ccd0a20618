package replica

import (
	"context"
	"strconv"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for clone events. The Clone status code carries no failure
// detail; these events are the diagnostic channel.
var (
	SignalEngineCreated   = capitan.NewSignal("replica.engine.created", "Engine instantiated")
	SignalCloneStart      = capitan.NewSignal("replica.clone.start", "Clone operation beginning")
	SignalStrategyAttempt = capitan.NewSignal("replica.strategy.attempt", "Clone strategy attempted")
	SignalCloneComplete   = capitan.NewSignal("replica.clone.complete", "Clone operation finished")
)

// Keys for typed event data.
var (
	KeyBinaryCodec = capitan.NewStringKey("binary_codec")
	KeyTextCodec   = capitan.NewStringKey("text_codec")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyStrategy    = capitan.NewStringKey("strategy")
	KeyStatus      = capitan.NewStringKey("status")
	KeyTrusted     = capitan.NewStringKey("trusted")
	KeyComplete    = capitan.NewStringKey("complete")
	KeyDepth       = capitan.NewIntKey("depth")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitEngineCreated emits an event when an engine is created.
func emitEngineCreated(ctx context.Context, binaryType, textType string) {
	capitan.Emit(ctx, SignalEngineCreated,
		KeyBinaryCodec.Field(binaryType),
		KeyTextCodec.Field(textType),
	)
}

// emitCloneStart emits an event when a clone call begins.
func emitCloneStart(ctx context.Context, typeName string, depth int, trusted bool) {
	capitan.Emit(ctx, SignalCloneStart,
		KeyTypeName.Field(typeName),
		KeyDepth.Field(depth),
		KeyTrusted.Field(strconv.FormatBool(trusted)),
	)
}

// emitStrategyAttempt emits an event for each strategy attempt.
func emitStrategyAttempt(ctx context.Context, strat strategy, typeName string, complete bool, err error) {
	fields := []capitan.Field{
		KeyStrategy.Field(strat.String()),
		KeyTypeName.Field(typeName),
		KeyComplete.Field(strconv.FormatBool(complete)),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalStrategyAttempt, fields...)
	} else {
		capitan.Emit(ctx, SignalStrategyAttempt, fields...)
	}
}

// emitCloneComplete emits an event when a clone call finishes.
func emitCloneComplete(ctx context.Context, typeName string, strat strategy, status Status, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyStrategy.Field(strat.String()),
		KeyStatus.Field(status.String()),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalCloneComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalCloneComplete, fields...)
	}
}
