package logger

import (
	"context"
)

type ctxKeyDetails struct{}

type ctxValue struct {
	Super    *ctxValue
	LogEntry logEntry
}

// ContextWith attaches logging details to the context,
// so every log entry made with the returned context carries them.
func ContextWith(ctx context.Context, lds ...LoggingDetail) context.Context {
	if len(lds) == 0 {
		return ctx
	}
	var v ctxValue
	if prev, ok := lookupValue(ctx); ok {
		v.Super = prev
	}
	v.LogEntry = make(logEntry)
	for _, ld := range lds {
		ld.addTo(v.LogEntry)
	}
	return context.WithValue(ctx, ctxKeyDetails{}, &v)
}

func getLoggingDetailsFromContext(ctx context.Context) logEntry {
	d := make(logEntry)
	if ctx == nil {
		return d
	}
	v, ok := lookupValue(ctx)
	if !ok {
		return d
	}
	var chain []*ctxValue
	for ; v != nil; v = v.Super {
		chain = append(chain, v)
	}
	// outer details first, so inner ones win on key collision
	for i := len(chain) - 1; 0 <= i; i-- {
		d.Merge(chain[i].LogEntry)
	}
	return d
}

func lookupValue(ctx context.Context) (*ctxValue, bool) {
	if ptr, ok := ctx.Value(ctxKeyDetails{}).(*ctxValue); ok {
		return ptr, true
	}
	return nil, false
}
