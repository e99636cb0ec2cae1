package xsource

import (
	"fmt"
	"log/slog"
)

func slogFingerprint(fp uint64) slog.Attr {
	return slog.String("fingerprint", fmt.Sprintf("%016x", fp))
}

func slogTrigger(trigger string) slog.Attr {
	return slog.String("trigger", trigger)
}

func slogBreakerState(from, to fmt.Stringer) slog.Attr {
	return slog.Group("breaker", slog.String("from", from.String()), slog.String("to", to.String()))
}
