package tracekit

import (
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

// InstrumentRedis attaches command tracing hooks to a go-redis client.
// Spans carry the standard db.system and db.operation attributes.
func (tc *Context) InstrumentRedis(client redis.UniversalClient) error {
	return redisotel.InstrumentTracing(client,
		redisotel.WithTracerProvider(tc.provider),
	)
}
