package fsa

import (
	"context"
	"log/slog"
	"time"
)

// OnDispatchFunc is called before a message is reduced. Use it to enrich the
// context with logging fields or trace spans; the returned context is passed
// to the remaining hooks for that message.
type OnDispatchFunc func(ctx context.Context, msg Message) context.Context

// OnReduceFunc is called after a message has been reduced into the store.
type OnReduceFunc func(ctx context.Context, msg Message, duration time.Duration)

// OnInvalidFunc is called when Store.Process rejects raw input.
// Return nil to skip the input, return an error to fail.
type OnInvalidFunc func(ctx context.Context, raw []byte, err error) error

// hooks holds all configured hook functions.
type hooks struct {
	onDispatch []OnDispatchFunc
	onReduce   []OnReduceFunc
	onInvalid  []OnInvalidFunc
}

// storeConfig is the non-generic part of a Store.
type storeConfig struct {
	hooks         hooks
	logger        *slog.Logger
	inspector     Inspector
	discriminator Discriminator
}

// StoreOption configures a Store.
type StoreOption func(*storeConfig)

// WithLogger sets the logger used for dispatch and rejection records.
// slog.Default() is used by default.
func WithLogger(l *slog.Logger) StoreOption {
	return func(c *storeConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInspector sets the inspector Process uses to read raw input.
// JSONInspector is used by default.
func WithInspector(i Inspector) StoreOption {
	return func(c *storeConfig) {
		if i != nil {
			c.inspector = i
		}
	}
}

// WithDiscriminator adds a gate that raw input must pass, in addition to
// Standard, before Process decodes it.
//
// Example:
//
//	fsa.WithDiscriminator(fsa.Or(
//	    fsa.FieldEquals("type", "INCREMENT"),
//	    fsa.FieldEquals("type", "DECREMENT"),
//	))
func WithDiscriminator(d Discriminator) StoreOption {
	return func(c *storeConfig) {
		if d != nil {
			c.discriminator = d
		}
	}
}

// WithOnDispatch adds a hook called before each message is reduced.
// Multiple hooks are called in order, with context chaining through each.
//
// Example:
//
//	fsa.WithOnDispatch(func(ctx context.Context, msg fsa.Message) context.Context {
//	    return logx.WithCtx(ctx, slog.String("type", msg.Type))
//	})
func WithOnDispatch(fn OnDispatchFunc) StoreOption {
	return func(c *storeConfig) {
		c.hooks.onDispatch = append(c.hooks.onDispatch, fn)
	}
}

// WithOnReduce adds a hook called after each message is reduced.
// Multiple hooks are called in order.
//
// Example:
//
//	fsa.WithOnReduce(func(ctx context.Context, msg fsa.Message, d time.Duration) {
//	    metrics.Timing("fsa.reduce", d, "type:"+msg.Type)
//	})
func WithOnReduce(fn OnReduceFunc) StoreOption {
	return func(c *storeConfig) {
		c.hooks.onReduce = append(c.hooks.onReduce, fn)
	}
}

// WithOnInvalid adds a hook called when Process rejects raw input.
// Return nil to skip, return an error to fail.
// Multiple hooks are called in order; first error wins.
//
// Example:
//
//	fsa.WithOnInvalid(func(ctx context.Context, raw []byte, err error) error {
//	    logger.Warn("dropping message", "err", err)
//	    return nil
//	})
func WithOnInvalid(fn OnInvalidFunc) StoreOption {
	return func(c *storeConfig) {
		c.hooks.onInvalid = append(c.hooks.onInvalid, fn)
	}
}
