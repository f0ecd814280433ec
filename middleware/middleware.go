package middleware

import (
	"context"
	"log"
	"time"

	"github.com/ncecere/davinci-go/provider"
)

// Logger is the minimal logging interface used by the middleware package.
// It matches the Printf method on *log.Logger so callers can pass
// log.Default(), a zerolog.Logger, or a custom implementation.
type Logger interface {
	Printf(format string, v ...any)
}

// CompletionModelMiddleware wraps a provider.CompletionModel with
// additional behavior such as logging or telemetry. Deliberately not
// included here: retries and rate limiting, which are the caller's
// decision and outside this SDK.
type CompletionModelMiddleware func(provider.CompletionModel) provider.CompletionModel

// WrapCompletionModel applies the provided middlewares around the base
// completion model. Middlewares are applied in the order provided, so
// the first middleware becomes the outermost wrapper.
func WrapCompletionModel(base provider.CompletionModel, mws ...CompletionModelMiddleware) provider.CompletionModel {
	wrapped := base
	for i := len(mws) - 1; i >= 0; i-- {
		wrapped = mws[i](wrapped)
	}
	return wrapped
}

// LoggingOptions controls which aspects of a completion call are
// logged by the logging middleware.
type LoggingOptions struct {
	// Logger is the destination for log output. If nil, log.Default() is used.
	Logger Logger
	// LogRequest controls whether request metadata (model name) is logged.
	LogRequest bool
	// LogResponse controls whether successful responses are logged.
	LogResponse bool
	// LogErrors controls whether errors are logged.
	LogErrors bool
	// LogDuration controls whether call duration is logged.
	LogDuration bool
}

// defaultLoggingOptions returns a LoggingOptions value with sensible
// defaults for typical usage.
func defaultLoggingOptions(opts LoggingOptions) LoggingOptions {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	// By default, log request metadata, errors, and duration.
	if !opts.LogRequest && !opts.LogResponse && !opts.LogErrors && !opts.LogDuration {
		opts.LogRequest = true
		opts.LogErrors = true
		opts.LogDuration = true
	}
	return opts
}

// LoggingCompletionModel returns a CompletionModelMiddleware that logs
// Generate calls using the provided options. Logs focus on high-level
// metadata (model name, duration, and error state) and never include
// the prompt, the completion text, or the credential.
func LoggingCompletionModel(opts LoggingOptions) CompletionModelMiddleware {
	opts = defaultLoggingOptions(opts)

	return func(next provider.CompletionModel) provider.CompletionModel {
		return &loggingCompletionModel{
			next:  next,
			opts:  opts,
			logFn: opts.Logger.Printf,
		}
	}
}

type loggingCompletionModel struct {
	next  provider.CompletionModel
	opts  LoggingOptions
	logFn func(format string, v ...any)
}

func (l *loggingCompletionModel) Generate(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error) {
	start := time.Now()
	if l.opts.LogRequest {
		l.logFn("completion.generate start model=%s", req.Model)
	}

	res, err := l.next.Generate(ctx, req)
	dur := time.Since(start)

	if err != nil {
		if l.opts.LogErrors {
			if l.opts.LogDuration {
				l.logFn("completion.generate error model=%s duration=%s err=%v", req.Model, dur, err)
			} else {
				l.logFn("completion.generate error model=%s err=%v", req.Model, err)
			}
		}
		return nil, err
	}

	if l.opts.LogResponse {
		if l.opts.LogDuration {
			l.logFn("completion.generate success model=%s duration=%s", req.Model, dur)
		} else {
			l.logFn("completion.generate success model=%s", req.Model)
		}
	} else if l.opts.LogDuration {
		l.logFn("completion.generate done model=%s duration=%s", req.Model, dur)
	}

	return res, nil
}

// CompletionCallInfo contains high-level metadata about a completion
// call that can be used for metrics or tracing.
type CompletionCallInfo struct {
	Model     string
	StartTime time.Time
	EndTime   time.Time
	Err       error
}

// TelemetryHooks defines callbacks that are invoked around completion
// calls. These hooks are intentionally generic so that callers can
// integrate with metrics/tracing systems such as OpenTelemetry without
// this package taking a hard dependency on them.
type TelemetryHooks struct {
	OnCompletionCall func(ctx context.Context, info CompletionCallInfo)
}

// TelemetryCompletionModel returns a CompletionModelMiddleware that
// invokes the provided telemetry hooks around Generate calls.
func TelemetryCompletionModel(hooks TelemetryHooks) CompletionModelMiddleware {
	return func(next provider.CompletionModel) provider.CompletionModel {
		return &telemetryCompletionModel{
			next:  next,
			hooks: hooks,
		}
	}
}

type telemetryCompletionModel struct {
	next  provider.CompletionModel
	hooks TelemetryHooks
}

func (t *telemetryCompletionModel) Generate(ctx context.Context, req *provider.CompletionRequest) (*provider.CompletionResponse, error) {
	start := time.Now()
	res, err := t.next.Generate(ctx, req)
	if t.hooks.OnCompletionCall != nil {
		t.hooks.OnCompletionCall(ctx, CompletionCallInfo{
			Model:     req.Model,
			StartTime: start,
			EndTime:   time.Now(),
			Err:       err,
		})
	}
	return res, err
}
