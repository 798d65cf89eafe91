/*
Package tracing provides lightweight request tracing.

Every inbound request gets a span; the outbound Gemini call opens a child
span. Finished spans are logged through zap by a background collector.

# Usage

	tracer := tracing.New("blueprint", logger.Logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "gemini.generateContent")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

# Trace Format

Context propagates through standard headers:
  - X-Trace-ID: identifier for the whole request flow
  - X-Span-ID: identifier for the current operation

Inbound values are honored, so a caller can stitch its own trace to ours.
*/
package tracing
