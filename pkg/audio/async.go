package audio

import (
	"context"
)

// DefaultChunkSize is the number of frames consumed between cancellation
// checks when aggregating asynchronously.
const DefaultChunkSize = 256

// Result is delivered by AggregateAsync when aggregation completes.
type Result struct {
	Aggregate *Aggregate
	Err       error
}

// AggregateAsync aggregates frames on a background goroutine and delivers the
// result on the returned channel. The channel is buffered, so the result is
// never lost even if the caller reads late. Frames are consumed in chunks of
// chunkSize with a cancellation check between chunks, keeping long sessions
// responsive to ctx. A non-positive chunkSize falls back to DefaultChunkSize.
//
// The aggregate delivered is identical to what AggregateFrames would return
// for the same input.
func AggregateAsync(ctx context.Context, frames []FrameMetric, chunkSize int) <-chan Result {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	out := make(chan Result, 1)
	go func() {
		defer close(out)

		if len(frames) == 0 {
			out <- Result{}
			return
		}

		var c frameCollector
		for start := 0; start < len(frames); start += chunkSize {
			if err := ctx.Err(); err != nil {
				out <- Result{Err: err}
				return
			}
			end := start + chunkSize
			if end > len(frames) {
				end = len(frames)
			}
			for _, m := range frames[start:end] {
				c.add(m)
			}
		}
		out <- Result{Aggregate: c.finalize()}
	}()
	return out
}
