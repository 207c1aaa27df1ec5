// Package sink publishes compiled markup to stdout, disk or S3.
package sink

import (
	"context"
	"io"
	"sync"

	"github.com/vango-dev/htmlcomponent/internal/errors"
	"github.com/vango-dev/htmlcomponent/pkg/component"
)

// Sink receives compiled markup.
type Sink interface {
	// Publish stores body under name. The meaning of name depends on the
	// sink: a file name, an object key, or nothing for a stream.
	Publish(ctx context.Context, name string, body []byte) error
}

// Print compiles n, merging extra attribute pairs, and publishes the result.
func Print(ctx context.Context, s Sink, name string, n component.Node, extra ...string) error {
	out, err := n.Compile(extra...)
	if err != nil {
		return err
	}
	return s.Publish(ctx, name, []byte(out))
}

// Writer publishes to an io.Writer, ignoring names. Writes are serialized.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a sink writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Publish writes body to the underlying writer.
func (w *Writer) Publish(ctx context.Context, _ string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.w.Write(body); err != nil {
		return errors.New(errors.CodeSinkWrite).Wrap(err)
	}
	return nil
}
