package mock

import (
	"context"

	"github.com/fwojciec/newspulse"
)

var _ newspulse.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of newspulse.ResultWriter.
type ResultWriter struct {
	WriteResultsFn func(ctx context.Context, table *newspulse.ResultTable) error
}

func (w *ResultWriter) WriteResults(ctx context.Context, table *newspulse.ResultTable) error {
	return w.WriteResultsFn(ctx, table)
}
