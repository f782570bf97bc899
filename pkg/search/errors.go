package search

import "github.com/bootinge/omim/pkg/errs"

// errCanceled is the sentinel used internally to unwind a stage early on
// cancellation.
var errCanceled = errs.ErrCanceled
