package provision

import (
	"context"
	"slices"
)

// RecordingInvoker stores every argument vector it is given and returns Err.
type RecordingInvoker struct {
	Calls [][]string
	Err   error
}

func (r *RecordingInvoker) Run(_ context.Context, args []string) error {
	r.Calls = append(r.Calls, slices.Clone(args))
	return r.Err
}
