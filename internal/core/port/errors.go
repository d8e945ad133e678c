package port

import "errors"

// ErrNotFound is returned by repositories when a directly referenced entity
// (placement, template, campaign, request event) does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError marks client-caused input problems: bad slot counts,
// malformed identifiers, structurally invalid template markup. The HTTP
// adapter maps it to a 4xx status before any query executes.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// AggregationError marks malformed dimension data handed to the aggregation
// engine. It is rejected at the call site; callers decide whether to
// propagate or suppress it.
type AggregationError string

func (e AggregationError) Error() string { return string(e) }
