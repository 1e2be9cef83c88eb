package controller

import (
	"fmt"

	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/validator"
)

// State is the lifecycle state of a page.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Busy reports whether a page should render a loading indicator.
func (s State) Busy() bool {
	return s == StateLoading || s == StateSubmitting
}

// Snapshot is a read-only view of a controller. Page keeps the last good
// list even when State is StateErrored.
type Snapshot[T any] struct {
	State      State
	Filter     domain.EntityFilter
	Page       domain.PagedResult[T]
	HasPage    bool
	Err        error
	Validation validator.Result
}

// OutcomeKind tells the page how to react to a submission.
type OutcomeKind int

const (
	// OutcomeSuccess: close the dialog or navigate away.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeFailure: show Message and keep the draft.
	OutcomeFailure
	// OutcomeInvalid: highlight Validation.Errors; nothing was sent.
	OutcomeInvalid
	// OutcomeCancelled: the user declined the confirmation.
	OutcomeCancelled
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the result of a submission.
type Outcome[T any] struct {
	Kind       OutcomeKind
	Message    string
	Entity     T
	Validation validator.Result
	Err        error
}

// OK reports whether the submission succeeded.
func (o Outcome[T]) OK() bool { return o.Kind == OutcomeSuccess }
