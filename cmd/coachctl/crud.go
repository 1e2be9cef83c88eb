package main

import (
	"context"

	"github.com/heartmarshall/coach-admin/internal/controller"
	"github.com/heartmarshall/coach-admin/internal/schema"
)

// runCreate fills a form seeded with seed and submits it through ctrl.
func runCreate[T any](ctx context.Context, e *env, name string, args []string, ctrl *controller.Controller[T], seed schema.Values) error {
	defer ctrl.Close()

	fs := newFlags(e, name)
	form := addFormFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}

	draft, err := form.edit(ctx, e, ctrl.Schema(), seed)
	if err != nil {
		return err
	}
	out, err := ctrl.SubmitCreate(ctx, draft)
	if err != nil {
		return err
	}
	return report(e.out, out)
}

// runUpdate loads the entity named by the first argument, lets the user
// edit it and submits the result.
func runUpdate[T any](ctx context.Context, e *env, name string, args []string, ctrl *controller.Controller[T], draftFor func(T) schema.Values) error {
	defer ctrl.Close()

	fs := newFlags(e, name)
	form := addFormFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	id, err := argID(fs, 0, "id")
	if err != nil {
		return err
	}

	current, err := ctrl.Load(ctx, id)
	if err != nil {
		return err
	}
	draft, err := form.edit(ctx, e, ctrl.Schema(), draftFor(current))
	if err != nil {
		return err
	}
	out, err := ctrl.SubmitUpdate(ctx, id, draft)
	if err != nil {
		return err
	}
	return report(e.out, out)
}

// runDelete asks for confirmation, unless -yes is given, and deletes the
// entity named by the first argument.
func runDelete[T any](ctx context.Context, e *env, name string, args []string, ctrl *controller.Controller[T]) error {
	defer ctrl.Close()

	fs := newFlags(e, name)
	yes := fs.Bool("yes", false, "skip the confirmation")
	if err := parse(fs, args); err != nil {
		return err
	}
	id, err := argID(fs, 0, "id")
	if err != nil {
		return err
	}

	out, err := ctrl.SubmitDelete(ctx, id, confirmer(e.prompt, *yes))
	if err != nil {
		return err
	}
	return report(e.out, out)
}
