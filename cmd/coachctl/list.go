package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/coach-admin/internal/controller"
)

// view renders one entity type as a table. prepare, when set, may fill in
// details the list endpoint left out.
type view[T any] struct {
	header  []string
	cols    func(T) []any
	prepare func(ctx context.Context, items []T) ([]T, error)
}

func (v view[T]) print(ctx context.Context, e *env, snap controller.Snapshot[T]) error {
	if !snap.HasPage {
		return nil
	}
	items := snap.Page.Items
	if v.prepare != nil {
		var err error
		if items, err = v.prepare(ctx, items); err != nil {
			return err
		}
	}
	tw := newTable(e.out, v.header...)
	for _, item := range items {
		row(tw, v.cols(item)...)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	footer(e.out, snap.Page)
	return nil
}

// listOpts are the flags shared by list commands.
type listOpts struct {
	page   int
	browse bool
}

func addListFlags(fs *flag.FlagSet) *listOpts {
	o := &listOpts{}
	fs.IntVar(&o.page, "page", 1, "page number")
	fs.BoolVar(&o.browse, "browse", false, "page and search interactively")
	return o
}

// list loads the first requested page of ctrl and prints it, then hands
// over to browse when asked.
func list[T any](ctx context.Context, e *env, ctrl *controller.Controller[T], o *listOpts, v view[T]) error {
	defer ctrl.Close()

	if err := ctrl.SetPage(ctx, o.page); err != nil {
		return err
	}
	if err := v.print(ctx, e, ctrl.Snapshot()); err != nil {
		return err
	}
	if !o.browse {
		return nil
	}
	return browse(ctx, e, ctrl, v)
}

const browseHelp = "n next, p prev, <number> page, /text search, r refresh, q quit"

// browse runs an interactive paging loop. Searches go through the
// controller's debouncer and wait out the configured quiet period.
func browse[T any](ctx context.Context, e *env, ctrl *controller.Controller[T], v view[T]) error {
	loaded := make(chan error, 1)
	search := ctrl.Debounced(ctx, e.app.Config.UI.SearchDebounce, func(err error) {
		select {
		case loaded <- err:
		default:
		}
	})
	defer search.Stop()

	for {
		in, err := e.prompt.Input(browseHelp, "")
		if err != nil {
			if errors.Is(err, errAborted) {
				return nil
			}
			return err
		}
		in = strings.TrimSpace(in)
		page := ctrl.Snapshot().Filter.Page

		switch {
		case in == "q":
			return nil
		case in == "n":
			err = ctrl.SetPage(ctx, page+1)
		case in == "p":
			err = ctrl.SetPage(ctx, page-1)
		case in == "r":
			err = ctrl.Refresh(ctx)
		case strings.HasPrefix(in, "/"):
			search.Push(map[string]any{"search": strings.TrimPrefix(in, "/")})
			select {
			case err = <-loaded:
			case <-ctx.Done():
				return ctx.Err()
			}
		default:
			n, convErr := strconv.Atoi(in)
			if convErr != nil {
				fmt.Fprintln(e.out, browseHelp)
				continue
			}
			err = ctrl.SetPage(ctx, n)
		}

		if errors.Is(err, controller.ErrSuperseded) {
			continue
		}
		if err != nil {
			fmt.Fprintln(e.errOut, exitMessage(err))
			continue
		}
		if err := v.print(ctx, e, ctrl.Snapshot()); err != nil {
			return err
		}
	}
}
