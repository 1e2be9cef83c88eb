package main

import (
	"context"
	"fmt"

	"github.com/heartmarshall/coach-admin/internal/domain"
	usersvc "github.com/heartmarshall/coach-admin/internal/service/user"
)

var userView = view[domain.User]{
	header: []string{"ID", "NAME", "EMAIL", "PHONE", "ROLE", "STATUS"},
	cols: func(u domain.User) []any {
		return []any{u.ID, u.Name, u.Email, orDash(u.Phone), orDash(u.Role), u.Status}
	},
}

func usersCommand(ctx context.Context, e *env, args []string) error {
	return dispatch(ctx, e, "users", map[string]runFunc{
		"list":   runUsersList,
		"create": runUsersCreate,
		"update": runUsersUpdate,
		"delete": runUsersDelete,
	}, args)
}

func runUsersList(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "users list")
	search := fs.String("search", "", "match name, email or phone")
	role := fs.String("role", "", "only users holding this role")
	status := fs.String("status", "", "active or inactive")
	opts := addListFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}

	ctrl := e.app.Users.Users(e.app.Filter(map[string]any{
		"search": *search,
		"role":   *role,
		"status": *status,
	}))
	return list(ctx, e, ctrl, opts, userView)
}

func runUsersCreate(ctx context.Context, e *env, args []string) error {
	ctrl := e.app.Users.Users(e.app.Filter(nil))
	return runCreate(ctx, e, "users create", args, ctrl, ctrl.Schema().Defaults())
}

func runUsersUpdate(ctx context.Context, e *env, args []string) error {
	return runUpdate(ctx, e, "users update", args, e.app.Users.Users(e.app.Filter(nil)), usersvc.DraftFor)
}

func runUsersDelete(ctx context.Context, e *env, args []string) error {
	return runDelete(ctx, e, "users delete", args, e.app.Users.Users(e.app.Filter(nil)))
}

func runRoles(ctx context.Context, e *env, args []string) error {
	if err := parse(newFlags(e, "roles"), args); err != nil {
		return err
	}
	roles, err := e.app.Users.Roles(ctx)
	if err != nil {
		return err
	}
	tw := newTable(e.out, "ID", "NAME")
	for _, r := range roles {
		row(tw, r.ID, r.Name)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(roles) == 0 {
		fmt.Fprintln(e.out, "No records found.")
	}
	return nil
}
