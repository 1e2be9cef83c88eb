package main

import (
	"context"

	"github.com/heartmarshall/coach-admin/internal/domain"
	gymsvc "github.com/heartmarshall/coach-admin/internal/service/gym"
)

var gymView = view[domain.Gym]{
	header: []string{"ID", "NAME", "ADDRESS", "PHONE"},
	cols: func(g domain.Gym) []any {
		return []any{g.ID, g.Name, g.Address, g.Phone}
	},
}

var memberView = view[domain.GymUser]{
	header: []string{"ID", "USER", "NAME", "EMAIL", "ROLE", "STATUS"},
	cols: func(m domain.GymUser) []any {
		return []any{m.ID, m.UserID, orDash(m.User.Name), orDash(m.User.Email), m.Role, m.Status}
	},
}

func gymsCommand(ctx context.Context, e *env, args []string) error {
	return dispatch(ctx, e, "gyms", map[string]runFunc{
		"list":          runGymsList,
		"create":        runGymsCreate,
		"update":        runGymsUpdate,
		"delete":        runGymsDelete,
		"members":       runGymMembers,
		"add-member":    runGymAddMember,
		"remove-member": runGymRemoveMember,
	}, args)
}

func runGymsList(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "gyms list")
	search := fs.String("search", "", "match name or address")
	opts := addListFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	ctrl := e.app.Gyms.Gyms(e.app.Filter(map[string]any{"search": *search}))
	return list(ctx, e, ctrl, opts, gymView)
}

func runGymsCreate(ctx context.Context, e *env, args []string) error {
	ctrl := e.app.Gyms.Gyms(e.app.Filter(nil))
	return runCreate(ctx, e, "gyms create", args, ctrl, ctrl.Schema().Defaults())
}

func runGymsUpdate(ctx context.Context, e *env, args []string) error {
	return runUpdate(ctx, e, "gyms update", args, e.app.Gyms.Gyms(e.app.Filter(nil)), gymsvc.DraftFor)
}

func runGymsDelete(ctx context.Context, e *env, args []string) error {
	return runDelete(ctx, e, "gyms delete", args, e.app.Gyms.Gyms(e.app.Filter(nil)))
}

func runGymMembers(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "gyms members")
	role := fs.String("role", "", "gym_admin, trainer, dietitian or client")
	status := fs.String("status", "", "active or inactive")
	opts := addListFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	gymID, err := argID(fs, 0, "gym-id")
	if err != nil {
		return err
	}

	ctrl := e.app.Gyms.Roster(gymID, e.app.Filter(map[string]any{"role": *role, "status": *status}))
	return list(ctx, e, ctrl, opts, memberView)
}

func runGymAddMember(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "gyms add-member")
	userID := fs.Int64("user", 0, "id of the user to add")
	form := addFormFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	gymID, err := argID(fs, 0, "gym-id")
	if err != nil {
		return err
	}

	ctrl := e.app.Gyms.Roster(gymID, e.app.Filter(nil))
	defer ctrl.Close()

	draft, err := form.edit(ctx, e, ctrl.Schema(), e.app.Gyms.MemberDraft(*userID))
	if err != nil {
		return err
	}
	out, err := ctrl.SubmitCreate(ctx, draft)
	if err != nil {
		return err
	}
	return report(e.out, out)
}

func runGymRemoveMember(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "gyms remove-member")
	yes := fs.Bool("yes", false, "skip the confirmation")
	if err := parse(fs, args); err != nil {
		return err
	}
	gymID, err := argID(fs, 0, "gym-id")
	if err != nil {
		return err
	}
	memberID, err := argID(fs, 1, "member-id")
	if err != nil {
		return err
	}

	ctrl := e.app.Gyms.Roster(gymID, e.app.Filter(nil))
	defer ctrl.Close()

	out, err := ctrl.SubmitDelete(ctx, memberID, confirmer(e.prompt, *yes))
	if err != nil {
		return err
	}
	return report(e.out, out)
}
