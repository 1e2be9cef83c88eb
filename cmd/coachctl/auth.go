package main

import (
	"context"
	"fmt"

	authsvc "github.com/heartmarshall/coach-admin/internal/service/auth"
)

func runLogin(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "login")
	email := fs.String("email", "", "account email")
	if err := parse(fs, args); err != nil {
		return err
	}

	in := authsvc.LoginInput{Email: *email}
	var err error
	if in.Email == "" {
		if in.Email, err = e.prompt.Input("Email", ""); err != nil {
			return err
		}
	}
	if in.Password, err = e.prompt.Password("Password"); err != nil {
		return err
	}

	res, err := e.app.Auth.Login(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Signed in as %s <%s>\n", res.User.Name, res.User.Email)
	return nil
}

func runRegister(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "register")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	phone := fs.String("phone", "", "phone number")
	if err := parse(fs, args); err != nil {
		return err
	}

	in := authsvc.RegisterInput{Name: *name, Email: *email, Phone: *phone}
	for _, q := range []struct {
		label string
		dst   *string
	}{
		{"Name", &in.Name},
		{"Email", &in.Email},
		{"Phone", &in.Phone},
	} {
		if *q.dst != "" {
			continue
		}
		v, err := e.prompt.Input(q.label, "")
		if err != nil {
			return err
		}
		*q.dst = v
	}

	var err error
	if in.Password, err = e.prompt.Password("Password"); err != nil {
		return err
	}
	if in.PasswordConfirmation, err = e.prompt.Password("Confirm password"); err != nil {
		return err
	}

	res, err := e.app.Auth.Register(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Account created. Signed in as %s <%s>\n", res.User.Name, res.User.Email)
	return nil
}

func runLogout(ctx context.Context, e *env, args []string) error {
	if err := parse(newFlags(e, "logout"), args); err != nil {
		return err
	}
	if err := e.app.Auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Signed out")
	return nil
}

func runMe(ctx context.Context, e *env, args []string) error {
	if err := parse(newFlags(e, "me"), args); err != nil {
		return err
	}
	u, err := e.app.Auth.Me(ctx)
	if err != nil {
		return err
	}
	return describe(e.out,
		"ID", u.ID,
		"Name", u.Name,
		"Email", u.Email,
		"Phone", orDash(u.Phone),
		"Role", orDash(u.Role),
		"Status", u.Status,
	)
}
