package main

import (
	"context"
	"fmt"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

func profileCommand(ctx context.Context, e *env, args []string) error {
	return dispatch(ctx, e, "profile", map[string]runFunc{
		"show": runProfileShow,
		"edit": runProfileEdit,
	}, args)
}

func runProfileShow(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "profile show")
	if err := parse(fs, args); err != nil {
		return err
	}
	userID, err := argID(fs, 0, "user-id")
	if err != nil {
		return err
	}

	form, err := e.app.Profiles.Open(ctx, userID)
	if err != nil {
		return err
	}
	defer form.Close()

	p := form.Profile()
	if p == nil {
		fmt.Fprintf(e.out, "User %d has no profile yet. Run `coachctl profile edit %d` to create one.\n", userID, userID)
		return nil
	}
	return describeProfile(e, p)
}

func describeProfile(e *env, p *domain.ClientProfile) error {
	details := ""
	if p.HealthDetails != nil {
		details = *p.HealthDetails
	}
	requests := ""
	if p.AdditionalRequests != nil {
		requests = *p.AdditionalRequests
	}
	plan := p.PlanTypeDisplay
	if plan == "" {
		plan = p.PlanType
	}

	return describe(e.out,
		"User", p.UserID,
		"Age", p.Age,
		"Gender", p.Gender,
		"Height", fmt.Sprintf("%g cm", p.Height),
		"Weight", fmt.Sprintf("%g kg, target %g kg", p.CurrentWeight, p.TargetWeight),
		"Location", fmt.Sprintf("%s, %s, %s", p.City, p.State, p.Country),
		"Activity level", p.ActivityLevel,
		"Diet type", p.DietType,
		"Health conditions", joinOrDash(p.HealthConditions),
		"Health details", orDash(details),
		"Allergies", joinOrDash(p.Allergies),
		"Recovery needs", joinOrDash(p.RecoveryNeeds),
		"Meal preferences", joinOrDash(p.MealPreferences),
		"Plan type", orDash(plan),
		"Additional requests", orDash(requests),
	)
}

func runProfileEdit(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "profile edit")
	opts := addFormFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	userID, err := argID(fs, 0, "user-id")
	if err != nil {
		return err
	}

	form, err := e.app.Profiles.Open(ctx, userID)
	if err != nil {
		return err
	}
	defer form.Close()

	if !form.Exists() {
		fmt.Fprintf(e.out, "User %d has no profile yet; creating one.\n", userID)
	}
	draft, err := opts.edit(ctx, e, form.Schema(), form.Draft)
	if err != nil {
		return err
	}
	form.Draft = draft

	out, err := e.app.Profiles.Save(ctx, form)
	if err != nil {
		return err
	}
	return report(e.out, out)
}
