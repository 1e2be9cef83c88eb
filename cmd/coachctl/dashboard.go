package main

import (
	"context"
)

func runDashboard(ctx context.Context, e *env, args []string) error {
	if err := parse(newFlags(e, "dashboard"), args); err != nil {
		return err
	}
	stats, err := e.app.Dashboard.Stats(ctx)
	if err != nil {
		return err
	}
	return describe(e.out,
		"Users", stats.Users,
		"Gyms", stats.Gyms,
		"Diet plans", stats.DietPlans,
	)
}
