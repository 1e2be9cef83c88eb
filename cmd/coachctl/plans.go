package main

import (
	"context"
	"fmt"

	"github.com/heartmarshall/coach-admin/internal/domain"
	dietplansvc "github.com/heartmarshall/coach-admin/internal/service/dietplan"
)

func planView(e *env) view[domain.DietPlan] {
	return view[domain.DietPlan]{
		header: []string{"ID", "TITLE", "CLIENT", "KCAL", "STATUS", "START", "END"},
		cols: func(p domain.DietPlan) []any {
			return []any{p.ID, p.Title, dietplansvc.ClientName(p), p.DailyCalories, p.Status, p.StartDate, p.EndDate}
		},
		prepare: e.app.DietPlans.WithClients,
	}
}

var mealPlanView = view[domain.MealPlan]{
	header: []string{"ID", "DAY", "MEALS", "KCAL", "PROTEIN", "CARBS", "FATS"},
	cols: func(m domain.MealPlan) []any {
		return []any{m.ID, m.DayOfWeek, len(m.Meals), m.TotalCalories, m.TotalProtein, m.TotalCarbs, m.TotalFats}
	},
}

func plansCommand(ctx context.Context, e *env, args []string) error {
	return dispatch(ctx, e, "plans", map[string]runFunc{
		"list":      runPlansList,
		"show":      runPlansShow,
		"create":    runPlansCreate,
		"update":    runPlansUpdate,
		"delete":    runPlansDelete,
		"duplicate": runPlansDuplicate,
	}, args)
}

func runPlansList(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "plans list")
	search := fs.String("search", "", "match title or description")
	status := fs.String("status", "", "active, inactive or completed")
	client := fs.Int64("client", 0, "only plans of this client id")
	opts := addListFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}

	fields := map[string]any{"search": *search, "status": *status}
	if *client > 0 {
		fields["client_id"] = *client
	}
	return list(ctx, e, e.app.DietPlans.Plans(e.app.Filter(fields)), opts, planView(e))
}

func runPlansShow(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "plans show")
	if err := parse(fs, args); err != nil {
		return err
	}
	id, err := argID(fs, 0, "id")
	if err != nil {
		return err
	}

	ctrl := e.app.DietPlans.Plans(e.app.Filter(nil))
	defer ctrl.Close()

	p, err := ctrl.Load(ctx, id)
	if err != nil {
		return err
	}
	withClient, err := e.app.DietPlans.WithClients(ctx, []domain.DietPlan{p})
	if err != nil {
		return err
	}
	p = withClient[0]

	pairs := []any{
		"ID", p.ID,
		"Title", p.Title,
		"Client", dietplansvc.ClientName(p),
		"Status", p.Status,
		"Period", p.StartDate + " to " + p.EndDate,
		"Daily calories", fmt.Sprintf("%g kcal", p.DailyCalories),
		"Macros", fmt.Sprintf("protein %gg, carbs %gg, fats %gg", p.ProteinGrams, p.CarbsGrams, p.FatsGrams),
	}
	if m := p.MacroPercentages; m != nil {
		pairs = append(pairs, "Split", fmt.Sprintf("protein %g%%, carbs %g%%, fats %g%%", m.Protein, m.Carbs, m.Fats))
	}
	pairs = append(pairs, "Description", orDash(p.Description))
	if err := describe(e.out, pairs...); err != nil {
		return err
	}

	if len(p.MealPlans) == 0 {
		return nil
	}
	fmt.Fprintln(e.out)
	tw := newTable(e.out, mealPlanView.header...)
	for _, m := range p.MealPlans {
		row(tw, mealPlanView.cols(m)...)
	}
	return tw.Flush()
}

func runPlansCreate(ctx context.Context, e *env, args []string) error {
	ctrl := e.app.DietPlans.Plans(e.app.Filter(nil))
	return runCreate(ctx, e, "plans create", args, ctrl, ctrl.Schema().Defaults())
}

func runPlansUpdate(ctx context.Context, e *env, args []string) error {
	return runUpdate(ctx, e, "plans update", args, e.app.DietPlans.Plans(e.app.Filter(nil)), dietplansvc.DraftFor)
}

func runPlansDelete(ctx context.Context, e *env, args []string) error {
	return runDelete(ctx, e, "plans delete", args, e.app.DietPlans.Plans(e.app.Filter(nil)))
}

func runPlansDuplicate(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "plans duplicate")
	form := addFormFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	id, err := argID(fs, 0, "id")
	if err != nil {
		return err
	}

	svc := e.app.DietPlans
	ctrl := svc.Plans(e.app.Filter(nil))
	defer ctrl.Close()

	src, err := ctrl.Load(ctx, id)
	if err != nil {
		return err
	}
	draft, err := form.edit(ctx, e, svc.DuplicateSchema(), svc.DuplicateDraft(src))
	if err != nil {
		return err
	}
	out, err := svc.Duplicate(ctx, ctrl, id, draft)
	if err != nil {
		return err
	}
	return report(e.out, out)
}

func mealPlansCommand(ctx context.Context, e *env, args []string) error {
	return dispatch(ctx, e, "meal-plans", map[string]runFunc{
		"list":   runMealPlansList,
		"add":    runMealPlansAdd,
		"remove": runMealPlansRemove,
	}, args)
}

func runMealPlansList(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "meal-plans list")
	opts := addListFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	planID, err := argID(fs, 0, "plan-id")
	if err != nil {
		return err
	}
	return list(ctx, e, e.app.DietPlans.MealPlans(planID), opts, mealPlanView)
}

func runMealPlansAdd(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "meal-plans add")
	form := addFormFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	planID, err := argID(fs, 0, "plan-id")
	if err != nil {
		return err
	}

	ctrl := e.app.DietPlans.MealPlans(planID)
	defer ctrl.Close()

	draft, err := form.edit(ctx, e, ctrl.Schema(), ctrl.Schema().Defaults())
	if err != nil {
		return err
	}
	out, err := ctrl.SubmitCreate(ctx, draft)
	if err != nil {
		return err
	}
	return report(e.out, out)
}

func runMealPlansRemove(ctx context.Context, e *env, args []string) error {
	fs := newFlags(e, "meal-plans remove")
	yes := fs.Bool("yes", false, "skip the confirmation")
	if err := parse(fs, args); err != nil {
		return err
	}
	planID, err := argID(fs, 0, "plan-id")
	if err != nil {
		return err
	}
	mealPlanID, err := argID(fs, 1, "meal-plan-id")
	if err != nil {
		return err
	}

	ctrl := e.app.DietPlans.MealPlans(planID)
	defer ctrl.Close()

	out, err := ctrl.SubmitDelete(ctx, mealPlanID, confirmer(e.prompt, *yes))
	if err != nil {
		return err
	}
	return report(e.out, out)
}
