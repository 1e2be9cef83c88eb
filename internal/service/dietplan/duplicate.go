package dietplan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/coach-admin/internal/controller"
	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/schema"
)

// DuplicateSchema returns the duplicate form schema.
func (s *Service) DuplicateSchema() *schema.Schema {
	return s.schemas.Must(schema.DietPlanDuplicate)
}

// DuplicateDraft seeds the duplicate form: same client, a "Copy of" title
// and a one month range starting today.
func (s *Service) DuplicateDraft(p domain.DietPlan) schema.Values {
	start := s.now()
	return schema.Values{
		"new_title":  "Copy of " + p.Title,
		"client_id":  p.ClientID,
		"start_date": start.Format(schema.DateLayout),
		"end_date":   start.AddDate(0, 1, 0).Format(schema.DateLayout),
	}
}

// Duplicate validates draft against the duplicate schema and copies plan
// id through plans, which is then invalidated like any other mutation.
func (s *Service) Duplicate(ctx context.Context, plans *controller.Controller[domain.DietPlan], id int64, draft schema.Values) (controller.Outcome[domain.DietPlan], error) {
	out, err := plans.Submit(ctx, draft, s.DuplicateSchema(), "duplicate", func(ctx context.Context, payload any) (domain.DietPlan, error) {
		return s.dup.DuplicateDietPlan(ctx, id, payload)
	})
	if err != nil {
		return out, fmt.Errorf("dietplan.Duplicate: %w", err)
	}
	if out.OK() {
		s.log.InfoContext(ctx, "diet plan duplicated",
			slog.Int64("source_id", id),
			slog.Int64("new_id", out.Entity.ID))
	}
	return out, nil
}
