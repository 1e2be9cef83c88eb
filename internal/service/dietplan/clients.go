package dietplan

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/coach-admin/internal/domain"
	"github.com/heartmarshall/coach-admin/internal/loader"
)

// WithClients fills in the client summary of plans the backend returned
// without one. Lookups are batched and each client is fetched once.
// plans is not modified.
func (s *Service) WithClients(ctx context.Context, plans []domain.DietPlan) ([]domain.DietPlan, error) {
	var ids []int64
	for _, p := range plans {
		if p.Client == nil && p.ClientID > 0 && !slices.Contains(ids, p.ClientID) {
			ids = append(ids, p.ClientID)
		}
	}

	out := slices.Clone(plans)
	if len(ids) == 0 {
		return out, nil
	}

	l := loader.FromContext(ctx)
	if l == nil {
		l = loader.NewLoaders(s.users)
	}
	clients, err := l.UserSummaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("dietplan.WithClients: %w", err)
	}

	for i := range out {
		if out[i].Client != nil {
			continue
		}
		if c, ok := clients[out[i].ClientID]; ok {
			out[i].Client = &c
		}
	}
	return out, nil
}

// ClientName returns the display name of the plan client, or "ID: n" when
// it is unknown.
func ClientName(p domain.DietPlan) string {
	if p.Client != nil && p.Client.Name != "" {
		return p.Client.Name
	}
	return fmt.Sprintf("ID: %d", p.ClientID)
}
