package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
)

// DashboardSummary is the admin landing-page snapshot. Counts are
// estimates (collection metadata), revenue is an exact aggregate.
type DashboardSummary struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// CategoryStat is a per-category rollup of everything ever ordered.
type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// Counter exposes the approximate document count of a collection.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsService computes the admin dashboard numbers.
type StatsService struct {
	users    Counter
	menu     *repositories.MenuRepository
	payments *repositories.PaymentRepository
}

func NewStatsService(users Counter, menu *repositories.MenuRepository, payments *repositories.PaymentRepository) *StatsService {
	return &StatsService{users: users, menu: menu, payments: payments}
}

// DashboardSummary returns user/menu/order counts plus total revenue.
func (s *StatsService) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	menuItems, err := s.menu.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	orders, err := s.payments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	revenue, err := s.payments.RevenueTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	return &DashboardSummary{Users: users, MenuItems: menuItems, Orders: orders, Revenue: revenue}, nil
}

// OrderStats joins every payment's purchased item ids against the menu and
// rolls the matches up per category.
func (s *StatsService) OrderStats(ctx context.Context) ([]CategoryStat, error) {
	payments, err := s.payments.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	idSet := map[string]struct{}{}
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			idSet[id] = struct{}{}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	index, err := s.menu.FindByKeys(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	return groupCategoryStats(payments, index), nil
}

// groupCategoryStats counts each purchased item id against the menu index.
// Ids that no longer resolve to a menu item (deleted dishes) are dropped
// rather than grouped under an unknown bucket. Output is sorted by
// category name so the dashboard ordering is stable.
func groupCategoryStats(payments []models.Payment, index map[string]models.MenuItem) []CategoryStat {
	byCategory := map[string]*CategoryStat{}
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			item, ok := index[id]
			if !ok {
				continue
			}
			stat, ok := byCategory[item.Category]
			if !ok {
				stat = &CategoryStat{Category: item.Category}
				byCategory[item.Category] = stat
			}
			stat.Quantity++
			stat.Revenue += item.Price
		}
	}

	out := make([]CategoryStat, 0, len(byCategory))
	for _, stat := range byCategory {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
