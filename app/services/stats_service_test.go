package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/bistro/app/models"
)

func TestGroupCategoryStats(t *testing.T) {
	index := map[string]models.MenuItem{
		"642c155b2c4774f05c36eeaa": {Name: "Tuna Niçoise", Category: "salad", Price: 5},
		"legacy-dish":              {Name: "Wild Mushroom Soup", Category: "soup", Price: 7},
		"642c155b2c4774f05c36eeab": {Name: "Tarte Tatin", Category: "dessert", Price: 8},
	}
	payments := []models.Payment{
		{MenuItemIDs: []string{"642c155b2c4774f05c36eeaa", "legacy-dish"}},
		{MenuItemIDs: []string{"642c155b2c4774f05c36eeaa"}},
		{MenuItemIDs: []string{"642c155b2c4774f05c36eeab", "gone-dish"}},
	}

	stats := groupCategoryStats(payments, index)

	assert.Equal(t, []CategoryStat{
		{Category: "dessert", Quantity: 1, Revenue: 8},
		{Category: "salad", Quantity: 2, Revenue: 10},
		{Category: "soup", Quantity: 1, Revenue: 7},
	}, stats, "sorted by category; unresolvable ids dropped")
}

func TestGroupCategoryStatsEmpty(t *testing.T) {
	stats := groupCategoryStats(nil, nil)
	assert.Empty(t, stats)

	stats = groupCategoryStats([]models.Payment{{MenuItemIDs: []string{"gone"}}}, map[string]models.MenuItem{})
	assert.Empty(t, stats)
}
