package service

import (
	"github.com/item-report-generator/internal/config"
	"github.com/item-report-generator/internal/models"
)

// visibilityPolicy selects and annotates the items a role may see.
// Policies return fresh slices and never write to their input.
type visibilityPolicy func(items []models.Item) []models.AnnotatedItem

// policyFor maps every role to a policy. Unknown roles see nothing.
func policyFor(role models.Role, cfg config.ReportConfig) visibilityPolicy {
	switch role {
	case models.RoleAdmin:
		return markHighValueItems(cfg.PriorityThreshold)
	case models.RoleUser:
		return filterUserItems(cfg.UserValueLimit)
	default:
		return hideAllItems
	}
}

// markHighValueItems keeps every item and flags those above threshold
func markHighValueItems(threshold float64) visibilityPolicy {
	return func(items []models.Item) []models.AnnotatedItem {
		visible := make([]models.AnnotatedItem, 0, len(items))
		for _, item := range items {
			visible = append(visible, models.AnnotatedItem{
				Item:     item,
				Priority: item.Value > threshold,
			})
		}
		return visible
	}
}

// filterUserItems keeps items whose value is at most limit, in order
func filterUserItems(limit float64) visibilityPolicy {
	return func(items []models.Item) []models.AnnotatedItem {
		visible := make([]models.AnnotatedItem, 0, len(items))
		for _, item := range items {
			if item.Value <= limit {
				visible = append(visible, models.AnnotatedItem{Item: item})
			}
		}
		return visible
	}
}

func hideAllItems([]models.Item) []models.AnnotatedItem {
	return []models.AnnotatedItem{}
}
