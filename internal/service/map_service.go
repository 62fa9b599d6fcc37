package service

import (
	"strings"

	"agritrace/internal/model"
	"agritrace/internal/store"

	"github.com/shopspring/decimal"
)

// FieldListResponse carries the filtered fields plus the headline totals the
// dashboard shows next to the map.
type FieldListResponse struct {
	Fields      []model.Field `json:"fields"`
	TotalFields int           `json:"total_fields"`
	TotalArea   float64       `json:"total_area"`
}

// MapService serves the map dashboard: permission-scoped field lists, search
// narrowing and the POI layer.
type MapService interface {
	VisibleFields(user *model.User, query string) FieldListResponse
	AccessibleFields(user *model.User) []model.Field
	POIs() []model.PointOfInterest
}

type mapService struct {
	store *store.Store
}

// NewMapService returns a MapService backed by the shared store.
func NewMapService(st *store.Store) MapService {
	return &mapService{store: st}
}

// FilterByRole returns the subset of fields the user may see. Pure function
// of its inputs; no side effects.
//
//   - admin sees every field regardless of partnerships
//   - buyer sees fields whose farmer belongs to a partnered cooperative
//   - cooperative sees fields whose farmer belongs to its own cooperative
//   - a nil user or an unrecognized role sees nothing (fail-closed)
func FilterByRole(fields []model.Field, farmers []model.Farmer, user *model.User) []model.Field {
	if user == nil {
		return []model.Field{}
	}
	switch user.Role {
	case model.RoleAdmin:
		return fields
	case model.RoleBuyer:
		partnered := make(map[string]bool, len(user.Partnerships))
		for _, coopID := range user.Partnerships {
			partnered[coopID] = true
		}
		allowedFarmers := make(map[string]bool)
		for _, f := range farmers {
			if partnered[f.CooperativeID] {
				allowedFarmers[f.ID] = true
			}
		}
		return filterFields(fields, func(f model.Field) bool { return allowedFarmers[f.FarmerID] })
	case model.RoleCooperative:
		allowedFarmers := make(map[string]bool)
		for _, f := range farmers {
			if f.CooperativeID == user.CooperativeID {
				allowedFarmers[f.ID] = true
			}
		}
		return filterFields(fields, func(f model.Field) bool { return allowedFarmers[f.FarmerID] })
	default:
		return []model.Field{}
	}
}

// FilterBySearch narrows an already access-filtered set by case-insensitive
// substring match on farmer name or crop. An empty query is the identity.
// Applied strictly after FilterByRole, so search never widens visibility.
func FilterBySearch(fields []model.Field, query string) []model.Field {
	if query == "" {
		return fields
	}
	q := strings.ToLower(query)
	return filterFields(fields, func(f model.Field) bool {
		return strings.Contains(strings.ToLower(f.FarmerName), q) ||
			strings.Contains(strings.ToLower(f.Crop), q)
	})
}

func filterFields(fields []model.Field, keep func(model.Field) bool) []model.Field {
	out := make([]model.Field, 0, len(fields))
	for _, f := range fields {
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// TotalArea sums field areas in hectares, rounded to two decimal places.
func TotalArea(fields []model.Field) float64 {
	sum := decimal.Zero
	for _, f := range fields {
		sum = sum.Add(decimal.NewFromFloat(f.Area))
	}
	result, _ := sum.Round(2).Float64()
	return result
}

func (s *mapService) AccessibleFields(user *model.User) []model.Field {
	return FilterByRole(s.store.Fields(), s.store.Farmers(), user)
}

func (s *mapService) VisibleFields(user *model.User, query string) FieldListResponse {
	accessible := s.AccessibleFields(user)
	visible := FilterBySearch(accessible, query)
	return FieldListResponse{
		Fields:      visible,
		TotalFields: len(accessible),
		TotalArea:   TotalArea(accessible),
	}
}

func (s *mapService) POIs() []model.PointOfInterest {
	return s.store.POIs()
}
