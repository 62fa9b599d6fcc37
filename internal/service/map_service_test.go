package service

import (
	"testing"

	"agritrace/internal/model"
	"agritrace/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminUser() *model.User {
	return &model.User{ID: "user-admin", Role: model.RoleAdmin}
}

func buyerUser(partnerships ...string) *model.User {
	return &model.User{ID: "user-buyer", Role: model.RoleBuyer, Partnerships: partnerships}
}

func coopUser(coopID string) *model.User {
	return &model.User{ID: "user-coop", Role: model.RoleCooperative, CooperativeID: coopID}
}

func fieldIDs(fields []model.Field) []string {
	ids := make([]string, 0, len(fields))
	for _, f := range fields {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestFilterByRoleAdminSeesEverything(t *testing.T) {
	s := store.NewSeeded()
	got := FilterByRole(s.Fields(), s.Farmers(), adminUser())
	assert.Len(t, got, 3)

	// Partnerships are irrelevant for admins.
	admin := adminUser()
	admin.Partnerships = []string{"coop-equateur"}
	got = FilterByRole(s.Fields(), s.Farmers(), admin)
	assert.Len(t, got, 3)
}

func TestFilterByRoleBuyerScopedToPartnerships(t *testing.T) {
	s := store.NewSeeded()

	got := FilterByRole(s.Fields(), s.Farmers(), buyerUser("coop-kivu"))
	assert.ElementsMatch(t, []string{"field-kivu-001", "field-kivu-002"}, fieldIDs(got))

	got = FilterByRole(s.Fields(), s.Farmers(), buyerUser("coop-kivu", "coop-equateur"))
	assert.Len(t, got, 3)

	got = FilterByRole(s.Fields(), s.Farmers(), buyerUser())
	assert.Empty(t, got)
}

func TestFilterByRoleCooperativeScopedToOwnCoop(t *testing.T) {
	s := store.NewSeeded()

	got := FilterByRole(s.Fields(), s.Farmers(), coopUser("coop-equateur"))
	assert.Equal(t, []string{"field-equateur-001"}, fieldIDs(got))
}

func TestFilterByRoleFailsClosed(t *testing.T) {
	s := store.NewSeeded()

	assert.Empty(t, FilterByRole(s.Fields(), s.Farmers(), nil))
	assert.Empty(t, FilterByRole(s.Fields(), s.Farmers(), &model.User{ID: "u", Role: "auditor"}))
}

func TestFilterBySearch(t *testing.T) {
	s := store.NewSeeded()
	fields := s.Fields()

	// Empty query is the identity.
	assert.Equal(t, fields, FilterBySearch(fields, ""))

	// Case-insensitive match on crop.
	got := FilterBySearch(fields, "COCOA")
	assert.Equal(t, []string{"field-equateur-001"}, fieldIDs(got))

	// Match on farmer name substring.
	got = FilterBySearch(fields, "baraka")
	assert.Equal(t, []string{"field-kivu-002"}, fieldIDs(got))

	assert.Empty(t, FilterBySearch(fields, "quinoa"))
}

func TestSearchNeverWidensAccess(t *testing.T) {
	s := store.NewSeeded()
	accessible := FilterByRole(s.Fields(), s.Farmers(), buyerUser("coop-kivu"))

	for _, q := range []string{"", "coffee", "Cocoa", "a", "zzz"} {
		narrowed := FilterBySearch(accessible, q)
		allowed := make(map[string]bool)
		for _, f := range accessible {
			allowed[f.ID] = true
		}
		for _, f := range narrowed {
			assert.True(t, allowed[f.ID], "query %q leaked field %s", q, f.ID)
		}
	}
}

func TestTotalArea(t *testing.T) {
	s := store.NewSeeded()
	assert.Equal(t, 25.5, TotalArea(s.Fields()))
	assert.Equal(t, 0.0, TotalArea(nil))
}

func TestVisibleFieldsTotalsReflectAccessNotSearch(t *testing.T) {
	svc := NewMapService(store.NewSeeded())

	res := svc.VisibleFields(buyerUser("coop-kivu"), "robusta")
	require.Len(t, res.Fields, 1)
	// Totals cover everything accessible, not just the search hits.
	assert.Equal(t, 2, res.TotalFields)
	assert.Equal(t, 13.0, res.TotalArea)
}
