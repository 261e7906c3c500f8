package services

import (
	"strings"
	"testing"

	"property-review-api/models"

	"gorm.io/gorm"
)

func sampleReview() *models.PropertyReview {
	return &models.PropertyReview{
		ReviewID:   1,
		TenantID:   5,
		LandlordID: 9,
		Status:     models.StatusPendingAdminReview,
	}
}

func TestCanAccessReview(t *testing.T) {
	review := sampleReview()

	cases := []struct {
		name   string
		userID int
		role   models.Role
		want   bool
	}{
		{"admin always", 1000, models.RoleAdmin, true},
		{"owning landlord", 9, models.RoleLandlord, true},
		{"other landlord", 10, models.RoleLandlord, false},
		{"owning tenant", 5, models.RoleTenant, true},
		{"other tenant", 6, models.RoleTenant, false},
		{"unknown role", 5, models.Role("manager"), false},
	}

	for _, tc := range cases {
		if got := CanAccessReview(review, tc.userID, tc.role); got != tc.want {
			t.Errorf("%s: CanAccessReview = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanUploadPhotosRequiresRoleAndOwnership(t *testing.T) {
	review := sampleReview()

	cases := []struct {
		name   string
		userID int
		role   models.Role
		party  string
		want   bool
	}{
		{"landlord own side", 9, models.RoleLandlord, models.PartyLandlord, true},
		{"landlord wrong review", 10, models.RoleLandlord, models.PartyLandlord, false},
		{"landlord on tenant side", 9, models.RoleLandlord, models.PartyTenant, false},
		{"tenant own side", 5, models.RoleTenant, models.PartyTenant, true},
		{"tenant wrong review", 6, models.RoleTenant, models.PartyTenant, false},
		{"tenant on landlord side", 5, models.RoleTenant, models.PartyLandlord, false},
		{"admin cannot upload", 1000, models.RoleAdmin, models.PartyLandlord, false},
		{"unknown party", 9, models.RoleLandlord, "agent", false},
	}

	for _, tc := range cases {
		if got := CanUploadPhotos(review, tc.userID, tc.role, tc.party); got != tc.want {
			t.Errorf("%s: CanUploadPhotos = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func scopedReviewSQL(t *testing.T, userID int, role models.Role, filter ReviewListFilter) (string, []interface{}) {
	t.Helper()
	gormDB, _, cleanup := newScriptedGormDB(t, nil)
	t.Cleanup(cleanup)

	session := gormDB.Session(&gorm.Session{DryRun: true})
	stmt := ScopeReviews(session.Model(&models.PropertyReview{}), userID, role, filter).
		Find(&[]models.PropertyReview{}).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestScopeReviewsLandlordFilterStaysScoped(t *testing.T) {
	tenantID := 33
	sql, vars := scopedReviewSQL(t, 7, models.RoleLandlord, ReviewListFilter{TenantID: &tenantID})

	scopeIdx := strings.Index(sql, "landlord_id = ?")
	filterIdx := strings.Index(sql, "tenant_id = ?")
	if scopeIdx < 0 || filterIdx < 0 {
		t.Fatalf("missing scope or filter condition in %q", sql)
	}
	if filterIdx < scopeIdx {
		t.Fatalf("role scope must be applied before caller filters: %q", sql)
	}
	if len(vars) < 2 || vars[0] != 7 || vars[1] != 33 {
		t.Fatalf("vars = %v, want caller 7 then filter 33", vars)
	}
}

func TestScopeReviewsTenantCannotWidenWithFilter(t *testing.T) {
	otherTenant := 99
	sql, vars := scopedReviewSQL(t, 7, models.RoleTenant, ReviewListFilter{TenantID: &otherTenant})

	if strings.Count(sql, "tenant_id = ?") != 2 {
		t.Fatalf("expected scope AND filter on tenant_id, got %q", sql)
	}
	if len(vars) < 2 || vars[0] != 7 || vars[1] != 99 {
		t.Fatalf("vars = %v, want own scope 7 before filter 99", vars)
	}
}

func TestScopeReviewsAdminUnscopedUntilFiltered(t *testing.T) {
	sql, _ := scopedReviewSQL(t, 1000, models.RoleAdmin, ReviewListFilter{Status: models.StatusApproved})

	if strings.Contains(sql, "landlord_id") || strings.Contains(sql, "tenant_id") {
		t.Fatalf("admin listing must not be scoped to a party: %q", sql)
	}
	if !strings.Contains(sql, "status = ?") {
		t.Fatalf("admin filter missing from %q", sql)
	}
}

func TestScopeVouchers(t *testing.T) {
	gormDB, _, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()
	session := gormDB.Session(&gorm.Session{DryRun: true})

	tenantSQL := ScopeVouchers(session.Model(&models.Voucher{}), 5, models.RoleTenant).
		Find(&[]models.Voucher{}).Statement.SQL.String()
	if !strings.Contains(tenantSQL, "tenant_id = ?") {
		t.Fatalf("tenant voucher listing must be scoped: %q", tenantSQL)
	}

	adminSQL := ScopeVouchers(session.Model(&models.Voucher{}), 1, models.RoleAdmin).
		Find(&[]models.Voucher{}).Statement.SQL.String()
	if strings.Contains(adminSQL, "tenant_id = ?") {
		t.Fatalf("admin voucher listing must not be scoped: %q", adminSQL)
	}

	landlordSQL := ScopeVouchers(session.Model(&models.Voucher{}), 9, models.RoleLandlord).
		Find(&[]models.Voucher{}).Statement.SQL.String()
	if !strings.Contains(landlordSQL, "1 = 0") {
		t.Fatalf("landlord voucher listing must match nothing: %q", landlordSQL)
	}
}
