package services

import (
	"property-review-api/models"

	"gorm.io/gorm"
)

// Access policy for reviews and vouchers. Decisions are pure functions of
// the caller identity and the resource's owning identifiers; callers map a
// false result to 403 (or 404 where the route never loads the resource).

// CanAccessReview reports whether the caller may read the review. Admins
// see everything; landlords and tenants see only reviews they are a party
// to.
func CanAccessReview(review *models.PropertyReview, userID int, role models.Role) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleLandlord:
		return review.LandlordID == userID
	case models.RoleTenant:
		return review.TenantID == userID
	}
	return false
}

// CanUploadPhotos reports whether the caller may append photos for the
// given party. Role and ownership must both match: a landlord uploads only
// to the landlord side of their own review, a tenant likewise.
func CanUploadPhotos(review *models.PropertyReview, userID int, role models.Role, party string) bool {
	switch party {
	case models.PartyLandlord:
		return role == models.RoleLandlord && review.LandlordID == userID
	case models.PartyTenant:
		return role == models.RoleTenant && review.TenantID == userID
	}
	return false
}

// ReviewListFilter carries the caller-supplied list narrowing. Filters are
// additive on top of role scoping, never a way out of it.
type ReviewListFilter struct {
	TenantID   *int
	PropertyID *int
	Status     string
}

// ScopeReviews applies role scoping first, then the caller's filters. A
// landlord or tenant passing a tenant_id filter stays constrained to their
// own reviews because the scope condition is already on the query.
func ScopeReviews(query *gorm.DB, userID int, role models.Role, filter ReviewListFilter) *gorm.DB {
	switch role {
	case models.RoleLandlord:
		query = query.Where("landlord_id = ?", userID)
	case models.RoleTenant:
		query = query.Where("tenant_id = ?", userID)
	case models.RoleAdmin:
		// no scope condition
	}

	if filter.TenantID != nil {
		query = query.Where("tenant_id = ?", *filter.TenantID)
	}
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	return query
}

// ScopeVouchers applies role scoping to a voucher listing. Vouchers are
// addressed to tenants, so a landlord gets an empty scope rather than an
// error.
func ScopeVouchers(query *gorm.DB, userID int, role models.Role) *gorm.DB {
	switch role {
	case models.RoleAdmin:
		return query
	case models.RoleTenant:
		return query.Where("tenant_id = ?", userID)
	}
	return query.Where("1 = 0")
}
