package models

import "time"

// Role identifies the caller type handed over by the user-management layer.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
)

// ParseRole maps the raw role value from the request boundary onto the
// closed Role set. Everything past this point works with Role, not strings.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleLandlord, RoleTenant:
		return Role(s), true
	}
	return "", false
}

// Review statuses. A review starts pending and ends approved or rejected;
// approved/rejected are terminal.
const (
	StatusPendingAdminReview = "pending_admin_review"
	StatusApproved           = "approved"
	StatusRejected           = "rejected"
)

// Admin verdict values.
const (
	VerdictThumbsUp   = "thumbs_up"
	VerdictThumbsDown = "thumbs_down"
)

// Photo party values for ReviewPhoto.Party.
const (
	PartyLandlord = "landlord"
	PartyTenant   = "tenant"
)

// PropertyReview represents the property_reviews table.
// Invariant: status is pending_admin_review exactly while admin_verdict is
// NULL; both change together in a single conditional update.
type PropertyReview struct {
	ReviewID     int        `gorm:"primaryKey;column:review_id" json:"review_id"`
	TenantID     int        `gorm:"column:tenant_id" json:"tenant_id"`
	LandlordID   int        `gorm:"column:landlord_id" json:"landlord_id"`
	PropertyID   *int       `gorm:"column:property_id" json:"property_id,omitempty"`
	LandlordNote *string    `gorm:"column:landlord_note" json:"landlord_note,omitempty"`
	Status       string     `gorm:"column:status" json:"status"`
	AdminVerdict *string    `gorm:"column:admin_verdict" json:"admin_verdict,omitempty"`
	ReviewedByID *int       `gorm:"column:reviewed_by_id" json:"reviewed_by_id,omitempty"`
	ReviewedAt   *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	VoucherID    *int       `gorm:"column:voucher_id" json:"voucher_id,omitempty"`
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     time.Time  `gorm:"column:update_at" json:"update_at"`

	// Filled from review_photos on read; not columns of this table.
	LandlordPhotos []ReviewPhoto `gorm:"-" json:"landlord_photos"`
	TenantPhotos   []ReviewPhoto `gorm:"-" json:"tenant_photos"`
}

// ReviewPhoto represents the review_photos table. One row per uploaded
// photo; the auto-increment key preserves display order and makes an
// append a plain insert, so concurrent uploads never overwrite each other.
type ReviewPhoto struct {
	PhotoID    int       `gorm:"primaryKey;column:photo_id" json:"photo_id"`
	ReviewID   int       `gorm:"column:review_id" json:"-"`
	Party      string    `gorm:"column:party" json:"-"`
	URL        string    `gorm:"column:url" json:"url"`
	UploadedBy int       `gorm:"column:uploaded_by" json:"uploaded_by"`
	UploadedAt time.Time `gorm:"column:uploaded_at" json:"uploaded_at"`
}

// IsPending reports whether the review still accepts photo uploads and a
// verdict.
func (r *PropertyReview) IsPending() bool {
	return r.Status == StatusPendingAdminReview
}

// TableName overrides
func (PropertyReview) TableName() string {
	return "property_reviews"
}

func (ReviewPhoto) TableName() string {
	return "review_photos"
}
