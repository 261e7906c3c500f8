package services

import (
	"crypto/rand"
	"fmt"
	"time"

	"property-review-api/models"

	"gorm.io/gorm"
)

const voucherCodeLength = 16

// VoucherService issues reward vouchers for approved reviews.
type VoucherService struct {
	db          *gorm.DB
	defaultType string
}

// NewVoucherService creates a voucher service writing through db. The
// default type is used whenever the admin states no valid preference.
func NewVoucherService(db *gorm.DB, defaultType string) *VoucherService {
	return &VoucherService{db: db, defaultType: defaultType}
}

// ResolveType maps the requested voucher type onto an issuable one. An
// unrecognized or empty value means "no preference" and falls back to the
// default; it is never an error.
func (s *VoucherService) ResolveType(requested string) string {
	if models.IsValidVoucherType(requested) {
		return requested
	}
	return s.defaultType
}

// GenerateVoucherCode returns 16 uniform random decimal digits from the
// OS entropy source. Codes are not derived from review data and are not
// checked for global uniqueness; the space is large enough that collisions
// are negligible.
func GenerateVoucherCode() (string, error) {
	raw := make([]byte, voucherCodeLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("voucher code entropy: %w", err)
	}

	code := make([]byte, voucherCodeLength)
	for i, b := range raw {
		// Rejection sampling keeps the digits uniform.
		for b >= 250 {
			var one [1]byte
			if _, err := rand.Read(one[:]); err != nil {
				return "", fmt.Errorf("voucher code entropy: %w", err)
			}
			b = one[0]
		}
		code[i] = '0' + b%10
	}
	return string(code), nil
}

// Issue creates the voucher row for an approved review and returns it for
// embedding into the review update. Runs on the service's db handle, which
// the caller points at its transaction so the voucher commits or rolls
// back together with the review.
func (s *VoucherService) Issue(review *models.PropertyReview, voucherType string, issuedByID int, now time.Time) (*models.Voucher, error) {
	code, err := GenerateVoucherCode()
	if err != nil {
		return nil, err
	}

	voucher := models.Voucher{
		TenantID:         review.TenantID,
		PropertyReviewID: review.ReviewID,
		VoucherType:      s.ResolveType(voucherType),
		VoucherCode:      code,
		IssuedByID:       issuedByID,
		IssuedAt:         now,
		Status:           models.VoucherStatusIssued,
	}
	if err := s.db.Create(&voucher).Error; err != nil {
		return nil, err
	}
	return &voucher, nil
}
