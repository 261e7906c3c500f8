package services

import (
	"errors"
	"time"

	"property-review-api/models"

	"gorm.io/gorm"
)

// errVerdictAlreadySet aborts the approval transaction when the conditional
// update hits a review whose verdict was set by a concurrent writer.
var errVerdictAlreadySet = errors.New("verdict already set")

// VerdictResult is the outcome of a verdict submission.
type VerdictResult struct {
	Status     string
	AlreadySet bool
	VoucherID  *int
}

// ReviewService owns the review lifecycle: creation, reads, photo appends
// and the write-once verdict transition.
type ReviewService struct {
	db          *gorm.DB
	defaultType string
}

func NewReviewService(db *gorm.DB, defaultVoucherType string) *ReviewService {
	return &ReviewService{db: db, defaultType: defaultVoucherType}
}

// Create opens a review for a tenant. The landlord identity comes from the
// authenticated caller, never from the request body. Property linkage is
// optional.
func (s *ReviewService) Create(landlordID, tenantID int, propertyID *int, landlordNote *string) (*models.PropertyReview, error) {
	now := time.Now()
	review := models.PropertyReview{
		TenantID:       tenantID,
		LandlordID:     landlordID,
		PropertyID:     propertyID,
		LandlordNote:   landlordNote,
		Status:         models.StatusPendingAdminReview,
		CreateAt:       now,
		UpdateAt:       now,
		LandlordPhotos: []models.ReviewPhoto{},
		TenantPhotos:   []models.ReviewPhoto{},
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Get loads one review with its photos. Returns gorm.ErrRecordNotFound for
// an unknown id.
func (s *ReviewService) Get(reviewID int) (*models.PropertyReview, error) {
	var review models.PropertyReview
	if err := s.db.Where("review_id = ?", reviewID).First(&review).Error; err != nil {
		return nil, err
	}
	if err := s.AttachPhotos([]*models.PropertyReview{&review}); err != nil {
		return nil, err
	}
	return &review, nil
}

// List returns the reviews visible to the caller, newest first. Role
// scoping is applied before the caller's filters.
func (s *ReviewService) List(userID int, role models.Role, filter ReviewListFilter) ([]models.PropertyReview, error) {
	var reviews []models.PropertyReview
	query := ScopeReviews(s.db.Model(&models.PropertyReview{}), userID, role, filter)
	if err := query.Order("create_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}

	refs := make([]*models.PropertyReview, len(reviews))
	for i := range reviews {
		refs[i] = &reviews[i]
	}
	if err := s.AttachPhotos(refs); err != nil {
		return nil, err
	}
	return reviews, nil
}

// AttachPhotos fills the per-party photo slices from review_photos,
// preserving upload order.
func (s *ReviewService) AttachPhotos(reviews []*models.PropertyReview) error {
	byID := make(map[int]*models.PropertyReview, len(reviews))
	ids := make([]int, 0, len(reviews))
	for _, review := range reviews {
		review.LandlordPhotos = []models.ReviewPhoto{}
		review.TenantPhotos = []models.ReviewPhoto{}
		byID[review.ReviewID] = review
		ids = append(ids, review.ReviewID)
	}
	if len(ids) == 0 {
		return nil
	}

	var photos []models.ReviewPhoto
	if err := s.db.Where("review_id IN ?", ids).Order("photo_id ASC").Find(&photos).Error; err != nil {
		return err
	}

	for _, photo := range photos {
		review, ok := byID[photo.ReviewID]
		if !ok {
			continue
		}
		if photo.Party == models.PartyLandlord {
			review.LandlordPhotos = append(review.LandlordPhotos, photo)
		} else {
			review.TenantPhotos = append(review.TenantPhotos, photo)
		}
	}
	return nil
}

// AppendPhoto records one accepted photo. The append is an insert into
// review_photos, never a rewrite of a loaded array, so concurrent uploads
// against the same review cannot lose entries.
func (s *ReviewService) AppendPhoto(review *models.PropertyReview, party, url string, uploadedBy int, now time.Time) (*models.ReviewPhoto, error) {
	photo := models.ReviewPhoto{
		ReviewID:   review.ReviewID,
		Party:      party,
		URL:        url,
		UploadedBy: uploadedBy,
		UploadedAt: now,
	}
	if err := s.db.Create(&photo).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.PropertyReview{}).
		Where("review_id = ?", review.ReviewID).
		Update("update_at", now).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// SetVerdict applies the admin decision exactly once. The state change is
// a conditional update guarded on admin_verdict IS NULL; only the first
// writer affects a row, every later call (same or different verdict) gets
// the already-set result with the settled status. On approval the voucher
// insert and the review update share one transaction, so a failed update
// can never leave an orphan voucher behind.
func (s *ReviewService) SetVerdict(reviewID int, verdict, voucherType string, adminID int) (*VerdictResult, error) {
	var review models.PropertyReview
	if err := s.db.Where("review_id = ?", reviewID).First(&review).Error; err != nil {
		return nil, err
	}
	if review.AdminVerdict != nil {
		return &VerdictResult{Status: review.Status, AlreadySet: true, VoucherID: review.VoucherID}, nil
	}

	now := time.Now()

	if verdict == models.VerdictThumbsDown {
		result := s.db.Model(&models.PropertyReview{}).
			Where("review_id = ? AND admin_verdict IS NULL", reviewID).
			Updates(map[string]interface{}{
				"status":         models.StatusRejected,
				"admin_verdict":  models.VerdictThumbsDown,
				"reviewed_by_id": adminID,
				"reviewed_at":    now,
				"update_at":      now,
			})
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return s.settledResult(reviewID)
		}
		return &VerdictResult{Status: models.StatusRejected}, nil
	}

	var voucherID int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		voucher, err := NewVoucherService(tx, s.defaultType).Issue(&review, voucherType, adminID, now)
		if err != nil {
			return err
		}

		result := tx.Model(&models.PropertyReview{}).
			Where("review_id = ? AND admin_verdict IS NULL", reviewID).
			Updates(map[string]interface{}{
				"status":         models.StatusApproved,
				"admin_verdict":  models.VerdictThumbsUp,
				"reviewed_by_id": adminID,
				"reviewed_at":    now,
				"voucher_id":     voucher.VoucherID,
				"update_at":      now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Lost the race; rolling back discards the voucher.
			return errVerdictAlreadySet
		}
		voucherID = voucher.VoucherID
		return nil
	})
	if errors.Is(err, errVerdictAlreadySet) {
		return s.settledResult(reviewID)
	}
	if err != nil {
		return nil, err
	}
	return &VerdictResult{Status: models.StatusApproved, VoucherID: &voucherID}, nil
}

// settledResult re-reads a review after a lost conditional update and
// reports the verdict the winner recorded.
func (s *ReviewService) settledResult(reviewID int) (*VerdictResult, error) {
	var review models.PropertyReview
	if err := s.db.Where("review_id = ?", reviewID).First(&review).Error; err != nil {
		return nil, err
	}
	return &VerdictResult{Status: review.Status, AlreadySet: true, VoucherID: review.VoucherID}, nil
}
