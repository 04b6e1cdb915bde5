package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	domainRepo "github.com/sangkips/marketplace-api/internal/domain/repository"
	"gorm.io/gorm"
)

type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository creates a new seller profile repository
func NewSellerRepository(db *gorm.DB) domainRepo.SellerRepository {
	return &sellerRepository{db: db}
}

func (r *sellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SellerProfile, error) {
	var seller entity.SellerProfile
	err := r.db.WithContext(ctx).Preload("User").First(&seller, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &seller, err
}

func (r *sellerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.SellerProfile, error) {
	var seller entity.SellerProfile
	err := r.db.WithContext(ctx).First(&seller, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &seller, err
}

// GetByIDs retrieves multiple profiles in a single query (prevents N+1)
func (r *sellerRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.SellerProfile, error) {
	if len(ids) == 0 {
		return []entity.SellerProfile{}, nil
	}
	var sellers []entity.SellerProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id IN ?", ids).
		Find(&sellers).Error
	return sellers, err
}

func (r *sellerRepository) Update(ctx context.Context, seller *entity.SellerProfile) error {
	return r.db.WithContext(ctx).Omit("User").Save(seller).Error
}

// sellerEditableColumns are the profile columns a seller may change.
// Verification, activation and commission stay with the admin surface.
var sellerEditableColumns = []string{
	"business_name", "business_type", "tax_id", "description", "phone", "website", "updated_at",
}

func (r *sellerRepository) UpdateProfile(ctx context.Context, seller *entity.SellerProfile) error {
	result := r.updateProfileQuery(ctx, seller)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrNoRowsAffected
	}
	return nil
}

func (r *sellerRepository) updateProfileQuery(ctx context.Context, seller *entity.SellerProfile) *gorm.DB {
	return r.db.WithContext(ctx).Model(seller).
		Scopes(SellerScope(ctx, "id")).
		Select(sellerEditableColumns).
		Updates(seller)
}

func (r *sellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.deleteQuery(ctx, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrNoRowsAffected
	}
	return nil
}

func (r *sellerRepository) deleteQuery(ctx context.Context, id uuid.UUID) *gorm.DB {
	products := r.db.Session(&gorm.Session{NewDB: true}).
		Table("products").
		Select("1").
		Where("products.seller_id = seller_profiles.id")
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("NOT EXISTS (?)", products).
		Delete(&entity.SellerProfile{})
}

func (r *sellerRepository) filtered(ctx context.Context, filter *domainRepo.SellerFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.SellerProfile{})
	if filter == nil {
		return query
	}

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}
	if filter.Search != "" {
		query = query.Where("business_name ILIKE ?", "%"+filter.Search+"%")
	}
	return query
}

func (r *sellerRepository) List(ctx context.Context, filter *domainRepo.SellerFilter) ([]entity.SellerProfile, int64, error) {
	var sellers []entity.SellerProfile
	var total int64

	query := r.filtered(ctx, filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(Paginate(filter.Pagination)).
		Preload("User").
		Order("created_at DESC").
		Find(&sellers).Error

	return sellers, total, err
}

func (r *sellerRepository) Count(ctx context.Context, filter *domainRepo.SellerFilter) (int64, error) {
	var total int64
	err := r.filtered(ctx, filter).Count(&total).Error
	return total, err
}
