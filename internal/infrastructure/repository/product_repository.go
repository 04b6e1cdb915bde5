package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	domainRepo "github.com/sangkips/marketplace-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Seller").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Preload("Category").Preload("Seller").
		First(&product, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "sku = ?", sku).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

// productEditableColumns are the columns a seller edit may write. Stock is
// owned by UpdateStock and never written back from a loaded copy.
var productEditableColumns = []string{
	"name", "slug", "description", "sku", "status", "category_id",
	"base_price", "sale_price", "track_inventory", "low_stock_threshold", "updated_at",
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := r.updateQuery(ctx, product)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrNoRowsAffected
	}
	return nil
}

func (r *productRepository) updateQuery(ctx context.Context, product *entity.Product) *gorm.DB {
	return r.db.WithContext(ctx).Model(product).
		Scopes(SellerScope(ctx, "seller_id")).
		Select(productEditableColumns).
		Updates(product)
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(SellerScope(ctx, "seller_id")).
		Delete(&entity.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrNoRowsAffected
	}
	return nil
}

func (r *productRepository) UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := r.db.WithContext(ctx).Model(&entity.Product{}).
		Scopes(SellerScope(ctx, "seller_id")).
		Where("id = ?", id).
		Update("stock_quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrNoRowsAffected
	}
	return nil
}

func (r *productRepository) HasOrderItems(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.OrderItem{}).
		Where("product_id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *productRepository) filtered(ctx context.Context, filter *domainRepo.ProductFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Product{})
	if filter == nil {
		return query
	}

	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR sku ILIKE ?", like, like, like)
	}
	if filter.MinPrice != nil {
		query = query.Where("base_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("base_price <= ?", *filter.MaxPrice)
	}
	if filter.LowStock {
		query = query.Where("track_inventory = ? AND stock_quantity <= low_stock_threshold", true)
	}
	return query
}

func (r *productRepository) List(ctx context.Context, filter *domainRepo.ProductFilter) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.filtered(ctx, filter)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(Paginate(filter.Pagination)).
		Preload("Category").
		Order("created_at DESC").
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) Count(ctx context.Context, filter *domainRepo.ProductFilter) (int64, error) {
	var total int64
	err := r.filtered(ctx, filter).Count(&total).Error
	return total, err
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) ListActive(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	return categories, err
}
