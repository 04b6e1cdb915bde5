// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/analytics"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// AnalyticsRepository mocks repository.AnalyticsRepository
type AnalyticsRepository struct {
	mock.Mock
}

var _ repository.AnalyticsRepository = (*AnalyticsRepository)(nil)

// NewAnalyticsRepository creates a mock that asserts its expectations on cleanup
func NewAnalyticsRepository(t testingT) *AnalyticsRepository {
	m := &AnalyticsRepository{}
	register(&m.Mock, t)
	return m
}

func (m *AnalyticsRepository) FetchOrders(ctx context.Context, window analytics.Window, scope analytics.Scope) ([]entity.Order, error) {
	args := m.Called(ctx, window, scope)
	orders, _ := args.Get(0).([]entity.Order)
	return orders, args.Error(1)
}

func (m *AnalyticsRepository) FetchOrderItems(ctx context.Context, window *analytics.Window, scope analytics.Scope) ([]entity.OrderItem, error) {
	args := m.Called(ctx, window, scope)
	items, _ := args.Get(0).([]entity.OrderItem)
	return items, args.Error(1)
}

func (m *AnalyticsRepository) FetchUsers(ctx context.Context, window analytics.Window, role *enum.UserRole) ([]entity.User, error) {
	args := m.Called(ctx, window, role)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *AnalyticsRepository) CountOrdersByStatus(ctx context.Context, window analytics.Window) ([]repository.StatusCount, error) {
	args := m.Called(ctx, window)
	counts, _ := args.Get(0).([]repository.StatusCount)
	return counts, args.Error(1)
}

func (m *AnalyticsRepository) CountUsersByRole(ctx context.Context) ([]repository.RoleCount, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).([]repository.RoleCount)
	return counts, args.Error(1)
}

func (m *AnalyticsRepository) RecentOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	args := m.Called(ctx, limit)
	orders, _ := args.Get(0).([]entity.Order)
	return orders, args.Error(1)
}

// UserRepository mocks repository.UserRepository
type UserRepository struct {
	mock.Mock
}

var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a mock that asserts its expectations on cleanup
func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	register(&m.Mock, t)
	return m
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *UserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *UserRepository) List(ctx context.Context, filter *repository.UserFilter) ([]entity.User, int64, error) {
	args := m.Called(ctx, filter)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *UserRepository) Count(ctx context.Context, filter *repository.UserFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// SellerRepository mocks repository.SellerRepository
type SellerRepository struct {
	mock.Mock
}

var _ repository.SellerRepository = (*SellerRepository)(nil)

// NewSellerRepository creates a mock that asserts its expectations on cleanup
func NewSellerRepository(t testingT) *SellerRepository {
	m := &SellerRepository{}
	register(&m.Mock, t)
	return m
}

func (m *SellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SellerProfile, error) {
	args := m.Called(ctx, id)
	seller, _ := args.Get(0).(*entity.SellerProfile)
	return seller, args.Error(1)
}

func (m *SellerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.SellerProfile, error) {
	args := m.Called(ctx, userID)
	seller, _ := args.Get(0).(*entity.SellerProfile)
	return seller, args.Error(1)
}

func (m *SellerRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.SellerProfile, error) {
	args := m.Called(ctx, ids)
	sellers, _ := args.Get(0).([]entity.SellerProfile)
	return sellers, args.Error(1)
}

func (m *SellerRepository) Update(ctx context.Context, seller *entity.SellerProfile) error {
	return m.Called(ctx, seller).Error(0)
}

func (m *SellerRepository) UpdateProfile(ctx context.Context, seller *entity.SellerProfile) error {
	return m.Called(ctx, seller).Error(0)
}

func (m *SellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SellerRepository) List(ctx context.Context, filter *repository.SellerFilter) ([]entity.SellerProfile, int64, error) {
	args := m.Called(ctx, filter)
	sellers, _ := args.Get(0).([]entity.SellerProfile)
	return sellers, args.Get(1).(int64), args.Error(2)
}

func (m *SellerRepository) Count(ctx context.Context, filter *repository.SellerFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// ProductRepository mocks repository.ProductRepository
type ProductRepository struct {
	mock.Mock
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates a mock that asserts its expectations on cleanup
func NewProductRepository(t testingT) *ProductRepository {
	m := &ProductRepository{}
	register(&m.Mock, t)
	return m
}

func (m *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)
	return product, args.Error(1)
}

func (m *ProductRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	args := m.Called(ctx, slug)
	product, _ := args.Get(0).(*entity.Product)
	return product, args.Error(1)
}

func (m *ProductRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	args := m.Called(ctx, sku)
	product, _ := args.Get(0).(*entity.Product)
	return product, args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ProductRepository) UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *ProductRepository) HasOrderItems(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ProductRepository) List(ctx context.Context, filter *repository.ProductFilter) ([]entity.Product, int64, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]entity.Product)
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepository) Count(ctx context.Context, filter *repository.ProductFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// CategoryRepository mocks repository.CategoryRepository
type CategoryRepository struct {
	mock.Mock
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// NewCategoryRepository creates a mock that asserts its expectations on cleanup
func NewCategoryRepository(t testingT) *CategoryRepository {
	m := &CategoryRepository{}
	register(&m.Mock, t)
	return m
}

func (m *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*entity.Category)
	return category, args.Error(1)
}

func (m *CategoryRepository) ListActive(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]entity.Category)
	return categories, args.Error(1)
}

// OrderRepository mocks repository.OrderRepository
type OrderRepository struct {
	mock.Mock
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

// NewOrderRepository creates a mock that asserts its expectations on cleanup
func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(&m.Mock, t)
	return m
}

func (m *OrderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)
	return order, args.Error(1)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *OrderRepository) List(ctx context.Context, filter *repository.OrderFilter) ([]entity.Order, int64, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]entity.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepository) Count(ctx context.Context, filter *repository.OrderFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// ReviewRepository mocks repository.ReviewRepository
type ReviewRepository struct {
	mock.Mock
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)

// NewReviewRepository creates a mock that asserts its expectations on cleanup
func NewReviewRepository(t testingT) *ReviewRepository {
	m := &ReviewRepository{}
	register(&m.Mock, t)
	return m
}

func (m *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *ReviewRepository) List(ctx context.Context, filter *repository.ReviewFilter) ([]entity.Review, int64, error) {
	args := m.Called(ctx, filter)
	reviews, _ := args.Get(0).([]entity.Review)
	return reviews, args.Get(1).(int64), args.Error(2)
}

func (m *ReviewRepository) HasDeliveredPurchase(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}
