package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/internal/domain/repository/mocks"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopMocks struct {
	products   *mocks.ProductRepository
	categories *mocks.CategoryRepository
	users      *mocks.UserRepository
}

func newShopService(t *testing.T) (*ShopService, shopMocks) {
	m := shopMocks{
		products:   mocks.NewProductRepository(t),
		categories: mocks.NewCategoryRepository(t),
		users:      mocks.NewUserRepository(t),
	}
	return NewShopService(m.products, m.categories, m.users), m
}

func TestShopListProductsOnlyActive(t *testing.T) {
	svc, m := newShopService(t)
	floor := money("5")

	m.products.On("List", mock.Anything, mock.MatchedBy(func(f *repository.ProductFilter) bool {
		return f.Status != nil && *f.Status == enum.ProductStatusActive &&
			f.SellerID == nil && f.MinPrice != nil && f.MinPrice.Equal(floor)
	})).Return([]entity.Product{}, int64(0), nil)

	conn, err := svc.ListProducts(context.Background(), ShopProductQuery{MinPrice: &floor})
	require.NoError(t, err)
	assert.Empty(t, conn.Edges)
}

func TestShopListProductsPriceRange(t *testing.T) {
	svc, _ := newShopService(t)
	low, high := money("50"), money("10")

	_, err := svc.ListProducts(context.Background(), ShopProductQuery{MinPrice: &low, MaxPrice: &high})
	assertKind(t, apperror.KindValidation, err)
}

func TestShopGetProduct(t *testing.T) {
	t.Run("by slug", func(t *testing.T) {
		svc, m := newShopService(t)
		product := &entity.Product{ID: uuid.New(), Slug: "desk-lamp", Status: enum.ProductStatusActive}
		m.products.On("GetBySlug", mock.Anything, "desk-lamp").Return(product, nil)

		got, err := svc.GetProduct(context.Background(), "desk-lamp")
		require.NoError(t, err)
		assert.Equal(t, product.ID, got.ID)
	})

	t.Run("inactive is hidden", func(t *testing.T) {
		svc, m := newShopService(t)
		product := &entity.Product{ID: uuid.New(), Status: enum.ProductStatusDraft}
		m.products.On("GetByID", mock.Anything, product.ID).Return(product, nil)

		_, err := svc.GetProduct(context.Background(), product.ID.String())
		assertKind(t, apperror.KindNotFound, err)
	})

	t.Run("missing", func(t *testing.T) {
		svc, m := newShopService(t)
		m.products.On("GetBySlug", mock.Anything, "nope").Return(nil, nil)

		_, err := svc.GetProduct(context.Background(), "nope")
		assertKind(t, apperror.KindNotFound, err)
	})
}

func TestShopMe(t *testing.T) {
	svc, m := newShopService(t)

	_, err := svc.Me(context.Background())
	assertKind(t, apperror.KindAuthenticationRequired, err)

	ctx := customerCtx()
	m.users.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(&entity.User{Email: "customer@example.com", Role: enum.UserRoleCustomer}, nil)

	user, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "customer@example.com", user.Email)
}
