package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/access"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/internal/domain/repository/mocks"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	sent []string
	err  error
}

func (n *recordingNotifier) SellerVerified(toEmail, businessName string) error {
	n.sent = append(n.sent, toEmail+"|"+businessName)
	return n.err
}

func newAdminService(t *testing.T) (*AdminService, *mocks.UserRepository, *mocks.SellerRepository) {
	users := mocks.NewUserRepository(t)
	sellers := mocks.NewSellerRepository(t)
	return NewAdminService(users, sellers, nil), users, sellers
}

func TestAdminListUsers(t *testing.T) {
	svc, users, _ := newAdminService(t)
	role := enum.UserRoleSeller

	users.On("List", mock.Anything, mock.MatchedBy(func(f *repository.UserFilter) bool {
		return f.Role != nil && *f.Role == enum.UserRoleSeller && f.Search == "ann"
	})).Return([]entity.User{{ID: uuid.New(), Role: enum.UserRoleSeller}}, int64(1), nil)

	conn, err := svc.ListUsers(adminCtx(), UserQuery{Role: &role, Search: "ann"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), conn.TotalCount)

	bogus := enum.UserRole("ROOT")
	_, err = svc.ListUsers(adminCtx(), UserQuery{Role: &bogus})
	assertKind(t, apperror.KindValidation, err)

	_, err = svc.ListUsers(sellerCtx(uuid.New()), UserQuery{})
	assertKind(t, apperror.KindForbidden, err)
}

func TestAdminPendingSellers(t *testing.T) {
	svc, _, sellers := newAdminService(t)

	sellers.On("List", mock.Anything, mock.MatchedBy(func(f *repository.SellerFilter) bool {
		return f.IsVerified != nil && !*f.IsVerified
	})).Return([]entity.SellerProfile{{ID: uuid.New(), BusinessName: "Acme"}}, int64(1), nil)

	conn, err := svc.PendingSellers(adminCtx(), nil)
	require.NoError(t, err)
	require.Len(t, conn.Edges, 1)
	assert.Equal(t, "Acme", conn.Edges[0].Node.BusinessName)
}

func TestAdminVerifySeller(t *testing.T) {
	t.Run("verifies", func(t *testing.T) {
		svc, _, sellers := newAdminService(t)
		profile := &entity.SellerProfile{ID: uuid.New()}
		sellers.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
		sellers.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.SellerProfile) bool {
			return p.IsVerified
		})).Return(nil)

		got, err := svc.VerifySeller(adminCtx(), profile.ID)
		require.NoError(t, err)
		assert.True(t, got.IsVerified)
	})

	t.Run("notifies the seller", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		sellers := mocks.NewSellerRepository(t)
		notifier := &recordingNotifier{}
		svc := NewAdminService(users, sellers, notifier)

		profile := &entity.SellerProfile{
			ID:           uuid.New(),
			BusinessName: "Acme",
			User:         &entity.User{Email: "owner@acme.test"},
		}
		sellers.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
		sellers.On("Update", mock.Anything, profile).Return(nil)

		_, err := svc.VerifySeller(adminCtx(), profile.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"owner@acme.test|Acme"}, notifier.sent)
	})

	t.Run("notification failure does not fail verification", func(t *testing.T) {
		users := mocks.NewUserRepository(t)
		sellers := mocks.NewSellerRepository(t)
		svc := NewAdminService(users, sellers, &recordingNotifier{err: errors.New("smtp down")})

		profile := &entity.SellerProfile{ID: uuid.New(), User: &entity.User{Email: "owner@acme.test"}}
		sellers.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)
		sellers.On("Update", mock.Anything, profile).Return(nil)

		got, err := svc.VerifySeller(adminCtx(), profile.ID)
		require.NoError(t, err)
		assert.True(t, got.IsVerified)
	})

	t.Run("already verified", func(t *testing.T) {
		svc, _, sellers := newAdminService(t)
		profile := &entity.SellerProfile{ID: uuid.New(), IsVerified: true}
		sellers.On("GetByID", mock.Anything, profile.ID).Return(profile, nil)

		got, err := svc.VerifySeller(adminCtx(), profile.ID)
		require.NoError(t, err)
		assert.True(t, got.IsVerified)
		sellers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown seller", func(t *testing.T) {
		svc, _, sellers := newAdminService(t)
		id := uuid.New()
		sellers.On("GetByID", mock.Anything, id).Return(nil, nil)

		_, err := svc.VerifySeller(adminCtx(), id)
		assertKind(t, apperror.KindNotFound, err)
	})
}

func TestAdminRejectSeller(t *testing.T) {
	t.Run("removes unverified seller", func(t *testing.T) {
		svc, _, sellers := newAdminService(t)
		id := uuid.New()
		sellers.On("GetByID", mock.Anything, id).Return(&entity.SellerProfile{ID: id}, nil)
		sellers.On("Delete", mock.Anything, id).Return(nil)

		require.NoError(t, svc.RejectSeller(adminCtx(), id))
	})

	t.Run("verified seller is kept", func(t *testing.T) {
		svc, _, sellers := newAdminService(t)
		id := uuid.New()
		sellers.On("GetByID", mock.Anything, id).Return(&entity.SellerProfile{ID: id, IsVerified: true}, nil)

		err := svc.RejectSeller(adminCtx(), id)
		assertKind(t, apperror.KindValidation, err)
		sellers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("seller with products is kept", func(t *testing.T) {
		svc, _, sellers := newAdminService(t)
		id := uuid.New()
		sellers.On("GetByID", mock.Anything, id).Return(&entity.SellerProfile{ID: id}, nil)
		sellers.On("Delete", mock.Anything, id).Return(repository.ErrNoRowsAffected)

		err := svc.RejectSeller(adminCtx(), id)
		assertKind(t, apperror.KindValidation, err)
	})

	t.Run("missing seller", func(t *testing.T) {
		svc, _, sellers := newAdminService(t)
		id := uuid.New()
		sellers.On("GetByID", mock.Anything, id).Return(nil, nil)

		assertKind(t, apperror.KindNotFound, svc.RejectSeller(adminCtx(), id))
	})

	t.Run("sellers cannot reject", func(t *testing.T) {
		svc, _, _ := newAdminService(t)
		assertKind(t, apperror.KindForbidden, svc.RejectSeller(sellerCtx(uuid.New()), uuid.New()))
	})
}

func TestAdminToggleSellerStatus(t *testing.T) {
	svc, _, sellers := newAdminService(t)
	id := uuid.New()
	sellers.On("GetByID", mock.Anything, id).Return(&entity.SellerProfile{ID: id, IsActive: true}, nil)
	sellers.On("Update", mock.Anything, mock.MatchedBy(func(s *entity.SellerProfile) bool {
		return s.ID == id && !s.IsActive
	})).Return(nil)

	seller, err := svc.ToggleSellerStatus(adminCtx(), id)
	require.NoError(t, err)
	assert.False(t, seller.IsActive)

	missing := uuid.New()
	sellers.On("GetByID", mock.Anything, missing).Return(nil, nil)
	_, err = svc.ToggleSellerStatus(adminCtx(), missing)
	assertKind(t, apperror.KindNotFound, err)

	_, err = svc.ToggleSellerStatus(customerCtx(), id)
	assertKind(t, apperror.KindForbidden, err)
}

func TestAdminToggleUserStatus(t *testing.T) {
	t.Run("flips status", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		id := uuid.New()
		users.On("GetByID", mock.Anything, id).Return(&entity.User{ID: id, IsActive: false}, nil)
		users.On("SetActive", mock.Anything, id, true).Return(nil)

		user, err := svc.ToggleUserStatus(adminCtx(), id)
		require.NoError(t, err)
		assert.True(t, user.IsActive)
	})

	t.Run("own account", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		adminID := uuid.New()
		ctx := access.WithCaller(context.Background(), &access.Caller{UserID: adminID, Role: enum.UserRoleAdmin})

		_, err := svc.ToggleUserStatus(ctx, adminID)
		assertKind(t, apperror.KindValidation, err)
		users.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("row vanished", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		id := uuid.New()
		users.On("GetByID", mock.Anything, id).Return(&entity.User{ID: id, IsActive: true}, nil)
		users.On("SetActive", mock.Anything, id, false).Return(repository.ErrNoRowsAffected)

		_, err := svc.ToggleUserStatus(adminCtx(), id)
		assertKind(t, apperror.KindNotFound, err)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, users, _ := newAdminService(t)
		id := uuid.New()
		users.On("GetByID", mock.Anything, id).Return(nil, nil)

		_, err := svc.ToggleUserStatus(adminCtx(), id)
		assertKind(t, apperror.KindNotFound, err)
	})
}

func TestSellerServiceResolve(t *testing.T) {
	sellers := mocks.NewSellerRepository(t)
	svc := NewSellerService(sellers)
	withProfile, withoutProfile := uuid.New(), uuid.New()
	profileID := uuid.New()

	sellers.On("GetByUserID", mock.Anything, withProfile).Return(&entity.SellerProfile{ID: profileID}, nil)
	sellers.On("GetByUserID", mock.Anything, withoutProfile).Return(nil, nil)

	id, err := svc.ResolveSellerID(adminCtx(), withProfile)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, profileID, *id)

	id, err = svc.ResolveSellerID(adminCtx(), withoutProfile)
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestSellerServiceMyProfile(t *testing.T) {
	sellers := mocks.NewSellerRepository(t)
	svc := NewSellerService(sellers)
	sellerID := uuid.New()
	sellers.On("GetByID", mock.Anything, sellerID).Return(&entity.SellerProfile{ID: sellerID, BusinessName: "Acme"}, nil)

	profile, err := svc.MyProfile(sellerCtx(sellerID))
	require.NoError(t, err)
	assert.Equal(t, "Acme", profile.BusinessName)

	_, err = svc.MyProfile(customerCtx())
	assertKind(t, apperror.KindForbidden, err)
}

func TestSellerServiceUpdateMyProfile(t *testing.T) {
	sellerID := uuid.New()
	verified := &entity.SellerProfile{ID: sellerID, BusinessName: "Acme", IsVerified: true}

	t.Run("applies editable fields", func(t *testing.T) {
		sellers := mocks.NewSellerRepository(t)
		svc := NewSellerService(sellers)
		profile := *verified
		name := "  Acme Lighting "
		phone := "+254700000000"
		sellers.On("GetByID", mock.Anything, sellerID).Return(&profile, nil)
		sellers.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(s *entity.SellerProfile) bool {
			return s.BusinessName == "Acme Lighting" && s.Phone != nil && *s.Phone == phone && s.IsVerified
		})).Return(nil)

		updated, err := svc.UpdateMyProfile(sellerCtx(sellerID), &UpdateSellerProfileInput{
			BusinessName: &name,
			Phone:        &phone,
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme Lighting", updated.BusinessName)
	})

	t.Run("blank business name", func(t *testing.T) {
		sellers := mocks.NewSellerRepository(t)
		svc := NewSellerService(sellers)
		profile := *verified
		blank := "   "
		sellers.On("GetByID", mock.Anything, sellerID).Return(&profile, nil)

		_, err := svc.UpdateMyProfile(sellerCtx(sellerID), &UpdateSellerProfileInput{BusinessName: &blank})
		assertKind(t, apperror.KindValidation, err)
		sellers.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("scoped write touches no row", func(t *testing.T) {
		sellers := mocks.NewSellerRepository(t)
		svc := NewSellerService(sellers)
		profile := *verified
		sellers.On("GetByID", mock.Anything, sellerID).Return(&profile, nil)
		sellers.On("UpdateProfile", mock.Anything, mock.Anything).Return(repository.ErrNoRowsAffected)

		_, err := svc.UpdateMyProfile(sellerCtx(sellerID), &UpdateSellerProfileInput{})
		assertKind(t, apperror.KindNotFound, err)
	})

	t.Run("customers are forbidden", func(t *testing.T) {
		svc := NewSellerService(mocks.NewSellerRepository(t))
		_, err := svc.UpdateMyProfile(customerCtx(), &UpdateSellerProfileInput{})
		assertKind(t, apperror.KindForbidden, err)
	})
}
