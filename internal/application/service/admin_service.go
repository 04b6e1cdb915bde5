package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/access"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/sangkips/marketplace-api/pkg/pagination"
)

// SellerNotifier tells sellers about changes to their profile
type SellerNotifier interface {
	SellerVerified(toEmail, businessName string) error
}

// AdminService handles platform user and seller management
type AdminService struct {
	userRepo   repository.UserRepository
	sellerRepo repository.SellerRepository
	notifier   SellerNotifier
}

// NewAdminService creates a new admin service. notifier may be nil.
func NewAdminService(userRepo repository.UserRepository, sellerRepo repository.SellerRepository, notifier SellerNotifier) *AdminService {
	return &AdminService{
		userRepo:   userRepo,
		sellerRepo: sellerRepo,
		notifier:   notifier,
	}
}

// UserQuery filters the admin user list
type UserQuery struct {
	Pagination *pagination.Params
	Role       *enum.UserRole
	IsActive   *bool
	Search     string
}

// SellerQuery filters the admin seller list
type SellerQuery struct {
	Pagination *pagination.Params
	IsActive   *bool
	Search     string
}

func userCursor(u entity.User) string {
	return u.ID.String()
}

func sellerCursor(s entity.SellerProfile) string {
	return s.ID.String()
}

// ListUsers lists platform users
func (s *AdminService) ListUsers(ctx context.Context, query UserQuery) (*pagination.Connection[entity.User], error) {
	if _, err := access.Require(ctx, enum.UserRoleAdmin); err != nil {
		return nil, err
	}
	if query.Role != nil && !query.Role.IsValid() {
		return nil, apperror.NewFieldError("role", "unknown role")
	}

	params := query.Pagination
	if params == nil {
		params = pagination.DefaultParams()
	}
	params.Validate()

	users, total, err := s.userRepo.List(ctx, &repository.UserFilter{
		Pagination: params,
		Role:       query.Role,
		IsActive:   query.IsActive,
		Search:     query.Search,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewConnection(users, params, total, userCursor), nil
}

// GetUser returns a single user
func (s *AdminService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if _, err := access.Require(ctx, enum.UserRoleAdmin); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListSellers lists seller profiles
func (s *AdminService) ListSellers(ctx context.Context, query SellerQuery) (*pagination.Connection[entity.SellerProfile], error) {
	return s.listSellers(ctx, query, nil)
}

// PendingSellers lists seller profiles awaiting verification
func (s *AdminService) PendingSellers(ctx context.Context, params *pagination.Params) (*pagination.Connection[entity.SellerProfile], error) {
	unverified := false
	return s.listSellers(ctx, SellerQuery{Pagination: params}, &unverified)
}

func (s *AdminService) listSellers(ctx context.Context, query SellerQuery, verified *bool) (*pagination.Connection[entity.SellerProfile], error) {
	if _, err := access.Require(ctx, enum.UserRoleAdmin); err != nil {
		return nil, err
	}

	params := query.Pagination
	if params == nil {
		params = pagination.DefaultParams()
	}
	params.Validate()

	sellers, total, err := s.sellerRepo.List(ctx, &repository.SellerFilter{
		Pagination: params,
		IsActive:   query.IsActive,
		IsVerified: verified,
		Search:     query.Search,
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewConnection(sellers, params, total, sellerCursor), nil
}

// VerifySeller marks a seller profile as verified. Verifying twice is a no-op.
func (s *AdminService) VerifySeller(ctx context.Context, id uuid.UUID) (*entity.SellerProfile, error) {
	if _, err := access.Require(ctx, enum.UserRoleAdmin); err != nil {
		return nil, err
	}

	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.NewNotFoundError("Seller")
	}
	if seller.IsVerified {
		return seller, nil
	}

	seller.IsVerified = true
	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	s.notifyVerified(ctx, seller)
	return seller, nil
}

// RejectSeller removes a seller profile that has not been verified yet.
// Profiles that already list products are kept; deactivate them instead.
func (s *AdminService) RejectSeller(ctx context.Context, id uuid.UUID) error {
	if _, err := access.Require(ctx, enum.UserRoleAdmin); err != nil {
		return err
	}

	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if seller == nil {
		return apperror.NewNotFoundError("Seller")
	}
	if seller.IsVerified {
		return apperror.NewFieldError("id", "Verified sellers cannot be rejected")
	}

	if err := s.sellerRepo.Delete(ctx, seller.ID); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return apperror.NewFieldError("id", "Seller has products and cannot be rejected")
		}
		return err
	}
	return nil
}

// ToggleSellerStatus flips whether a seller profile is active
func (s *AdminService) ToggleSellerStatus(ctx context.Context, id uuid.UUID) (*entity.SellerProfile, error) {
	if _, err := access.Require(ctx, enum.UserRoleAdmin); err != nil {
		return nil, err
	}

	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.NewNotFoundError("Seller")
	}

	seller.IsActive = !seller.IsActive
	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

// ToggleUserStatus flips whether a user account is active. Admins cannot
// deactivate themselves.
func (s *AdminService) ToggleUserStatus(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	caller, err := access.Require(ctx, enum.UserRoleAdmin)
	if err != nil {
		return nil, err
	}
	if caller.UserID == id {
		return nil, apperror.NewFieldError("id", "You cannot change your own status")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if err := notFoundIfUntouched(s.userRepo.SetActive(ctx, user.ID, !user.IsActive), "User"); err != nil {
		return nil, err
	}
	user.IsActive = !user.IsActive
	return user, nil
}

// notifyVerified is best effort; the verification already happened.
func (s *AdminService) notifyVerified(ctx context.Context, seller *entity.SellerProfile) {
	if s.notifier == nil || seller.User == nil {
		return
	}
	if err := s.notifier.SellerVerified(seller.User.Email, seller.BusinessName); err != nil {
		slog.WarnContext(ctx, "seller verification email failed", "seller_id", seller.ID, "error", err)
	}
}
