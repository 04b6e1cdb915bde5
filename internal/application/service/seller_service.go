package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/access"
	"github.com/sangkips/marketplace-api/internal/domain/entity"
	"github.com/sangkips/marketplace-api/internal/domain/repository"
	"github.com/sangkips/marketplace-api/pkg/apperror"
)

// SellerService resolves and serves seller profiles
type SellerService struct {
	sellerRepo repository.SellerRepository
}

// NewSellerService creates a new seller service
func NewSellerService(sellerRepo repository.SellerRepository) *SellerService {
	return &SellerService{sellerRepo: sellerRepo}
}

// ResolveSellerID returns the seller profile id of a user, or nil if the
// user has no profile.
func (s *SellerService) ResolveSellerID(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	seller, err := s.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, nil
	}
	return &seller.ID, nil
}

// MyProfile returns the calling seller's profile
func (s *SellerService) MyProfile(ctx context.Context) (*entity.SellerProfile, error) {
	_, sellerID, err := access.RequireSeller(ctx)
	if err != nil {
		return nil, err
	}

	seller, err := s.sellerRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, apperror.NewForbiddenError("Seller profile not found")
	}
	return seller, nil
}

// UpdateSellerProfileInput holds the profile fields a seller may change.
// Nil fields are left untouched.
type UpdateSellerProfileInput struct {
	BusinessName *string
	BusinessType *string
	TaxID        *string
	Description  *string
	Phone        *string
	Website      *string
}

// UpdateMyProfile applies input to the calling seller's profile
func (s *SellerService) UpdateMyProfile(ctx context.Context, input *UpdateSellerProfileInput) (*entity.SellerProfile, error) {
	seller, err := s.MyProfile(ctx)
	if err != nil {
		return nil, err
	}

	if input.BusinessName != nil {
		name := strings.TrimSpace(*input.BusinessName)
		if name == "" {
			return nil, apperror.NewFieldError("business_name", "business_name must not be empty")
		}
		seller.BusinessName = name
	}
	if input.BusinessType != nil {
		seller.BusinessType = input.BusinessType
	}
	if input.TaxID != nil {
		seller.TaxID = input.TaxID
	}
	if input.Description != nil {
		seller.Description = input.Description
	}
	if input.Phone != nil {
		seller.Phone = input.Phone
	}
	if input.Website != nil {
		seller.Website = input.Website
	}

	if err := notFoundIfUntouched(s.sellerRepo.UpdateProfile(ctx, seller), "Seller profile"); err != nil {
		return nil, err
	}
	return seller, nil
}
