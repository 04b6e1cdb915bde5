package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/internal/domain/access"
	"github.com/sangkips/marketplace-api/internal/domain/enum"
	"github.com/sangkips/marketplace-api/internal/presentation/http/dto/response"
	"github.com/sangkips/marketplace-api/pkg/utils"
)

// SellerResolver finds the seller profile of a user
type SellerResolver interface {
	ResolveSellerID(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
}

// bearerToken extracts the token from "Bearer <token>". ok is false when the
// header is missing; malformed is true when it is present but unusable.
func bearerToken(c *gin.Context) (token string, ok bool, malformed bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false, false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false, true
	}
	return parts[1], true, false
}

// authenticate validates the token and builds the caller. Sellers get their
// seller profile attached when they have one.
func authenticate(c *gin.Context, jwtManager *utils.JWTManager, sellers SellerResolver, token string) (*access.Caller, error) {
	claims, err := jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}
	role := enum.UserRole(claims.Role)
	if !role.IsValid() {
		return nil, errUnknownRole
	}

	caller := &access.Caller{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   role,
	}
	if role == enum.UserRoleSeller {
		sellerID, err := sellers.ResolveSellerID(c.Request.Context(), claims.UserID)
		if err != nil {
			return nil, &resolveError{err: err}
		}
		caller.SellerID = sellerID
	}
	return caller, nil
}

func setCaller(c *gin.Context, caller *access.Caller) {
	c.Set("caller", caller)
	c.Request = c.Request.WithContext(access.WithCaller(c.Request.Context(), caller))
}

// AuthMiddleware requires a valid bearer token
func AuthMiddleware(jwtManager *utils.JWTManager, sellers SellerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok, malformed := bearerToken(c)
		if malformed {
			response.Unauthorized(c, "Invalid authorization header format")
			return
		}
		if !ok {
			response.Unauthorized(c, "Authorization header is required")
			return
		}

		caller, err := authenticate(c, jwtManager, sellers, token)
		if err != nil {
			var re *resolveError
			if errors.As(err, &re) {
				response.Error(c, re.err)
				return
			}
			response.Unauthorized(c, "Invalid or expired token")
			return
		}

		setCaller(c, caller)
		c.Next()
	}
}

// OptionalAuthMiddleware tries to authenticate but doesn't fail if no valid token is provided
func OptionalAuthMiddleware(jwtManager *utils.JWTManager, sellers SellerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok, _ := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		caller, err := authenticate(c, jwtManager, sellers, token)
		if err != nil {
			var re *resolveError
			if errors.As(err, &re) {
				response.Error(c, re.err)
				return
			}
			c.Next()
			return
		}

		setCaller(c, caller)
		c.Next()
	}
}

// RequireRole rejects callers without one of roles. It applies the same
// verdicts as the service layer so both surfaces answer alike.
func RequireRole(roles ...enum.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := access.CallerFrom(c.Request.Context())

		verdict := access.Guard(caller, access.AnyRole, nil)
		for _, role := range roles {
			if verdict = access.Guard(caller, role, nil); verdict == access.Allowed {
				break
			}
		}
		if err := verdict.Err(""); err != nil {
			response.Error(c, err)
			return
		}
		c.Next()
	}
}

// GetCaller returns the authenticated caller, nil for anonymous requests
func GetCaller(c *gin.Context) *access.Caller {
	caller, _ := access.CallerFrom(c.Request.Context())
	return caller
}
