package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/preptalk/preptalk/internal/dto"
	"github.com/preptalk/preptalk/internal/model"
	"github.com/preptalk/preptalk/internal/service"
)

const principalKey = "principal"

// RequireAuth resolves the Bearer token to a principal before the request
// reaches component logic. Missing, invalid or expired tokens abort with
// 401.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Not authorized, no token"))
			return
		}

		principal, err := auth.ResolvePrincipal(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Not authorized, token failed"))
			return
		}

		ctx.Set(principalKey, principal)
		ctx.Next()
	}
}

// RequireRoles gates a route on the principal's role. Must run after
// RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal := Principal(ctx)
		if principal == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Not authorized"))
			return
		}
		for _, role := range roles {
			if principal.Role == role {
				ctx.Next()
				return
			}
		}
		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.Error("Not authorized for this action"))
	}
}

// Principal returns the authenticated user stored by RequireAuth, or nil.
func Principal(ctx *gin.Context) *model.User {
	value, ok := ctx.Get(principalKey)
	if !ok {
		return nil
	}
	principal, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return principal
}
