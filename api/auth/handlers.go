package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/voicelab/coach-api/internal/models"
	"github.com/voicelab/coach-api/internal/services/auth"
	"github.com/voicelab/coach-api/internal/services/profiles"
)

// Handler manages auth endpoints
type Handler struct {
	authService    *auth.Service
	attempts       *auth.AttemptStore
	profiles       profiles.Service
	devAuthToken   string
	devAuthEnabled bool
}

// NewHandler creates a new auth handler. attempts and profileService may be
// nil; lockout tracking and profile upserts are then skipped.
func NewHandler(authService *auth.Service, attempts *auth.AttemptStore, profileService profiles.Service) *Handler {
	return &Handler{
		authService: authService,
		attempts:    attempts,
		profiles:    profileService,
	}
}

// SetDevAuth configures dev auth settings for the handler
func (h *Handler) SetDevAuth(enabled bool, token string) {
	h.devAuthEnabled = enabled
	h.devAuthToken = token
	h.authService.SetDevAuth(enabled, token)
}

// Me returns current user info from JWT
// @Summary Get current user
// @Description Get current user information from Supabase JWT token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} auth.UserInfo
// @Failure 401 {object} map[string]string
// @Router /api/v1/me [get]
func (h *Handler) Me(c *gin.Context) {
	// Get claims from context (set by auth middleware)
	claims, exists := c.Get("claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	authClaims := claims.(*auth.Claims)
	userInfo := auth.GetUserInfo(authClaims)
	c.JSON(http.StatusOK, userInfo)
}

// AuthMiddleware validates Supabase JWT tokens. Repeated failures from the
// same client IP lock token validation out for a window.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip auth entirely in development mode if configured
		if h.devAuthEnabled && h.devAuthToken == "SKIP_AUTH" {
			// Set mock dev user claims
			c.Set("claims", &auth.Claims{
				Sub:   "dev-user",
				Email: "dev@localhost",
				AppMetadata: auth.AppMetadata{
					Permissions: []string{"lessons:read", "lessons:write", "lessons:admin"},
					Role:        models.RoleTeacher,
				},
			})
			h.setActor(c, "dev-user", "dev@localhost", models.RoleTeacher, []string{"lessons:read", "lessons:write", "lessons:admin"})
			c.Next()
			return
		}

		if h.attempts != nil && !h.attempts.Allowed(c.ClientIP(), "token_validation") {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed attempts, try again later"})
			c.Abort()
			return
		}

		// Get token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := h.authService.ValidateToken(parts[1])
		if err != nil {
			if h.attempts != nil {
				h.attempts.RecordFailure(c.ClientIP(), "token_validation")
			}
			if err == auth.ErrUnauthorized {
				c.JSON(http.StatusForbidden, gin.H{"error": "Access denied - insufficient permissions"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			}
			c.Abort()
			return
		}

		if h.attempts != nil {
			h.attempts.RecordSuccess(c.ClientIP(), "token_validation")
		}

		// Keep the durable profile row in sync with the provider claims
		if h.profiles != nil {
			_, _ = h.profiles.EnsureProfile(c.Request.Context(), claims.Sub, claims.Email, claims.AppMetadata.Role)
		}

		// Store claims in context
		c.Set("claims", claims)
		h.setActor(c, claims.Sub, claims.Email, claims.AppMetadata.Role, claims.AppMetadata.Permissions)

		c.Next()
	}
}

// OptionalAuthMiddleware validates JWT if present but doesn't require it
func (h *Handler) OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := h.authService.ValidateToken(parts[1])
		if err == nil {
			c.Set("claims", claims)
			h.setActor(c, claims.Sub, claims.Email, claims.AppMetadata.Role, claims.AppMetadata.Permissions)
		}

		c.Next()
	}
}

// RequireTeacher creates middleware that requires the teacher role
func (h *Handler) RequireTeacher() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != models.RoleTeacher {
			c.JSON(http.StatusForbidden, gin.H{"error": "Teacher role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) setActor(c *gin.Context, userID, email, role string, permissions []string) {
	c.Set("user_id", userID)
	c.Set("email", email)
	c.Set("permissions", permissions)
	c.Set("role", role)
}

// ActorID returns the authenticated user ID from the request context.
func ActorID(c *gin.Context) string {
	return c.GetString("user_id")
}

// IsTeacher reports whether the authenticated user has the teacher role.
func IsTeacher(c *gin.Context) bool {
	return c.GetString("role") == models.RoleTeacher
}
