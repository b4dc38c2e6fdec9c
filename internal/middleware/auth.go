package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
)

const ContextSession = "session"

type TokenParser interface {
	Parse(token string) (uint, error)
}

type MembershipFinder interface {
	GetMembership(ctx context.Context, userID uint) (*models.OrganizationMember, error)
}

// AuthMiddleware valida o access token e resolve a única membership do
// usuário. O token vem do header Authorization ou, no WebSocket, do query
// param access_token.
func AuthMiddleware(tokens TokenParser, members MembershipFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			httperr.Abort(c, httperr.ErrUnauthenticated("missing_token"))
			return
		}

		userID, err := tokens.Parse(tokenString)
		if err != nil {
			httperr.Abort(c, httperr.ErrUnauthenticated("invalid_token"))
			return
		}

		ctx := c.Request.Context()
		member, err := members.GetMembership(ctx, userID)
		if err != nil {
			if httperr.IsRecordNotFound(err) {
				httperr.Abort(c, httperr.ErrForbidden("no_membership"))
				return
			}
			httperr.Abort(c, err)
			return
		}

		sess := session.Session{
			UserID:         userID,
			OrganizationID: member.OrganizationID,
			Role:           member.Role,
		}

		ctx = session.WithSession(ctx, sess)
		ctx = logger.WithFields(ctx, logger.Fields{
			OrganizationID: sess.OrganizationID,
			UserID:         sess.UserID,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Set(ContextSession, sess)

		c.Next()
	}
}

// Session lê a sessão gravada pelo AuthMiddleware.
func Session(c *gin.Context) session.Session {
	if v, ok := c.Get(ContextSession); ok {
		if s, ok := v.(session.Session); ok {
			return s
		}
	}
	s, _ := session.FromContext(c.Request.Context())
	return s
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ""
		}
		return strings.TrimSpace(parts[1])
	}
	return c.Query("access_token")
}
