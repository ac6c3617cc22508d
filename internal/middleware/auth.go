package middleware

import (
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskhive/backend/internal/crypto"
)

// SubjectHeader carries the authenticated identity id to downstream handlers.
// The token's subject claim is the only trusted source of caller identity.
const SubjectHeader = "X-Identity-ID"

// TokenAuth validates the bearer token and forwards the subject claim.
// Requests with a missing, malformed, expired or mis-signed token never reach
// the wrapped handler.
func TokenAuth(cfg crypto.TokenConfig, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			tokenString := extractToken(ctx)
			if tokenString == "" {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			claims, err := crypto.ValidateToken(tokenString, cfg)
			if err != nil {
				logger.Warn("rejected identity token", zap.Error(err))
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			// Overwrite unconditionally so a client-supplied header can
			// never impersonate another identity.
			ctx.Request.Header.Set(SubjectHeader, claims.Subject)
			next(ctx)
		}
	}
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
