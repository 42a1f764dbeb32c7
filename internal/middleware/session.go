package middleware

import (
	"context"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	HeaderSessionToken = "X-Session-Token"
	SessionCookie      = "sipinjam_session"
	ctxSession         = "session"
	ctxSessionToken    = "session_token"
)

type sessionResolver interface {
	Resolve(ctx context.Context, token string) (domain.Session, error)
}

// Session кладёт в контекст сессию по токену из заголовка или cookie.
// Ошибка хранилища не прерывает запрос: он идёт дальше анонимно.
func Session(resolver sessionResolver, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := SessionToken(c)

		session, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			log.LogAttrs(c.Request.Context(), logger.WarnLevel, "session resolve failed",
				logger.String("request_id", c.GetString(ctxRequestID)),
				logger.String("error", err.Error()),
			)
		}

		SetSession(c, session)
		c.Set(ctxSessionToken, token)

		c.Next()
	}
}

func SessionToken(c *ginext.Context) string {
	if token := c.GetHeader(HeaderSessionToken); token != "" {
		return token
	}
	if token, err := c.Cookie(SessionCookie); err == nil {
		return token
	}
	return ""
}

func SetSession(c *ginext.Context, s domain.Session) {
	c.Set(ctxSession, s)
}

// SessionFrom достаёт сессию; без middleware возвращает анонимную.
func SessionFrom(c *ginext.Context) domain.Session {
	v, ok := c.Get(ctxSession)
	if !ok {
		return domain.NoSession()
	}
	s, ok := v.(domain.Session)
	if !ok {
		return domain.NoSession()
	}
	return s
}
