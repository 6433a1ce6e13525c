// Session authentication and CSRF validation middleware.
//
// Session issuance (login, registration) is handled by an external
// collaborator that writes rows into the sessions table. This middleware only
// validates: it resolves the session cookie to a user id and, for mutating
// requests, checks the CSRF token against the one stored with the session.
package middleware

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
)

// HeaderCSRFToken carries the CSRF token on mutating requests. A `csrf_token`
// field in a JSON body is accepted as a fallback.
const HeaderCSRFToken = "X-CSRF-Token"

// ContextUserID is the Gin context key under which the authenticated user id
// is stored for downstream handlers.
const ContextUserID = "userID"

// maxCSRFBodyPeek bounds how much of the body is read when looking for a
// csrf_token field. The body is restored afterwards.
const maxCSRFBodyPeek = 1 << 20

// SessionLookup resolves a session token to the session record, or an error
// when the token is unknown or expired.
type SessionLookup func(c *gin.Context, token string, now time.Time) (*domain.Session, error)

// AuthOptions configures SessionAuth.
type AuthOptions struct {
	// CookieName is the cookie carrying the session token.
	CookieName string
	// Lookup resolves tokens to sessions. Required.
	Lookup SessionLookup
	// Now allows tests to pin the clock; defaults to time.Now.
	Now func() time.Time
	// Fail writes the error envelope. Required (injected to avoid an import
	// cycle with the handlers package).
	Fail func(c *gin.Context, status int, code, msg string)
}

// SessionAuth authenticates every request from the session cookie and stores
// the user id in the Gin context. Mutating methods (POST, PUT, PATCH, DELETE)
// additionally require a CSRF token matching the session's token.
//
// Responses:
//   - 401 unauthorized: missing cookie, unknown or expired session
//   - 403 forbidden: missing or mismatched CSRF token on a mutating request
func SessionAuth(opt AuthOptions) gin.HandlerFunc {
	now := opt.Now
	if now == nil {
		now = time.Now
	}
	return func(c *gin.Context) {
		token, err := c.Cookie(opt.CookieName)
		if err != nil || strings.TrimSpace(token) == "" {
			opt.Fail(c, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}

		sess, err := opt.Lookup(c, token, now().UTC())
		if err != nil || sess == nil {
			opt.Fail(c, http.StatusUnauthorized, "unauthorized", "session expired or invalid")
			return
		}

		if isMutating(c.Request.Method) {
			supplied := csrfFromRequest(c)
			if supplied == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(sess.CSRFToken)) != 1 {
				opt.Fail(c, http.StatusForbidden, "forbidden", "invalid CSRF token")
				return
			}
		}

		c.Set(ContextUserID, sess.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user id stored by SessionAuth, or "".
func UserID(c *gin.Context) string {
	if v, ok := c.Get(ContextUserID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// csrfFromRequest returns the CSRF token from the header, falling back to a
// `csrf_token` field in a JSON body. The body is re-attached so handlers can
// still bind it.
func csrfFromRequest(c *gin.Context) string {
	if h := strings.TrimSpace(c.GetHeader(HeaderCSRFToken)); h != "" {
		return h
	}
	if c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCSRFBodyPeek))
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var probe struct {
		CSRFToken string `json:"csrf_token"`
	}
	if json.Unmarshal(raw, &probe) != nil {
		return ""
	}
	return strings.TrimSpace(probe.CSRFToken)
}
