package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/descope/go-sdk/descope/client"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/config"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/database"
	"github.com/gjohnston300taxi/UK-Driver-Hub-sub000/errs"
)

// authMiddleware resolves the caller's identity from the session token. When
// DESCOPE_PROJECT_ID is configured the token is validated against the managed
// auth provider; otherwise it is treated as a locally signed HS256 JWT
// (JWT_SECRET), which is what development and tests use.
type authMiddleware struct {
	responder   Responder
	profileRepo *database.ProfileRepo
	descope     *client.DescopeClient
	jwtSecret   []byte
}

func newAuthMiddleware(profileRepo *database.ProfileRepo) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()

	m := authMiddleware{
		responder:   NewResponder(logger),
		profileRepo: profileRepo,
	}

	cfg := config.New()
	if projectID := config.GetString(cfg, "DESCOPE_PROJECT_ID", ""); projectID != "" {
		descopeClient, err := client.NewWithConfig(&client.Config{ProjectID: projectID})
		if err != nil {
			logger.Error().Err(err).Msg("Could not initialize Descope client; falling back to local JWT validation")
		} else {
			m.descope = descopeClient
		}
	}
	m.jwtSecret = []byte(config.GetString(cfg, "JWT_SECRET", ""))

	return m
}

func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		sessionToken := strings.TrimPrefix(authHeader, "Bearer ")
		if sessionToken == "" {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		userID, err := m.resolveUserID(r, sessionToken)
		if err != nil {
			m.responder.WriteError(w, err)
			return
		}

		updatedCtx := ctxWithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(updatedCtx))
	})
}

func (m authMiddleware) resolveUserID(r *http.Request, sessionToken string) (string, error) {
	if m.descope != nil {
		ok, token, err := m.descope.Auth.ValidateSessionWithToken(r.Context(), sessionToken)
		if err != nil || !ok || token == nil {
			return "", errs.NewInvalidTokenError()
		}
		return token.ID, nil
	}

	if len(m.jwtSecret) == 0 {
		return "", errs.NewEnvironmentVariableError("JWT_SECRET")
	}

	parsed, err := jwt.Parse(sessionToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return m.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errs.NewInvalidTokenError()
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errs.NewInvalidTokenError()
	}
	return sub, nil
}

// requireAdmin gates a route on the caller's profile row having the admin
// flag set. The check is server-side on purpose; the client's own notion of
// its role is never trusted.
func (m authMiddleware) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}

		profile, err := m.profileRepo.FindByID(userID)
		if err != nil {
			m.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if profile == nil || !profile.IsAdmin {
			m.responder.WriteError(w, errs.NewInsufficientRoleError("admin"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Optionally log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	// Set up colored console writer for development
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		// Color-code based on HTTP status codes
		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
