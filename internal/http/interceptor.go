package httpx

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dstokens/tokens-api/internal/ports"
	"github.com/dstokens/tokens-api/internal/service"
)

// CallbackInterceptorOptions groups dependencies for CallbackInterceptor.
type CallbackInterceptorOptions struct {
	Auth         *service.AuthService
	CallbackPath string
	CookieDomain string
	Logger       *slog.Logger
}

// CallbackInterceptor wraps the router and watches outgoing responses on the
// OAuth callback path. A 302 whose Location carries an access_token is the
// provisional redirect: the interceptor completes the login through the auth
// service and rewrites Location to the final destination.
//
// Provisional redirects it cannot interpret, and provider-side failures, pass
// through unchanged so the upstream behavior stays observable. User-store
// failures replace the redirect with a 500.
func CallbackInterceptor(opts CallbackInterceptorOptions) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "callback_interceptor")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != opts.CallbackPath {
				next.ServeHTTP(w, r)
				return
			}

			bw := newBufferedWriter(w)
			next.ServeHTTP(bw, r)

			if bw.status != http.StatusFound {
				bw.flush()
				return
			}

			location := bw.header.Get("Location")
			redirect, err := service.ParseProvisionalRedirect(location)
			if err != nil {
				// Not a provisional redirect we understand; leave it alone.
				logger.InfoContext(r.Context(), "passing callback redirect through", "err", err)
				bw.flush()
				return
			}

			result, err := opts.Auth.CompleteCallback(r.Context(), redirect)
			if err != nil {
				if errors.Is(err, service.ErrProviderUnavailable) || errors.Is(err, ports.ErrNoPrimaryEmail) {
					logger.ErrorContext(r.Context(), "callback completion failed open", "err", err)
					bw.flush()
					return
				}
				logger.ErrorContext(r.Context(), "callback completion failed", "err", err)
				WriteError(w, ErrorParams{
					Code:    http.StatusInternalServerError,
					ErrCode: "callback_failed",
					Err:     errors.New("failed to complete login"),
				})
				return
			}

			setSessionCookies(w, sessionCookieParams{
				Domain:      opts.CookieDomain,
				SessionJWT:  result.SessionJWT,
				GithubToken: redirect.AccessToken,
			})
			bw.header.Set("Location", result.RedirectURL)
			bw.flush()
		})
	}
}

// sessionCookieParams groups the values written as login cookies.
type sessionCookieParams struct {
	Domain      string
	SessionJWT  string
	GithubToken string
}

// setSessionCookies writes the login cookies the frontend relies on. The jwt
// and github_token cookies are HttpOnly; is_authenticated is readable by the
// frontend as a login hint.
func setSessionCookies(w http.ResponseWriter, p sessionCookieParams) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    p.SessionJWT,
		Path:     "/",
		Domain:   p.Domain,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "github_token",
		Value:    p.GithubToken,
		Path:     "/",
		Domain:   p.Domain,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "is_authenticated",
		Value:    "true",
		Path:     "/",
		Domain:   p.Domain,
		SameSite: http.SameSiteLaxMode,
	})
}

// bufferedWriter holds status, headers, and body until flush so Location can
// be rewritten after the wrapped handler returns.
type bufferedWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newBufferedWriter(w http.ResponseWriter) *bufferedWriter {
	return &bufferedWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (b *bufferedWriter) Header() http.Header         { return b.header }
func (b *bufferedWriter) WriteHeader(code int)        { b.status = code }
func (b *bufferedWriter) Write(p []byte) (int, error) { return b.buf.Write(p) }

func (b *bufferedWriter) flush() {
	for k, vs := range b.header {
		for _, v := range vs {
			b.rw.Header().Add(k, v)
		}
	}
	b.rw.WriteHeader(b.status)
	if _, err := b.rw.Write(b.buf.Bytes()); err != nil {
		// Client disconnects are not recoverable here.
		return
	}
}
