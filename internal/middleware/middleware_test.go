package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"turforlag/internal/reqctx"
	"turforlag/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret"

func token(t *testing.T, userID int, role string) string {
	t.Helper()
	tok, err := utils.GenerateToken(testSecret, userID, role, time.Hour)
	require.NoError(t, err)
	return tok
}

type seen struct {
	userID int
	role   string
	rid    string
	called bool
}

func capture(s *seen) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.userID, _ = reqctx.GetUserID(r.Context())
		s.role, _ = reqctx.GetRole(r.Context())
		s.rid, _ = reqctx.GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestID_GeneratesAndKeeps(t *testing.T) {
	var s seen
	h := RequestID(capture(&s))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, s.rid)
	assert.Equal(t, s.rid, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", s.rid)
}

func TestIdentity_Bearer(t *testing.T) {
	var s seen
	h := Identity(testSecret, "lms_token")(capture(&s))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, 7, "student"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, s.userID)
	assert.Equal(t, "student", s.role)
}

func TestIdentity_Cookie(t *testing.T) {
	var s seen
	h := Identity(testSecret, "lms_token")(capture(&s))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "lms_token", Value: token(t, 9, "editingteacher")})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 9, s.userID)
}

func TestIdentity_Rejects(t *testing.T) {
	other, err := utils.GenerateToken("other", 7, "student", time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateToken(testSecret, 7, "student", -time.Hour)
	require.NoError(t, err)
	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 7}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	cases := map[string]string{
		"missing":      "",
		"wrong secret": other,
		"expired":      expired,
		"no role":      noRole,
		"garbage":      "abc.def.ghi",
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			var s seen
			h := Identity(testSecret, "lms_token")(capture(&s))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, s.called)
		})
	}
}

func TestAnyRole(t *testing.T) {
	guard := AnyRole(EditingRoles...)
	cases := []struct {
		role string
		skip bool
		want int
	}{
		{"editingteacher", false, http.StatusOK},
		{"manager", false, http.StatusOK},
		{"student", false, http.StatusForbidden},
		{"", false, http.StatusForbidden},
		{"student", true, http.StatusOK},
	}
	for _, c := range cases {
		var s seen
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		ctx := req.Context()
		if c.role != "" {
			ctx = reqctx.WithRole(ctx, c.role)
		}
		if c.skip {
			ctx = WithSkipGuards(ctx)
		}
		rec := httptest.NewRecorder()
		guard(capture(&s)).ServeHTTP(rec, req.WithContext(ctx))
		assert.Equal(t, c.want, rec.Code, "role %q skip %v", c.role, c.skip)
	}
}

func TestAdminFastLane(t *testing.T) {
	var skipped bool
	h := AdminFastLane(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		skipped = SkipGuards(r.Context())
		assert.True(t, CanEdit(r))
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(httptest.NewRecorder(), req.WithContext(reqctx.WithRole(req.Context(), "admin")))
	assert.True(t, skipped)
}

func TestCanEdit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, CanEdit(req))
	assert.False(t, CanEdit(req.WithContext(reqctx.WithRole(req.Context(), "student"))))
	assert.True(t, CanEdit(req.WithContext(reqctx.WithRole(req.Context(), "manager"))))
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))
	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() { h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil)) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogging_KeepsStatus(t *testing.T) {
	h := Logging(Identity(testSecret, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, 3, "student"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
