package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"navjot.dev/internal/config"
	"navjot.dev/internal/contact"
	"navjot.dev/internal/content"
	"navjot.dev/internal/models"
)

func newTestRouter(t *testing.T, delay time.Duration) http.Handler {
	t.Helper()

	portfolio, err := content.Default()
	require.NoError(t, err)

	public := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(public, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "images", "hero-bg.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(public, strings.TrimPrefix(portfolio.Profile.CVPath, "/")), []byte("%PDF"), 0o644))

	store := contact.NewMemoryStore(delay)
	t.Cleanup(func() { _ = store.Close() })

	cfg := &config.Config{
		Settings:  config.Settings{PublicDir: public},
		Portfolio: portfolio,
	}
	return SetupRoutes(cfg, store, zap.NewNop())
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func postForm(values url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie set", SessionCookie)
	return nil
}

var annForm = url.Values{"name": {"Ann"}, "email": {"ann@x.com"}, "message": {"Hi"}}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, time.Second)

	rr := do(r, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestHomeRendersSections(t *testing.T) {
	r := newTestRouter(t, time.Second)

	rr := do(r, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	body := rr.Body.String()
	for _, id := range []string{`id="home"`, `id="skills"`, `id="projects"`, `id="contact"`} {
		assert.Contains(t, body, id)
	}
	assert.Contains(t, body, contact.LabelSend)
	assert.Contains(t, body, `href="/?menu=open"`)
}

func TestHomeMenuOpen(t *testing.T) {
	r := newTestRouter(t, time.Second)

	rr := do(r, httptest.NewRequest(http.MethodGet, "/?menu=open", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "height:auto;opacity:1")
}

func TestSubmitContactRedirectsAndRendersSubmitted(t *testing.T) {
	r := newTestRouter(t, time.Minute)

	rr := do(r, postForm(annForm))
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/#contact", rr.Header().Get("Location"))
	cookie := sessionCookie(t, rr)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rr = do(r, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Message Sent!")
	assert.Contains(t, body, `data-submitted="true"`)
	assert.Contains(t, body, "data-reset-after")
	assert.Contains(t, body, `value="ann@x.com"`)
}

func TestSubmitContactResets(t *testing.T) {
	r := newTestRouter(t, 30*time.Millisecond)

	rr := do(r, postForm(annForm))
	require.Equal(t, http.StatusSeeOther, rr.Code)
	cookie := sessionCookie(t, rr)

	assert.Eventually(t, func() bool {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		body := do(r, req).Body.String()
		return strings.Contains(body, `data-submitted="false"`) && !strings.Contains(body, "ann@x.com")
	}, time.Second, 10*time.Millisecond)
}

func TestSubmitContactPending(t *testing.T) {
	r := newTestRouter(t, time.Minute)

	rr := do(r, postForm(annForm))
	cookie := sessionCookie(t, rr)

	rr = do(r, postForm(url.Values{"name": {"Bob"}, "email": {"bob@x.com"}, "message": {"Yo"}}, cookie))

	assert.Equal(t, http.StatusConflict, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "ann@x.com")
	assert.NotContains(t, body, "bob@x.com")
}

func TestSubmitContactMissingFields(t *testing.T) {
	r := newTestRouter(t, time.Minute)

	rr := do(r, postForm(url.Values{"name": {"Ann"}, "email": {"  "}}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, msgMissingFields)
	assert.Contains(t, body, `value="Ann"`)
	assert.Contains(t, body, `data-submitted="false"`)
}

func TestSubmitContactJSON(t *testing.T) {
	r := newTestRouter(t, time.Minute)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Ann","email":"ann@x.com","message":"Hi"}`))
	rr := do(r, req)
	require.Equal(t, http.StatusAccepted, rr.Code)

	var form contact.Form
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &form))
	assert.True(t, form.Submitted)
	assert.Equal(t, "Ann", form.State.Name)

	req = httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Ann","email":"ann@x.com","message":"Again"}`))
	req.AddCookie(sessionCookie(t, rr))
	assert.Equal(t, http.StatusConflict, do(r, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Ann"}`))
	assert.Equal(t, http.StatusBadRequest, do(r, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`not json`))
	assert.Equal(t, http.StatusBadRequest, do(r, req).Code)
}

func TestInvalidSessionCookieIsReplaced(t *testing.T) {
	r := newTestRouter(t, time.Minute)

	rr := do(r, postForm(annForm, &http.Cookie{Name: SessionCookie, Value: "not-a-uuid"}))

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.NotEqual(t, "not-a-uuid", sessionCookie(t, rr).Value)
}

func TestPortfolioAPI(t *testing.T) {
	r := newTestRouter(t, time.Second)

	rr := do(r, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var p models.Portfolio
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, "Navjot Singh", p.Profile.Name)
	assert.Len(t, p.Projects, 6)
}

func TestProjectsAPI(t *testing.T) {
	r := newTestRouter(t, time.Second)

	rr := do(r, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var all []models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Len(t, all, 6)

	rr = do(r, httptest.NewRequest(http.MethodGet, "/api/projects?featured=true", nil))
	var featured []models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &featured))
	assert.Len(t, featured, 3)

	rr = do(r, httptest.NewRequest(http.MethodGet, "/api/projects/weather-dashboard", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var p models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, "Weather Dashboard", p.Title)

	rr = do(r, httptest.NewRequest(http.MethodGet, "/api/projects/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rr.Body.String())
}

func TestStaticAssets(t *testing.T) {
	r := newTestRouter(t, time.Second)

	for _, path := range []string{"/static/css/site.css", "/static/js/reveal.js", "/static/js/nav.js", "/static/js/contact.js"} {
		rr := do(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}

	rr := do(r, httptest.NewRequest(http.MethodGet, "/static/js/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestPublicFiles(t *testing.T) {
	r := newTestRouter(t, time.Second)

	rr := do(r, httptest.NewRequest(http.MethodGet, "/images/hero-bg.png", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "png", rr.Body.String())

	rr = do(r, httptest.NewRequest(http.MethodGet, "/Navjot-Singh-CV.pdf", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")
}
