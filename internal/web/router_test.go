package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavanAnganna90/portfolio/internal/portfolio"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testIconBase = "https://icons.test"

// htmlText mirrors html/template's text escaping, which also encodes '+'.
func htmlText(s string) string {
	return strings.ReplaceAll(template.HTMLEscapeString(s), "+", "&#43;")
}

type testEnv struct {
	router   *gin.Engine
	site     *portfolio.Site
	visitors *VisitorMetrics
	logs     *bytes.Buffer
}

func newTestEnv(t *testing.T, mutate ...func(*RouterConfig)) *testEnv {
	t.Helper()

	reg := prometheus.NewRegistry()
	visitors, err := NewVisitorMetrics(reg)
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	site := portfolio.Default().WithContact("me@example.com", "")

	cfg := RouterConfig{
		Logger:      slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Site:        site,
		IconBaseURL: testIconBase,
		BuildInfo:   NewBuildInfo("1.2.3", "abc123", "2026-01-01T00:00:00Z"),
		Visitors:    visitors,
		Gatherer:    reg,
	}
	for _, m := range mutate {
		m(&cfg)
	}

	r, err := NewRouter(cfg)
	require.NoError(t, err)

	return &testEnv{router: r, site: site, visitors: visitors, logs: logs}
}

func (e *testEnv) get(t *testing.T, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("User-Agent", "Mozilla/5.0")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestIndex_RendersEveryExperience(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(t, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	for _, e := range env.site.Experience {
		assert.Contains(t, body, htmlText(e.Company))
		assert.Contains(t, body, htmlText(e.Role))
		assert.Contains(t, body, htmlText(e.Duration))
		if e.Detail != "" {
			assert.Contains(t, body, htmlText(e.Detail))
		}
		for _, h := range e.Highlights {
			assert.Contains(t, body, "<li>"+htmlText(h)+"</li>")
		}
	}
}

func TestIndex_SkillPillsRequestIcons(t *testing.T) {
	env := newTestEnv(t)

	body := env.get(t, "/", nil).Body.String()
	for _, s := range env.site.Skills {
		assert.Contains(t, body, "<span>"+htmlText(s.Name)+"</span>")
		assert.Contains(t, body, `src="`+testIconBase+"/"+s.Icon+`"`)
	}
}

func TestIndex_AllSections(t *testing.T) {
	env := newTestEnv(t)

	body := env.get(t, "/", nil).Body.String()

	for _, n := range env.site.Nav {
		assert.Contains(t, body, `href="#`+n.Anchor+`"`)
		assert.Contains(t, body, `id="`+n.Anchor+`"`)
	}
	for _, tk := range env.site.Tickers {
		for _, item := range tk.Items {
			assert.Contains(t, body, htmlText(item))
		}
	}
	for _, p := range env.site.Projects {
		assert.Contains(t, body, htmlText(p.Title))
		assert.Contains(t, body, htmlText(p.Organization))
	}
	for _, ed := range env.site.Education {
		assert.Contains(t, body, htmlText(ed.School))
		assert.Contains(t, body, htmlText(ed.Degree))
	}
	for _, c := range env.site.Certifications {
		assert.Contains(t, body, htmlText(c.Name))
		assert.Contains(t, body, htmlText(c.Issuer))
	}
	assert.Contains(t, body, htmlText(env.site.Testimonial.Author))
	assert.Contains(t, body, `src="/images/profile.jpg"`)
	assert.Contains(t, body, "background-color: #fff500")
}

func TestIndex_Footer(t *testing.T) {
	env := newTestEnv(t)

	body := env.get(t, "/", nil).Body.String()

	assert.Contains(t, body, `href="https://www.linkedin.com/in/pavan90/"`)
	assert.Contains(t, body, `href="https://github.com/PavanAnganna90"`)
	assert.Contains(t, body, `href="mailto:me@example.com"`)
	assert.Contains(t, body, "&copy; "+strconv.Itoa(time.Now().Year()))

	// The footer starts hidden and the stylesheet reveals it once marked visible.
	assert.Contains(t, body, `class="reveal" data-reveal`)
	assert.Contains(t, body, ".reveal { opacity: 0;")
	assert.Contains(t, body, ".reveal.is-visible { opacity: 1;")
	assert.Contains(t, body, `.nb-btn[data-press="true"]`)
}

func TestIndex_TerminalClients(t *testing.T) {
	env := newTestEnv(t)

	for _, ua := range []string{"curl/8.4.0", "Wget/1.21", "HTTPie/3.2.2"} {
		t.Run(ua, func(t *testing.T) {
			w := env.get(t, "/", map[string]string{"User-Agent": ua})
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), "PAVAN ANGANNA")
			assert.NotContains(t, w.Body.String(), "<html")
		})
	}
}

func TestIndex_FormatQuery(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(t, "/?format=text&color=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EXPERIENCE")
	assert.NotContains(t, w.Body.String(), "\x1b[")
}

func TestResume(t *testing.T) {
	env := newTestEnv(t)

	colored := env.get(t, "/resume.txt", nil)
	require.Equal(t, http.StatusOK, colored.Code)
	assert.Contains(t, colored.Body.String(), "\x1b[")

	plain := env.get(t, "/resume.txt?color=0", nil)
	require.Equal(t, http.StatusOK, plain.Code)
	assert.NotContains(t, plain.Body.String(), "\x1b[")
	for _, e := range env.site.Experience {
		assert.Contains(t, plain.Body.String(), e.Company)
	}
}

func TestAPI_Portfolio(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(t, "/api/portfolio", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got portfolio.Site
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, *env.site, got)
}

func TestAPI_Projects(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(t, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []portfolio.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, env.site.Projects, list)

	w = env.get(t, "/api/projects/slo-kit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var p portfolio.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "SLO Kit", p.Title)

	w = env.get(t, "/api/projects/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"project not found: nope"}`, w.Body.String())
}

func TestProbes(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(t, "/-/live", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = env.get(t, "/-/build", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.NotEmpty(t, info.GoVersion)

	env.get(t, "/", nil)
	w = env.get(t, "/-/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `portfolio_page_views_total{format="html",route="/"} 1`)
}

func TestStaticAssets(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(t, "/static/site.js", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "IntersectionObserver")
	assert.Contains(t, w.Body.String(), "observer.disconnect()")

	w = env.get(t, "/static/site.css", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.get(t, "/static/icons.svg", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="linkedin"`)
}

func TestImagesDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.jpg"), []byte("jpeg"), 0o600))

	env := newTestEnv(t, func(c *RouterConfig) { c.ImagesDir = dir })

	w := env.get(t, "/images/profile.jpg", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg", w.Body.String())
}

func TestImagesDir_Missing(t *testing.T) {
	env := newTestEnv(t, func(c *RouterConfig) { c.ImagesDir = filepath.Join(t.TempDir(), "nope") })

	assert.Equal(t, http.StatusNotFound, env.get(t, "/images/profile.jpg", nil).Code)
	assert.Contains(t, env.logs.String(), "images directory not found")
}

func TestVisitorMetrics(t *testing.T) {
	env := newTestEnv(t)
	views := func(route, format string) float64 {
		return testutil.ToFloat64(env.visitors.views.WithLabelValues(route, format))
	}

	env.get(t, "/", nil)
	env.get(t, "/", nil)
	env.get(t, "/", map[string]string{"User-Agent": "curl/8.4.0"})
	env.get(t, "/api/projects/slo-kit", nil)

	assert.Equal(t, float64(2), views("/", "html"))
	assert.Equal(t, float64(1), views("/", "text"))
	assert.Equal(t, float64(1), views("/api/projects/:slug", "json"))

	env.get(t, "/", map[string]string{"DNT": "1"})
	assert.Equal(t, float64(2), views("/", "html"), "DNT requests are not counted")
	assert.Equal(t, float64(1), testutil.ToFloat64(env.visitors.doNotTrack))

	env.get(t, "/static/site.css", nil)
	env.get(t, "/-/live", nil)
	env.get(t, "/no-such-page", nil)
	assert.Equal(t, 3, testutil.CollectAndCount(env.visitors.views), "assets, probes and 404s add no series")

	assert.Contains(t, env.logs.String(), `"visitor":"`)
	assert.NotContains(t, env.logs.String(), "192.0.2.1", "raw client address is never logged")
}

func TestVisitorMetrics_HashIsStableAndSalted(t *testing.T) {
	a, err := NewVisitorMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	b, err := NewVisitorMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	assert.Equal(t, a.hashIP("192.0.2.1"), a.hashIP("192.0.2.1"))
	assert.Len(t, a.hashIP("192.0.2.1"), 16)
	assert.NotEqual(t, a.hashIP("192.0.2.1"), b.hashIP("192.0.2.1"))
}

func TestRequestID(t *testing.T) {
	env := newTestEnv(t)

	w := env.get(t, "/-/live", map[string]string{HeaderRequestID: "req-42"})
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))

	w = env.get(t, "/-/live", nil)
	_, err := uuid.Parse(w.Header().Get(HeaderRequestID))
	assert.NoError(t, err)
}

func TestLogging(t *testing.T) {
	env := newTestEnv(t)

	env.get(t, "/api/projects", map[string]string{HeaderRequestID: "req-log"})
	env.get(t, "/-/live", map[string]string{HeaderRequestID: "req-probe"})

	logs := env.logs.String()
	assert.Contains(t, logs, `"msg":"request completed"`)
	assert.Contains(t, logs, `"request_id":"req-log"`)
	assert.Contains(t, logs, `"path":"/api/projects"`)
	assert.NotContains(t, logs, "req-probe")
}

func TestRecovery(t *testing.T) {
	env := newTestEnv(t)
	env.router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := env.get(t, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	assert.Contains(t, env.logs.String(), "panic recovered")
}

func TestNewRouter_NoVisitors(t *testing.T) {
	r, err := NewRouter(RouterConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Site:   portfolio.Default(),
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `src="`+portfolio.DefaultIconBaseURL+`/go"`)
}

func TestNewRouter_DefaultsLogger(t *testing.T) {
	var r *gin.Engine
	require.NotPanics(t, func() {
		var err error
		r, err = NewRouter(RouterConfig{
			Site:      portfolio.Default(),
			ImagesDir: filepath.Join(t.TempDir(), "missing"),
		})
		require.NoError(t, err)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
