package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/PavanAnganna90/portfolio/internal/logging"
)

// VisitorMetrics counts page views without storing anything about the
// visitor. Client addresses are only ever logged as a salted hash.
type VisitorMetrics struct {
	views      *prometheus.CounterVec
	doNotTrack prometheus.Counter
	salt       string
}

// NewVisitorMetrics registers the visitor counters on reg.
func NewVisitorMetrics(reg prometheus.Registerer) (*VisitorMetrics, error) {
	salt, err := newSalt()
	if err != nil {
		return nil, err
	}

	factory := promauto.With(reg)
	return &VisitorMetrics{
		views: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "page_views_total",
			Help:      "Page views by route and response format.",
		}, []string{"route", "format"}),
		doNotTrack: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "portfolio",
			Name:      "do_not_track_total",
			Help:      "Requests that sent DNT: 1 and were not counted.",
		}),
		salt: salt,
	}, nil
}

func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating visitor salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP is stable for one process lifetime and useless after a restart.
func (m *VisitorMetrics) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + m.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Middleware counts a view for every routed, non-asset request.
func (m *VisitorMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" || isQuietPath(c.Request.URL.Path) {
			return
		}

		if c.GetHeader("DNT") == "1" {
			m.doNotTrack.Inc()
			return
		}

		format, _ := c.Get(contextKeyFormat)
		f, _ := format.(string)
		if f == "" {
			f = "json"
		}
		m.views.WithLabelValues(route, f).Inc()

		logging.FromContext(c.Request.Context()).Debug("visit",
			slog.String("visitor", m.hashIP(c.ClientIP())),
			slog.String("route", route),
		)
	}
}
