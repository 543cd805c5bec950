package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/jobs/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/jobs/:id", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs/42", nil))
	require.Equal(t, http.StatusOK, w.Code)

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/jobs/:id", "200"))
	assert.Equal(t, before+1, after)
}

func TestObserveCache(t *testing.T) {
	before := testutil.ToFloat64(cacheLookups.WithLabelValues("jobs:newest", "hit"))
	ObserveCache("jobs:newest", true)
	assert.Equal(t, before+1, testutil.ToFloat64(cacheLookups.WithLabelValues("jobs:newest", "hit")))
}

func TestHandler_ExposesDomainMetrics(t *testing.T) {
	JobCreated()
	ObservePick("ok")

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "freelance_jobs_created_total"))
	assert.True(t, strings.Contains(body, `freelance_jobs_picks_total{result="ok"}`))
}
