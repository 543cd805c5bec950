package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/domain/valueobject"
	"github.com/ignatzorin/web3-freelance/internal/http/middleware"
	"github.com/ignatzorin/web3-freelance/internal/testutil/memrepo"
	"github.com/ignatzorin/web3-freelance/internal/usecase/job"
)

type failingPinger struct{}

func (failingPinger) PingContext(context.Context) error { return errors.New("connection refused") }

func TestJobHandler_CreateJob_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &JobHandler{}
	r.POST("/jobs", h.CreateJob)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHENTICATED")
}

func TestJobHandler_CreateJob_AmountValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := memrepo.NewStore()
	client := store.AddUser(entity.NewUser(valueobject.WalletAddress("0x0000000000000000000000000000000000000001")))
	jobType := store.AddJobType("Design")

	h := NewJobHandler(JobUseCases{Create: job.NewCreateJobUseCase(store.Jobs(), store.JobTypes(), nil)})
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, client)
		c.Next()
	})
	r.POST("/jobs", h.CreateJob)

	valid := `{"title":"t","description":"d","amount":5,"job_type_id":` + itoa(jobType.ID) + `}`
	cases := []struct {
		body string
		want int
	}{
		{body: `{"title":"t","description":"d","amount":"12.5","job_type_id":` + itoa(jobType.ID) + `}`, want: http.StatusBadRequest},
		{body: `{"title":"t","description":"d","amount":-1,"job_type_id":` + itoa(jobType.ID) + `}`, want: http.StatusBadRequest},
		{body: `{"title":"t","description":"d","amount":5,"job_type_id":999}`, want: http.StatusBadRequest},
		{body: `{"title":"t","description":"d","amount":`, want: http.StatusBadRequest},
		{body: valid, want: http.StatusCreated},
		{body: `{"title":"t","description":"d","amount":5,"job_type":` + itoa(jobType.ID) + `}`, want: http.StatusCreated},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(tc.body)))
		assert.Equal(t, tc.want, w.Code, tc.body)
	}
	assert.Equal(t, 2, store.JobCount())
}

func TestJobHandler_GetJob_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &JobHandler{}
	r.GET("/jobs/:id", h.GetJob)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/not-a-number", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthHandler_Unhealthy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", NewHealthHandler(failingPinger{}).Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"unhealthy"`)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
