package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethanbaker/stringanalyzer/internal/stores/records"
	"github.com/ethanbaker/stringanalyzer/pkg/analysis"
	"github.com/ethanbaker/stringanalyzer/pkg/library"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct{}

func (brokenStore) Load(ctx context.Context) ([]analysis.TextRecord, error) {
	return nil, errors.New("connection refused")
}

func (brokenStore) Save(ctx context.Context, records []analysis.TextRecord) error {
	return errors.New("connection refused")
}

func newTestEngine(t *testing.T, store library.StoreInterface) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager, err := library.NewManager(&library.ManagerOptions{Store: store})
	require.NoError(t, err)

	engine := gin.New()
	RegisterRoutes(engine.Group("/api"), manager)
	return engine
}

func get(engine *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHealth(t *testing.T) {
	w := get(newTestEngine(t, brokenStore{}), "/api/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "OK")
}

func TestReady(t *testing.T) {
	store := records.NewInMemoryStore()
	require.NoError(t, store.Save(context.Background(), []analysis.TextRecord{analysis.NewRecord("abc", time.Now())}))

	w := get(newTestEngine(t, store), "/api/health/ready")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "READY")
}

func TestReadyStoreDown(t *testing.T) {
	w := get(newTestEngine(t, brokenStore{}), "/api/health/ready")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Record store is unavailable")
}
