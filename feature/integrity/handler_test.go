package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"bookstore/core/middleware/session"
	"bookstore/core/storage/mocks"
	"bookstore/feature/bookstore/fixtures"
	"bookstore/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, role string) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		session.WithActor(c, &session.Actor{ID: "u-1", Role: role})
		return c.Next()
	})
	mockClient := new(mocks.Client)
	feature := NewFeature(fixtures.NewDB(t), mockClient, "test-bucket", zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, mockClient
}

func TestLoader(t *testing.T) {
	feature := NewFeature(nil, new(mocks.Client), "test-bucket", zap.NewNop())
	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())
}

func TestHandleSchemaCheck(t *testing.T) {
	app, _ := setupTestApp(t, session.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report checks.SchemaReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.Matched)
}

func TestHandleImageCheck_Purge(t *testing.T) {
	app, mockClient := setupTestApp(t, session.RoleAdmin)

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "books/orphan.png"}
	close(ch)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
	mockClient.On("RemoveObjects", mock.Anything, "test-bucket", mock.Anything, mock.Anything).Return(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/integrity/images?purge=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report checks.ImageReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, []string{"books/orphan.png"}, report.Orphans)
	assert.True(t, report.Purged)
	mockClient.AssertExpectations(t)
}

func TestHandleIntegrityCheck_ReportsFailuresInPlace(t *testing.T) {
	app, mockClient := setupTestApp(t, session.RoleAdmin)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	images := body["images"].(map[string]any)
	assert.Equal(t, "error", images["status"])
	schema := body["schema"].(map[string]any)
	assert.Equal(t, true, schema["matched"])
}

func TestRoutesRequireAdmin(t *testing.T) {
	app, _ := setupTestApp(t, session.RoleCustomer)

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
