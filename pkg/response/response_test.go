package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vaultwise/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestOK(t *testing.T) {
	c, w := newTestContext()
	OK(c, map[string]int64{"balance": 42})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestCreated(t *testing.T) {
	c, w := newTestContext()
	Created(c, "done")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestError_AppError(t *testing.T) {
	c, w := newTestContext()
	Error(c, apperror.ErrGrowthWithdrawal())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "POL_002", resp.ErrorCode)
}

func TestError_UnknownError(t *testing.T) {
	c, w := newTestContext()
	Error(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_000", resp.ErrorCode)
	// Internal detail must not leak to the client.
	assert.NotContains(t, resp.Message, "boom")
}

func TestError_PreservesRequestID(t *testing.T) {
	c, w := newTestContext()
	c.Set("request_id", "req-123")
	Error(c, apperror.ErrInvalidAmount())

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-123", resp.RequestID)
}
