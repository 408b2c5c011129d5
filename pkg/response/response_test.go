package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/hmhy-admin-api/pkg/errors"
	"github.com/noah-isme/hmhy-admin-api/pkg/listview"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestNoContentWritesStatusImmediately(t *testing.T) {
	c, w := newContext()
	NoContent(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, c.Writer.Written())
	assert.Empty(t, w.Body.String())
}

func TestPageCarriesPaginationAndMeta(t *testing.T) {
	c, w := newContext()
	page := listview.Page[string]{Items: []string{"a", "b"}, TotalItems: 2, TotalPages: 1, CurrentPage: 1, PageSize: 10, RangeStart: 1, RangeEnd: 2}
	Page(c, page, map[string]interface{}{"processing_time_ms": 3})

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data       []string               `json:"data"`
		Pagination listview.Meta          `json:"pagination"`
		Meta       map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, []string{"a", "b"}, env.Data)
	assert.Equal(t, 2, env.Pagination.TotalItems)
	assert.Equal(t, 2, env.Pagination.RangeEnd)
	assert.EqualValues(t, 3, env.Meta["processing_time_ms"])
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestErrorUsesTypedStatus(t *testing.T) {
	c, w := newContext()
	Error(c, appErrors.Clone(appErrors.ErrConflict, "teacher is still active"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"CONFLICT"`)

	c, w = newContext()
	Error(c, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
