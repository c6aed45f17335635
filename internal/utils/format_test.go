package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestFormatStorage(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048575, "1024.0 KB"},
		{1048576, "1.0 MB"},
		{5 * 1048576, "5.0 MB"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, FormatStorage(tc.bytes))
	}
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 2, TotalPages(10, 6))
	require.Equal(t, 1, TotalPages(6, 6))
	require.Equal(t, 0, TotalPages(0, 6))
	require.Equal(t, 1, TotalPages(1, 6))
}

func TestGetPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/images?"+query, nil)
		return c
	}

	params := GetPageParams(newContext(""))
	require.Equal(t, 0, params.Page)
	require.Equal(t, 6, params.Size)
	require.Equal(t, 0, params.Offset)

	params = GetPageParams(newContext("page=2&size=10"))
	require.Equal(t, 2, params.Page)
	require.Equal(t, 10, params.Size)
	require.Equal(t, 20, params.Offset)

	// Out-of-range values fall back to defaults or the cap
	params = GetPageParams(newContext("page=-1&size=0"))
	require.Equal(t, 0, params.Page)
	require.Equal(t, 6, params.Size)

	params = GetPageParams(newContext("size=5000"))
	require.Equal(t, 100, params.Size)
}
