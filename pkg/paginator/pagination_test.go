package paginator

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		want  Paginate
	}{
		{name: "defaults", query: "", want: Paginate{From: 0, Size: 10, Page: 1}},
		{name: "third page", query: "page=3&page_size=20", want: Paginate{From: 40, Size: 20, Page: 3}},
		{name: "garbage", query: "page=x&page_size=y", want: Paginate{From: 0, Size: 10, Page: 1}},
		{name: "negative page", query: "page=-2&page_size=5", want: Paginate{From: 0, Size: 5, Page: 1}},
		{name: "capped size", query: "page=2&page_size=1000", want: Paginate{From: 100, Size: 100, Page: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/v1/history?"+tt.query, nil)

			assert.Equal(t, tt.want, New(c))
		})
	}
}
