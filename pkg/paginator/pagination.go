package paginator

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultSize = 10
	MaxSize     = 100
)

type Paginate struct {
	From, Size, Page int
}

// New reads page and page_size from the query. Garbage falls back to the
// defaults and the size is capped at MaxSize.
func New(c *gin.Context) Paginate {
	sizeStr := c.DefaultQuery("page_size", strconv.Itoa(DefaultSize))
	pageStr := c.DefaultQuery("page", "1")

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	return Paginate{
		From: (page - 1) * size,
		Size: size,
		Page: page,
	}
}
