package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/deskhub/deskhub/internal/shared/constants"
)

// Pagination holds normalized page parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the row offset of the first item on the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ValidatePagination applies defaults and caps the page size at MaxPageSize.
func ValidatePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if page > constants.MaxPage {
		page = constants.MaxPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// ParsePagination reads page and limit from the query string. page_size is
// accepted as an alias of limit.
func ParsePagination(c *gin.Context) Pagination {
	size := parseQueryInt(c, "limit", 0)
	if size == 0 {
		size = parseQueryInt(c, "page_size", 0)
	}
	return ValidatePagination(parseQueryInt(c, "page", constants.DefaultPage), size)
}

// ListQuery is the common shape of list endpoints: pagination, a free-text
// search term and a sort key.
type ListQuery struct {
	Pagination
	Search string
	Sort   string
}

func ParseListQuery(c *gin.Context) ListQuery {
	return ListQuery{
		Pagination: ParsePagination(c),
		Search:     strings.TrimSpace(c.Query("q")),
		Sort:       strings.ToLower(strings.TrimSpace(c.Query("sort"))),
	}
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages returns at least 1 so empty lists still render one page.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
