package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Problem is the RFC 7807 style error body every failure path emits.
type Problem struct {
	Type   string              `json:"type"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Detail string              `json:"detail"`
	Errors map[string][]string `json:"errors,omitempty"`
}

const (
	typeBadRequest      = "https://tools.ietf.org/html/rfc7231#section-6.5.1"
	typeNotFound        = "https://tools.ietf.org/html/rfc7231#section-6.5.4"
	typeServerError     = "https://tools.ietf.org/html/rfc7231#section-6.6.1"
	typeTooManyRequests = "https://tools.ietf.org/html/rfc6585#section-4"
)

func ValidationFailed(c *gin.Context, errors map[string][]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Problem{
		Type:   typeBadRequest,
		Title:  "Validation Failed",
		Status: http.StatusUnprocessableEntity,
		Detail: "The request data failed validation",
		Errors: errors,
	})
}

func BadRequest(c *gin.Context, detail string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Problem{
		Type:   typeBadRequest,
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
		Detail: detail,
	})
}

func NotFound(c *gin.Context, title, detail string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Problem{
		Type:   typeNotFound,
		Title:  title,
		Status: http.StatusNotFound,
		Detail: detail,
	})
}

func ServerError(c *gin.Context, title, detail string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Problem{
		Type:   typeServerError,
		Title:  title,
		Status: http.StatusInternalServerError,
		Detail: detail,
	})
}

func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Problem{
		Type:   typeTooManyRequests,
		Title:  "Too Many Requests",
		Status: http.StatusTooManyRequests,
		Detail: "Request rate limit exceeded, slow down",
	})
}

// PaginationMeta mirrors the envelope historical clients already parse.
type PaginationMeta struct {
	CurrentPage int `json:"current_page"`
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
	From        int `json:"from"`
	To          int `json:"to"`
}

type PaginationLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type Paginated struct {
	Data  any             `json:"data"`
	Meta  PaginationMeta  `json:"meta"`
	Links PaginationLinks `json:"links"`
}

// NewPaginationMeta computes last_page with ceil division and the 1-based
// from/to bounds of the returned slice. An empty page keeps from/to at zero.
func NewPaginationMeta(total, page, perPage, count int) PaginationMeta {
	lastPage := 0
	if perPage > 0 {
		lastPage = (total + perPage - 1) / perPage
	}

	from, to := 0, 0
	if count > 0 {
		from = (page-1)*perPage + 1
		to = from + count - 1
	}

	return PaginationMeta{
		CurrentPage: page,
		Total:       total,
		PerPage:     perPage,
		LastPage:    lastPage,
		From:        from,
		To:          to,
	}
}

// NewPaginationLinks builds first/last/prev/next URLs for the list endpoint.
func NewPaginationLinks(path string, meta PaginationMeta) PaginationLinks {
	pageURL := func(page int) string {
		return fmt.Sprintf("%s?page=%d", path, page)
	}

	lastPage := meta.LastPage
	if lastPage < 1 {
		lastPage = 1
	}

	links := PaginationLinks{
		First: pageURL(1),
		Last:  pageURL(lastPage),
	}
	if meta.CurrentPage > 1 {
		prev := pageURL(meta.CurrentPage - 1)
		links.Prev = &prev
	}
	if meta.CurrentPage < lastPage {
		next := pageURL(meta.CurrentPage + 1)
		links.Next = &next
	}

	return links
}

// Paginate wraps items in the nested data/meta/links list envelope.
func Paginate(c *gin.Context, items any, meta PaginationMeta) {
	c.JSON(http.StatusOK, gin.H{
		"data": Paginated{
			Data:  items,
			Meta:  meta,
			Links: NewPaginationLinks(c.Request.URL.Path, meta),
		},
	})
}
