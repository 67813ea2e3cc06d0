package utils

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

func ParseDate(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func ParseInt(s string) int {
	val, _ := strconv.Atoi(strings.TrimSpace(s))
	return val
}

// ParseIntDefault returns def when the query value is empty or invalid.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return val
}

// ParseBoolPtr returns nil when the query value is absent.
func ParseBoolPtr(s string) *bool {
	if s == "" {
		return nil
	}
	val := s == "true"
	return &val
}

type QueryOptions struct {
	Limit  int64
	Offset int64
}

func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()
	limit := ParseIntDefault(q.Get("limit"), 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := ParseIntDefault(q.Get("offset"), 0)
	if offset < 0 {
		offset = 0
	}
	return QueryOptions{Limit: int64(limit), Offset: int64(offset)}
}
