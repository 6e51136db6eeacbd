package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads an int64 path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// parseOptionalIDQuery reads an optional int64 query parameter, returning nil
// when the parameter is absent or empty
func parseOptionalIDQuery(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
