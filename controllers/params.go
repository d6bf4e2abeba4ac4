package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"contenthub-api/services"
)

// listOptionsFromQuery reads the optional limit/offset/sort/desc query
// parameters. Absent parameters stay nil so the engine applies its defaults;
// negative values are passed through for the engine to reject.
func listOptionsFromQuery(c *gin.Context) (services.ListOptions, error) {
	var opts services.ListOptions

	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return opts, fmt.Errorf("limit must be an integer")
		}
		opts.Limit = &v
	}
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return opts, fmt.Errorf("offset must be an integer")
		}
		opts.Offset = &v
	}
	if raw := c.Query("sort"); raw != "" {
		s := raw
		opts.Sort = &s
	}
	if raw := c.Query("desc"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("desc must be a boolean")
		}
		opts.Desc = &v
	}
	return opts, nil
}

// pageFromQuery reads the raw limit/offset pair used by the per-user listings.
func pageFromQuery(c *gin.Context) (limit, offset *int, err error) {
	if raw := c.Query("limit"); raw != "" {
		v, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return nil, nil, fmt.Errorf("limit must be an integer")
		}
		limit = &v
	}
	if raw := c.Query("offset"); raw != "" {
		v, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return nil, nil, fmt.Errorf("offset must be an integer")
		}
		offset = &v
	}
	return limit, offset, nil
}
