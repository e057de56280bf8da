package http

import (
	"github.com/gin-gonic/gin"
)

// processResolveReq binds and validates the resolve request body and query.
func (h *handler) processResolveReq(c *gin.Context) (resolveReq, error) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Format = c.Query("format")
	return req, req.validate()
}

// processCreateReq binds and validates the create event request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
