package http

import (
	"github.com/gin-gonic/gin"
)

// processPlanReq binds and validates the plan request body.
func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
