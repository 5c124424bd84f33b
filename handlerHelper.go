package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mmdatafocus/inventory_backend/config"
	"github.com/mmdatafocus/inventory_backend/utils"
)

// respondError writes {ok:false, error} with the status for err's kind.
// Server-side failures are logged and attached to the gin context.
func respondError(c *gin.Context, moduleName string, funcName string, err error) {
	appErr := utils.AsAppError(err)
	status := utils.HTTPStatus(appErr)
	if status >= http.StatusInternalServerError {
		cid, _ := utils.GetCorrelationIdFromContext(c.Request.Context())
		config.LogError(config.GetLogger(), moduleName, funcName, "correlation_id="+cid, nil, err)
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"ok": false, "error": appErr.Error()})
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return 0, false
	}
	return id, true
}

func bindInput(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}
