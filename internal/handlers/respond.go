package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crewbase-dev/crewbase/internal/apperr"
)

// respondError is the single place errors become HTTP responses; handlers
// never pick status codes for domain errors themselves.
func respondError(ctx *gin.Context, err error) {
	ctx.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.ClientMessage(err)})
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return uint(id), true
}

func parseQueryID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Query(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
