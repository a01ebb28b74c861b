// Package gin provides adapters for using aitriage with the Gin framework.
package gin

import (
	aitriage "github.com/blackwell-systems/aitriage"
	"github.com/gin-gonic/gin"
)

// Fail classifies a failed upstream AI call and aborts the request with the
// user-facing message. The HTTP status is derived from the classification
// code.
//
// Example:
//
//	r.POST("/generate", func(c *gin.Context) {
//	    out, err := model.Generate(c.Request.Context(), prompt)
//	    if err != nil {
//	        Fail(c, cls, err)
//	        return
//	    }
//	    c.JSON(http.StatusOK, out)
//	})
func Fail(c *gin.Context, cls *aitriage.Classifier, v any) {
	rep := cls.Triage(v)
	c.AbortWithStatusJSON(aitriage.StatusFor(rep.Code), gin.H{
		"message": rep.UserMessage,
		"code":    string(rep.Code),
	})
}
