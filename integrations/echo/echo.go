// Package echo provides adapters for using aitriage with the Echo framework.
package echo

import (
	aitriage "github.com/blackwell-systems/aitriage"
	echofw "github.com/labstack/echo/v4"
)

// Fail classifies a failed upstream AI call and responds with the
// user-facing message. The HTTP status is derived from the classification
// code.
//
// Example:
//
//	e.POST("/generate", func(c echo.Context) error {
//	    out, err := model.Generate(c.Request().Context(), prompt)
//	    if err != nil {
//	        return Fail(c, cls, err)
//	    }
//	    return c.JSON(http.StatusOK, out)
//	})
func Fail(c echofw.Context, cls *aitriage.Classifier, v any) error {
	rep := cls.Triage(v)
	return c.JSON(aitriage.StatusFor(rep.Code), map[string]string{
		"message": rep.UserMessage,
		"code":    string(rep.Code),
	})
}
