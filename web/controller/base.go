// Package controller provides the HTTP handlers for the eyecare web
// application: registration, login, image upload and classification,
// result history, report download, feedback and contact.
package controller

import (
	"net/http"

	"github.com/Goutham7675/eyecare-ai/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the authentication check shared by all
// controllers with guarded routes.
type BaseController struct{}

// checkLogin aborts unauthenticated requests: API callers get a 401
// JSON body, browsers a redirect to the login page with a flash.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if wantsJSON(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "Authentication required")
		} else {
			session.AddFlash(c, "error", "Please login first")
			c.Redirect(http.StatusSeeOther, "/login")
		}
		c.Abort()
		return
	}
	c.Next()
}
