package controller

import (
	"net"
	"net/http"
	"strings"

	"github.com/Goutham7675/eyecare-ai/logger"
	"github.com/Goutham7675/eyecare-ai/web/entity"
	"github.com/Goutham7675/eyecare-ai/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or
// remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// wantsJSON decides the response mode for a dual-mode endpoint: JSON
// body, XHR header or an explicit format=json query all select the API
// shape; everything else is treated as a browser form submission.
func wantsJSON(c *gin.Context) bool {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		return true
	}
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return c.Query("format") == "json"
}

// jsonMsg sends a JSON response with a message and error status.
func jsonMsg(c *gin.Context, msg string, err error) {
	jsonMsgObj(c, http.StatusOK, msg, nil, err)
}

// jsonObj sends a JSON response with an object and error status.
func jsonObj(c *gin.Context, obj any, err error) {
	jsonMsgObj(c, http.StatusOK, "", obj, err)
}

func jsonMsgObj(c *gin.Context, statusCode int, msg string, obj any, err error) {
	m := entity.Msg{
		Obj: obj,
	}
	if err == nil {
		m.Success = true
		m.Msg = msg
	} else {
		m.Success = false
		if msg != "" {
			m.Msg = msg + ": " + err.Error()
		} else {
			m.Msg = err.Error()
		}
		logger.Warning(msg+" failed: ", err)
	}
	c.JSON(statusCode, m)
}

// pureJsonMsg sends a bare JSON message with a custom status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}

// redirectFlash is the browser-mode counterpart of a JSON response:
// queue a flash message and redirect.
func redirectFlash(c *gin.Context, location, category, msg string) {
	session.AddFlash(c, category, msg)
	c.Redirect(http.StatusSeeOther, location)
}
