package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine builds a minimal engine with the session middleware and
// the controllers whose validation paths run without the database.
func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(sessions.Sessions("eyecare", cookie.NewStore([]byte("test-secret"))))

	g := engine.Group("/")
	NewIndexController(g)
	NewContactController(g)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})
	return engine
}

// A browser-form validation failure must redirect to a page the server
// actually serves, and that page must drain the queued flash message.
func TestBrowserErrorRedirectsResolve(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name    string
		path    string
		form    string
		wantLoc string
		flash   string
	}{
		{"register missing fields", "/register", "username=alice", "/register", "All fields are required"},
		{"contact missing fields", "/contact", "name=Carol", "/", "Please fill in all required fields"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", tc.path, strings.NewReader(tc.form))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			engine.ServeHTTP(w, req)

			require.Equal(t, http.StatusSeeOther, w.Code)
			loc := w.Header().Get("Location")
			assert.Equal(t, tc.wantLoc, loc)

			followup := httptest.NewRequest("GET", loc, nil)
			for _, ck := range w.Result().Cookies() {
				followup.AddCookie(ck)
			}
			next := httptest.NewRecorder()
			engine.ServeHTTP(next, followup)

			assert.Equal(t, http.StatusOK, next.Code)
			assert.Contains(t, next.Body.String(), tc.flash)
		})
	}
}
