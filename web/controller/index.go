package controller

import (
	"errors"
	"net/http"

	"github.com/Goutham7675/eyecare-ai/logger"
	"github.com/Goutham7675/eyecare-ai/web/service"
	"github.com/Goutham7675/eyecare-ai/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm is the dual-mode login request. The JSON API sends the
// identifier in the email field; browser forms post it as username.
// Either is accepted and may hold a username or an email address.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterForm is the dual-mode registration request.
type RegisterForm struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// IndexController handles authentication and session introspection.
type IndexController struct {
	BaseController

	userService service.UserService
}

// NewIndexController creates the controller and registers its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.index)
	g.GET("/register", a.index)
	g.POST("/login", a.login)
	g.POST("/register", a.register)
	g.GET("/logout", a.logout)
	g.GET("/check_auth", a.checkAuth)
}

// index reports the session state and drains any queued flash
// messages from the previous redirect.
func (a *IndexController) index(c *gin.Context) {
	obj := gin.H{"authenticated": false}
	if user := session.GetLoginUser(c); user != nil {
		obj["authenticated"] = true
		obj["username"] = user.Username
	}
	if flashes := session.TakeFlashes(c); len(flashes) > 0 {
		obj["messages"] = flashes
	}
	c.JSON(http.StatusOK, obj)
}

func (a *IndexController) login(c *gin.Context) {
	if session.IsLogin(c) {
		if wantsJSON(c) {
			jsonObj(c, gin.H{"username": session.GetLoginUser(c).Username}, nil)
		} else {
			c.Redirect(http.StatusSeeOther, "/")
		}
		return
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "/login", "Invalid form data")
		return
	}

	identifier := form.Email
	if identifier == "" {
		identifier = form.Username
	}
	if identifier == "" || form.Password == "" {
		respondError(c, http.StatusBadRequest, "/login", "Please enter username/email and password")
		return
	}

	user := a.userService.CheckUser(identifier, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q from %s", identifier, getRemoteIp(c))
		respondError(c, http.StatusUnauthorized, "/login", "Invalid username or password")
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
		respondError(c, http.StatusInternalServerError, "/login", "An error occurred during login. Please try again.")
		return
	}

	logger.Infof("%s logged in successfully from %s", user.Username, getRemoteIp(c))
	if wantsJSON(c) {
		jsonMsgObj(c, http.StatusOK, "Login successful", gin.H{
			"username": user.Username,
			"email":    user.Email,
		}, nil)
		return
	}
	redirectFlash(c, "/", "success", "Login successful!")
}

func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "/register", "Invalid form data")
		return
	}

	user, err := a.userService.Register(form.Username, form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			respondError(c, http.StatusBadRequest, "/register", "All fields are required")
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, http.StatusBadRequest, "/register", "Email already registered")
		default:
			logger.Error("registration error:", err)
			respondError(c, http.StatusInternalServerError, "/register", "Registration failed. Please try again.")
		}
		return
	}

	// Registration doubles as first login.
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session after registration:", err)
	}

	if wantsJSON(c) {
		jsonMsgObj(c, http.StatusOK, "Registration successful", gin.H{
			"username": user.Username,
			"email":    user.Email,
			"redirect": "/",
		}, nil)
		return
	}
	redirectFlash(c, "/", "success", "Registration successful!")
}

func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}

	if wantsJSON(c) {
		jsonMsg(c, "Logged out successfully", nil)
		return
	}
	redirectFlash(c, "/", "success", "You have been logged out successfully")
}

func (a *IndexController) checkAuth(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	// The cookie can outlive the account after a database reset.
	if _, err := a.userService.GetUser(user.Id); err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"username":      user.Username,
		"email":         user.Email,
	})
}

// respondError branches one error outcome between the two response
// modes with identical semantics.
func respondError(c *gin.Context, statusCode int, backTo, msg string) {
	if wantsJSON(c) {
		pureJsonMsg(c, statusCode, false, msg)
		return
	}
	redirectFlash(c, backTo, "error", msg)
}
