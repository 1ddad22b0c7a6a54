package session

import (
	"encoding/gob"

	"github.com/Goutham7675/eyecare-ai/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	loginUser = "LOGIN_USER"
	flashKey  = "FLASH"
)

// SessionMaxAge is the login lifetime. Extended on explicit re-login only.
const SessionMaxAge = 7 * 24 * 60 * 60 // seconds

func init() {
	gob.Register(model.User{})
	gob.Register(Flash{})
}

// Flash is a one-shot message carried across a redirect.
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"` // "success" | "error"
}

func SetLoginUser(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(loginUser, *user)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   SessionMaxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *model.User {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(model.User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

// AddFlash queues a message for the next request in this session.
func AddFlash(c *gin.Context, category, message string) {
	s := sessions.Default(c)
	s.AddFlash(Flash{Message: message, Category: category}, flashKey)
	_ = s.Save()
}

// TakeFlashes returns and clears the queued messages.
func TakeFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes(flashKey)
	if len(raw) > 0 {
		_ = s.Save()
	}
	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
