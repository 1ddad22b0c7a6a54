package controller

import (
	"errors"
	"net/http"

	"github.com/Goutham7675/eyecare-ai/logger"
	"github.com/Goutham7675/eyecare-ai/web/service"
	"github.com/Goutham7675/eyecare-ai/web/session"

	"github.com/gin-gonic/gin"
)

// FeedbackForm is the dual-mode feedback request.
type FeedbackForm struct {
	Message string `json:"message" form:"message"`
}

// FeedbackController accepts feedback from logged-in users.
type FeedbackController struct {
	BaseController

	feedbackService service.FeedbackService
}

// NewFeedbackController creates the controller and registers its routes.
func NewFeedbackController(g *gin.RouterGroup) *FeedbackController {
	a := &FeedbackController{}
	a.initRouter(g)
	return a
}

func (a *FeedbackController) initRouter(g *gin.RouterGroup) {
	g.POST("/feedback", a.checkLogin, a.feedback)
}

func (a *FeedbackController) feedback(c *gin.Context) {
	var form FeedbackForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "/", "Invalid form data")
		return
	}

	user := session.GetLoginUser(c)
	if _, err := a.feedbackService.Add(user.Username, form.Message); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			respondError(c, http.StatusBadRequest, "/", "Please provide feedback")
		} else {
			logger.Error("error saving feedback:", err)
			respondError(c, http.StatusInternalServerError, "/", "Error saving feedback. Please try again.")
		}
		return
	}

	if wantsJSON(c) {
		jsonMsg(c, "Thank you for your feedback!", nil)
		return
	}
	redirectFlash(c, "/", "success", "Thank you for your feedback!")
}
