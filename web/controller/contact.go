package controller

import (
	"errors"
	"net/http"

	"github.com/Goutham7675/eyecare-ai/logger"
	"github.com/Goutham7675/eyecare-ai/web/service"

	"github.com/gin-gonic/gin"
)

// ContactForm is the dual-mode contact request.
type ContactForm struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// ContactController accepts messages from the public contact form.
type ContactController struct {
	BaseController

	contactService service.ContactService
}

// NewContactController creates the controller and registers its routes.
func NewContactController(g *gin.RouterGroup) *ContactController {
	a := &ContactController{}
	a.initRouter(g)
	return a
}

func (a *ContactController) initRouter(g *gin.RouterGroup) {
	g.POST("/contact", a.contact)
}

func (a *ContactController) contact(c *gin.Context) {
	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, http.StatusBadRequest, "/", "Invalid form data")
		return
	}

	if _, err := a.contactService.Add(form.Name, form.Email, form.Subject, form.Message); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			respondError(c, http.StatusBadRequest, "/", "Please fill in all required fields")
		} else {
			logger.Error("error saving contact form:", err)
			respondError(c, http.StatusInternalServerError, "/", "There was an error submitting your message. Please try again.")
		}
		return
	}

	if wantsJSON(c) {
		jsonMsg(c, "Thank you for contacting us! We will get back to you soon.", nil)
		return
	}
	redirectFlash(c, "/", "success", "Thank you for contacting us! We will get back to you soon.")
}
