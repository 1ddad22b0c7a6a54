package controller

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"path/filepath"

	"github.com/Goutham7675/eyecare-ai/condition"
	"github.com/Goutham7675/eyecare-ai/logger"
	"github.com/Goutham7675/eyecare-ai/web/service"
	"github.com/Goutham7675/eyecare-ai/web/session"

	"github.com/gin-gonic/gin"
)

// ScanController handles image upload and classification.
type ScanController struct {
	BaseController

	scanService *service.ScanService
}

// NewScanController creates the controller and registers its routes.
func NewScanController(g *gin.RouterGroup, scanService *service.ScanService) *ScanController {
	a := &ScanController{scanService: scanService}
	a.initRouter(g)
	return a
}

func (a *ScanController) initRouter(g *gin.RouterGroup) {
	g.POST("/upload", a.checkLogin, a.upload)
}

func (a *ScanController) upload(c *gin.Context) {
	user := session.GetLoginUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "/", "No file part")
		return
	}

	result, prediction, err := a.scanService.Process(fileHeader, user.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedMedia):
			respondError(c, http.StatusBadRequest, "/", "File type not allowed. Please upload JPG, JPEG or PNG files.")
		case errors.Is(err, service.ErrImageProcessing):
			logger.Error("error processing upload:", err)
			respondError(c, http.StatusInternalServerError, "/", "Error processing the image")
		default:
			logger.Error("error storing detection result:", err)
			respondError(c, http.StatusInternalServerError, "/", "Error saving the result. Please try again.")
		}
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"result_id":   result.Id,
			"image_url":   uploadURL(result.ImagePath),
			"prediction":  result.Prediction,
			"accuracy":    round2(prediction.DisplayAccuracy),
			"description": condition.Summary(result.Prediction),
		})
		return
	}

	// Browser mode: the canonical result page is the shared-result view.
	redirectFlash(c, fmt.Sprintf("/shared-result/%d", result.Id), "success", "Image analyzed successfully")
}

// uploadURL maps a stored image path to its public URL.
func uploadURL(imagePath string) string {
	return "/static/uploads/" + filepath.Base(imagePath)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
