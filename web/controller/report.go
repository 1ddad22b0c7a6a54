package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Goutham7675/eyecare-ai/condition"
	"github.com/Goutham7675/eyecare-ai/logger"
	"github.com/Goutham7675/eyecare-ai/report"
	"github.com/Goutham7675/eyecare-ai/web/service"

	"github.com/gin-gonic/gin"
)

// ReportController serves PDF report downloads. Like shared results,
// reports are public by result id.
type ReportController struct {
	BaseController

	detectionService service.DetectionService
}

// NewReportController creates the controller and registers its routes.
func NewReportController(g *gin.RouterGroup) *ReportController {
	a := &ReportController{}
	a.initRouter(g)
	return a
}

func (a *ReportController) initRouter(g *gin.RouterGroup) {
	g.GET("/download-report/:id", a.downloadReport)
}

func (a *ReportController) downloadReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusNotFound, false, "Result not found")
		return
	}

	result, err := a.detectionService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrResultNotFound) {
			pureJsonMsg(c, http.StatusNotFound, false, "Result not found")
		} else {
			logger.Error("error loading result for report:", err)
			pureJsonMsg(c, http.StatusInternalServerError, false, "Error generating PDF report")
		}
		return
	}

	buf, err := report.Render(result, condition.Get(result.Prediction), time.Now())
	if err != nil {
		logger.Error("error generating PDF report:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "Error generating PDF report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=eyecare_report_%d.pdf", result.Id))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
