package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Goutham7675/eyecare-ai/condition"
	"github.com/Goutham7675/eyecare-ai/database/model"
	"github.com/Goutham7675/eyecare-ai/logger"
	"github.com/Goutham7675/eyecare-ai/web/service"
	"github.com/Goutham7675/eyecare-ai/web/session"

	"github.com/gin-gonic/gin"
)

// HistoryController serves detection history and shared results.
type HistoryController struct {
	BaseController

	detectionService service.DetectionService
}

// NewHistoryController creates the controller and registers its routes.
func NewHistoryController(g *gin.RouterGroup) *HistoryController {
	a := &HistoryController{}
	a.initRouter(g)
	return a
}

func (a *HistoryController) initRouter(g *gin.RouterGroup) {
	g.GET("/detection_history", a.checkLogin, a.detectionHistory)
	g.GET("/results-history", a.checkLogin, a.resultsHistory)

	// Public by id: holding a result id grants read access to that one
	// record (shared results).
	g.GET("/shared-result/:id", a.sharedResult)
}

type historyEntry struct {
	Id         int     `json:"id"`
	ImagePath  string  `json:"image_path"`
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
	DateGroup  string  `json:"date_group,omitempty"`
}

func (a *HistoryController) detectionHistory(c *gin.Context) {
	user := session.GetLoginUser(c)

	results, err := a.detectionService.History(user.Username)
	if err != nil {
		logger.Error("error fetching detection history:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "Failed to fetch detection history")
		return
	}

	entries := make([]historyEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, toEntry(r, ""))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": entries,
	})
}

// resultsHistory returns the same records annotated with their display
// date bucket, newest first.
func (a *HistoryController) resultsHistory(c *gin.Context) {
	user := session.GetLoginUser(c)

	results, err := a.detectionService.History(user.Username)
	if err != nil {
		logger.Error("error retrieving results history:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "An error occurred while retrieving your results history")
		return
	}

	now := time.Now()
	entries := make([]historyEntry, 0, len(results))
	for _, r := range results {
		entries = append(entries, toEntry(r, service.DateGroup(r.Timestamp, now)))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": entries,
	})
}

func (a *HistoryController) sharedResult(c *gin.Context) {
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
			logger.Error("error displaying shared result:", err)
			pureJsonMsg(c, http.StatusInternalServerError, false, "Error displaying the shared result")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"result":         toEntry(*result, ""),
		"condition_info": condition.Get(result.Prediction),
	})
}

func toEntry(r model.DetectionResult, dateGroup string) historyEntry {
	return historyEntry{
		Id:         r.Id,
		ImagePath:  uploadURL(r.ImagePath),
		Prediction: r.Prediction,
		Confidence: r.Confidence,
		Timestamp:  r.Timestamp.Format(time.RFC3339),
		DateGroup:  dateGroup,
	}
}
