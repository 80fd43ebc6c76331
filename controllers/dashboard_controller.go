package controllers

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Loanox/urunsatisportali-20241129067/notify"
	"github.com/Loanox/urunsatisportali-20241129067/service"
	"github.com/Loanox/urunsatisportali-20241129067/utils"
)

// DashboardHandler serves the admin dashboard: aggregate numbers,
// reports and the live sale feed.
type DashboardHandler struct {
	Reports service.ReportService
	Hub     *notify.Hub
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.Reports.DashboardSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load dashboard", "error": err.Error()})
		return
	}
	utils.Success(c, "Dashboard loaded", summary)
}

func (h *DashboardHandler) SalesByDay(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid from date, expected YYYY-MM-DD"})
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid to date, expected YYYY-MM-DD"})
			return
		}
		// Inclusive end date.
		to = t.AddDate(0, 0, 1)
	}

	rows, err := h.Reports.SalesByDay(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load report", "error": err.Error()})
		return
	}
	utils.Success(c, "Report loaded", rows)
}

func (h *DashboardHandler) TopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	rows, err := h.Reports.TopProducts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load report", "error": err.Error()})
		return
	}
	utils.Success(c, "Report loaded", rows)
}

func (h *DashboardHandler) LowStock(c *gin.Context) {
	threshold, _ := strconv.Atoi(c.DefaultQuery("threshold", "0"))
	rows, err := h.Reports.LowStock(c.Request.Context(), threshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load report", "error": err.Error()})
		return
	}
	utils.Success(c, "Report loaded", rows)
}

// Stream pushes live sale events to the dashboard over SSE. Clients
// only see sales committed while they are connected.
func (h *DashboardHandler) Stream(c *gin.Context) {
	ch, cancel := h.Hub.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("sale", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
