package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"groceryhub/internal/dto"
	"groceryhub/internal/middleware"
	"groceryhub/internal/service"

	"github.com/gin-gonic/gin"
)

type IncomeHandler struct {
	svc service.IncomeService
	now service.Clock
}

func NewIncomeHandler(svc service.IncomeService, now service.Clock) *IncomeHandler {
	if now == nil {
		now = time.Now
	}
	return &IncomeHandler{svc: svc, now: now}
}

func (h *IncomeHandler) Record(c *gin.Context) {
	var req dto.RecordIncomeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Record(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *IncomeHandler) List(c *gin.Context) {
	var filter dto.IncomeFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), middleware.GetActor(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *IncomeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), middleware.GetActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *IncomeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateIncomeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), middleware.GetActor(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *IncomeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *IncomeHandler) Analytics(c *gin.Context) {
	var filter dto.IncomeFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Aggregate(c.Request.Context(), middleware.GetActor(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// period reads year and month, defaulting each to the current one.
func (h *IncomeHandler) period(c *gin.Context) (int, int, bool) {
	var q dto.MonthlyReportQuery
	if !bindQuery(c, &q) {
		return 0, 0, false
	}
	now := h.now()
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	return q.Year, q.Month, true
}

func (h *IncomeHandler) MonthlyReport(c *gin.Context) {
	year, month, ok := h.period(c)
	if !ok {
		return
	}
	resp, err := h.svc.MonthlyReport(c.Request.Context(), middleware.GetActor(c), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MonthlyReportPDF renders into a buffer first so that a failure can still
// be answered with a JSON error.
func (h *IncomeHandler) MonthlyReportPDF(c *gin.Context) {
	year, month, ok := h.period(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.svc.MonthlyReportPDF(c.Request.Context(), middleware.GetActor(c), year, month, &buf); err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("income-%04d-%02d.pdf", year, month)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *IncomeHandler) WeeklyTrends(c *gin.Context) {
	var q dto.WeeklyTrendQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.WeeklyTrend(c.Request.Context(), middleware.GetActor(c), q.Span())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *IncomeHandler) MySummary(c *gin.Context) {
	resp, err := h.svc.MySummary(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
