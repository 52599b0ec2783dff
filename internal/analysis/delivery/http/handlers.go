package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gdd-roadmap/pkg/response"
)

// CreateSession godoc
// @Summary     Create a session
// @Description Opens a session that holds one current analysis and its task progress.
// @Tags        Sessions
// @Produce     json
// @Success     201 {object} sessionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.uc.CreateSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newSessionResp(sc))
}

// Analyze godoc
// @Summary     Analyze a design document
// @Description Uploads a game design document (.txt, .md, .docx), asks the language model for a
// @Description roadmap and makes it the session's current analysis. Task progress is reset.
// @Tags        Analysis
// @Accept      multipart/form-data
// @Produce     json
// @Param       session_id path     string true "Session ID"
// @Param       file       formData file   true "Design document"
// @Success     200 {object} analysisResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     413 {object} response.Resp "File too large"
// @Failure     415 {object} response.Resp "Unsupported file type"
// @Failure     422 {object} response.Resp "Unreadable model answer, retry"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     502 {object} response.Resp "Language model unavailable"
// @Router      /api/v1/sessions/{session_id}/analysis [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer req.Content.Close()

	output, err := h.uc.Analyze(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalysisResp(output))
}

// Current godoc
// @Summary     Get the current analysis
// @Description Returns the saved analysis with its timeline and task board.
// @Tags        Analysis
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} analysisResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{session_id}/analysis [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Current(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Current: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalysisResp(output))
}

// Reset godoc
// @Summary     Reset the session
// @Description Deletes the current analysis and its task progress.
// @Tags        Analysis
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{session_id}/analysis [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Reset(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Timeline godoc
// @Summary     Get the timeline
// @Description Returns the quarter grid and one bar per category.
// @Tags        Analysis
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} timeline.Timeline
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{session_id}/timeline [GET]
func (h *handler) Timeline(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Timeline(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Timeline: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, output)
}

// Board godoc
// @Summary     Get the task board
// @Description Returns the tasks per category with completion progress.
// @Tags        Tasks
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} boardResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{session_id}/board [GET]
func (h *handler) Board(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Board(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Board: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBoardResp(output))
}

// SetTask godoc
// @Summary     Mark a task done or open
// @Description Tasks are addressed by category key and position inside the category.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       session_id path string     true "Session ID"
// @Param       category   path string     true "Category key"
// @Param       index      path int        true "Task position"
// @Param       body       body setTaskReq true "Completion flag"
// @Success     200 {object} boardResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{session_id}/tasks/{category}/{index} [PUT]
func (h *handler) SetTask(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processSetTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SetTaskCompletion(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetTaskCompletion: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBoardResp(output))
}

// Export godoc
// @Summary     Download the roadmap
// @Description Returns project, roadmap and tasks as a JSON or YAML attachment.
// @Tags        Analysis
// @Produce     json
// @Produce     application/yaml
// @Param       session_id path  string true  "Session ID"
// @Param       format     query string false "json (default) or yaml"
// @Success     200 {file} file
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{session_id}/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Export(ctx, sc, req.toFormat())
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	c.Data(http.StatusOK, output.ContentType, output.Data)
}

// SyncCalendar godoc
// @Summary     Publish the timeline to Google Calendar
// @Description Creates one all-day event per category bar, quarter q spanning months 3(q-1) to 3q
// @Description after start_date (default today).
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       session_id path string      true  "Session ID"
// @Param       body       body calendarReq false "Start date and calendar"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/sessions/{session_id}/calendar [POST]
func (h *handler) SyncCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	req, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SyncCalendar(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncCalendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCalendarResp(output))
}
