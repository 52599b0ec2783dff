package http

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"gdd-roadmap/internal/model"
)

const formFileField = "file"

// processScope reads the session from the path.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	id := strings.TrimSpace(c.Param("session_id"))
	if id == "" {
		return model.Scope{}, errMissingSession
	}
	return model.Scope{SessionID: id}, nil
}

// processAnalyzeReq opens the uploaded document. The caller closes Content.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	fh, err := c.FormFile(formFileField)
	if err != nil {
		return analyzeReq{}, errMissingFile
	}
	f, err := fh.Open()
	if err != nil {
		return analyzeReq{}, err
	}
	return analyzeReq{
		FileName: fh.Filename,
		FileSize: fh.Size,
		Content:  f,
	}, nil
}

// processSetTaskReq binds the completion flag and the task address from the path.
func (h *handler) processSetTaskReq(c *gin.Context) (setTaskReq, error) {
	var req setTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return req, errInvalidIndex
	}
	req.Category = c.Param("category")
	req.Index = index
	return req, req.validate()
}

// processExportReq binds the export query.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Format = strings.ToLower(strings.TrimSpace(req.Format))
	return req, nil
}

// processCalendarReq binds the calendar body. An empty body means defaults.
func (h *handler) processCalendarReq(c *gin.Context) (calendarReq, error) {
	var req calendarReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
