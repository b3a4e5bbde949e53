package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/braincast/quiz-service/internal/importer"
	"github.com/braincast/quiz-service/internal/models"
	"github.com/braincast/quiz-service/internal/services"
	"github.com/braincast/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ImportHandler struct {
	BaseHandler
	importService services.ImportService
}

func NewImportHandler(importService services.ImportService, logger utils.Logger) *ImportHandler {
	return &ImportHandler{
		BaseHandler:   NewBaseHandler(logger),
		importService: importService,
	}
}

// ImportQuizzes imports quizzes from an uploaded file or raw request body
// @Summary Import quizzes
// @Description Imports quizzes from a JSON, CSV or XLSX document. Accepts either a multipart "file" upload or a raw body with an explicit format query parameter.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Quiz document (.json, .csv, .xlsx)"
// @Param format query string false "Body format when no file is uploaded (json or csv)"
// @Success 200 {object} models.ImportSummary
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} models.ImportSummary
// @Failure 500 {object} ErrorResponse
// @Router /quizzes/import [post]
func (h *ImportHandler) ImportQuizzes(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")

	summary, err := h.runImport(c, userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Import finished",
		"job_id", summary.JobID,
		"status", summary.Status,
		"success_count", summary.SuccessCount,
		"error_count", summary.ErrorCount)

	if summary.Status == models.ImportValidationFailed {
		c.JSON(http.StatusUnprocessableEntity, summary)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ImportHandler) runImport(c *gin.Context, userID string) (*models.ImportSummary, error) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			return nil, fmt.Errorf("%w: cannot open uploaded file", services.ErrBadRequest)
		}
		defer file.Close()

		h.LogRequest(c, "Importing uploaded file", "filename", fileHeader.Filename)
		return h.importService.ImportFromFile(ctx, file, fileHeader.Filename, userID)
	}

	// No multipart file: the body itself is the document.
	body, readErr := io.ReadAll(c.Request.Body)
	if readErr != nil {
		return nil, fmt.Errorf("%w: cannot read request body", services.ErrBadRequest)
	}

	switch c.Query("format") {
	case "csv":
		return h.importService.ImportCSV(ctx, string(body), userID)
	case "json", "":
		return h.importService.ImportJSON(ctx, string(body), userID)
	default:
		return nil, fmt.Errorf("%w: %s", services.ErrUnsupportedFormat, c.Query("format"))
	}
}

// GetImportJob returns the tracked state of an import job
// @Summary Get import job
// @Description Retrieves the status and results of a previously started import job
// @Tags imports
// @Produce json
// @Param job_id path string true "Import job ID"
// @Success 200 {object} models.ImportJob
// @Failure 404 {object} ErrorResponse
// @Router /quizzes/import/{job_id} [get]
func (h *ImportHandler) GetImportJob(c *gin.Context) {
	jobID := c.Param("job_id")

	job, err := h.importService.GetImportJob(c.Request.Context(), jobID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// DownloadTemplate serves an example quiz document for a quiz type
// @Summary Download quiz template
// @Description Generates a well-formed example quiz for the given quiz type and serves it as a JSON file download. Unknown types fall back to the standard template.
// @Tags imports
// @Produce json
// @Param type path string true "Quiz type (standard, geography, image-based, timeline, categorization, word-logic)"
// @Success 200 {object} models.EnhancedQuiz
// @Failure 500 {object} ErrorResponse
// @Router /quizzes/template/{type} [get]
func (h *ImportHandler) DownloadTemplate(c *gin.Context) {
	quizType := models.QuizType(c.Param("type"))

	template := importer.GenerateTemplate(quizType)
	data, err := importer.TemplateJSON(template)
	if err != nil {
		h.LogError(c, err, "Failed to serialize template", "quiz_type", quizType)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to generate template"})
		return
	}

	filename := importer.TemplateFilename(quizType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", data)
}
