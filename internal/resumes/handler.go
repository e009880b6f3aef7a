package resumes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/extract"
	"resume-insight/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the resumes service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/history", h.history)
}

type analyzeRequest struct {
	ResumeText string `json:"resumeText"`
	FileName   string `json:"fileName"`
}

func (h *Handler) analyze(c *gin.Context) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		h.analyzeUpload(c)
		return
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid request body.")
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No valid text provided for analysis.")
		return
	}
	if strings.TrimSpace(req.FileName) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "File name is missing or invalid.")
		return
	}

	result, err := h.Svc.Analyze(c.Request.Context(), req.ResumeText, req.FileName)
	if err != nil {
		h.writeAnalyzeError(c, err)
		return
	}

	c.Set("analysisId", result.ID)
	respond.OK(c, result)
}

func (h *Handler) analyzeUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file")
		return
	}
	defer file.Close()

	result, err := h.Svc.AnalyzeDocument(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		h.writeAnalyzeError(c, err)
		return
	}

	c.Set("analysisId", result.ID)
	respond.OK(c, result)
}

func (h *Handler) writeAnalyzeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "No valid text provided for analysis.")
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "unsupported_type", "Unsupported document type. Upload a PDF, DOCX, or plain-text file.")
	case errors.Is(err, ErrExtractionFailed):
		respond.Error(c, http.StatusBadRequest, "extraction_failed", "Could not extract text from the document.")
	case errors.Is(err, ErrNotJSON), errors.Is(err, ErrSchemaMismatch):
		respond.Error(c, http.StatusInternalServerError, "llm_schema_mismatch", "LLM response is not valid JSON from the model.")
	case errors.Is(err, ErrModelFailure):
		respond.Error(c, http.StatusInternalServerError, "llm_failure", "Resume analysis failed. Please try again.")
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "An internal server error occurred.")
	}
}

func (h *Handler) history(c *gin.Context) {
	results, err := h.Svc.History(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "Failed to fetch historical data.")
		return
	}
	respond.OK(c, results)
}
