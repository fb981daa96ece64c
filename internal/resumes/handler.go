package resumes

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/catalog"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

const (
	defaultMaxUploadBytes = 10 << 20
	formField             = "resume"
	timestampLayout       = "2006-01-02T15:04:05.000000Z07:00"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
	Now            func() time.Time
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes, Now: time.Now}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse", h.parse)
	rg.GET("/skills", h.vocabulary)
}

type parseResponse struct {
	Success   bool     `json:"success"`
	Skills    []string `json:"skills"`
	Timestamp string   `json:"timestamp"`
}

type vocabularyResponse struct {
	Success bool            `json:"success"`
	Mode    string          `json:"mode"`
	Skills  []catalog.Skill `json:"skills"`
}

func (h *Handler) parse(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	data, err := h.readUpload(c)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFile), errors.Is(err, ErrEmptyFilename):
			respond.Error(c, http.StatusBadRequest, err.Error())
		default:
			respond.Failure(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	found, err := h.Svc.Parse(c.Request.Context(), data)
	if err != nil {
		respond.Failure(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Set(middleware.SkillsFoundKey, len(found))
	respond.OK(c, parseResponse{
		Success:   true,
		Skills:    found,
		Timestamp: h.Now().Format(timestampLayout),
	})
}

// readUpload buffers the resume part in memory.
func (h *Handler) readUpload(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile(formField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return nil, errors.New("uploaded file exceeds the size limit")
		case errors.Is(err, http.ErrMissingFile):
			// Browsers send a part with filename="" when nothing was picked;
			// multipart parsing files that under Value, not File.
			if form := c.Request.MultipartForm; form != nil {
				if _, ok := form.Value[formField]; ok {
					return nil, ErrEmptyFilename
				}
			}
			return nil, ErrNoFile
		case errors.Is(err, http.ErrNotMultipart):
			return nil, ErrNoFile
		default:
			return nil, err
		}
	}
	if strings.TrimSpace(fileHeader.Filename) == "" {
		return nil, ErrEmptyFilename
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func (h *Handler) vocabulary(c *gin.Context) {
	m := h.Svc.Matcher()
	respond.OK(c, vocabularyResponse{
		Success: true,
		Mode:    string(m.Mode()),
		Skills:  m.Vocabulary(),
	})
}
