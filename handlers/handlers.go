package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"sqlgen/ai"
	"sqlgen/config"
	"sqlgen/models"
	"sqlgen/service"
	"sqlgen/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           SQL Generation Proxy API
// @version         1.0
// @description     Converts uploaded Firebird SQL to PostgreSQL and generates SQL test files through a remote text-generation model.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:9090
// @BasePath  /

// @schemes   http https

type Handlers struct {
	aiService      *ai.AIService
	batch          *service.BatchProcessor
	writer         *service.OutputWriter
	checker        *service.PostgresChecker
	batchPolicy    config.BatchPolicy
	maxUploadBytes int64
	logger         *zap.Logger
}

// New wires the handler layer. checker may be nil when no PostgreSQL target
// is configured.
func New(aiService *ai.AIService, writer *service.OutputWriter, checker *service.PostgresChecker, cfg config.Config, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		aiService:      aiService,
		batch:          service.NewBatchProcessor(aiService, writer, logger),
		writer:         writer,
		checker:        checker,
		batchPolicy:    cfg.BatchPolicy,
		maxUploadBytes: cfg.MaxUploadBytes,
		logger:         logger,
	}
}

// Register attaches every route to r.
func (h *Handlers) Register(r gin.IRoutes) {
	r.GET("/", h.HomeHandler)
	r.GET("/health", h.HealthHandler)
	r.GET("/ask", h.AskHandler)
	r.POST("/ask", h.AskUploadHandler)
	r.POST("/ask/files", h.AskFilesHandler)
	r.POST("/generate_sql", h.GenerateSQLHandler)
	r.POST("/generate_tests", h.GenerateTestsHandler)
	r.GET("/results", h.ListResultsHandler)
	r.POST("/check_sql", h.CheckSQLHandler)
}

var errNoFiles = errors.New("no files provided")

// uploadError carries the status a failed upload read should produce.
type uploadError struct {
	status int
	err    error
}

func (e *uploadError) Error() string { return e.err.Error() }
func (e *uploadError) Unwrap() error { return e.err }

// readUploads collects the files sent under the given multipart fields, in
// the order they appear.
func (h *Handlers) readUploads(c *gin.Context, fields ...string) ([]models.UploadedFile, error) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &uploadError{status: http.StatusRequestEntityTooLarge, err: fmt.Errorf("upload exceeds %d bytes", tooLarge.Limit)}
		}
		return nil, &uploadError{status: http.StatusBadRequest, err: fmt.Errorf("invalid multipart form: %w", err)}
	}

	var headers []*multipart.FileHeader
	for _, field := range fields {
		headers = append(headers, form.File[field]...)
	}
	if len(headers) == 0 {
		return nil, &uploadError{status: http.StatusBadRequest, err: errNoFiles}
	}

	files := make([]models.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		if validation.BaseName(fh.Filename) == "" {
			return nil, &uploadError{status: http.StatusBadRequest, err: fmt.Errorf("invalid file name %q", fh.Filename)}
		}
		content, err := readFileHeader(fh)
		if err != nil {
			return nil, &uploadError{status: http.StatusInternalServerError, err: err}
		}
		files = append(files, models.UploadedFile{Name: fh.Filename, Content: content})
	}
	return files, nil
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}
	return content, nil
}

func respondUploadError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	var ue *uploadError
	if errors.As(err, &ue) {
		status = ue.status
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondGenerationError relays a remote non-200 reply verbatim and maps every
// other failure to a JSON error body.
func (h *Handlers) respondGenerationError(c *gin.Context, err error) {
	_ = c.Error(err)

	var remoteErr *ai.RemoteError
	if errors.As(err, &remoteErr) {
		c.Data(remoteErr.StatusCode, "application/json", remoteErr.Body)
		return
	}

	c.JSON(service.StatusForError(err), gin.H{"error": err.Error()})
}
