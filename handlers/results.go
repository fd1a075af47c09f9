package handlers

import (
	"fmt"
	"net/http"

	"sqlgen/models"

	"github.com/gin-gonic/gin"
)

// ListResultsHandler lists generated files
// @Summary      List generated files
// @Description  Lists the .sql and .txt files in the output directory, newest first
// @Tags         Results
// @Produce      json
// @Success      200  {object}  map[string][]models.OutputFileInfo
// @Failure      500  {object}  map[string]string  "Failed to list files"
// @Router       /results [get]
func (h *Handlers) ListResultsHandler(c *gin.Context) {
	files, err := h.writer.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to list files: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

// CheckSQLHandler asks PostgreSQL to plan uploaded SQL files
// @Summary      EXPLAIN uploaded SQL
// @Description  Runs EXPLAIN for each uploaded file against the configured PostgreSQL server inside a rolled back transaction
// @Tags         Results
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "SQL files to check"
// @Success      200    {object}  map[string][]models.CheckResult
// @Failure      400    {object}  map[string]string  "No files provided"
// @Failure      503    {object}  map[string]string  "PostgreSQL not configured"
// @Router       /check_sql [post]
func (h *Handlers) CheckSQLHandler(c *gin.Context) {
	if h.checker == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "PostgreSQL target is not configured"})
		return
	}

	files, err := h.readUploads(c, "files", "file")
	if err != nil {
		respondUploadError(c, err)
		return
	}

	results := make([]models.CheckResult, 0, len(files))
	for _, file := range files {
		results = append(results, h.checker.Check(c.Request.Context(), file))
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
