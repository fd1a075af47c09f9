package handlers

import (
	"fmt"
	"net/http"

	"sqlgen/config"
	"sqlgen/models"
	"sqlgen/service"

	"github.com/gin-gonic/gin"
)

// GenerateSQLHandler converts uploaded Firebird SQL files to PostgreSQL
// @Summary      Convert Firebird SQL to PostgreSQL
// @Description  For each uploaded file, asks the model for a PostgreSQL translation and writes it to <base>.sql in the output directory
// @Tags         Generate
// @Accept       multipart/form-data
// @Produce      json
// @Param        files   formData  file    true   "One or more Firebird SQL files"
// @Param        policy  query     string  false  "fail_fast or collect_all"
// @Success      200     {object}  models.BatchResponse
// @Failure      400     {object}  map[string]string  "No files or unknown policy"
// @Failure      500     {object}  map[string]string  "Decode or write failure"
// @Router       /generate_sql [post]
func (h *Handlers) GenerateSQLHandler(c *gin.Context) {
	h.runBatch(c, service.KindSQL, "SQL files created successfully")
}

// GenerateTestsHandler generates SQL test files for uploaded PostgreSQL queries
// @Summary      Generate PostgreSQL test files
// @Description  For each uploaded file, asks the model for test cases and writes them to <base>_test.sql in the output directory
// @Tags         Generate
// @Accept       multipart/form-data
// @Produce      json
// @Param        files   formData  file    true   "One or more PostgreSQL files"
// @Param        policy  query     string  false  "fail_fast or collect_all"
// @Success      200     {object}  models.BatchResponse
// @Failure      400     {object}  map[string]string  "No files or unknown policy"
// @Failure      500     {object}  map[string]string  "Decode or write failure"
// @Router       /generate_tests [post]
func (h *Handlers) GenerateTestsHandler(c *gin.Context) {
	h.runBatch(c, service.KindTest, "Test files created successfully")
}

func (h *Handlers) runBatch(c *gin.Context, kind service.Kind, message string) {
	policy := h.batchPolicy
	if raw, ok := c.GetQuery("policy"); ok {
		parsed, valid := config.ParseBatchPolicy(raw)
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown policy %q", raw)})
			return
		}
		policy = parsed
	}

	files, err := h.readUploads(c, "files", "file")
	if err != nil {
		respondUploadError(c, err)
		return
	}

	results, err := h.batch.Run(c.Request.Context(), kind, files, policy)
	if err != nil {
		h.respondGenerationError(c, err)
		return
	}

	resp := models.BatchResponse{Message: message, Results: results}
	for _, r := range results {
		if r.Error != "" {
			resp.Failed++
		}
	}
	c.JSON(http.StatusOK, resp)
}
