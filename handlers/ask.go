package handlers

import (
	"net/http"
	"time"

	"sqlgen/ai"
	"sqlgen/models"
	"sqlgen/service"
	"sqlgen/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AskHandler relays a bare prompt to the generation service
// @Summary      Ask the model
// @Description  Sends the prompt to the remote generation service and returns its raw JSON reply with the same status code
// @Tags         Ask
// @Produce      json
// @Param        prompt  query     string  true  "Prompt text"
// @Success      200     {object}  map[string]interface{}  "Raw generation service reply"
// @Failure      400     {object}  map[string]string       "Missing prompt"
// @Failure      502     {object}  map[string]string       "Generation service unreachable"
// @Failure      504     {object}  map[string]string       "Generation service timed out"
// @Router       /ask [get]
func (h *Handlers) AskHandler(c *gin.Context) {
	prompt, ok := c.GetQuery("prompt")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	status, body, err := h.aiService.Relay(c.Request.Context(), prompt)
	if err != nil {
		h.respondGenerationError(c, err)
		return
	}

	c.Data(status, "application/json", body)
}

// generateFromUpload reads the prompt field and the single "file" upload and
// returns the upload, its base name and the generated text. On failure the
// response has already been written.
func (h *Handlers) generateFromUpload(c *gin.Context) (models.UploadedFile, string, string, bool) {
	files, err := h.readUploads(c, "file")
	if err != nil {
		respondUploadError(c, err)
		return models.UploadedFile{}, "", "", false
	}

	var req models.AskRequest
	if err := c.ShouldBind(&req); err != nil || !validation.IsValidPrompt(req.Prompt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return models.UploadedFile{}, "", "", false
	}

	file := files[0]
	content, err := validation.DecodeText(file.Name, file.Content)
	if err != nil {
		h.respondGenerationError(c, err)
		return models.UploadedFile{}, "", "", false
	}

	start := time.Now()
	text, err := h.aiService.Generate(c.Request.Context(), ai.BuildPrompt(req.Prompt, content))
	if err != nil {
		h.respondGenerationError(c, err)
		return models.UploadedFile{}, "", "", false
	}
	h.logger.Info("generation call finished",
		zap.String("file", file.Name),
		zap.Duration("elapsed", time.Since(start)),
	)

	return file, validation.BaseName(file.Name), text, true
}

// AskUploadHandler generates from a prompt plus one file and returns the text as a download
// @Summary      Ask with a file (download)
// @Description  Prefixes the file content with the prompt, sends it to the model and returns the generated text as output_result.txt
// @Tags         Ask
// @Accept       multipart/form-data
// @Produce      plain
// @Param        prompt  formData  string  true  "Instruction"
// @Param        file    formData  file    true  "Input file"
// @Success      200     {string}  string             "Generated text"
// @Failure      400     {object}  map[string]string  "Missing prompt or file"
// @Failure      500     {object}  map[string]string  "Decode or write failure"
// @Router       /ask [post]
func (h *Handlers) AskUploadHandler(c *gin.Context) {
	_, _, text, ok := h.generateFromUpload(c)
	if !ok {
		return
	}

	if _, err := h.writer.WriteDownload(text); err != nil {
		h.respondGenerationError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+service.DownloadFilename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// AskFilesHandler generates SQL from a prompt plus one file and writes it with a synthesized test file
// @Summary      Ask with a file (files on disk)
// @Description  Writes the generated text to <base>.sql and a locally built <base>_test.sql holding an information_schema check and an EXPLAIN of the generated query
// @Tags         Ask
// @Accept       multipart/form-data
// @Produce      json
// @Param        prompt  formData  string  true  "Instruction"
// @Param        file    formData  file    true  "Input file"
// @Success      200     {object}  models.AskFilesResponse
// @Failure      400     {object}  map[string]string  "Missing prompt or file"
// @Failure      500     {object}  map[string]string  "Decode or write failure"
// @Router       /ask/files [post]
func (h *Handlers) AskFilesHandler(c *gin.Context) {
	_, base, text, ok := h.generateFromUpload(c)
	if !ok {
		return
	}

	sqlPath, err := h.writer.WriteSQL(base, text)
	if err != nil {
		h.respondGenerationError(c, err)
		return
	}
	testPath, err := h.writer.WriteSynthesizedTest(base, text)
	if err != nil {
		h.respondGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AskFilesResponse{
		Message:  "Files created successfully",
		SQLFile:  sqlPath,
		TestFile: testPath,
	})
}
