package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sqlgen/ai"
	"sqlgen/config"
	"sqlgen/models"
	"sqlgen/validation"

	"go.uber.org/zap"
)

// Generator turns a prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Kind selects the prompt template and output path of a batch.
type Kind int

const (
	KindSQL Kind = iota
	KindTest
)

func (k Kind) String() string {
	if k == KindTest {
		return "test"
	}
	return "sql"
}

// FileError reports which upload stopped a fail_fast batch.
type FileError struct {
	Index int
	File  string
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %d (%s): %v", e.Index, e.File, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

type BatchProcessor struct {
	generator Generator
	writer    *OutputWriter
	logger    *zap.Logger
}

func NewBatchProcessor(generator Generator, writer *OutputWriter, logger *zap.Logger) *BatchProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchProcessor{
		generator: generator,
		writer:    writer,
		logger:    logger,
	}
}

// Run processes files in order. Under PolicyFailFast the first failure ends
// the batch with a *FileError and no results; files written for earlier
// entries stay on disk. Under PolicyCollectAll every file is attempted and
// failures are reported on their entries.
func (p *BatchProcessor) Run(ctx context.Context, kind Kind, files []models.UploadedFile, policy config.BatchPolicy) ([]models.FileResult, error) {
	results := make([]models.FileResult, 0, len(files))

	for i, file := range files {
		path, err := p.processOne(ctx, kind, file)
		if err != nil {
			p.logger.Warn("batch entry failed",
				zap.String("kind", kind.String()),
				zap.Int("index", i),
				zap.String("file", file.Name),
				zap.Error(err),
			)
			if policy != config.PolicyCollectAll {
				return nil, &FileError{Index: i, File: file.Name, Err: err}
			}
			results = append(results, models.FileResult{
				File:   file.Name,
				Error:  err.Error(),
				Status: StatusForError(err),
			})
			continue
		}

		result := models.FileResult{File: file.Name}
		if kind == KindTest {
			result.TestFile = path
		} else {
			result.SQLFile = path
		}
		results = append(results, result)
	}

	return results, nil
}

func (p *BatchProcessor) processOne(ctx context.Context, kind Kind, file models.UploadedFile) (string, error) {
	start := time.Now()

	content, err := validation.DecodeText(file.Name, file.Content)
	if err != nil {
		return "", err
	}
	base := validation.BaseName(file.Name)

	var prompt string
	if kind == KindTest {
		prompt = ai.BuildTestPrompt(content)
	} else {
		prompt = ai.BuildConversionPrompt(content)
	}

	text, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	var path string
	if kind == KindTest {
		path, err = p.writer.WriteTest(base, text)
	} else {
		path, err = p.writer.WriteSQL(base, text)
	}
	if err != nil {
		return "", err
	}

	p.logger.Info("generation call finished",
		zap.String("kind", kind.String()),
		zap.String("file", file.Name),
		zap.String("output", path),
		zap.Duration("elapsed", time.Since(start)),
	)
	return path, nil
}

// StatusForError maps a processing error onto the HTTP status reported for
// it: the remote's own status, 504 on timeout, 502 when the remote could not
// be reached, 500 otherwise.
func StatusForError(err error) int {
	var remoteErr *ai.RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.StatusCode
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	var transportErr *ai.TransportError
	if errors.As(err, &transportErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
