package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sqlgen/cache"
	"sqlgen/metrics"
	"sqlgen/models"

	"go.uber.org/zap"
)

// RemoteError is a non-200 reply from the generation service. Body holds the
// raw reply so callers can relay it unchanged.
type RemoteError struct {
	StatusCode int
	Body       []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("generation service returned status %d: %s", e.StatusCode, strings.TrimSpace(string(e.Body)))
}

// TransportError means no usable reply arrived: the connection failed, the
// body could not be read, or the context ended first.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "generation service unreachable: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

type AIService struct {
	endpoint   string
	modelName  string
	timeout    time.Duration
	httpClient *http.Client
	cache      *cache.Cache
	logger     *zap.Logger
}

// New builds a client for the generation endpoint. timeout bounds every call;
// zero leaves calls bounded only by the caller's context. cache may be nil.
func New(endpoint string, modelName string, timeout time.Duration, cache *cache.Cache, logger *zap.Logger) (*AIService, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("generation endpoint is required")
	}
	modelName = strings.TrimSpace(modelName)
	if modelName == "" {
		return nil, fmt.Errorf("model name is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AIService{
		endpoint:   endpoint,
		modelName:  modelName,
		timeout:    timeout,
		httpClient: &http.Client{},
		cache:      cache,
		logger:     logger,
	}, nil
}

func (a *AIService) Endpoint() string  { return a.endpoint }
func (a *AIService) ModelName() string { return a.modelName }

func (a *AIService) Close() error {
	a.httpClient.CloseIdleConnections()
	return nil
}

// Generate sends prompt to the remote service and returns its "response"
// field. A missing or empty field yields "". Any status other than 200
// returns a *RemoteError.
func (a *AIService) Generate(ctx context.Context, prompt string) (string, error) {
	cacheKey := a.modelName + "\x00" + prompt
	if cached, found := a.cache.Get(cacheKey); found {
		metrics.ObserveGeneration(metrics.OutcomeCacheHit, 0)
		return cached, nil
	}

	status, body, err := a.call(ctx, prompt)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", &RemoteError{StatusCode: status, Body: body}
	}

	var result models.GenerationResult
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal generation response: %w", err)
	}

	a.cache.SetDefault(cacheKey, result.Response)
	return result.Response, nil
}

// Relay sends prompt and hands back the remote status and body untouched.
func (a *AIService) Relay(ctx context.Context, prompt string) (int, []byte, error) {
	return a.call(ctx, prompt)
}

func (a *AIService) call(ctx context.Context, prompt string) (int, []byte, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	reqBody := models.GenerationRequest{
		Prompt: prompt,
		Stream: false,
		Model:  a.modelName,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		elapsed := time.Since(start)
		if errors.Is(err, context.DeadlineExceeded) {
			metrics.ObserveGeneration(metrics.OutcomeTimeout, elapsed)
		} else {
			metrics.ObserveGeneration(metrics.OutcomeTransportError, elapsed)
		}
		a.logger.Warn("generation call failed",
			zap.String("endpoint", a.endpoint),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return 0, nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveGeneration(metrics.OutcomeTransportError, elapsed)
		return 0, nil, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	outcome := metrics.OutcomeSuccess
	if resp.StatusCode != http.StatusOK {
		outcome = metrics.OutcomeRemoteError
	}
	metrics.ObserveGeneration(outcome, elapsed)
	a.logger.Debug("generation call finished",
		zap.String("model", a.modelName),
		zap.Int("status", resp.StatusCode),
		zap.Int("prompt_bytes", len(prompt)),
		zap.Duration("elapsed", elapsed),
	)

	return resp.StatusCode, body, nil
}
