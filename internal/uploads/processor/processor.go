package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"boatshow-server/internal/config"
	"boatshow-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrFileRequired         = errors.New("file is required")
	ErrFileTooLarge         = errors.New("file too large")
	ErrSubmissionIDRequired = errors.New("submission id is required")
	ErrInvalidFilePath      = errors.New("invalid file path")
	ErrFileNotFound         = errors.New("file not found")
)

// FileURLTTL is the lifetime of URLs handed out for stored files
const FileURLTTL = time.Hour

type UploadProcessor struct {
	objects  ObjectStore
	urlTTL   time.Duration
	maxBytes int64
	logger   *observability.Logger
	now      func() time.Time
}

func New(objects ObjectStore, storageConfig config.StorageConfig, logger *observability.Logger) UploadProcessor {
	return UploadProcessor{
		objects:  objects,
		urlTTL:   storageConfig.SignedURLTTL,
		maxBytes: storageConfig.UploadMaxBytes,
		logger:   logger,
		now:      time.Now,
	}
}

// UploadRequest is one document attached to a submission
type UploadRequest struct {
	Category     string
	SubmissionID string
	FileName     string
	ContentType  string
	Size         int64
	Body         io.Reader
}

// UploadResult locates a stored document
type UploadResult struct {
	Path     string `json:"path"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

// Upload stores the document under <category>/<submissionId>/<millis>.<ext>
func (p *UploadProcessor) Upload(ctx context.Context, req UploadRequest) (UploadResult, error) {
	if req.Body == nil || req.Size == 0 {
		return UploadResult{}, ErrFileRequired
	}
	if p.maxBytes > 0 && req.Size > p.maxBytes {
		return UploadResult{}, ErrFileTooLarge
	}

	submissionID := strings.TrimSpace(req.SubmissionID)
	if submissionID == "" {
		return UploadResult{}, ErrSubmissionIDRequired
	}
	if !validSegment(submissionID) {
		return UploadResult{}, ErrInvalidFilePath
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "uncategorized"
	}
	for _, seg := range strings.Split(category, "/") {
		if !validSegment(seg) {
			return UploadResult{}, ErrInvalidFilePath
		}
	}

	key := fmt.Sprintf("%s/%s/%d%s", category, submissionID, p.now().UnixMilli(), extension(req.FileName))
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "submission_id", Value: submissionID},
		observability.Field{Key: "object_key", Value: key},
	)

	if err := p.objects.Put(ctx, key, req.Body, req.Size, req.ContentType); err != nil {
		return UploadResult{}, err
	}

	url, err := p.objects.SignedURL(ctx, key, p.urlTTL)
	if err != nil {
		p.logger.Error(ctx, "failed to sign uploaded file url", err)
		return UploadResult{}, err
	}

	p.logger.Info(ctx, "file uploaded")
	return UploadResult{Path: key, URL: url, FileName: req.FileName}, nil
}

// GetFileURL returns a short-lived URL for a stored document
func (p *UploadProcessor) GetFileURL(ctx context.Context, filePath string) (string, error) {
	key := strings.TrimPrefix(filePath, "/")
	if key == "" || path.Clean(key) != key {
		return "", ErrInvalidFilePath
	}
	for _, seg := range strings.Split(key, "/") {
		if !validSegment(seg) {
			return "", ErrInvalidFilePath
		}
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "object_key", Value: key})

	exists, err := p.objects.Exists(ctx, key)
	if err != nil {
		p.logger.Error(ctx, "failed to look up file", err)
		return "", err
	}
	if !exists {
		return "", ErrFileNotFound
	}

	return p.objects.SignedURL(ctx, key, FileURLTTL)
}

func validSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`+"\x00")
}

// extension returns the lowercased extension of name including the dot, or ""
func extension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "." || strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}
