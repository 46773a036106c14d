package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	apperrors "sentencer/errors"
	"sentencer/utils"
)

const DefaultMaxPDFSize = 10 * 1024 * 1024 // 10MB

type PDFService struct {
	logger  *zap.Logger
	maxSize int64
}

func NewPDFService(logger *zap.Logger, maxSize int64) *PDFService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxPDFSize
	}
	return &PDFService{
		logger:  logger,
		maxSize: maxSize,
	}
}

// ValidateUpload checks the file name and size of an uploaded PDF and
// returns the sanitized file name.
func (ps *PDFService) ValidateUpload(file *multipart.FileHeader) (string, error) {
	sanitized := utils.SanitizeFilename(file.Filename)
	if sanitized == "" {
		return "", apperrors.WrapError(apperrors.ErrInvalidInput, "invalid or unsafe filename")
	}
	if strings.ToLower(filepath.Ext(sanitized)) != ".pdf" {
		return "", apperrors.WrapError(apperrors.ErrInvalidInput, "only PDF files are accepted")
	}
	if file.Size > ps.maxSize {
		return "", apperrors.WrapErrorf(apperrors.ErrTooLarge, "PDF is %d bytes, limit is %d", file.Size, ps.maxSize)
	}
	return sanitized, nil
}

// ExtractFromUpload reads an uploaded PDF into memory and extracts its text.
func (ps *PDFService) ExtractFromUpload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, ps.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > ps.maxSize {
		return "", apperrors.WrapErrorf(apperrors.ErrTooLarge, "PDF exceeds %d bytes", ps.maxSize)
	}
	return ps.ExtractText(ctx, data)
}

// ExtractText returns the plain text of every page, pages separated by a
// blank line so each page starts a new line group.
func (ps *PDFService) ExtractText(ctx context.Context, data []byte) (text string, err error) {
	defer func() {
		// the pdf reader panics on some malformed files
		if r := recover(); r != nil {
			text = ""
			err = apperrors.WrapErrorf(apperrors.ErrExtraction, "malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperrors.WrapErrorf(apperrors.ErrExtraction, "failed to open PDF: %v", err)
	}

	totalPages := r.NumPage()
	ps.logger.Debug("Extracting text from PDF", zap.Int("pages", totalPages))

	var pages []string
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := r.Page(pageNum)
		if page.V.IsNull() {
			ps.logger.Warn("Skipping null page", zap.Int("page", pageNum))
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			ps.logger.Warn("Failed to extract text from page",
				zap.Int("page", pageNum),
				zap.Error(err))
			continue
		}
		if strings.TrimSpace(pageText) != "" {
			pages = append(pages, pageText)
		}
	}

	text = strings.Join(pages, "\n\n")
	ps.logger.Info("PDF text extraction completed",
		zap.Int("pages", totalPages),
		zap.Int("characters", len(text)))

	return text, nil
}
