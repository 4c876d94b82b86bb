package catalog

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/marketplace/config"
)

// DecodeImage decodes a base64 image, accepting a data URL prefix.
func DecodeImage(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if strings.HasPrefix(encoded, "data:") {
		if _, payload, ok := strings.Cut(encoded, ","); ok {
			encoded = payload
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
	}
	if err != nil || len(data) == 0 {
		return nil, &apperr.ValidationError{Field: "image", Message: "image must be base64 encoded"}
	}
	if len(data) > config.MaxImageSize {
		return nil, &apperr.ValidationError{
			Field:   "image",
			Message: fmt.Sprintf("image exceeds %d bytes", config.MaxImageSize),
		}
	}
	return data, nil
}

// StoreImage uploads an encoded image into folder and returns its URL. An
// empty image yields an empty URL.
func (s *Service) StoreImage(ctx context.Context, folder, encoded string) (string, error) {
	if strings.TrimSpace(encoded) == "" {
		return "", nil
	}
	data, err := DecodeImage(encoded)
	if err != nil {
		return "", err
	}
	url, err := s.images.Upload(ctx, folder, data, config.ImageMimeType)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return url, nil
}

// DiscardImage deletes an image that is no longer referenced. The default
// image is never deleted and failures are only logged.
func (s *Service) DiscardImage(ctx context.Context, url string) {
	if url == "" || url == s.defaultImageURL {
		return
	}
	if err := s.images.Delete(ctx, url); err != nil {
		slog.Warn("Failed to delete image",
			slog.String("url", url),
			slog.String("error", err.Error()))
	}
}

func (s *Service) DefaultImageURL() string {
	return s.defaultImageURL
}
