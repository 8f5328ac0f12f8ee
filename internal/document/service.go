// AngelaMos | 2026
// service.go

package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/carterperez-dev/client-portal/internal/config"
	"github.com/carterperez-dev/client-portal/internal/core"
	"github.com/carterperez-dev/client-portal/internal/metrics"
)

// Service fronts the external document store. When credentials are
// missing or stale every operation fails fast with a service
// unavailable error and the rest of the portal keeps working.
type Service struct {
	client Client
	state  CredentialState
	cfg    config.DriveConfig
	logger *slog.Logger
}

func NewService(
	client Client,
	state CredentialState,
	cfg config.DriveConfig,
	logger *slog.Logger,
) *Service {
	return &Service{
		client: client,
		state:  state,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *Service) State() CredentialState {
	return s.state
}

func (s *Service) ensureAvailable() error {
	switch s.state {
	case StateValid:
		return nil
	case StateExpired:
		return core.ServiceUnavailableError(
			"document storage credentials have expired",
		)
	default:
		return core.ServiceUnavailableError(
			"document storage is not configured",
		)
	}
}

func (s *Service) List(ctx context.Context) ([]File, error) {
	if err := s.ensureAvailable(); err != nil {
		metrics.DocumentOpsTotal.WithLabelValues("list", "unavailable").Inc()
		return nil, err
	}

	files, err := s.client.List(ctx, s.cfg.PageSize)
	if err != nil {
		metrics.DocumentOpsTotal.WithLabelValues("list", "error").Inc()
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	metrics.DocumentOpsTotal.WithLabelValues("list", "ok").Inc()
	return files, nil
}

func (s *Service) Upload(
	ctx context.Context,
	name, mimeType string,
	content io.Reader,
) (*File, error) {
	if err := s.ensureAvailable(); err != nil {
		metrics.DocumentOpsTotal.WithLabelValues("upload", "unavailable").Inc()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.UploadTimeout)
	defer cancel()

	start := time.Now()
	file, err := s.client.Upload(ctx, name, mimeType, content)
	if err != nil {
		metrics.DocumentOpsTotal.WithLabelValues("upload", "error").Inc()
		if errors.Is(err, core.ErrServiceUnavailable) {
			return nil, err
		}
		return nil, core.UploadFailedError(
			fmt.Sprintf("uploading %q to document storage failed", name),
		)
	}

	metrics.DocumentOpsTotal.WithLabelValues("upload", "ok").Inc()
	metrics.DocumentTransferDuration.WithLabelValues("upload").
		Observe(time.Since(start).Seconds())

	s.logger.Info("document uploaded",
		"file_id", file.ID,
		"name", file.Name,
		"size", file.Size,
	)
	return file, nil
}

// Download fetches the whole file chunk by chunk and returns it only
// once the terminal chunk has landed. A failed chunk is retried up to
// the configured bound before the download is abandoned, so a partial
// result is never handed to the caller.
func (s *Service) Download(ctx context.Context, fileID string) (*File, []byte, error) {
	if err := s.ensureAvailable(); err != nil {
		metrics.DocumentOpsTotal.WithLabelValues("download", "unavailable").Inc()
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.DownloadTimeout)
	defer cancel()

	var buf bytes.Buffer
	dl, file, err := s.client.NewDownload(ctx, fileID, &buf)
	if err != nil {
		metrics.DocumentOpsTotal.WithLabelValues("download", "error").Inc()
		return nil, nil, err
	}

	start := time.Now()
	if err := s.runDownload(ctx, dl); err != nil {
		metrics.DocumentOpsTotal.WithLabelValues("download", "error").Inc()
		return nil, nil, err
	}

	metrics.DocumentOpsTotal.WithLabelValues("download", "ok").Inc()
	metrics.DocumentTransferDuration.WithLabelValues("download").
		Observe(time.Since(start).Seconds())

	return file, buf.Bytes(), nil
}

func (s *Service) runDownload(ctx context.Context, dl Download) error {
	retriesLeft := s.cfg.ChunkRetries
	backoff := 250 * time.Millisecond

	for {
		done, err := dl.NextChunk(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("download deadline exceeded: %w", ctx.Err())
			}
			if retriesLeft <= 0 {
				return fmt.Errorf("downloading document: %w", err)
			}
			retriesLeft--
			s.logger.Warn("document chunk failed, retrying",
				"error", err,
				"retries_left", retriesLeft,
			)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return fmt.Errorf("download deadline exceeded: %w", ctx.Err())
			}
			backoff *= 2
			continue
		}
		if done {
			return nil
		}
	}
}
