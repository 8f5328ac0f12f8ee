// AngelaMos | 2026
// drive.go

package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/carterperez-dev/client-portal/internal/core"
)

// CredentialState describes whether the storage backend can be reached.
// The portal keeps serving its database-backed features regardless of
// this state.
type CredentialState int

const (
	StateUnconfigured CredentialState = iota
	StateExpired
	StateValid
)

func (s CredentialState) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateExpired:
		return "expired"
	default:
		return "unconfigured"
	}
}

// File is the portal's view of a stored document.
type File struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Client is the storage backend surface the service builds on. The
// production implementation talks to Google Drive.
type Client interface {
	List(ctx context.Context, pageSize int64) ([]File, error)
	Upload(ctx context.Context, name, mimeType string, content io.Reader) (*File, error)
	NewDownload(ctx context.Context, fileID string, dst io.Writer) (Download, *File, error)
}

// Download fetches one chunk per call. A failed chunk can be retried,
// the backend is re-asked for the same byte range.
type Download interface {
	NextChunk(ctx context.Context) (done bool, err error)
}

// authorizedUser mirrors the on-disk token file produced by the
// desktop OAuth consent flow.
type authorizedUser struct {
	RefreshToken string    `json:"refresh_token"`
	Expiry       time.Time `json:"expiry"`
}

// InspectCredentials classifies the token file without opening a
// connection. A missing file means the operator never configured
// storage. A present but unusable file means credentials expired and
// need a re-consent.
func InspectCredentials(path string) (CredentialState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StateUnconfigured, nil
		}
		return StateUnconfigured, fmt.Errorf("reading credentials file: %w", err)
	}

	var tok authorizedUser
	if err := json.Unmarshal(data, &tok); err != nil {
		return StateExpired, nil
	}

	// With a refresh token the library renews access tokens on its own.
	if tok.RefreshToken != "" {
		return StateValid, nil
	}
	if !tok.Expiry.IsZero() && tok.Expiry.After(time.Now()) {
		return StateValid, nil
	}
	return StateExpired, nil
}

type driveClient struct {
	svc       *drive.Service
	chunkSize int64
}

// NewDriveClient builds a Drive-backed Client from an authorized-user
// token file. Call InspectCredentials first, this constructor assumes
// the file exists and is usable.
func NewDriveClient(
	ctx context.Context,
	credentialsPath string,
	chunkSize int64,
) (Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}

	svc, err := drive.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}

	return &driveClient{svc: svc, chunkSize: chunkSize}, nil
}

func (c *driveClient) List(ctx context.Context, pageSize int64) ([]File, error) {
	out, err := c.svc.Files.List().
		PageSize(pageSize).
		Fields("files(id, name, mimeType, size, modifiedTime)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, translateDriveError(err)
	}

	files := make([]File, 0, len(out.Files))
	for _, f := range out.Files {
		files = append(files, File{
			ID:           f.Id,
			Name:         f.Name,
			MimeType:     f.MimeType,
			Size:         f.Size,
			ModifiedTime: f.ModifiedTime,
		})
	}
	return files, nil
}

func (c *driveClient) Upload(
	ctx context.Context,
	name, mimeType string,
	content io.Reader,
) (*File, error) {
	meta := &drive.File{Name: name, MimeType: mimeType}

	// Media with an explicit chunk size makes the client library use
	// the resumable upload protocol and retry individual chunks.
	created, err := c.svc.Files.Create(meta).
		Media(content, googleapi.ChunkSize(int(c.chunkSize))).
		Fields("id, name, mimeType, size, modifiedTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, translateDriveError(err)
	}

	return &File{
		ID:           created.Id,
		Name:         created.Name,
		MimeType:     created.MimeType,
		Size:         created.Size,
		ModifiedTime: created.ModifiedTime,
	}, nil
}

func (c *driveClient) NewDownload(
	ctx context.Context,
	fileID string,
	dst io.Writer,
) (Download, *File, error) {
	meta, err := c.svc.Files.Get(fileID).
		Fields("id, name, mimeType, size, modifiedTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, nil, translateDriveError(err)
	}

	file := &File{
		ID:           meta.Id,
		Name:         meta.Name,
		MimeType:     meta.MimeType,
		Size:         meta.Size,
		ModifiedTime: meta.ModifiedTime,
	}
	dl := &driveDownload{
		svc:    c.svc,
		fileID: fileID,
		dst:    dst,
		size:   meta.Size,
		chunk:  c.chunkSize,
	}
	return dl, file, nil
}

type driveDownload struct {
	svc    *drive.Service
	fileID string
	dst    io.Writer
	size   int64
	chunk  int64
	offset int64
}

// NextChunk fetches the next byte range. Each call issues a fresh
// ranged request from the current offset, so retrying a failed chunk
// never skips or duplicates bytes.
func (d *driveDownload) NextChunk(ctx context.Context) (bool, error) {
	if d.offset >= d.size {
		return true, nil
	}

	end := d.offset + d.chunk - 1
	if end >= d.size {
		end = d.size - 1
	}

	call := d.svc.Files.Get(d.fileID)
	call.Header().Set("Range", fmt.Sprintf("bytes=%d-%d", d.offset, end))

	resp, err := call.Context(ctx).Download()
	if err != nil {
		return false, translateDriveError(err)
	}
	defer resp.Body.Close()

	n, err := io.Copy(d.dst, resp.Body)
	d.offset += n
	if err != nil {
		return false, fmt.Errorf("reading chunk at offset %d: %w", d.offset, err)
	}
	return d.offset >= d.size, nil
}

func translateDriveError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return core.ErrNotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: storage credentials rejected", core.ErrServiceUnavailable)
		}
	}
	return err
}
