// AngelaMos | 2026
// service_test.go

package document

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/carterperez-dev/client-portal/internal/config"
	"github.com/carterperez-dev/client-portal/internal/core"
)

type stubClient struct {
	files      []File
	listErr    error
	uploadErr  error
	listCalls  int
	downloadFn func(dst io.Writer) Download
}

func (c *stubClient) List(_ context.Context, _ int64) ([]File, error) {
	c.listCalls++
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.files, nil
}

func (c *stubClient) Upload(
	_ context.Context,
	name, mimeType string,
	content io.Reader,
) (*File, error) {
	if c.uploadErr != nil {
		return nil, c.uploadErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	return &File{ID: "f1", Name: name, MimeType: mimeType, Size: int64(len(data))}, nil
}

func (c *stubClient) NewDownload(
	_ context.Context,
	fileID string,
	dst io.Writer,
) (Download, *File, error) {
	if c.downloadFn == nil {
		return nil, nil, core.ErrNotFound
	}
	return c.downloadFn(dst), &File{ID: fileID, Name: "report.pdf"}, nil
}

// stubDownload serves fixed chunks, failing a set number of times
// before each successful chunk delivery.
type stubDownload struct {
	dst      io.Writer
	chunks   []string
	failures int
	idx      int
	calls    int
}

func (d *stubDownload) NextChunk(_ context.Context) (bool, error) {
	d.calls++
	if d.failures > 0 {
		d.failures--
		return false, errors.New("transient read error")
	}
	if d.idx >= len(d.chunks) {
		return true, nil
	}
	io.WriteString(d.dst, d.chunks[d.idx])
	d.idx++
	return d.idx >= len(d.chunks), nil
}

func testConfig() config.DriveConfig {
	return config.DriveConfig{
		PageSize:        10,
		ChunkSize:       4,
		ChunkRetries:    3,
		UploadTimeout:   5 * time.Second,
		DownloadTimeout: 5 * time.Second,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(client Client, state CredentialState) *Service {
	return NewService(client, state, testConfig(), discardLogger())
}

func TestService_DegradedStates(t *testing.T) {
	client := &stubClient{files: []File{{ID: "f1"}}}

	for _, state := range []CredentialState{StateUnconfigured, StateExpired} {
		svc := newTestService(client, state)
		ctx := context.Background()

		if _, err := svc.List(ctx); !errors.Is(err, core.ErrServiceUnavailable) {
			t.Fatalf("state %s: List expected ErrServiceUnavailable, got %v", state, err)
		}
		if _, err := svc.Upload(ctx, "a.pdf", "application/pdf", strings.NewReader("x")); !errors.Is(err, core.ErrServiceUnavailable) {
			t.Fatalf("state %s: Upload expected ErrServiceUnavailable, got %v", state, err)
		}
		if _, _, err := svc.Download(ctx, "f1"); !errors.Is(err, core.ErrServiceUnavailable) {
			t.Fatalf("state %s: Download expected ErrServiceUnavailable, got %v", state, err)
		}
	}

	// Degraded service never touches the backend.
	if client.listCalls != 0 {
		t.Fatalf("backend called %d times while degraded", client.listCalls)
	}
}

func TestService_List(t *testing.T) {
	client := &stubClient{files: []File{{ID: "f1", Name: "report.pdf"}}}
	svc := newTestService(client, StateValid)

	files, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(files) != 1 || files[0].Name != "report.pdf" {
		t.Fatalf("unexpected files: %+v", files)
	}
}

func TestService_Upload(t *testing.T) {
	client := &stubClient{}
	svc := newTestService(client, StateValid)

	file, err := svc.Upload(
		context.Background(),
		"contract.pdf",
		"application/pdf",
		strings.NewReader("signed"),
	)
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if file.Name != "contract.pdf" || file.Size != 6 {
		t.Fatalf("unexpected file: %+v", file)
	}
}

func TestService_Upload_TransportFailure(t *testing.T) {
	client := &stubClient{uploadErr: errors.New("connection reset")}
	svc := newTestService(client, StateValid)

	_, err := svc.Upload(
		context.Background(),
		"contract.pdf",
		"application/pdf",
		strings.NewReader("signed"),
	)
	if !errors.Is(err, core.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
}

func TestService_Download_Complete(t *testing.T) {
	var dl *stubDownload
	client := &stubClient{
		downloadFn: func(dst io.Writer) Download {
			dl = &stubDownload{dst: dst, chunks: []string{"abcd", "efgh", "ij"}}
			return dl
		},
	}
	svc := newTestService(client, StateValid)

	file, data, err := svc.Download(context.Background(), "f1")
	if err != nil {
		t.Fatalf("Download returned error: %v", err)
	}
	if file.Name != "report.pdf" {
		t.Fatalf("unexpected file: %+v", file)
	}
	if !bytes.Equal(data, []byte("abcdefghij")) {
		t.Fatalf("unexpected payload: %q", data)
	}
}

func TestService_Download_RetriesTransientChunks(t *testing.T) {
	var dl *stubDownload
	client := &stubClient{
		downloadFn: func(dst io.Writer) Download {
			dl = &stubDownload{dst: dst, chunks: []string{"abcd"}, failures: 3}
			return dl
		},
	}
	svc := newTestService(client, StateValid)

	_, data, err := svc.Download(context.Background(), "f1")
	if err != nil {
		t.Fatalf("Download returned error after retries: %v", err)
	}
	if string(data) != "abcd" {
		t.Fatalf("unexpected payload: %q", data)
	}
	if dl.calls != 4 {
		t.Fatalf("expected 3 failures plus 1 success, got %d calls", dl.calls)
	}
}

func TestService_Download_RetriesExhausted(t *testing.T) {
	client := &stubClient{
		downloadFn: func(dst io.Writer) Download {
			return &stubDownload{dst: dst, chunks: []string{"abcd"}, failures: 4}
		},
	}
	svc := newTestService(client, StateValid)

	if _, _, err := svc.Download(context.Background(), "f1"); err == nil {
		t.Fatalf("expected failure once chunk retries are exhausted")
	}
}

func TestService_Download_NotFound(t *testing.T) {
	svc := newTestService(&stubClient{}, StateValid)

	if _, _, err := svc.Download(context.Background(), "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
