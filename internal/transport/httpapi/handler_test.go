package httpapi

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"kurz/config"
	"kurz/internal/channel"
	"kurz/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChannels answers AttachFile and panics on everything else; the
// upload handler touches nothing more.
type stubChannels struct {
	channel.ChannelUsecase

	attached []channel.AttachFileCommand
}

func (s *stubChannels) AttachFile(_ context.Context, channelID int64, cmd channel.AttachFileCommand) (*channel.MessageDTO, error) {
	s.attached = append(s.attached, cmd)
	return &channel.MessageDTO{ID: 1, ChannelID: channelID, Email: cmd.Uploader, Body: "alice upload a file."}, nil
}

func newUploadHandler(t *testing.T) (*Handler, *stubChannels, string) {
	t.Helper()
	dir := t.TempDir()
	stub := &stubChannels{}
	h := NewHandler(stub, &config.Config{Upload: config.Upload{Dir: dir}}, &logger.Logger{})
	return h, stub, dir
}

func multipartBody(t *testing.T, email, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("email", email))
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func Test_Upload(t *testing.T) {
	t.Run("stores the blob and posts the file message", func(t *testing.T) {
		h, stub, dir := newUploadHandler(t)

		body, contentType := multipartBody(t, "alice@example.com", "notes.pdf", []byte("pdf bytes"))
		req := httptest.NewRequest(http.MethodPost, "/channel/7/file", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		h.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, stub.attached, 1)
		cmd := stub.attached[0]
		assert.Equal(t, "alice@example.com", cmd.Uploader)
		assert.Equal(t, "notes.pdf", cmd.OriginalName)
		assert.Equal(t, int64(len("pdf bytes")), cmd.Size)

		stored := filepath.Join(dir, "files", cmd.StoredName)
		data, err := os.ReadFile(stored)
		require.NoError(t, err)
		assert.Equal(t, "pdf bytes", string(data))
	})

	t.Run("oversized body is rejected before touching storage", func(t *testing.T) {
		h, stub, dir := newUploadHandler(t)

		prev := maxUploadBytes
		maxUploadBytes = 1 << 10
		t.Cleanup(func() { maxUploadBytes = prev })

		body, contentType := multipartBody(t, "alice@example.com", "huge.bin",
			bytes.Repeat([]byte("x"), 4<<10))
		req := httptest.NewRequest(http.MethodPost, "/channel/7/file", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		h.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Empty(t, stub.attached)
		_, err := os.ReadDir(filepath.Join(dir, "files"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("cap holds without a declared length", func(t *testing.T) {
		h, stub, _ := newUploadHandler(t)

		prev := maxUploadBytes
		maxUploadBytes = 1 << 10
		t.Cleanup(func() { maxUploadBytes = prev })

		body, contentType := multipartBody(t, "alice@example.com", "huge.bin",
			bytes.Repeat([]byte("x"), 4<<10))
		// chunked transfer: the fast content-length check cannot fire
		req := httptest.NewRequest(http.MethodPost, "/channel/7/file", io.NopCloser(body))
		req.ContentLength = -1
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		h.Routes().ServeHTTP(rec, req)

		assert.NotEqual(t, http.StatusCreated, rec.Code)
		assert.Empty(t, stub.attached)
	})
}
