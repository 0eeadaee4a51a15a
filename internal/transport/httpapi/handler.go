package httpapi

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"kurz/config"
	"kurz/internal/channel"
	"kurz/pkg/errors"
	"kurz/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxUploadBytes caps the whole multipart body; a var so tests can
// shrink it.
var maxUploadBytes int64 = 50 << 20

const maxFormMemory = 32 << 20

// Handler carries the plain-HTTP surface: blob upload/download and
// the operational endpoints. Everything conversational runs over the
// websocket.
type Handler struct {
	channels  channel.ChannelUsecase
	uploadDir string
	logger    *logger.Logger
}

func NewHandler(channels channel.ChannelUsecase, cfg *config.Config, logger *logger.Logger) *Handler {
	return &Handler{
		channels:  channels,
		uploadDir: cfg.Upload.Dir,
		logger:    logger,
	}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/profile/{name}", h.serveProfileImage)
	r.Get("/channel/image/{name}", h.serveChannelImage)

	r.Route("/channel/{channelID}", func(r chi.Router) {
		r.Post("/file", h.upload)
		r.Get("/file/{fileID}", h.download)
		r.Get("/image/{fileID}", h.serveInline)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) serveProfileImage(w http.ResponseWriter, r *http.Request) {
	h.serveStatic(w, r, "profile", chi.URLParam(r, "name"))
}

func (h *Handler) serveChannelImage(w http.ResponseWriter, r *http.Request) {
	h.serveStatic(w, r, "channel", chi.URLParam(r, "name"))
}

func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request, kind, name string) {
	// filepath.Base strips any traversal the client smuggled in
	path := filepath.Join(h.uploadDir, kind, filepath.Base(name))
	http.ServeFile(w, r, path)
}

// upload accepts one multipart file, stores the blob under a generated
// name and records it through the channel usecase, which posts the
// file message and notifies participants.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	channelID, err := strconv.ParseInt(chi.URLParam(r, "channelID"), 10, 64)
	if err != nil {
		h.writeError(w, errors.InvalidArg("invalid channel id"))
		return
	}
	if r.ContentLength > maxUploadBytes {
		h.writeTooLarge(w)
		return
	}

	// the cap must wrap the body before anything touches the form;
	// FormValue would otherwise parse the full request unbounded
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			h.writeTooLarge(w)
			return
		}
		h.writeError(w, errors.InvalidArg("malformed multipart body"))
		return
	}
	uploader := r.FormValue("email")

	src, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, errors.InvalidArg("missing file part"))
		return
	}
	defer src.Close()

	storedName := uuid.NewString() + filepath.Ext(header.Filename)
	dstPath := filepath.Join(h.uploadDir, "files", storedName)
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		h.logger.Error("failed to prepare upload dir", "err", err)
		h.writeError(w, errors.Internal("storage error"))
		return
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		h.logger.Error("failed to create upload file", "path", dstPath, "err", err)
		h.writeError(w, errors.Internal("storage error"))
		return
	}
	size, err := io.Copy(dst, src)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dstPath)
		h.logger.Error("failed to store upload", "path", dstPath, "err", err)
		h.writeError(w, errors.Internal("storage error"))
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}

	msg, err := h.channels.AttachFile(r.Context(), channelID, channel.AttachFileCommand{
		Uploader:     uploader,
		OriginalName: header.Filename,
		StoredName:   storedName,
		Mime:         mimeType,
		Size:         size,
	})
	if err != nil {
		_ = os.Remove(dstPath)
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, true)
}

func (h *Handler) serveInline(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, false)
}

func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, attachment bool) {
	channelID, err := strconv.ParseInt(chi.URLParam(r, "channelID"), 10, 64)
	if err != nil {
		h.writeError(w, errors.InvalidArg("invalid channel id"))
		return
	}
	fileID, err := strconv.ParseInt(chi.URLParam(r, "fileID"), 10, 64)
	if err != nil {
		h.writeError(w, errors.InvalidArg("invalid file id"))
		return
	}

	var data *channel.FileDataDTO
	if attachment {
		data, err = h.channels.Download(r.Context(), channelID, fileID)
	} else {
		data, err = h.channels.FileData(r.Context(), channelID, fileID)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	if attachment {
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", data.OriginalName))
	}
	if data.Mime != "" {
		w.Header().Set("Content-Type", data.Mime)
	}

	path := filepath.Join(h.uploadDir, "files", filepath.Base(data.StoredName))
	http.ServeFile(w, r, path)
}

func (h *Handler) writeTooLarge(w http.ResponseWriter) {
	writeJSON(w, http.StatusRequestEntityTooLarge, map[string]any{
		"error": map[string]string{
			"code":   string(errors.CodeInvalidArgument),
			"reason": "upload exceeds the size limit",
		},
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := errors.CodeOf(err)
	writeJSON(w, httpStatus(code), map[string]any{
		"error": map[string]string{
			"code":   string(code),
			"reason": err.Error(),
		},
	})
}

func httpStatus(code errors.Code) int {
	switch code {
	case errors.CodeInvalidArgument:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeAlreadyExists:
		return http.StatusConflict
	case errors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case errors.CodePermissionDenied:
		return http.StatusForbidden
	case errors.CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
