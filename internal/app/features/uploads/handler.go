// Package uploads implements the image and video upload endpoints. Files
// land under the configured upload directory and are served back by the
// static file route.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/magazinehub/internal/app/system/httperr"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler holds the dependencies for the upload endpoints.
type Handler struct {
	Dir          string // root upload directory; images/ and videos/ live below it
	MaxImageSize int64
	MaxVideoSize int64
	Log          *zap.Logger
}

// NewHandler constructs an uploads Handler.
func NewHandler(dir string, maxImageSize, maxVideoSize int64, logger *zap.Logger) *Handler {
	return &Handler{Dir: dir, MaxImageSize: maxImageSize, MaxVideoSize: maxVideoSize, Log: logger}
}

var (
	imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}
	videoExts = map[string]bool{".mp4": true, ".webm": true, ".ogg": true}
)

// allowed accepts a file when either its extension is in the allowlist or
// the client-declared content type has the expected prefix. Either signal
// alone is enough; browsers are inconsistent about both.
func allowed(header *multipart.FileHeader, exts map[string]bool, mimePrefix string) bool {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if exts[ext] {
		return true
	}
	return strings.HasPrefix(header.Header.Get("Content-Type"), mimePrefix)
}

// storedName builds a collision-free filename that keeps the original
// extension.
func storedName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

// formFileErr maps a FormFile failure to a validation error, distinguishing
// a request that blew the size cap from one that carried no file at all.
func formFileErr(err error, missingMsg string, maxSize int64) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return httperr.Validation(fmt.Sprintf("File exceeds the maximum upload size of %dMB.", maxSize>>20))
	}
	return httperr.Validation(missingMsg)
}

// save streams one uploaded file into subdir and returns the stored name.
func (h *Handler) save(file multipart.File, subdir, name string) error {
	dir := filepath.Join(h.Dir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return fmt.Errorf("writing upload file: %w", err)
	}
	return nil
}

// uploadResponse is the body returned for a stored upload.
type uploadResponse struct {
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	VideoType string `json:"videoType,omitempty"`
}

// HandleImage handles POST /api/upload/image with multipart field "image".
func (h *Handler) HandleImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxImageSize)

	file, header, err := r.FormFile("image")
	if err != nil {
		httperr.Write(w, h.Log, formFileErr(err, "An image file is required.", h.MaxImageSize))
		return
	}
	defer file.Close()

	if !allowed(header, imageExts, "image/") {
		httperr.Write(w, h.Log, httperr.Validation("Only image files are allowed."))
		return
	}

	name := storedName(header.Filename)
	if err := h.save(file, "images", name); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("image uploaded", zap.String("file", name), zap.Int64("size", header.Size))
	httperr.JSON(w, http.StatusOK, uploadResponse{
		URL:      "/uploads/images/" + name,
		Filename: name,
	})
}

// HandleVideo handles POST /api/upload/video with multipart field "video".
func (h *Handler) HandleVideo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxVideoSize)

	file, header, err := r.FormFile("video")
	if err != nil {
		httperr.Write(w, h.Log, formFileErr(err, "A video file is required.", h.MaxVideoSize))
		return
	}
	defer file.Close()

	if !allowed(header, videoExts, "video/") {
		httperr.Write(w, h.Log, httperr.Validation("Only video files are allowed."))
		return
	}

	name := storedName(header.Filename)
	if err := h.save(file, "videos", name); err != nil {
		httperr.Write(w, h.Log, err)
		return
	}

	h.Log.Info("video uploaded", zap.String("file", name), zap.Int64("size", header.Size))
	httperr.JSON(w, http.StatusOK, uploadResponse{
		URL:       "/uploads/videos/" + name,
		Filename:  name,
		VideoType: "upload",
	})
}
