package media

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrTooLarge        = errors.New("file too large")
	ErrInvalidPath     = errors.New("invalid media path")
)

var allowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"application/pdf",
}

// File describes a stored upload.
type File struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// Store keeps uploads on local disk under root and exposes them below baseURL.
type Store struct {
	root     string
	baseURL  string
	maxBytes int64
	logger   *zap.Logger
}

func NewStore(root, baseURL string, maxBytes int64, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		root:     root,
		baseURL:  "/" + strings.Trim(baseURL, "/"),
		maxBytes: maxBytes,
		logger:   logger,
	}
}

func (s *Store) Root() string    { return s.root }
func (s *Store) BaseURL() string { return s.baseURL }

// Save writes the uploaded file to <root>/<collection>/<uuid><ext>.
func (s *Store) Save(header *multipart.FileHeader, collection string) (File, error) {
	if s.maxBytes > 0 && header.Size > s.maxBytes {
		return File{}, ErrTooLarge
	}

	src, err := header.Open()
	if err != nil {
		return File{}, err
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return File{}, fmt.Errorf("detect content type: %w", err)
	}
	if !mimetype.EqualsAny(mtype.String(), allowedTypes...) {
		return File{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mtype.String())
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return File{}, err
	}

	// the stored extension decides how the file is served, so it follows the
	// detected type and never the client's file name
	name := uuid.NewString() + mtype.Extension()

	collection = cleanCollection(collection)
	dir := filepath.Join(s.root, collection)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return File{}, err
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return File{}, err
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return File{}, err
	}

	url := path.Join(s.baseURL, collection, name)
	s.logger.Debug("stored upload",
		zap.String("collection", collection),
		zap.String("original", header.Filename),
		zap.String("url", url))

	return File{
		Name:        name,
		Path:        url,
		URL:         url,
		Size:        written,
		ContentType: mtype.String(),
	}, nil
}

// Delete removes a file previously returned by Save. URLs that do not belong
// to the store are ignored so records may also point at external images.
func (s *Store) Delete(url string) error {
	if url == "" || !strings.HasPrefix(url, s.baseURL+"/") {
		return nil
	}
	full := s.resolve(strings.TrimPrefix(url, s.baseURL))
	if full == "" {
		return ErrInvalidPath
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// resolve joins rel under root and refuses anything that escapes it.
func (s *Store) resolve(rel string) string {
	root, err := filepath.Abs(s.root)
	if err != nil {
		return ""
	}
	full := filepath.Join(root, filepath.FromSlash(rel))
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return ""
	}
	return full
}

func cleanCollection(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	var b strings.Builder
	for _, r := range c {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "misc"
	}
	return b.String()
}
