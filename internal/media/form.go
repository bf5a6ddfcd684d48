package media

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Uploader is the part of Store that resource handlers depend on.
type Uploader interface {
	Save(header *multipart.FileHeader, collection string) (File, error)
	Delete(url string) error
}

// Field describes one optional file input of a resource form.
type Field struct {
	Name       string
	Collection string
	Current    *string
	// Value is a URL submitted as plain text instead of a file.
	Value  string
	Remove bool
}

// Resolve works out the field's new value. A fresh upload wins, then the
// remove flag, then a plain URL; otherwise the current value is kept.
// The current file stays in the store until Release is called.
func (f Field) Resolve(c *fiber.Ctx, up Uploader) (*string, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if header, err := c.FormFile(f.Name); err == nil && header != nil {
			stored, err := up.Save(header, f.Collection)
			if err != nil {
				return f.Current, err
			}
			return &stored.URL, nil
		}
	}

	if f.Remove {
		return nil, nil
	}
	if v := strings.TrimSpace(f.Value); v != "" {
		return &v, nil
	}
	return f.Current, nil
}

// Release deletes previous from the store when the saved record no longer
// points at it. Call it only after the record has been persisted.
func Release(up Uploader, previous, saved *string) {
	if previous == nil || (saved != nil && *saved == *previous) {
		return
	}
	_ = up.Delete(*previous)
}
