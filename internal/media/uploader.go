package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/PythonShinobi/Otaku-Store/internal/utils"
)

// Uploader pushes a file to the media host and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

// ObjectKey builds a random key under folder that keeps the extension
// of the original file name.
func ObjectKey(folder string, filename string) (string, error) {
	name, err := utils.RandomString(12)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(filename))
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name + ext, nil
	}

	return fmt.Sprintf("%s/%s%s", folder, name, ext), nil
}

// Disabled rejects every upload. It stands in when no bucket is
// configured so products can still be created without images.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrBucketRequired
}
