package media

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrNotConfigured = errors.New("image hosting is not configured")

// Cloudinary uploads images into one folder of a Cloudinary account.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(cloudName, apiKey, apiSecret, folder string) (*Cloudinary, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, ErrNotConfigured
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary client: %w", err)
	}
	return &Cloudinary{cld: cld, folder: folder}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	resp, err := c.cld.Upload.Upload(ctx, r, uploadParams(c.folder))
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("upload %s: %s", name, resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// uploadParams leaves the public id to Cloudinary so every upload becomes a
// new asset; client file names collide across users.
func uploadParams(folder string) uploader.UploadParams {
	return uploader.UploadParams{
		Folder:         folder,
		UniqueFilename: api.Bool(true),
		Overwrite:      api.Bool(false),
	}
}
