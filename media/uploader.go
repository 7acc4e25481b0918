// Package media uploads user images to the image host.
package media

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -destination=mocks/uploader.go -package=mocks janconnect-be/media Uploader

// Uploader stores one image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

// Image is one file of a batch upload.
type Image struct {
	Name string
	Open func() (io.ReadCloser, error)
}

type Uploaded struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type FailedUpload struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// BatchResult reports every image of a batch as either uploaded or failed,
// in the order they were given.
type BatchResult struct {
	Successful []Uploaded     `json:"successful"`
	Failed     []FailedUpload `json:"failed"`
}

// DefaultConcurrency bounds parallel uploads of one batch.
const DefaultConcurrency = 4

// UploadMany uploads images in parallel. A failed image never fails the
// batch; it is listed under Failed instead.
func UploadMany(ctx context.Context, up Uploader, images []Image, concurrency int) BatchResult {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	urls := make([]string, len(images))
	errs := make([]error, len(images))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, img := range images {
		g.Go(func() error {
			urls[i], errs[i] = uploadOne(ctx, up, img)
			return nil
		})
	}
	_ = g.Wait()

	res := BatchResult{Successful: []Uploaded{}, Failed: []FailedUpload{}}
	for i, img := range images {
		if errs[i] != nil {
			res.Failed = append(res.Failed, FailedUpload{Name: img.Name, Error: errs[i].Error()})
			continue
		}
		res.Successful = append(res.Successful, Uploaded{Name: img.Name, URL: urls[i]})
	}
	return res
}

func uploadOne(ctx context.Context, up Uploader, img Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rc, err := img.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return up.Upload(ctx, img.Name, rc)
}
