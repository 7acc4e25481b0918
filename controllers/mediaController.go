package controllers

import (
	"io"
	"mime/multipart"
	"net/http"

	"janconnect-be/media"

	"github.com/gin-gonic/gin"
)

const maxImagesPerUpload = 5

type MediaController struct {
	uploader media.Uploader
}

// NewMediaController accepts a nil uploader when image hosting is not
// configured; uploads then answer 503.
func NewMediaController(uploader media.Uploader) *MediaController {
	return &MediaController{uploader: uploader}
}

// UploadImages uploads the multipart "images" files and reports each one
func (mc *MediaController) UploadImages(c *gin.Context) {
	if mc.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": media.ErrNotConfigured.Error()})
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No images provided"})
		return
	}
	if len(files) > maxImagesPerUpload {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Too many images"})
		return
	}

	images := make([]media.Image, len(files))
	for i, fh := range files {
		images[i] = media.Image{
			Name: fh.Filename,
			Open: openPart(fh),
		}
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	c.JSON(http.StatusOK, media.UploadMany(ctx, mc.uploader, images, media.DefaultConcurrency))
}

func openPart(fh *multipart.FileHeader) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}
