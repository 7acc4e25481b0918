package media_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"janconnect-be/media"
	"janconnect-be/media/mocks"

	"go.uber.org/mock/gomock"
)

func image(name, body string) media.Image {
	return media.Image{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(body)), nil },
	}
}

func TestUploadManyReportsEachImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	up := mocks.NewMockUploader(ctrl)

	up.EXPECT().Upload(gomock.Any(), "a.jpg", gomock.Any()).Return("https://img/a.jpg", nil)
	up.EXPECT().Upload(gomock.Any(), "b.jpg", gomock.Any()).Return("", errors.New("quota exceeded"))
	up.EXPECT().Upload(gomock.Any(), "c.jpg", gomock.Any()).Return("https://img/c.jpg", nil)

	res := media.UploadMany(context.Background(), up, []media.Image{
		image("a.jpg", "aaa"),
		image("b.jpg", "bbb"),
		image("c.jpg", "ccc"),
	}, 2)

	if len(res.Successful) != 2 || res.Successful[0].Name != "a.jpg" || res.Successful[1].URL != "https://img/c.jpg" {
		t.Fatalf("unexpected successful uploads: %+v", res.Successful)
	}
	if len(res.Failed) != 1 || res.Failed[0].Name != "b.jpg" || res.Failed[0].Error != "quota exceeded" {
		t.Fatalf("unexpected failures: %+v", res.Failed)
	}
}

func TestUploadManyOpenFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	up := mocks.NewMockUploader(ctrl)

	broken := media.Image{
		Name: "broken.png",
		Open: func() (io.ReadCloser, error) { return nil, errors.New("truncated multipart") },
	}
	res := media.UploadMany(context.Background(), up, []media.Image{broken}, 0)

	if len(res.Successful) != 0 || len(res.Failed) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestUploadManyEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	res := media.UploadMany(context.Background(), mocks.NewMockUploader(ctrl), nil, 4)
	if res.Successful == nil || res.Failed == nil || len(res.Successful)+len(res.Failed) != 0 {
		t.Fatalf("expected empty non-nil slices, got %+v", res)
	}
}

func TestNewCloudinaryRequiresCredentials(t *testing.T) {
	if _, err := media.NewCloudinary("", "key", "secret", "issues"); !errors.Is(err, media.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
