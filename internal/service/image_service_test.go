package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Phutanet200102/api-mongoDB/internal/model"
	"github.com/Phutanet200102/api-mongoDB/internal/service"
)

type fakeImageRepository struct {
	created *model.Image
	err     error
}

func (f *fakeImageRepository) Create(ctx context.Context, image *model.Image) (bson.ObjectID, error) {
	if f.err != nil {
		return bson.NilObjectID, f.err
	}
	f.created = image
	return bson.NewObjectID(), nil
}

type fakeBlobStorage struct {
	path string
	err  error

	field    string
	original string
}

func (f *fakeBlobStorage) Store(field, originalName string, data io.Reader) (string, error) {
	f.field = field
	f.original = originalName
	if f.err != nil {
		return "", f.err
	}
	_, _ = io.Copy(io.Discard, data)
	return f.path, nil
}

func TestAttach(t *testing.T) {
	repo := &fakeImageRepository{}
	blobs := &fakeBlobStorage{path: "uploads/image-abc.jpg"}
	svc := service.NewImageService(repo, blobs)

	userID := bson.NewObjectID()
	path, err := svc.Attach(context.Background(), userID, "Holiday", "Beach", "cat.jpg", strings.NewReader("bytes"))
	require.NoError(t, err)
	require.Equal(t, "uploads/image-abc.jpg", path)

	require.Equal(t, "image", blobs.field)
	require.Equal(t, "cat.jpg", blobs.original)

	require.NotNil(t, repo.created)
	require.Equal(t, userID, repo.created.UserID)
	require.Equal(t, "Holiday", repo.created.Name)
	require.Equal(t, "Beach", repo.created.Description)
	require.Equal(t, "uploads/image-abc.jpg", repo.created.ImagePath)
	require.WithinDuration(t, time.Now(), repo.created.UploadedAt, time.Minute)
}

func TestAttach_Defaults(t *testing.T) {
	repo := &fakeImageRepository{}
	blobs := &fakeBlobStorage{path: "uploads/image-abc.jpg"}
	svc := service.NewImageService(repo, blobs)

	_, err := svc.Attach(context.Background(), bson.NewObjectID(), "", "", "cat.jpg", strings.NewReader("bytes"))
	require.NoError(t, err)
	require.Equal(t, "Untitled", repo.created.Name)
	require.Equal(t, "No description provided", repo.created.Description)
}

func TestAttach_BlobFailure(t *testing.T) {
	repo := &fakeImageRepository{}
	blobs := &fakeBlobStorage{err: errors.New("disk full")}
	svc := service.NewImageService(repo, blobs)

	_, err := svc.Attach(context.Background(), bson.NewObjectID(), "n", "d", "cat.jpg", strings.NewReader("bytes"))
	require.Error(t, err)
	require.Nil(t, repo.created)
}

func TestAttach_StoreFailure(t *testing.T) {
	repo := &fakeImageRepository{err: errors.New("insert failed")}
	blobs := &fakeBlobStorage{path: "uploads/image-abc.jpg"}
	svc := service.NewImageService(repo, blobs)

	_, err := svc.Attach(context.Background(), bson.NewObjectID(), "n", "d", "cat.jpg", strings.NewReader("bytes"))
	require.Error(t, err)
}
