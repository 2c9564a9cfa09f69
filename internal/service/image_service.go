package service

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Phutanet200102/api-mongoDB/internal/model"
	"github.com/Phutanet200102/api-mongoDB/internal/repository"
)

const (
	defaultImageName        = "Untitled"
	defaultImageDescription = "No description provided"
)

// BlobStorage is the sink for uploaded file contents; it returns the
// relative path the blob is reachable under.
type BlobStorage interface {
	Store(field, originalName string, data io.Reader) (string, error)
}

type ImageService interface {
	Attach(ctx context.Context, userID bson.ObjectID, name, description, filename string, data io.Reader) (string, error)
}

type imageService struct {
	images repository.ImageRepository
	blobs  BlobStorage
}

func NewImageService(images repository.ImageRepository, blobs BlobStorage) ImageService {
	return &imageService{images: images, blobs: blobs}
}

// Attach stores the uploaded blob and records its metadata against the
// given user. The user's existence is not checked.
func (s *imageService) Attach(ctx context.Context, userID bson.ObjectID, name, description, filename string, data io.Reader) (string, error) {
	imagePath, err := s.blobs.Store("image", filename, data)
	if err != nil {
		return "", err
	}

	if name == "" {
		name = defaultImageName
	}
	if description == "" {
		description = defaultImageDescription
	}

	image := &model.Image{
		UserID:      userID,
		Name:        name,
		Description: description,
		ImagePath:   imagePath,
		UploadedAt:  time.Now(),
	}

	if _, err := s.images.Create(ctx, image); err != nil {
		return "", err
	}

	return imagePath, nil
}
