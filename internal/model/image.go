package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Image struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      bson.ObjectID `bson:"user_id" json:"userId"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description"`
	ImagePath   string        `bson:"image" json:"imagePath"`
	UploadedAt  time.Time     `bson:"date" json:"uploadedAt"`
}
