package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Accounts are schema-flexible: callers may attach arbitrary fields at
// registration, so reads are handled as bson.M documents rather than a
// fixed struct. Credentials is the narrow projection used to verify a
// login without pulling the whole document.
type Credentials struct {
	ID       bson.ObjectID `bson:"_id"`
	Email    string        `bson:"email"`
	Password string        `bson:"password"`
}
