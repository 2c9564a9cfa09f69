package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Phutanet200102/api-mongoDB/internal/hash"
	"github.com/Phutanet200102/api-mongoDB/internal/repository"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingCredentials = errors.New("email and password are required")
)

type AccountService interface {
	List(ctx context.Context) ([]bson.M, error)
	Get(ctx context.Context, id bson.ObjectID) (bson.M, error)
	Register(ctx context.Context, email, password string, extra map[string]any) error
	Login(ctx context.Context, email, password string) (bson.ObjectID, error)
	Update(ctx context.Context, id bson.ObjectID, fields map[string]any) error
}

type accountService struct {
	accounts repository.AccountRepository
}

func NewAccountService(accounts repository.AccountRepository) AccountService {
	return &accountService{accounts: accounts}
}

func (s *accountService) List(ctx context.Context) ([]bson.M, error) {
	return s.accounts.FindAll(ctx)
}

func (s *accountService) Get(ctx context.Context, id bson.ObjectID) (bson.M, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return account, nil
}

func (s *accountService) Register(ctx context.Context, email, password string, extra map[string]any) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	// Fast path only; the unique index on email catches the race where two
	// registrations pass this check concurrently.
	exists, err := s.accounts.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailExists
	}

	hashedPassword, err := hash.Password(password)
	if err != nil {
		return err
	}

	doc := bson.M{}
	for k, v := range extra {
		doc[k] = v
	}
	doc["email"] = email
	doc["password"] = hashedPassword

	if err := s.accounts.Create(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}

		return err
	}

	return nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (bson.ObjectID, error) {
	creds, err := s.accounts.FindCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Unknown email reads the same as a wrong password.
			return bson.NilObjectID, ErrInvalidCredentials
		}

		return bson.NilObjectID, err
	}

	if !hash.Verify(password, creds.Password) {
		return bson.NilObjectID, ErrInvalidCredentials
	}

	return creds.ID, nil
}

func (s *accountService) Update(ctx context.Context, id bson.ObjectID, fields map[string]any) error {
	// Passwords cannot be changed through this path.
	delete(fields, "password")

	if len(fields) == 0 {
		// Nothing left to set; still report whether the account exists.
		if _, err := s.accounts.FindByID(ctx, id); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrNotFound
			}

			return err
		}

		return nil
	}

	matched, err := s.accounts.Update(ctx, id, bson.M(fields))
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}

	return nil
}
