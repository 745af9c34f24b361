package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	usersKey     = "users"     // hash: id -> user JSON
	usernamesKey = "usernames" // hash: username -> id
)

// userDocument is the stored form of an account.
type userDocument struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	PasswordHash    string    `json:"passwordHash"`
	IsBlocked       bool      `json:"isBlocked"`
	AccessibleNames []string  `json:"accessibleNames,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toDocument(u *entity.User) userDocument {
	return userDocument{
		ID:              u.ID,
		Username:        u.Username,
		PasswordHash:    u.PasswordHash,
		IsBlocked:       u.IsBlocked,
		AccessibleNames: u.AccessibleNames,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func (d userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:              d.ID,
		Username:        d.Username,
		PasswordHash:    d.PasswordHash,
		IsBlocked:       d.IsBlocked,
		AccessibleNames: d.AccessibleNames,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

type userRepository struct {
	client redis.UniversalClient
}

// NewUserRepository creates a user repository backed by client. Usernames are
// reserved with HSETNX so two concurrent registrations cannot both succeed.
func NewUserRepository(client redis.UniversalClient) adapter.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) write(ctx context.Context, u *entity.User) error {
	raw, err := json.Marshal(toDocument(u))
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return r.client.HSet(ctx, usersKey, u.ID.String(), raw).Err()
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	ok, err := r.client.HSetNX(ctx, usernamesKey, user.Username, user.ID.String()).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve username: %w", err)
	}
	if !ok {
		return domainerror.ErrUsernameTaken
	}
	if err := r.write(ctx, user); err != nil {
		if rerr := r.client.HDel(ctx, usernamesKey, user.Username).Err(); rerr != nil {
			return errors.Join(err, fmt.Errorf("failed to release username: %w", rerr))
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	raw, err := r.client.HGet(ctx, usersKey, id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domainerror.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user: %w", err)
	}

	var doc userDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	idStr, err := r.client.HGet(ctx, usernamesKey, username).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domainerror.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read username: %w", err)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt username index for %q: %w", username, err)
	}
	return r.FindByID(ctx, id)
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	all, err := r.client.HGetAll(ctx, usersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*entity.User, 0, len(all))
	for _, raw := range all {
		var doc userDocument
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, doc.toEntity())
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	current, err := r.FindByID(ctx, user.ID)
	if err != nil {
		return err
	}

	user.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(toDocument(user))
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	// The username index and the user document change in one MULTI; WATCH
	// aborts it if another client touches the index in between.
	renamed := current.Username != user.Username
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		if renamed {
			taken, err := tx.HExists(ctx, usernamesKey, user.Username).Result()
			if err != nil {
				return fmt.Errorf("failed to check username: %w", err)
			}
			if taken {
				return domainerror.ErrUsernameTaken
			}
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if renamed {
				pipe.HSet(ctx, usernamesKey, user.Username, user.ID.String())
				pipe.HDel(ctx, usernamesKey, current.Username)
			}
			pipe.HSet(ctx, usersKey, user.ID.String(), raw)
			return nil
		})
		return err
	}, usernamesKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, domainerror.ErrUsernameTaken):
		return err
	case errors.Is(err, redis.TxFailedErr):
		return fmt.Errorf("username index changed during update: %w", err)
	default:
		return fmt.Errorf("failed to update user: %w", err)
	}
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, usersKey, id.String())
		pipe.HDel(ctx, usernamesKey, current.Username)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.client.HExists(ctx, usernamesKey, username).Result()
}
