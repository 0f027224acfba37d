package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"LostAndFound/internal/model"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	created, err := r.CreateUser(ctx, &model.User{Email: "admin@example.com", Password: "hash"})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	byEmail, err := r.GetUserByEmail(ctx, "admin@example.com")
	assert.NoError(t, err)
	if assert.NotNil(t, byEmail) {
		assert.Equal(t, created.ID, byEmail.ID)
	}

	byID, err := r.GetUserByID(ctx, created.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, byID) {
		assert.Equal(t, "admin@example.com", byID.Email)
	}
}

func TestUserRepository_MissingUserIsNilNil(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u, err := r.GetUserByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, u)

	u, err = r.GetUserByID(ctx, 404)
	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepository_DuplicateEmailFails(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	_, err := r.CreateUser(ctx, &model.User{Email: "dup@example.com", Password: "h1"})
	assert.NoError(t, err)
	_, err = r.CreateUser(ctx, &model.User{Email: "dup@example.com", Password: "h2"})
	assert.Error(t, err)
}
