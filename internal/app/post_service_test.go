package app

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/repository"
)

func TestCreateAndGetPost(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPostService(repository.NewPostRepository(db))
	owner := createTestUser(t, db, "alice@x.com")

	created, err := svc.Create(owner.ID, PostInput{Title: "A", Content: "B", Published: true})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, owner.ID, created.OwnerID)
	assert.Equal(t, owner.Email, created.Owner.Email)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Post.Title)
	assert.Equal(t, "B", got.Post.Content)
	assert.True(t, got.Post.Published)
	assert.Equal(t, int64(0), got.Votes)
	assert.Equal(t, owner.Email, got.Post.Owner.Email)
}

func TestGetPostFiltersByID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPostService(repository.NewPostRepository(db))
	owner := createTestUser(t, db, "alice@x.com")

	first := createTestPost(t, db, owner.ID, "first")
	second := createTestPost(t, db, owner.ID, "second")

	got, err := svc.Get(second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.Post.ID)
	assert.Equal(t, "second", got.Post.Title)

	_, err = svc.Get(first.ID + second.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListPostsOrderAndLimit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPostService(repository.NewPostRepository(db))
	owner := createTestUser(t, db, "alice@x.com")

	for i := 0; i < 5; i++ {
		createTestPost(t, db, owner.ID, fmt.Sprintf("post %d", i))
	}

	posts, err := svc.List(2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Less(t, posts[0].Post.ID, posts[1].Post.ID)
	assert.Equal(t, "post 0", posts[0].Post.Title)
	assert.Equal(t, owner.Email, posts[0].Post.Owner.Email)

	all, err := svc.List(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestListPostsIncludesVoteCounts(t *testing.T) {
	db := setupTestDB(t)
	postSvc := NewPostService(repository.NewPostRepository(db))
	voteSvc := NewVoteService(repository.NewPostRepository(db), repository.NewVoteRepository(db))

	alice := createTestUser(t, db, "alice@x.com")
	bob := createTestUser(t, db, "bob@x.com")
	voted := createTestPost(t, db, alice.ID, "voted")
	plain := createTestPost(t, db, alice.ID, "plain")

	require.NoError(t, voteSvc.Cast(alice.ID, voted.ID))
	require.NoError(t, voteSvc.Cast(bob.ID, voted.ID))

	posts, err := postSvc.List(10)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	byID := map[uint]int64{}
	for _, p := range posts {
		byID[p.Post.ID] = p.Votes
	}
	assert.Equal(t, int64(2), byID[voted.ID])
	assert.Equal(t, int64(0), byID[plain.ID])
}

func TestUpdatePostOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPostService(repository.NewPostRepository(db))
	alice := createTestUser(t, db, "alice@x.com")
	bob := createTestUser(t, db, "bob@x.com")
	post := createTestPost(t, db, alice.ID, "original")

	_, err := svc.Update(post.ID, bob.ID, PostInput{Title: "hijacked", Content: "x", Published: true})
	assert.ErrorIs(t, err, ErrNotPostOwner)

	updated, err := svc.Update(post.ID, alice.ID, PostInput{Title: "renamed", Content: "new content", Published: false})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "new content", updated.Content)
	assert.False(t, updated.Published)

	_, err = svc.Update(post.ID+100, alice.ID, PostInput{Title: "x", Content: "y", Published: true})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePostOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPostService(repository.NewPostRepository(db))
	alice := createTestUser(t, db, "alice@x.com")
	bob := createTestUser(t, db, "bob@x.com")
	post := createTestPost(t, db, alice.ID, "doomed")

	assert.ErrorIs(t, svc.Delete(post.ID, bob.ID), ErrNotPostOwner)
	assert.ErrorIs(t, svc.Delete(post.ID+100, alice.ID), ErrPostNotFound)

	require.NoError(t, svc.Delete(post.ID, alice.ID))
	_, err := svc.Get(post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePostCascadesVotes(t *testing.T) {
	db := setupTestDB(t)
	postRepo := repository.NewPostRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	postSvc := NewPostService(postRepo)
	voteSvc := NewVoteService(postRepo, voteRepo)

	alice := createTestUser(t, db, "alice@x.com")
	post := createTestPost(t, db, alice.ID, "voted")
	require.NoError(t, voteSvc.Cast(alice.ID, post.ID))

	require.NoError(t, postSvc.Delete(post.ID, alice.ID))

	count, err := voteRepo.CountByPostID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestDeleteUserCascadesPostsAndVotes(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	postSvc := NewPostService(postRepo)
	voteSvc := NewVoteService(postRepo, voteRepo)

	alice := createTestUser(t, db, "alice@x.com")
	bob := createTestUser(t, db, "bob@x.com")
	post := createTestPost(t, db, alice.ID, "alice post")
	require.NoError(t, voteSvc.Cast(bob.ID, post.ID))

	require.NoError(t, userRepo.Delete(alice.ID))

	_, err := postSvc.Get(post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	count, err := voteRepo.CountByPostID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
