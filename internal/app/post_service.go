package app

import (
	"errors"
	"strings"

	"postboard/internal/model"
	"postboard/internal/repository"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("not the owner of this post")
)

const defaultListLimit = 10

type PostService struct {
	postRepo *repository.PostRepository
}

type PostInput struct {
	Title     string
	Content   string
	Published bool
}

func NewPostService(postRepo *repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) List(limit int) ([]model.PostWithVotes, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.postRepo.ListWithVotes(limit)
}

func (s *PostService) Get(id uint) (*model.PostWithVotes, error) {
	if id == 0 {
		return nil, ErrPostNotFound
	}
	post, err := s.postRepo.GetByIDWithVotes(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) Create(ownerID uint, input PostInput) (*model.Post, error) {
	title := strings.TrimSpace(input.Title)
	if ownerID == 0 || title == "" {
		return nil, ErrInvalidInput
	}

	post := &model.Post{
		Title:     title,
		Content:   input.Content,
		Published: input.Published,
		OwnerID:   ownerID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Update(id, callerID uint, input PostInput) (*model.Post, error) {
	post, err := s.requireOwned(id, callerID)
	if err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Content = input.Content
	post.Published = input.Published
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(id, callerID uint) error {
	if _, err := s.requireOwned(id, callerID); err != nil {
		return err
	}
	return s.postRepo.Delete(id)
}

// requireOwned resolves a post and enforces the not-found-before-forbidden
// ordering shared by update and delete.
func (s *PostService) requireOwned(id, callerID uint) (*model.Post, error) {
	if id == 0 {
		return nil, ErrPostNotFound
	}
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.OwnerID != callerID {
		return nil, ErrNotPostOwner
	}
	return post, nil
}
