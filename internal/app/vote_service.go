package app

import (
	"errors"

	"gorm.io/gorm"

	"postboard/internal/model"
	"postboard/internal/repository"
)

var (
	ErrAlreadyVoted = errors.New("already voted on this post")
	ErrVoteNotFound = errors.New("vote does not exist")
)

type VoteService struct {
	postRepo *repository.PostRepository
	voteRepo *repository.VoteRepository
}

func NewVoteService(postRepo *repository.PostRepository, voteRepo *repository.VoteRepository) *VoteService {
	return &VoteService{postRepo: postRepo, voteRepo: voteRepo}
}

func (s *VoteService) Cast(userID, postID uint) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	existing, err := s.voteRepo.Get(userID, postID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadyVoted
	}

	vote := &model.Vote{UserID: userID, PostID: postID}
	if err := s.voteRepo.Create(vote); err != nil {
		// Composite primary key wins any race between the lookup and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyVoted
		}
		return err
	}
	return nil
}

func (s *VoteService) Withdraw(userID, postID uint) error {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	existing, err := s.voteRepo.Get(userID, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrVoteNotFound
	}
	return s.voteRepo.Delete(userID, postID)
}
