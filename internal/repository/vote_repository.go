package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"postboard/internal/model"
)

type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

func (r *VoteRepository) Create(vote *model.Vote) error {
	if err := r.db.Create(vote).Error; err != nil {
		return fmt.Errorf("create vote failed: %w", err)
	}
	return nil
}

func (r *VoteRepository) Get(userID, postID uint) (*model.Vote, error) {
	var vote model.Vote
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query vote failed: %w", err)
	}
	return &vote, nil
}

func (r *VoteRepository) Delete(userID, postID uint) error {
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.Vote{}).Error
	if err != nil {
		return fmt.Errorf("delete vote failed: %w", err)
	}
	return nil
}

func (r *VoteRepository) CountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Vote{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count votes failed: %w", err)
	}
	return count, nil
}
