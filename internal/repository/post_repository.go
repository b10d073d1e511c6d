package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"postboard/internal/model"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// postVoteRow is the scan target for the vote-count join. Grouping by the
// posts primary key keeps the whole row selectable.
type postVoteRow struct {
	model.Post
	Votes int64
}

func (r *PostRepository) votesQuery() *gorm.DB {
	return r.db.Model(&model.Post{}).
		Select("posts.*, count(votes.post_id) AS votes").
		Joins("LEFT JOIN votes ON votes.post_id = posts.id").
		Group("posts.id")
}

func (r *PostRepository) ListWithVotes(limit int) ([]model.PostWithVotes, error) {
	var rows []postVoteRow
	if err := r.votesQuery().
		Order("posts.id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list posts failed: %w", err)
	}

	out := make([]model.PostWithVotes, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.PostWithVotes{Post: row.Post, Votes: row.Votes})
	}
	if err := r.attachOwners(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostRepository) GetByIDWithVotes(id uint) (*model.PostWithVotes, error) {
	var rows []postVoteRow
	if err := r.votesQuery().
		Where("posts.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	result := []model.PostWithVotes{{Post: rows[0].Post, Votes: rows[0].Votes}}
	if err := r.attachOwners(result); err != nil {
		return nil, err
	}
	return &result[0], nil
}

// attachOwners fills the embedded owner on each post with one explicit query.
func (r *PostRepository) attachOwners(posts []model.PostWithVotes) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.Post.OwnerID)
	}

	var owners []model.User
	if err := r.db.Where("id IN ?", ids).Find(&owners).Error; err != nil {
		return fmt.Errorf("query post owners failed: %w", err)
	}

	byID := make(map[uint]model.User, len(owners))
	for _, owner := range owners {
		byID[owner.ID] = owner
	}
	for i := range posts {
		posts[i].Post.Owner = byID[posts[i].Post.OwnerID]
	}
	return nil
}

func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("create post failed: %w", err)
	}
	if err := r.db.First(&post.Owner, post.OwnerID).Error; err != nil {
		return fmt.Errorf("query post owner failed: %w", err)
	}
	return nil
}

func (r *PostRepository) Update(post *model.Post) error {
	updates := map[string]interface{}{
		"title":     post.Title,
		"content":   post.Content,
		"published": post.Published,
	}
	if err := r.db.Model(&model.Post{}).Where("id = ?", post.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("update post failed: %w", err)
	}
	if err := r.db.First(post, post.ID).Error; err != nil {
		return fmt.Errorf("reload post failed: %w", err)
	}
	if err := r.db.First(&post.Owner, post.OwnerID).Error; err != nil {
		return fmt.Errorf("query post owner failed: %w", err)
	}
	return nil
}

func (r *PostRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Post{}, id).Error; err != nil {
		return fmt.Errorf("delete post failed: %w", err)
	}
	return nil
}
