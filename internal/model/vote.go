package model

// Vote is one user's vote on one post. The composite primary key keeps the
// pair unique; both parents cascade on delete.
type Vote struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID uint `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Post   Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
