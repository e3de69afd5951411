package entity

type Note struct {
	ID        string `gorm:"primaryKey"`
	UserID    int    `gorm:"column:user_id;not null"` // Soft reference to users(user_id), not enforced
	Content   string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
}
