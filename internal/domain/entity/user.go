package entity

// User is the general basic structure of all users across the platform.
//
// UserID is assigned from the sequence counter on insert and never
// reassigned; the table's own rowid is not exposed anywhere.
type User struct {
	UserID    int    `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	UserName  string `gorm:"not null"`
	Age       int    `gorm:"not null"`
	Email     string `gorm:"not null;uniqueIndex"`
	Password  string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
}
