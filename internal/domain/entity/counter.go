package entity

// Counter is the single-row sequence backing user_id assignment.
// The row is created on first allocation and never deleted.
type Counter struct {
	ID  int `gorm:"primaryKey;autoIncrement:false"`
	Seq int `gorm:"not null;default:0"`
}
