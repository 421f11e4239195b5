package models

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Role      string `gorm:"size:20;not null;default:user"`
	CreatedAt int64  `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// All returns every model the schema is built from.
func All() []any {
	return []any{&TicketModel{}, &CommentModel{}, &UserModel{}}
}
