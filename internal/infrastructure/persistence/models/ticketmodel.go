package models

// TicketModel is the tickets table. Comments reference it by ticket_id only.
type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	CreatedAt   int64  `gorm:"not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

// CommentModel is the comments table. There is no foreign key to tickets;
// comments may outlive or precede their ticket.
type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Author    string `gorm:"size:255;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"not null"`
}

func (CommentModel) TableName() string {
	return "comments"
}
