package model

import "strings"

type Task struct {
	ID     uint   `gorm:"column:task_id;primaryKey;autoIncrement" json:"taskId"`
	UserID uint   `gorm:"column:user_id;not null;index" json:"userId"`
	Title  string `gorm:"not null" json:"title"`
	Status Status `gorm:"not null" json:"status"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Task) TableName() string {
	return "todo_tasks"
}

// Status is the closed set of task states. Only the two canonical
// capitalized forms are ever persisted.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

// NormalizeStatus maps arbitrary input onto a canonical Status:
// leading/trailing whitespace is trimmed, the rest is matched
// case-insensitively against the two known words. Anything else fails.
func NormalizeStatus(raw string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "completed":
		return StatusCompleted, true
	case "pending":
		return StatusPending, true
	default:
		return "", false
	}
}
