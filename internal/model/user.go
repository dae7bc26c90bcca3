package model

type User struct {
	ID   uint   `gorm:"column:user_id;primaryKey;autoIncrement" json:"userId"`
	Name string `gorm:"not null" json:"name"`

	// Back-reference for the FK join only; never serialized so the
	// payload cannot become cyclic.
	Tasks []Task `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
