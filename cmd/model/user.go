package model

type User struct {
	UserId    int64  `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserName  string `gorm:"column:user_name;uniqueIndex;size:64" json:"user_name"`
	Password  string `gorm:"column:password" json:"-"`
	AvatarUrl string `gorm:"column:avatar_url" json:"avatar_url"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
