package model

type Video struct {
	VideoId     int64  `gorm:"column:video_id;primaryKey;autoIncrement" json:"video_id"`
	UserId      int64  `gorm:"column:user_id;index" json:"user_id"`
	Title       string `gorm:"column:title" json:"title"`
	Description string `gorm:"column:description" json:"description"`
	VideoUrl    string `gorm:"column:video_url" json:"video_url"`
	CoverUrl    string `gorm:"column:cover_url" json:"cover_url"`
	VisitCount  int64  `gorm:"column:visit_count;default:0" json:"visit_count"`
	CreatedAt   string `gorm:"column:created_at" json:"created_at"`
}

func (Video) TableName() string {
	return "videos"
}
