package model

// VideoLike and VideoDislike are disjoint sets keyed by (user_id, video_id):
// a user holds at most one of the two for any video.
type VideoLike struct {
	UserId    int64  `gorm:"column:user_id;primaryKey" json:"user_id"`
	VideoId   int64  `gorm:"column:video_id;primaryKey" json:"video_id"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (VideoLike) TableName() string {
	return "likes"
}

type VideoDislike struct {
	UserId    int64  `gorm:"column:user_id;primaryKey" json:"user_id"`
	VideoId   int64  `gorm:"column:video_id;primaryKey" json:"video_id"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (VideoDislike) TableName() string {
	return "dislikes"
}

type Comment struct {
	CommentId int64  `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	UserId    int64  `gorm:"column:user_id;index" json:"user_id"`
	VideoId   int64  `gorm:"column:video_id;index" json:"video_id"`
	Content   string `gorm:"column:content" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
