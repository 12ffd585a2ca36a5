package ws

const (
	EventReactionUpdate = "reaction-update"
	EventCommentCreated = "comment-created"
)

// Event is the envelope every subscriber receives. Delivery is global: clients
// filter by video_id themselves.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type ReactionUpdate struct {
	VideoId      int64 `json:"video_id"`
	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
}

type CommentPayload struct {
	UserName string `json:"username"`
	Avatar   string `json:"avatar"`
	Text     string `json:"text"`
}

type CommentCreated struct {
	VideoId int64          `json:"video_id"`
	Comment CommentPayload `json:"comment"`
}

func NewReactionUpdate(videoId, likeCount, dislikeCount int64) Event {
	return Event{
		Type: EventReactionUpdate,
		Data: ReactionUpdate{
			VideoId:      videoId,
			LikeCount:    likeCount,
			DislikeCount: dislikeCount,
		},
	}
}

func NewCommentCreated(videoId int64, username, avatar, text string) Event {
	return Event{
		Type: EventCommentCreated,
		Data: CommentCreated{
			VideoId: videoId,
			Comment: CommentPayload{
				UserName: username,
				Avatar:   avatar,
				Text:     text,
			},
		},
	}
}
