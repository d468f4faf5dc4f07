package post

import "time"

type CreateReq struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type CommentReq struct {
	Content string `json:"content"`
}

// PostWithCounts is a post annotated with engagement counts aggregated at
// read time, so they always match the underlying like/comment rows.
type PostWithCounts struct {
	Post
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

// Event is published to Kafka after a post is created, best effort.
type Event struct {
	ID        uint64    `json:"id"`
	AuthorID  uint64    `json:"author_id"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
