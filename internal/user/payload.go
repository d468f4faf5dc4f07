package user

// Suggestion is a "who to follow" entry: a user the viewer does not follow
// yet, with a follower count derived from the follows table.
type Suggestion struct {
	ID            uint64 `json:"id"`
	Handle        string `json:"handle"`
	Name          string `json:"name"`
	Image         string `json:"image,omitempty"`
	FollowerCount int64  `json:"follower_count"`
}

type Profile struct {
	User
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	PostCount      int64 `json:"post_count"`
}

type UpdateReq struct {
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Website  string `json:"website"`
	Image    string `json:"image"`
}
