package ports

import "context"

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	Posts           int64 `json:"posts"`
	PublishedPosts  int64 `json:"published_posts"`
	Projects        int64 `json:"projects"`
	PendingComments int64 `json:"pending_comments"`
	UnreadMessages  int64 `json:"unread_messages"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
