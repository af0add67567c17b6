package service

import (
	"context"

	"github.com/devfolio/portfolio-api/internal/core/ports"
)

type dashboardService struct {
	posts    ports.PostRepository
	projects ports.ProjectRepository
	comments ports.CommentRepository
	contact  ports.ContactRepository
}

// NewDashboardService returns the admin dashboard aggregator.
func NewDashboardService(
	posts ports.PostRepository,
	projects ports.ProjectRepository,
	comments ports.CommentRepository,
	contact ports.ContactRepository,
) ports.DashboardService {
	return &dashboardService{posts: posts, projects: projects, comments: comments, contact: contact}
}

func (s *dashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	posts, err := s.posts.Count(ctx, false)
	if err != nil {
		return nil, err
	}
	published, err := s.posts.Count(ctx, true)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.comments.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := s.contact.CountUnread(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		Posts:           posts,
		PublishedPosts:  published,
		Projects:        projects,
		PendingComments: pending,
		UnreadMessages:  unread,
	}, nil
}
