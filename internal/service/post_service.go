package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

// PostService handles post creation and lookup.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries the fields required to author a post.
type CreatePostInput struct {
	OwnerID uint
	Content string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost trims the content, rejects empty or oversized content and
// stores the post attributed to its owner. Posts are immutable once
// created.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	content := validation.TrimContent(in.Content)
	if content == "" {
		return nil, models.NewEmptyContentError()
	}
	if err := validation.ValidatePostContent(content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		UserID:  in.OwnerID,
		Content: content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns a single post by id, NOT_FOUND if absent.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}
