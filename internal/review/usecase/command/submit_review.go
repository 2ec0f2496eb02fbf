package command

import (
	"strings"

	"github.com/badjuice/storefront/internal/review/domain"
)

// SubmitReviewCommand represents the command to submit a product review
type SubmitReviewCommand struct {
	ProductID int
	Author    string
	Rating    int
	Comment   string
}

// SubmitReviewHandler handles review submission
type SubmitReviewHandler struct {
	repo domain.ReviewRepository
}

// NewSubmitReviewHandler creates a new submit review handler
func NewSubmitReviewHandler(repo domain.ReviewRepository) *SubmitReviewHandler {
	return &SubmitReviewHandler{repo: repo}
}

// Handle executes the submit review command. Validation rejects the
// submission before any store mutation; a rejected review leaves the
// store untouched. Duplicate submissions are allowed.
func (h *SubmitReviewHandler) Handle(cmd SubmitReviewCommand) (*domain.Review, error) {
	if strings.TrimSpace(cmd.Author) == "" {
		return nil, domain.ErrAuthorRequired
	}
	if strings.TrimSpace(cmd.Comment) == "" {
		return nil, domain.ErrCommentRequired
	}
	if !domain.ValidateRating(cmd.Rating) {
		return nil, domain.ErrRatingOutOfRange
	}

	review := &domain.Review{
		ProductID: cmd.ProductID,
		Author:    cmd.Author,
		Rating:    cmd.Rating,
		Comment:   cmd.Comment,
	}

	if err := h.repo.Append(review); err != nil {
		return nil, err
	}

	return review, nil
}
