package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badjuice/storefront/internal/review/domain"
	"github.com/badjuice/storefront/internal/review/repository"
	"github.com/badjuice/storefront/internal/review/usecase/command"
)

func TestSubmitReviewValidation(t *testing.T) {
	tests := []struct {
		name    string
		cmd     command.SubmitReviewCommand
		wantErr error
	}{
		{
			name:    "empty author",
			cmd:     command.SubmitReviewCommand{ProductID: 1, Author: "", Rating: 5, Comment: "great"},
			wantErr: domain.ErrAuthorRequired,
		},
		{
			name:    "whitespace author",
			cmd:     command.SubmitReviewCommand{ProductID: 1, Author: "   ", Rating: 5, Comment: "great"},
			wantErr: domain.ErrAuthorRequired,
		},
		{
			name:    "empty comment",
			cmd:     command.SubmitReviewCommand{ProductID: 1, Author: "v", Rating: 5, Comment: ""},
			wantErr: domain.ErrCommentRequired,
		},
		{
			name:    "rating too low",
			cmd:     command.SubmitReviewCommand{ProductID: 1, Author: "v", Rating: 0, Comment: "great"},
			wantErr: domain.ErrRatingOutOfRange,
		},
		{
			name:    "rating too high",
			cmd:     command.SubmitReviewCommand{ProductID: 1, Author: "v", Rating: 6, Comment: "great"},
			wantErr: domain.ErrRatingOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMemoryReviewRepository()
			handler := command.NewSubmitReviewHandler(repo)

			review, err := handler.Handle(tt.cmd)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, review)
			// A rejected submission leaves the store untouched.
			assert.Equal(t, 0, repo.Count())
		})
	}
}

func TestSubmitReviewSuccess(t *testing.T) {
	repo := repository.NewMemoryReviewRepository()
	handler := command.NewSubmitReviewHandler(repo)

	review, err := handler.Handle(command.SubmitReviewCommand{
		ProductID: 1,
		Author:    "v",
		Rating:    5,
		Comment:   "great",
	})

	require.NoError(t, err)
	require.NotNil(t, review)
	assert.NotZero(t, review.ID)
	assert.False(t, review.Date.IsZero())
	assert.Equal(t, 1, repo.Count())
}

func TestSubmitReviewAllowsDuplicates(t *testing.T) {
	repo := repository.NewMemoryReviewRepository()
	handler := command.NewSubmitReviewHandler(repo)

	cmd := command.SubmitReviewCommand{ProductID: 1, Author: "v", Rating: 4, Comment: "again"}
	for i := 0; i < 3; i++ {
		_, err := handler.Handle(cmd)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, repo.Count())
	assert.Len(t, repo.FindByProductID(1), 3)
}
