package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badjuice/storefront/internal/cart/domain"
	"github.com/badjuice/storefront/internal/cart/repository"
)

func TestAddItemMergesExistingLine(t *testing.T) {
	repo := repository.NewMemoryCartRepository()

	repo.AddItem(1)
	repo.AddItem(1)
	repo.AddItem(1)

	lines := repo.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, domain.CartLine{ProductID: 1, Quantity: 3}, lines[0])
}

func TestAddItemAppendsNewLinesInOrder(t *testing.T) {
	repo := repository.NewMemoryCartRepository()

	repo.AddItem(5)
	repo.AddItem(2)
	repo.AddItem(9)

	lines := repo.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, 5, lines[0].ProductID)
	assert.Equal(t, 2, lines[1].ProductID)
	assert.Equal(t, 9, lines[2].ProductID)
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	repo := repository.NewMemoryCartRepository()

	repo.AddItem(1)
	repo.AddItem(1)
	repo.UpdateQuantity(1, 7)

	lines := repo.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestUpdateQuantityNonPositiveRemovesLine(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{name: "zero", quantity: 0},
		{name: "negative", quantity: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewMemoryCartRepository()
			repo.AddItem(1)
			repo.UpdateQuantity(1, 5)

			repo.UpdateQuantity(1, tt.quantity)

			assert.Empty(t, repo.Lines())
			assert.Equal(t, 0, repo.LineCount())
		})
	}
}

func TestUpdateQuantityUnknownProductDoesNotCreateLine(t *testing.T) {
	repo := repository.NewMemoryCartRepository()

	repo.UpdateQuantity(42, 3)

	assert.Empty(t, repo.Lines())
}

func TestUpdateQuantityPreservesLineOrder(t *testing.T) {
	repo := repository.NewMemoryCartRepository()

	repo.AddItem(1)
	repo.AddItem(2)
	repo.AddItem(3)
	repo.UpdateQuantity(1, 10)

	lines := repo.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, 1, lines[0].ProductID)
	assert.Equal(t, 10, lines[0].Quantity)
	assert.Equal(t, 2, lines[1].ProductID)
	assert.Equal(t, 3, lines[2].ProductID)
}

func TestRemoveItem(t *testing.T) {
	repo := repository.NewMemoryCartRepository()

	repo.AddItem(1)
	repo.AddItem(2)
	repo.RemoveItem(1)

	lines := repo.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].ProductID)

	// Removing an absent line is a no-op
	repo.RemoveItem(99)
	assert.Len(t, repo.Lines(), 1)
}
