package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fragrance-tracker/internal/models"
)

func TestSupplyRoundTrip(t *testing.T) {
	repo := NewSupplyRepository(setupTestDB(t))

	supply := &models.Supply{
		Name:         "50ml Atomizer Bottle",
		Price:        1.20,
		PurchaseLink: "https://example.com/bottles",
		Quantity:     200,
	}
	require.NoError(t, repo.Create(supply))

	got, err := repo.GetByID(supply.ID)
	require.NoError(t, err)
	assert.Equal(t, "50ml Atomizer Bottle", got.Name)
	assert.Equal(t, 200, got.Quantity)

	byName, err := repo.GetByName("50ml Atomizer Bottle")
	require.NoError(t, err)
	assert.Equal(t, supply.ID, byName.ID)

	assert.ErrorIs(t, repo.Create(&models.Supply{Name: "50ml Atomizer Bottle"}), models.ErrDuplicateName)
}

func TestSupplyUpdateAndDelete(t *testing.T) {
	repo := NewSupplyRepository(setupTestDB(t))

	supply := &models.Supply{Name: "Label Roll", Price: 0.05, Quantity: 1000}
	require.NoError(t, repo.Create(supply))

	req := models.UpdateSupplyRequest{
		Name:     "Label Roll (matte)",
		Price:    0.07,
		Quantity: 900,
	}
	require.NoError(t, repo.Update(supply.ID, req))

	got, _ := repo.GetByID(supply.ID)
	assert.Equal(t, "Label Roll (matte)", got.Name)
	assert.Equal(t, 0.07, got.Price)

	assert.ErrorIs(t, repo.Update(supply.ID, models.UpdateSupplyRequest{Name: "x", Quantity: -1}), models.ErrInvalidQuantity)

	require.NoError(t, repo.Delete(supply.ID))
	assert.ErrorIs(t, repo.Delete(supply.ID), models.ErrNotFound)
}

func TestSupplyUpdateQuantity(t *testing.T) {
	repo := NewSupplyRepository(setupTestDB(t))

	supply := &models.Supply{Name: "Gift Box", Quantity: 40}
	require.NoError(t, repo.Create(supply))

	require.NoError(t, repo.UpdateQuantity(supply.ID, 35))
	got, _ := repo.GetByID(supply.ID)
	assert.Equal(t, 35, got.Quantity)

	assert.ErrorIs(t, repo.UpdateQuantity(supply.ID, -1), models.ErrInvalidQuantity)
	assert.ErrorIs(t, repo.UpdateQuantity(uuid.New(), 1), models.ErrNotFound)
}

func TestOilRoundTrip(t *testing.T) {
	repo := NewOilRepository(setupTestDB(t))

	oil := &models.Oil{
		Name:     "Aventus Type Oil",
		Size:     30,
		Price:    18.50,
		Quantity: 5,
	}
	require.NoError(t, repo.Create(oil))

	got, err := repo.GetByID(oil.ID)
	require.NoError(t, err)
	assert.Equal(t, 30.0, got.Size)
	assert.Equal(t, 18.50, got.Price)

	byName, err := repo.GetByName("Aventus Type Oil")
	require.NoError(t, err)
	assert.Equal(t, oil.ID, byName.ID)

	assert.ErrorIs(t, repo.Create(&models.Oil{Name: "Aventus Type Oil"}), models.ErrDuplicateName)

	require.NoError(t, repo.UpdateQuantity(oil.ID, 4))
	got, _ = repo.GetByID(oil.ID)
	assert.Equal(t, 4, got.Quantity)

	require.NoError(t, repo.Delete(oil.ID))
	_, err = repo.GetByID(oil.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
