package services

import (
	"testing"

	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repositories.NewPostgresCategoryRepository(db))

	_, err := svc.Create(models.CategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	_, err = svc.Create(models.CategoryRequest{Name: "Electronics"})
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestCategoryCreateRejectsMissingParent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repositories.NewPostgresCategoryRepository(db))

	missing := uint(999)
	_, err := svc.Create(models.CategoryRequest{Name: "Phones", ParentID: &missing})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCategoryReparentRejectsCycles(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repositories.NewPostgresCategoryRepository(db))

	root, err := svc.Create(models.CategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	child, err := svc.Create(models.CategoryRequest{Name: "Phones", ParentID: &root.ID})
	require.NoError(t, err)
	grandchild, err := svc.Create(models.CategoryRequest{Name: "Smartphones", ParentID: &child.ID})
	require.NoError(t, err)

	// A category cannot be its own parent.
	_, err = svc.Update(root.ID, models.CategoryRequest{Name: "Electronics", ParentID: &root.ID})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// Reparenting the root under its grandchild closes a loop.
	_, err = svc.Update(root.ID, models.CategoryRequest{Name: "Electronics", ParentID: &grandchild.ID})
	require.ErrorAs(t, err, &verr)

	// A legal reparent still works.
	updated, err := svc.Update(grandchild.ID, models.CategoryRequest{Name: "Smartphones", ParentID: &root.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.ParentID)
	assert.Equal(t, root.ID, *updated.ParentID)
}

func TestCategoryAncestors(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repositories.NewPostgresCategoryRepository(db))

	root, err := svc.Create(models.CategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	child, err := svc.Create(models.CategoryRequest{Name: "Phones", ParentID: &root.ID})
	require.NoError(t, err)
	grandchild, err := svc.Create(models.CategoryRequest{Name: "Smartphones", ParentID: &child.ID})
	require.NoError(t, err)

	chain, err := svc.Ancestors(grandchild.ID)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, child.ID, chain[0].ID)
	assert.Equal(t, root.ID, chain[1].ID)
}
