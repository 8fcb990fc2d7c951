package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/models"
)

func intPtr(i int) *int { return &i }

func TestHomeSectionUpdateReplacesImage(t *testing.T) {
	objects := newFakeStorage()
	store := newFakeHomeSectionStore(models.HomeSection{
		ID:       "s1",
		Title:    "Welcome",
		Content:  "Hello",
		ImageURL: "https://cdn.test/sif-assets/home/old.png",
	})
	svc := &HomeSectionService{sections: store, objects: objects}

	err := svc.Update(context.Background(), "s1", dto.SectionRequest{
		Title:    "Welcome",
		Content:  "Hello",
		ImageURL: "https://cdn.test/sif-assets/home/new.png",
	})
	require.NoError(t, err)

	// Exactly one delete, for the previous asset only
	require.Len(t, objects.deletes, 1)
	assert.Equal(t, "sif-assets/home/old.png", objects.deletes[0])

	updated, _ := store.FindByID("s1")
	assert.Equal(t, "https://cdn.test/sif-assets/home/new.png", updated.ImageURL)
}

func TestHomeSectionUpdateUnchangedImage(t *testing.T) {
	objects := newFakeStorage()
	store := newFakeHomeSectionStore(models.HomeSection{
		ID:       "s1",
		Title:    "Welcome",
		Content:  "Hello",
		ImageURL: "https://cdn.test/sif-assets/home/same.png",
	})
	svc := &HomeSectionService{sections: store, objects: objects}

	err := svc.Update(context.Background(), "s1", dto.SectionRequest{
		Title:    "New title",
		Content:  "New content",
		ImageURL: "https://cdn.test/sif-assets/home/same.png",
	})
	require.NoError(t, err)
	assert.Empty(t, objects.deletes)
}

func TestHomeSectionUpdateKeepsOrderIndexWhenOmitted(t *testing.T) {
	objects := newFakeStorage()
	store := newFakeHomeSectionStore(models.HomeSection{
		ID:         "s1",
		Title:      "Welcome",
		Content:    "Hello",
		ImageURL:   "https://cdn.test/sif-assets/home/a.png",
		OrderIndex: 7,
	})
	svc := &HomeSectionService{sections: store, objects: objects}

	err := svc.Update(context.Background(), "s1", dto.SectionRequest{
		Title:    "Welcome",
		Content:  "Hello",
		ImageURL: "https://cdn.test/sif-assets/home/a.png",
	})
	require.NoError(t, err)

	updated, _ := store.FindByID("s1")
	assert.Equal(t, 7, updated.OrderIndex)

	err = svc.Update(context.Background(), "s1", dto.SectionRequest{
		Title:      "Welcome",
		Content:    "Hello",
		ImageURL:   "https://cdn.test/sif-assets/home/a.png",
		OrderIndex: intPtr(2),
	})
	require.NoError(t, err)

	updated, _ = store.FindByID("s1")
	assert.Equal(t, 2, updated.OrderIndex)
}

func TestHomeSectionUpdateValidation(t *testing.T) {
	objects := newFakeStorage()
	store := newFakeHomeSectionStore(models.HomeSection{
		ID:       "s1",
		Title:    "Welcome",
		Content:  "Hello",
		ImageURL: "https://cdn.test/sif-assets/home/a.png",
	})
	svc := &HomeSectionService{sections: store, objects: objects}

	err := svc.Update(context.Background(), "s1", dto.SectionRequest{
		Title:    "",
		Content:  "Hello",
		ImageURL: "https://cdn.test/sif-assets/home/b.png",
	})
	require.ErrorIs(t, err, ErrValidation)

	// Nothing was mutated and no bucket call was made
	unchanged, _ := store.FindByID("s1")
	assert.Equal(t, "Welcome", unchanged.Title)
	assert.Empty(t, objects.deletes)
}

func TestHomeSectionUpdateNotFound(t *testing.T) {
	svc := &HomeSectionService{sections: newFakeHomeSectionStore(), objects: newFakeStorage()}

	err := svc.Update(context.Background(), "missing", dto.SectionRequest{
		Title:    "a",
		Content:  "b",
		ImageURL: "c",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHomeSectionUpdateFailureSkipsReap(t *testing.T) {
	objects := newFakeStorage()
	store := newFakeHomeSectionStore(models.HomeSection{
		ID:       "s1",
		Title:    "Welcome",
		Content:  "Hello",
		ImageURL: "https://cdn.test/sif-assets/home/old.png",
	})
	store.updateErr = assert.AnError
	svc := &HomeSectionService{sections: store, objects: objects}

	err := svc.Update(context.Background(), "s1", dto.SectionRequest{
		Title:    "Welcome",
		Content:  "Hello",
		ImageURL: "https://cdn.test/sif-assets/home/new.png",
	})
	require.Error(t, err)

	// The failed update must not leave the record pointing at a deleted asset
	assert.Empty(t, objects.deletes)
}

func TestHomeSectionDeleteReapsAsset(t *testing.T) {
	objects := newFakeStorage()
	store := newFakeHomeSectionStore(models.HomeSection{
		ID:       "s1",
		Title:    "Welcome",
		Content:  "Hello",
		ImageURL: "https://cdn.test/sif-assets/home/pic.png",
	})
	svc := &HomeSectionService{sections: store, objects: objects}

	err := svc.Delete(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, objects.deletes, 1)
	assert.Equal(t, "sif-assets/home/pic.png", objects.deletes[0])

	gone, _ := store.FindByID("s1")
	assert.Nil(t, gone)
}

func TestHomeSectionDeleteSucceedsWhenAssetDeleteFails(t *testing.T) {
	objects := newFakeStorage()
	objects.deleteErr = assert.AnError
	store := newFakeHomeSectionStore(models.HomeSection{
		ID:       "s1",
		Title:    "Welcome",
		Content:  "Hello",
		ImageURL: "https://cdn.test/sif-assets/home/pic.png",
	})
	svc := &HomeSectionService{sections: store, objects: objects}

	// Asset cleanup is best-effort; the entity deletion still succeeds
	err := svc.Delete(context.Background(), "s1")
	require.NoError(t, err)

	gone, _ := store.FindByID("s1")
	assert.Nil(t, gone)
}

func TestHomeSectionDeleteIgnoresForeignURL(t *testing.T) {
	objects := newFakeStorage()
	store := newFakeHomeSectionStore(models.HomeSection{
		ID:       "s1",
		Title:    "Welcome",
		Content:  "Hello",
		ImageURL: "https://elsewhere.example/some/image.png",
	})
	svc := &HomeSectionService{sections: store, objects: objects}

	err := svc.Delete(context.Background(), "s1")
	require.NoError(t, err)

	// URLs outside our storage endpoint are never deleted
	assert.Empty(t, objects.deletes)
}
