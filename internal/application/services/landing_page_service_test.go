package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
)

func newTestPageService(t *testing.T, pageRepo *fakePageRepo) *LandingPageService {
	t.Helper()
	fragment := newTestFragmentService(t, pageRepo, newFakeProductRepo())
	return NewLandingPageService(pageRepo, fragment, newTestLogger(t))
}

func TestCreatePageSeedsVisualSection(t *testing.T) {
	svc := newTestPageService(t, newFakePageRepo())

	page, err := svc.Create("owner-1", "  Launch page  ", "")
	require.NoError(t, err)

	assert.Equal(t, "Launch page", page.Name)
	assert.Equal(t, content.ModeVisual, page.Mode)
	require.Len(t, page.Elements, 1)
	assert.Equal(t, tree.KindSection, page.Elements[0].Kind)

	_, err = svc.Create("owner-1", "   ", content.ModeVisual)
	assert.Error(t, err)
}

func TestCreateCodePageStartsEmpty(t *testing.T) {
	svc := newTestPageService(t, newFakePageRepo())

	page, err := svc.Create("owner-1", "Code page", content.ModeCode)
	require.NoError(t, err)
	assert.Empty(t, page.Elements)
}

func TestGetEnforcesOwnership(t *testing.T) {
	pageRepo := newFakePageRepo(visualPage())
	svc := newTestPageService(t, pageRepo)

	page, err := svc.Get("page-1", "owner-1")
	require.NoError(t, err)
	require.NotNil(t, page)

	// Someone else's page reads as absent, not as forbidden.
	page, err = svc.Get("page-1", "someone-else")
	require.NoError(t, err)
	assert.Nil(t, page)
}

func TestUpdatePageAppliesPartialRequest(t *testing.T) {
	pageRepo := newFakePageRepo(visualPage())
	svc := newTestPageService(t, pageRepo)

	name := "Renamed"
	mode := content.ModeCode
	code := "<h1>{product_name}</h1>"
	page, err := svc.Update("page-1", "owner-1", UpdateRequest{
		Name:     &name,
		Mode:     &mode,
		HTMLCode: &code,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", page.Name)
	assert.Equal(t, content.ModeCode, page.Mode)
	assert.Equal(t, code, page.HTMLCode)
	require.Len(t, pageRepo.updated, 1)

	// Nil members leave their fields untouched.
	page, err = svc.Update("page-1", "owner-1", UpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", page.Name)
	assert.Equal(t, content.ModeCode, page.Mode)
}

func TestUpdatePageRejectsWrongOwnerAndEmptyName(t *testing.T) {
	svc := newTestPageService(t, newFakePageRepo(visualPage()))

	_, err := svc.Update("page-1", "someone-else", UpdateRequest{})
	assert.Error(t, err)

	blank := "   "
	_, err = svc.Update("page-1", "owner-1", UpdateRequest{Name: &blank})
	assert.Error(t, err)
}

func TestDeletePage(t *testing.T) {
	pageRepo := newFakePageRepo(visualPage())
	svc := newTestPageService(t, pageRepo)

	require.Error(t, svc.Delete("page-1", "someone-else"))
	require.NoError(t, svc.Delete("page-1", "owner-1"))
	assert.Empty(t, pageRepo.pages)
	assert.Error(t, svc.Delete("page-1", "owner-1"))
}
