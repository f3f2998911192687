package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
)

func visualPage() *content.LandingPage {
	return &content.LandingPage{
		ID:      "page-1",
		OwnerID: "owner-1",
		Name:    "Launch page",
		Mode:    content.ModeVisual,
	}
}

func newTestBuilder(t *testing.T, pageRepo *fakePageRepo, productRepo *fakeProductRepo) *BuilderService {
	t.Helper()
	fragment := newTestFragmentService(t, pageRepo, productRepo)
	return NewBuilderService(pageRepo, fragment, newTestLogger(t))
}

func TestOpenSessionChecksOwnership(t *testing.T) {
	builder := newTestBuilder(t, newFakePageRepo(visualPage()), newFakeProductRepo())

	_, err := builder.OpenSession("page-1", "someone-else")
	assert.Error(t, err)

	_, err = builder.OpenSession("missing", "owner-1")
	assert.Error(t, err)

	session, err := builder.OpenSession("page-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "page-1", session.PageID)
	assert.Equal(t, 0, session.Tree.Len())
}

func TestCloseSessionDropsIt(t *testing.T) {
	builder := newTestBuilder(t, newFakePageRepo(visualPage()), newFakeProductRepo())
	session, err := builder.OpenSession("page-1", "owner-1")
	require.NoError(t, err)

	builder.CloseSession(session.ID)

	_, err = builder.Session(session.ID)
	assert.Error(t, err)
}

func TestAddElementSelectsNewElement(t *testing.T) {
	builder := newTestBuilder(t, newFakePageRepo(visualPage()), newFakeProductRepo())
	session, err := builder.OpenSession("page-1", "owner-1")
	require.NoError(t, err)

	id, err := builder.AddElement(session.ID, tree.KindSection)
	require.NoError(t, err)

	assert.Equal(t, []string{id}, session.Tree.Roots)
	assert.Equal(t, id, session.SelectedID)

	_, err = builder.AddElement(session.ID, tree.ElementKind("hologram"))
	assert.Error(t, err)
}

func TestInsertElementIntoContainer(t *testing.T) {
	builder := newTestBuilder(t, newFakePageRepo(visualPage()), newFakeProductRepo())
	session, err := builder.OpenSession("page-1", "owner-1")
	require.NoError(t, err)

	sectionID, err := builder.AddElement(session.ID, tree.KindSection)
	require.NoError(t, err)

	headingID, err := builder.InsertElement(session.ID, sectionID, tree.KindHeading)
	require.NoError(t, err)
	assert.Equal(t, []string{headingID}, session.Tree.ChildIDs(sectionID))
	assert.Equal(t, headingID, session.SelectedID)

	// Dropping into a non-container creates nothing.
	id, err := builder.InsertElement(session.ID, headingID, tree.KindText)
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Equal(t, 2, session.Tree.Len())
}

func TestUpdateGestures(t *testing.T) {
	builder := newTestBuilder(t, newFakePageRepo(visualPage()), newFakeProductRepo())
	session, err := builder.OpenSession("page-1", "owner-1")
	require.NoError(t, err)

	id, err := builder.AddElement(session.ID, tree.KindHeading)
	require.NoError(t, err)

	require.NoError(t, builder.UpdateContent(session.ID, id, "Summer sale"))
	require.NoError(t, builder.UpdateStyle(session.ID, id, map[string]string{"color": "#111111"}))
	require.NoError(t, builder.UpdateProps(session.ID, id, map[string]string{"level": "1"}))

	node := session.Tree.Find(id)
	require.NotNil(t, node)
	assert.Equal(t, "Summer sale", node.Content)
	assert.Equal(t, "#111111", node.Style["color"])
	assert.Equal(t, "32px", node.Style["fontSize"])
	assert.Equal(t, "1", node.Props["level"])
}

func TestSelectElementClearsOnMissingID(t *testing.T) {
	builder := newTestBuilder(t, newFakePageRepo(visualPage()), newFakeProductRepo())
	session, err := builder.OpenSession("page-1", "owner-1")
	require.NoError(t, err)

	id, err := builder.AddElement(session.ID, tree.KindText)
	require.NoError(t, err)

	require.NoError(t, builder.SelectElement(session.ID, id))
	assert.Equal(t, id, session.SelectedID)

	require.NoError(t, builder.SelectElement(session.ID, "missing"))
	assert.Empty(t, session.SelectedID)
}

func TestDeleteElementClearsSelectionInsideSubtree(t *testing.T) {
	builder := newTestBuilder(t, newFakePageRepo(visualPage()), newFakeProductRepo())
	session, err := builder.OpenSession("page-1", "owner-1")
	require.NoError(t, err)

	sectionID, err := builder.AddElement(session.ID, tree.KindSection)
	require.NoError(t, err)
	headingID, err := builder.InsertElement(session.ID, sectionID, tree.KindHeading)
	require.NoError(t, err)
	require.NoError(t, builder.SelectElement(session.ID, headingID))

	require.NoError(t, builder.DeleteElement(session.ID, sectionID))

	assert.Equal(t, 0, session.Tree.Len())
	assert.Empty(t, session.SelectedID)
}

func TestMoveElementGesture(t *testing.T) {
	builder := newTestBuilder(t, newFakePageRepo(visualPage()), newFakeProductRepo())
	session, err := builder.OpenSession("page-1", "owner-1")
	require.NoError(t, err)

	sectionID, err := builder.AddElement(session.ID, tree.KindSection)
	require.NoError(t, err)
	galleryID, err := builder.AddElement(session.ID, tree.KindProductGallery)
	require.NoError(t, err)

	require.NoError(t, builder.MoveElement(session.ID, galleryID, sectionID, tree.PositionInside))
	assert.Equal(t, []string{sectionID}, session.Tree.Roots)
	assert.Equal(t, []string{galleryID}, session.Tree.ChildIDs(sectionID))

	// An invalid move is a silent no-op, not an error.
	require.NoError(t, builder.MoveElement(session.ID, galleryID, "missing", tree.PositionBefore))
	assert.Equal(t, []string{galleryID}, session.Tree.ChildIDs(sectionID))
}

func TestHandleDropRoutesByPayload(t *testing.T) {
	builder := newTestBuilder(t, newFakePageRepo(visualPage()), newFakeProductRepo())
	session, err := builder.OpenSession("page-1", "owner-1")
	require.NoError(t, err)

	sectionID, err := builder.AddElement(session.ID, tree.KindSection)
	require.NoError(t, err)

	// Palette drop inside a container creates a new element there.
	textID, err := builder.HandleDrop(session.ID, DropPayload{Kind: tree.KindText}, sectionID, tree.PositionInside)
	require.NoError(t, err)
	assert.Equal(t, []string{textID}, session.Tree.ChildIDs(sectionID))

	// Palette drop at the top level appends a new root.
	buttonID, err := builder.HandleDrop(session.ID, DropPayload{Kind: tree.KindButton}, "", tree.PositionAfter)
	require.NoError(t, err)
	assert.Contains(t, session.Tree.Roots, buttonID)

	// Dropping an existing node moves it instead of creating one.
	before := session.Tree.Len()
	movedID, err := builder.HandleDrop(session.ID, DropPayload{NodeID: buttonID}, sectionID, tree.PositionInside)
	require.NoError(t, err)
	assert.Equal(t, buttonID, movedID)
	assert.Equal(t, before, session.Tree.Len())
	assert.Equal(t, []string{textID, buttonID}, session.Tree.ChildIDs(sectionID))
}

func TestSavePersistsWorkingTree(t *testing.T) {
	pageRepo := newFakePageRepo(visualPage())
	builder := newTestBuilder(t, pageRepo, newFakeProductRepo())
	session, err := builder.OpenSession("page-1", "owner-1")
	require.NoError(t, err)

	sectionID, err := builder.AddElement(session.ID, tree.KindSection)
	require.NoError(t, err)
	headingID, err := builder.InsertElement(session.ID, sectionID, tree.KindHeading)
	require.NoError(t, err)
	require.NoError(t, builder.UpdateContent(session.ID, headingID, "Launch day"))

	page, err := builder.Save(session.ID)
	require.NoError(t, err)

	require.Len(t, pageRepo.updated, 1)
	require.Len(t, page.Elements, 1)
	assert.Equal(t, sectionID, page.Elements[0].ID)
	require.Len(t, page.Elements[0].Children, 1)
	assert.Equal(t, "Launch day", page.Elements[0].Children[0].Content)
}

func TestBuilderFlowEndToEnd(t *testing.T) {
	pageRepo := newFakePageRepo(visualPage())
	productRepo := newFakeProductRepo(&content.Product{
		ID:       "prod-1",
		OwnerID:  "owner-1",
		Name:     "Widget",
		Price:    9.99,
		Currency: "EUR",
	})
	fragment := newTestFragmentService(t, pageRepo, productRepo)
	builder := NewBuilderService(pageRepo, fragment, newTestLogger(t))

	session, err := builder.OpenSession("page-1", "owner-1")
	require.NoError(t, err)

	sectionID, err := builder.AddElement(session.ID, tree.KindSection)
	require.NoError(t, err)
	_, err = builder.InsertElement(session.ID, sectionID, tree.KindProductTitle)
	require.NoError(t, err)
	_, err = builder.InsertElement(session.ID, sectionID, tree.KindProductPrice)
	require.NoError(t, err)

	_, err = builder.Save(session.ID)
	require.NoError(t, err)

	result, err := fragment.RenderPage("page-1", "prod-1", nil)
	require.NoError(t, err)
	assert.Contains(t, result.HTML, "Widget")
	assert.Contains(t, result.HTML, "€9.99")
}
