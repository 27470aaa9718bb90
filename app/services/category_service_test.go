package services

import (
	"context"
	"testing"

	"github.com/adrinata/go-catalog/app/apperrors"
	"github.com/adrinata/go-catalog/app/configs"
	"github.com/adrinata/go-catalog/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() configs.ENV {
	return configs.ENV{
		MaxCategoryDepth:     3,
		MaxPageSize:          100,
		AttributeInheritance: true,
	}
}

func strPtr(s string) *string { return &s }

func TestCreateCategoryTypeRule(t *testing.T) {
	svc := NewCategoryService(nil, &categoryRepoMock{}, nil, testConfig())

	_, err := svc.Create(context.Background(), CreateCategoryInput{Name: "Beverages"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation), "root without type")

	_, err = svc.Create(context.Background(), CreateCategoryInput{
		Name:           "Coffee",
		ParentID:       strPtr("p1"),
		CategoryTypeID: strPtr("t1"),
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation), "child with type")
}

func TestCreateCategoryDepthLimit(t *testing.T) {
	repo := &categoryRepoMock{}
	cfg := testConfig()
	cfg.MaxCategoryDepth = 2
	svc := NewCategoryService(nil, repo, nil, cfg)

	parent := &models.Category{Base: models.Base{ID: "p", IsActive: true}, ParentID: strPtr("r")}
	root := &models.Category{Base: models.Base{ID: "r", IsActive: true}}
	repo.On("GetByID", mock.Anything, "p").Return(parent, nil)
	repo.On("GetByID", mock.Anything, "r").Return(root, nil)

	_, err := svc.Create(context.Background(), CreateCategoryInput{
		Name:     "Too Deep",
		ParentID: strPtr("p"),
	})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeDepthExceeded))
}

func TestCreateCategoryDerivesSiblingScopedSlug(t *testing.T) {
	repo := &categoryRepoMock{}
	svc := NewCategoryService(nil, repo, nil, testConfig())

	repo.On("SlugExists", mock.Anything, (*string)(nil), "coffee", "").Return(true, nil)
	repo.On("SlugExists", mock.Anything, (*string)(nil), "coffee-1", "").Return(false, nil)

	var created *models.Category
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Category")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*models.Category) }).
		Return(nil)
	repo.On("GetByID", mock.Anything, mock.AnythingOfType("string")).Return(&models.Category{}, nil)

	_, err := svc.Create(context.Background(), CreateCategoryInput{
		Name:           "Coffee",
		CategoryTypeID: strPtr("t1"),
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "coffee-1", created.Slug)
	assert.False(t, created.SlugPinned)
	assert.Equal(t, models.SystemUserID, created.CreatedBy)
	assert.True(t, created.IsActive)
}

func TestMoveCategoryRejectsSelfParent(t *testing.T) {
	db, sqlMock := newMockDB(t)
	repo := &categoryRepoMock{}
	svc := NewCategoryService(db, repo, nil, testConfig())

	repo.On("GetByID", mock.Anything, "a").Return(&models.Category{Base: models.Base{ID: "a"}}, nil)

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	_, err := svc.Move(context.Background(), "a", MoveCategoryInput{ParentID: strPtr("a")})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeCycle))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMoveCategoryRejectsDescendantParent(t *testing.T) {
	db, sqlMock := newMockDB(t)
	repo := &categoryRepoMock{}
	svc := NewCategoryService(db, repo, nil, testConfig())

	a := &models.Category{Base: models.Base{ID: "a", IsActive: true}}
	b := &models.Category{Base: models.Base{ID: "b", IsActive: true}, ParentID: strPtr("a")}
	repo.On("GetByID", mock.Anything, "a").Return(a, nil)
	repo.On("GetByID", mock.Anything, "b").Return(b, nil)

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	_, err := svc.Move(context.Background(), "a", MoveCategoryInput{ParentID: strPtr("b")})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeCycle))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMoveCategoryDepthLimit(t *testing.T) {
	db, sqlMock := newMockDB(t)
	repo := &categoryRepoMock{}
	cfg := testConfig()
	cfg.MaxCategoryDepth = 2
	svc := NewCategoryService(db, repo, nil, cfg)

	a := &models.Category{Base: models.Base{ID: "a", IsActive: true}}
	b := &models.Category{Base: models.Base{ID: "b", IsActive: true}}
	repo.On("GetByID", mock.Anything, "a").Return(a, nil)
	repo.On("GetByID", mock.Anything, "b").Return(b, nil)
	repo.On("GetChildren", mock.Anything, "a").Return([]models.Category{
		{Base: models.Base{ID: "c", IsActive: true}},
	}, nil)
	repo.On("GetChildren", mock.Anything, "c").Return([]models.Category{}, nil)

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	_, err := svc.Move(context.Background(), "a", MoveCategoryInput{ParentID: strPtr("b")})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeDepthExceeded))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMoveCategoryReparents(t *testing.T) {
	db, sqlMock := newMockDB(t)
	repo := &categoryRepoMock{}
	svc := NewCategoryService(db, repo, nil, testConfig())

	a := &models.Category{Base: models.Base{ID: "a", IsActive: true}, Name: "Coffee", Slug: "coffee"}
	b := &models.Category{Base: models.Base{ID: "b", IsActive: true}}
	repo.On("GetByID", mock.Anything, "a").Return(a, nil)
	repo.On("GetByID", mock.Anything, "b").Return(b, nil)
	repo.On("GetChildren", mock.Anything, "a").Return([]models.Category{}, nil)
	repo.On("SlugExists", mock.Anything, mock.Anything, "coffee", "a").Return(false, nil)
	repo.On("UpdateParent", mock.Anything, "a", mock.Anything, (*string)(nil), models.SystemUserID).Return(nil)

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	moved, err := svc.Move(context.Background(), "a", MoveCategoryInput{ParentID: strPtr("b")})
	require.NoError(t, err)
	assert.Equal(t, "a", moved.ID)
	repo.AssertCalled(t, "UpdateParent", mock.Anything, "a", mock.Anything, (*string)(nil), models.SystemUserID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestDeleteCategoryLeavesDescendantRowsUntouched(t *testing.T) {
	repo := &categoryRepoMock{}
	svc := NewCategoryService(nil, repo, nil, testConfig())

	repo.On("GetByID", mock.Anything, "a").Return(&models.Category{Base: models.Base{ID: "a", IsActive: true}}, nil)
	repo.On("SetActive", mock.Anything, "a", false, models.SystemUserID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "a"))
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "SetActive", mock.Anything, "b", false, models.SystemUserID)
	repo.AssertNotCalled(t, "GetChildren", mock.Anything, mock.Anything)
}

func TestDescendantsPrunesInactiveBranches(t *testing.T) {
	repo := &categoryRepoMock{}
	svc := NewCategoryService(nil, repo, nil, testConfig())

	repo.On("GetByID", mock.Anything, "root").Return(&models.Category{Base: models.Base{ID: "root", IsActive: true}}, nil)
	repo.On("GetChildren", mock.Anything, "root").Return([]models.Category{
		{Base: models.Base{ID: "live", IsActive: true}},
		{Base: models.Base{ID: "dead", IsActive: false}},
	}, nil)
	repo.On("GetChildren", mock.Anything, "live").Return([]models.Category{}, nil)

	descendants, err := svc.Descendants(context.Background(), "root", true)
	require.NoError(t, err)
	require.Len(t, descendants, 1)
	assert.Equal(t, "live", descendants[0].ID)
	repo.AssertNotCalled(t, "GetChildren", mock.Anything, "dead")
}

func TestSubtreeIDsIncludesSelf(t *testing.T) {
	repo := &categoryRepoMock{}
	svc := NewCategoryService(nil, repo, nil, testConfig())

	repo.On("GetByID", mock.Anything, "root").Return(&models.Category{Base: models.Base{ID: "root", IsActive: true}}, nil)
	repo.On("GetChildren", mock.Anything, "root").Return([]models.Category{
		{Base: models.Base{ID: "child", IsActive: true}},
	}, nil)
	repo.On("GetChildren", mock.Anything, "child").Return([]models.Category{}, nil)

	ids, err := svc.SubtreeIDs(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "child"}, ids)
}

func TestUpdateCategoryRecomputesSlugUnlessPinned(t *testing.T) {
	repo := &categoryRepoMock{}
	svc := NewCategoryService(nil, repo, nil, testConfig())

	cat := &models.Category{Base: models.Base{ID: "a", IsActive: true}, Name: "Old", Slug: "old"}
	repo.On("GetByID", mock.Anything, "a").Return(cat, nil)
	repo.On("SlugExists", mock.Anything, (*string)(nil), "new", "a").Return(false, nil)

	var saved *models.Category
	repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Category")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Category) }).
		Return(nil)

	_, err := svc.Update(context.Background(), "a", UpdateCategoryInput{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "new", saved.Slug)
}

func TestUpdateCategoryKeepsPinnedSlug(t *testing.T) {
	repo := &categoryRepoMock{}
	svc := NewCategoryService(nil, repo, nil, testConfig())

	cat := &models.Category{Base: models.Base{ID: "a", IsActive: true}, Name: "Old", Slug: "old", SlugPinned: true}
	repo.On("GetByID", mock.Anything, "a").Return(cat, nil)

	var saved *models.Category
	repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Category")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Category) }).
		Return(nil)

	_, err := svc.Update(context.Background(), "a", UpdateCategoryInput{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "old", saved.Slug)
	repo.AssertNotCalled(t, "SlugExists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
