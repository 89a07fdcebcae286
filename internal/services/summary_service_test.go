package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mate-labs/matepr/internal/domain/models"
	domainErrors "github.com/mate-labs/matepr/internal/errors"
	"github.com/mate-labs/matepr/internal/i18n"
)

type MockSummaryVCS struct {
	mock.Mock
}

func (m *MockSummaryVCS) GetPR(ctx context.Context, prNumber int) (models.PRContext, error) {
	args := m.Called(ctx, prNumber)
	return args.Get(0).(models.PRContext), args.Error(1)
}

type MockSummaryProvider struct {
	mock.Mock
}

func (m *MockSummaryProvider) SummarizePR(ctx context.Context, pr models.PRContext) (models.Summary, error) {
	args := m.Called(ctx, pr)
	return args.Get(0).(models.Summary), args.Error(1)
}

func summaryTestTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return trans
}

func TestSummaryService_SummarizePR_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockVCS := new(MockSummaryVCS)
	mockProvider := new(MockSummaryProvider)

	pr := models.PRContext{
		Repo:   "octocat/hello",
		Number: 7,
		Title:  "Fix off-by-one",
	}
	expected := models.Summary{
		Text:     "## TL;DR\nArregla el límite del loop.",
		Provider: "basic",
	}

	mockVCS.On("GetPR", ctx, 7).Return(pr, nil)
	mockProvider.On("SummarizePR", ctx, pr).Return(expected, nil)

	service := NewSummaryService(
		WithVCSClient(mockVCS),
		WithSummarizer(mockProvider),
		WithTranslations(summaryTestTranslations(t)),
	)

	// Act
	got, err := service.SummarizePR(ctx, 7)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	mockVCS.AssertExpectations(t)
	mockProvider.AssertExpectations(t)
}

func TestSummaryService_SummarizePR_FetchError(t *testing.T) {
	ctx := context.Background()
	mockVCS := new(MockSummaryVCS)
	mockProvider := new(MockSummaryProvider)

	fetchErr := domainErrors.ErrRepositoryNotFound.WithContext("pr_number", 7)
	mockVCS.On("GetPR", ctx, 7).Return(models.PRContext{}, fetchErr)

	service := NewSummaryService(
		WithVCSClient(mockVCS),
		WithSummarizer(mockProvider),
		WithTranslations(summaryTestTranslations(t)),
	)

	_, err := service.SummarizePR(ctx, 7)

	require.Error(t, err)
	// El tipo del error de dominio se conserva tal cual
	var appErr *domainErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainErrors.TypeNotFound, appErr.Type)
	// Si el fetch falla nunca se llama al proveedor: todo o nada
	mockProvider.AssertNotCalled(t, "SummarizePR")
}

func TestSummaryService_SummarizePR_ProviderError(t *testing.T) {
	ctx := context.Background()
	mockVCS := new(MockSummaryVCS)
	mockProvider := new(MockSummaryProvider)

	pr := models.PRContext{Number: 7}
	mockVCS.On("GetPR", ctx, 7).Return(pr, nil)
	mockProvider.On("SummarizePR", ctx, pr).
		Return(models.Summary{}, domainErrors.ErrProviderUnavailable)

	service := NewSummaryService(
		WithVCSClient(mockVCS),
		WithSummarizer(mockProvider),
		WithTranslations(summaryTestTranslations(t)),
	)

	_, err := service.SummarizePR(ctx, 7)

	var appErr *domainErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainErrors.TypeProvider, appErr.Type)
}

func TestSummaryService_SummarizePR_WrapsPlainErrors(t *testing.T) {
	ctx := context.Background()
	mockVCS := new(MockSummaryVCS)
	mockProvider := new(MockSummaryProvider)

	pr := models.PRContext{Number: 7}
	plainErr := errors.New("boom")
	mockVCS.On("GetPR", ctx, 7).Return(pr, nil)
	mockProvider.On("SummarizePR", ctx, pr).Return(models.Summary{}, plainErr)

	service := NewSummaryService(
		WithVCSClient(mockVCS),
		WithSummarizer(mockProvider),
		WithTranslations(summaryTestTranslations(t)),
	)

	_, err := service.SummarizePR(ctx, 7)

	var appErr *domainErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainErrors.TypeProvider, appErr.Type)
	assert.Contains(t, err.Error(), "Error generating the summary for PR #7")
	assert.ErrorIs(t, err, plainErr)
}

func TestSummaryService_SummarizePR_ReportsProgress(t *testing.T) {
	ctx := context.Background()
	mockVCS := new(MockSummaryVCS)
	mockProvider := new(MockSummaryProvider)

	pr := models.PRContext{
		Number: 7,
		Files:  []models.ChangedFile{{Path: "src/loop.c", Additions: 3, Deletions: 1}},
	}
	mockVCS.On("GetPR", ctx, 7).Return(pr, nil)
	mockProvider.On("SummarizePR", ctx, pr).Return(models.Summary{Text: "ok"}, nil)

	var events []models.ProgressEvent
	service := NewSummaryService(
		WithVCSClient(mockVCS),
		WithSummarizer(mockProvider),
		WithTranslations(summaryTestTranslations(t)),
		WithProgress(func(ev models.ProgressEvent) {
			assert.Equal(t, 7, ev.PRNumber)
			events = append(events, ev)
		}),
	)

	_, err := service.SummarizePR(ctx, 7)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.StageFetchingPR, events[0].Stage)
	assert.Empty(t, events[0].Files)
	assert.Equal(t, models.StageGeneratingSummary, events[1].Stage)
	// El evento de generación trae los archivos ya traídos del PR
	assert.Equal(t, pr.Files, events[1].Files)
}

func TestSummaryService_SummarizePR_NoProgressAfterFetchError(t *testing.T) {
	ctx := context.Background()
	mockVCS := new(MockSummaryVCS)

	mockVCS.On("GetPR", ctx, 7).Return(models.PRContext{}, domainErrors.ErrRepositoryNotFound)

	var stages []models.ProgressStage
	service := NewSummaryService(
		WithVCSClient(mockVCS),
		WithSummarizer(new(MockSummaryProvider)),
		WithTranslations(summaryTestTranslations(t)),
		WithProgress(func(ev models.ProgressEvent) {
			stages = append(stages, ev.Stage)
		}),
	)

	_, err := service.SummarizePR(ctx, 7)

	require.Error(t, err)
	assert.Equal(t, []models.ProgressStage{models.StageFetchingPR}, stages)
}

func TestSummaryService_SummarizePR_MissingDependencies(t *testing.T) {
	t.Run("no VCS client", func(t *testing.T) {
		service := NewSummaryService(WithSummarizer(new(MockSummaryProvider)))

		_, err := service.SummarizePR(context.Background(), 1)

		var appErr *domainErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainErrors.TypeAuth, appErr.Type)
	})

	t.Run("no summarizer", func(t *testing.T) {
		mockVCS := new(MockSummaryVCS)
		service := NewSummaryService(WithVCSClient(mockVCS))

		_, err := service.SummarizePR(context.Background(), 1)

		var appErr *domainErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainErrors.TypeAuth, appErr.Type)
		// Sin proveedor configurado ni siquiera se consulta el VCS
		mockVCS.AssertNotCalled(t, "GetPR")
	})
}
