package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/braincast/quiz-service/internal/events"
	"github.com/braincast/quiz-service/internal/jobs"
	"github.com/braincast/quiz-service/internal/models"
	"github.com/braincast/quiz-service/internal/repositories"
	"github.com/braincast/quiz-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockQuizRepository is a mock implementation of QuizRepository
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) CreateWithQuestions(ctx context.Context, quiz *models.QuizRow, questions []models.QuestionRow) (uint, error) {
	args := m.Called(ctx, quiz, questions)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockQuizRepository) GetByID(ctx context.Context, id uint) (*models.QuizRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizRow), args.Error(1)
}

func (m *MockQuizRepository) GetByIDWithQuestions(ctx context.Context, id uint) (*models.QuizRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuizRow), args.Error(1)
}

func (m *MockQuizRepository) List(ctx context.Context, filters repositories.QuizFilters) ([]*models.QuizRow, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.QuizRow), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuizRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuizRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

type importFixture struct {
	service   ImportService
	repo      *MockQuizRepository
	jobs      *jobs.MemoryStore
	publisher *events.MockEventPublisher
}

func newImportFixture() *importFixture {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	repo := new(MockQuizRepository)
	store := jobs.NewMemoryStore()
	publisher := events.NewMockEventPublisher(logger)

	return &importFixture{
		service:   NewImportService(repo, store, publisher, logger, validator.New()),
		repo:      repo,
		jobs:      store,
		publisher: publisher,
	}
}

const validQuizJSON = `{
	"title": "Capitals",
	"questions": [
		{"text": "Capital of France?", "type": "multiple-choice", "options": ["Paris", "Lyon"], "correctAnswer": "Paris"}
	]
}`

func TestImportJSON_SingleQuizPersisted(t *testing.T) {
	f := newImportFixture()
	f.repo.On("ExistsByTitle", mock.Anything, mock.Anything).Return(false, nil)
	f.repo.On("CreateWithQuestions", mock.Anything, mock.Anything, mock.Anything).Return(uint(7), nil)

	summary, err := f.service.ImportJSON(context.Background(), validQuizJSON, "user-1")

	require.NoError(t, err)
	assert.Equal(t, models.ImportCompleted, summary.Status)
	assert.Equal(t, 1, summary.TotalQuizzes)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 0, summary.ErrorCount)
	assert.Equal(t, []uint{7}, summary.CreatedIDs)

	f.repo.AssertNumberOfCalls(t, "CreateWithQuestions", 1)

	job, err := f.service.GetImportJob(context.Background(), summary.JobID)
	require.NoError(t, err)
	assert.Equal(t, models.ImportCompleted, job.Status)
	assert.Equal(t, 1, job.SuccessCount)
	assert.NotNil(t, job.CompletedAt)
}

func TestImportJSON_MalformedDocumentNeverTouchesRepo(t *testing.T) {
	f := newImportFixture()

	_, err := f.service.ImportJSON(context.Background(), `{"title": "broken`, "user-1")

	require.Error(t, err)
	assert.True(t, IsBadRequest(err))
	f.repo.AssertNotCalled(t, "CreateWithQuestions")
	assert.Empty(t, f.publisher.GetPublishedEvents())
}

func TestImportJSON_ValidationFailureAbortsPersistence(t *testing.T) {
	f := newImportFixture()

	doc := `[
		{"title": "Good", "questions": [{"text": "Q", "type": "fill-blank", "correctAnswer": "a"}]},
		{"title": "", "questions": []}
	]`

	summary, err := f.service.ImportJSON(context.Background(), doc, "user-1")

	// Validation rejection is a reported outcome, not a transport error.
	require.NoError(t, err)
	assert.Equal(t, models.ImportValidationFailed, summary.Status)
	assert.Equal(t, 2, summary.TotalQuizzes)
	assert.Equal(t, 0, summary.SuccessCount)
	assert.Contains(t, summary.Errors, "Quiz 2: Quiz title is required")
	assert.Contains(t, summary.Errors, "Quiz 2: Quiz must have at least one question")

	// Even the valid sibling is not persisted.
	f.repo.AssertNotCalled(t, "CreateWithQuestions")

	published := f.publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventImportFailed, published[0].Type)
}

func TestImportJSON_PersistenceFailureDoesNotBlockSiblings(t *testing.T) {
	f := newImportFixture()

	doc := `[
		{"title": "First", "questions": [{"text": "Q", "type": "fill-blank", "correctAnswer": "a"}]},
		{"title": "Second", "questions": [{"text": "Q", "type": "fill-blank", "correctAnswer": "b"}]},
		{"title": "Third", "questions": [{"text": "Q", "type": "fill-blank", "correctAnswer": "c"}]}
	]`

	f.repo.On("ExistsByTitle", mock.Anything, mock.Anything).Return(false, nil)
	f.repo.On("CreateWithQuestions", mock.Anything, mock.MatchedBy(func(q *models.QuizRow) bool {
		return q.Title == "Second"
	}), mock.Anything).Return(uint(0), errors.New("duplicate key"))
	f.repo.On("CreateWithQuestions", mock.Anything, mock.Anything, mock.Anything).Return(uint(1), nil)

	summary, err := f.service.ImportJSON(context.Background(), doc, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalQuizzes)
	assert.Equal(t, 2, summary.SuccessCount)
	assert.Equal(t, 1, summary.ErrorCount)
	require.Len(t, summary.Errors, 1)
	assert.True(t, strings.HasPrefix(summary.Errors[0], "Quiz 2 (Second):"), "got %q", summary.Errors[0])

	f.repo.AssertNumberOfCalls(t, "CreateWithQuestions", 3)
}

func TestImportJSON_EventsPublished(t *testing.T) {
	f := newImportFixture()
	f.repo.On("ExistsByTitle", mock.Anything, mock.Anything).Return(false, nil)
	f.repo.On("CreateWithQuestions", mock.Anything, mock.Anything, mock.Anything).Return(uint(3), nil)

	summary, err := f.service.ImportJSON(context.Background(), validQuizJSON, "user-1")
	require.NoError(t, err)

	published := f.publisher.GetPublishedEvents()
	require.Len(t, published, 2)

	assert.Equal(t, events.EventQuizImported, published[0].Type)
	imported, ok := published[0].Data.(events.QuizImportedEvent)
	require.True(t, ok)
	assert.Equal(t, uint(3), imported.QuizID)
	assert.Equal(t, "Capitals", imported.QuizTitle)
	assert.Equal(t, summary.JobID, imported.ImportJobID)

	assert.Equal(t, events.EventImportCompleted, published[1].Type)
	completed, ok := published[1].Data.(events.ImportCompletedEvent)
	require.True(t, ok)
	assert.Equal(t, 1, completed.SuccessCount)
}

func TestImportJSON_UnknownQuizTypeRejected(t *testing.T) {
	f := newImportFixture()

	doc := `{
		"title": "Mystery",
		"quiz_type": "bogus",
		"questions": [{"text": "Q", "type": "fill-blank", "correctAnswer": "a"}]
	}`

	summary, err := f.service.ImportJSON(context.Background(), doc, "user-1")

	require.NoError(t, err)
	assert.Equal(t, models.ImportValidationFailed, summary.Status)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, "Quiz 1: quiz_type must be a valid quiz type (standard, geography, image-based, timeline, categorization, word-logic)", summary.Errors[0])
	f.repo.AssertNotCalled(t, "CreateWithQuestions")
}

func TestImportJSON_DuplicateTitleWarnsWithoutBlocking(t *testing.T) {
	f := newImportFixture()
	f.repo.On("ExistsByTitle", mock.Anything, "Capitals").Return(true, nil)
	f.repo.On("CreateWithQuestions", mock.Anything, mock.Anything, mock.Anything).Return(uint(9), nil)

	summary, err := f.service.ImportJSON(context.Background(), validQuizJSON, "user-1")

	require.NoError(t, err)
	assert.Equal(t, models.ImportCompleted, summary.Status)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 0, summary.ErrorCount)
	require.Len(t, summary.Warnings, 1)
	assert.Equal(t, "Quiz 1 (Capitals): a quiz with this title already exists", summary.Warnings[0])

	// The warning travels to the job record too.
	job, err := f.service.GetImportJob(context.Background(), summary.JobID)
	require.NoError(t, err)
	assert.Equal(t, summary.Warnings, job.Warnings)
}

func TestImportCSV_GroupsRowsIntoQuizzes(t *testing.T) {
	f := newImportFixture()
	f.repo.On("ExistsByTitle", mock.Anything, mock.Anything).Return(false, nil)
	f.repo.On("CreateWithQuestions", mock.Anything, mock.Anything, mock.Anything).Return(uint(1), nil)

	csv := "title,question,question_type,options,correct_answer\n" +
		"Math,What is 2+2?,multiple-choice,1|2|3|4,4\n" +
		"Math,What is 3*3?,multiple-choice,6|9|12,9\n" +
		"Words,____ is the opposite of hot.,fill-blank,,cold\n"

	summary, err := f.service.ImportCSV(context.Background(), csv, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalQuizzes)
	assert.Equal(t, 2, summary.SuccessCount)
	f.repo.AssertNumberOfCalls(t, "CreateWithQuestions", 2)
}

func TestImportCSV_EmptyDocument(t *testing.T) {
	f := newImportFixture()

	_, err := f.service.ImportCSV(context.Background(), "", "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyDocument)
	f.repo.AssertNotCalled(t, "CreateWithQuestions")
}

func TestImportFromFile_DispatchesOnExtension(t *testing.T) {
	f := newImportFixture()
	f.repo.On("ExistsByTitle", mock.Anything, mock.Anything).Return(false, nil)
	f.repo.On("CreateWithQuestions", mock.Anything, mock.Anything, mock.Anything).Return(uint(1), nil)

	summary, err := f.service.ImportFromFile(context.Background(), strings.NewReader(validQuizJSON), "quizzes.JSON", "user-1")

	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessCount)
}

func TestImportFromFile_UnsupportedExtension(t *testing.T) {
	f := newImportFixture()

	_, err := f.service.ImportFromFile(context.Background(), strings.NewReader("whatever"), "quizzes.pdf", "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestGetImportJob_Unknown(t *testing.T) {
	f := newImportFixture()

	_, err := f.service.GetImportJob(context.Background(), "no-such-job")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImportJobNotFound)
	assert.True(t, IsNotFound(err))
}
