package services

import (
	"context"
	"sync"
	"time"

	"gorm.io/datatypes"

	"github.com/examforge/exam-portal/internal/models"
	"github.com/examforge/exam-portal/internal/repositories"
)

// mockRepository is an in-memory Repository for service tests.
type mockRepository struct {
	mu sync.Mutex

	users         map[models.ID]*models.User
	questions     map[models.ID]*models.Question
	questionOrder []models.ID
	exams         map[models.ID]*models.Exam
	results       map[models.ID]*models.Result

	// Strictly increasing result timestamps keep ordering deterministic.
	lastResultAt time.Time
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:     make(map[models.ID]*models.User),
		questions: make(map[models.ID]*models.Question),
		exams:     make(map[models.ID]*models.Exam),
		results:   make(map[models.ID]*models.Result),
	}
}

func (m *mockRepository) User() repositories.UserRepository         { return &mockUserRepo{m} }
func (m *mockRepository) Question() repositories.QuestionRepository { return &mockQuestionRepo{m} }
func (m *mockRepository) Exam() repositories.ExamRepository         { return &mockExamRepo{m} }
func (m *mockRepository) Result() repositories.ResultRepository     { return &mockResultRepo{m} }

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

// ===== USERS =====

type mockUserRepo struct{ m *mockRepository }

func (r *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, existing := range r.m.users {
		if existing.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	user.CreatedAt = time.Now().UTC()
	r.m.users[user.ID] = user
	return nil
}

func (r *mockUserRepo) GetByID(ctx context.Context, id models.ID) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	user, ok := r.m.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (r *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, user := range r.m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// ===== QUESTIONS =====

type mockQuestionRepo struct{ m *mockRepository }

func (r *mockQuestionRepo) Create(ctx context.Context, question *models.Question) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	question.CreatedAt = time.Now().UTC()
	r.m.questions[question.ID] = question
	r.m.questionOrder = append(r.m.questionOrder, question.ID)
	return nil
}

func (r *mockQuestionRepo) CreateBatch(ctx context.Context, questions []*models.Question) error {
	for _, q := range questions {
		if err := r.Create(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (r *mockQuestionRepo) GetByID(ctx context.Context, id models.ID) (*models.Question, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	question, ok := r.m.questions[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return question, nil
}

func (r *mockQuestionRepo) GetByIDs(ctx context.Context, ids []models.ID) ([]*models.Question, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*models.Question
	for _, id := range ids {
		if q, ok := r.m.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

// GetRandom returns questions in insertion order so tests stay
// deterministic.
func (r *mockQuestionRepo) GetRandom(ctx context.Context, count int) ([]*models.Question, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*models.Question
	for _, id := range r.m.questionOrder {
		if len(out) == count {
			break
		}
		out = append(out, r.m.questions[id])
	}
	return out, nil
}

func (r *mockQuestionRepo) Count(ctx context.Context) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return int64(len(r.m.questions)), nil
}

// ===== EXAMS =====

type mockExamRepo struct{ m *mockRepository }

func (r *mockExamRepo) Create(ctx context.Context, exam *models.Exam) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	exam.CreatedAt = time.Now().UTC()
	r.m.exams[exam.ID] = exam
	return nil
}

// GetByID returns a snapshot so later writes are only visible through a
// fresh read, as with a real store.
func (r *mockExamRepo) GetByID(ctx context.Context, id models.ID) (*models.Exam, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	exam, ok := r.m.exams[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	snapshot := *exam
	snapshot.Answers = append(datatypes.JSONSlice[*int]{}, exam.Answers...)
	return &snapshot, nil
}

func (r *mockExamRepo) UpdateAnswer(ctx context.Context, id models.ID, questionIndex int, answer *int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	exam, ok := r.m.exams[id]
	if !ok || exam.IsCompleted {
		return repositories.ErrConflict
	}
	exam.Answers[questionIndex] = answer
	return nil
}

func (r *mockExamRepo) CompleteIfActive(ctx context.Context, id models.ID, submittedAt time.Time) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	exam, ok := r.m.exams[id]
	if !ok || exam.IsCompleted {
		return repositories.ErrConflict
	}
	exam.IsCompleted = true
	exam.SubmittedAt = &submittedAt
	exam.EndTime = submittedAt
	return nil
}

// ===== RESULTS =====

type mockResultRepo struct{ m *mockRepository }

func (r *mockResultRepo) Create(ctx context.Context, result *models.Result) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	now := time.Now().UTC()
	if !now.After(r.m.lastResultAt) {
		now = r.m.lastResultAt.Add(time.Millisecond)
	}
	r.m.lastResultAt = now
	result.CreatedAt = now
	r.m.results[result.ID] = result
	return nil
}

func (r *mockResultRepo) GetByID(ctx context.Context, id models.ID) (*models.Result, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	result, ok := r.m.results[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return result, nil
}

func (r *mockResultRepo) ListByUser(ctx context.Context, userID models.ID) ([]*models.Result, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*models.Result
	for _, result := range r.m.results {
		if result.UserID == userID {
			out = append(out, result)
		}
	}
	// Newest first.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}
