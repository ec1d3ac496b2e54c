package repositories

import "context"

// Repository aggregates the per-collection repositories behind one
// injectable interface. Connection lifecycle is owned by the hosting
// process, not by a package-level singleton.
type Repository interface {
	User() UserRepository
	Question() QuestionRepository
	Exam() ExamRepository
	Result() ResultRepository

	// WithTransaction runs fn against a Repository bound to a single
	// transaction; fn returning an error rolls everything back.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
