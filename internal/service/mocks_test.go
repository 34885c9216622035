package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"itemshare-backend/internal/domain"
	"itemshare-backend/internal/repository"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockItemRepo
type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockItemRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) Search(ctx context.Context, text string) ([]domain.Item, error) {
	args := m.Called(ctx, text)
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemRepo) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockReservationRepo) List(ctx context.Context, f repository.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByItem(ctx context.Context, itemID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByItemOwner(ctx context.Context, ownerID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByBookerAndItem(ctx context.Context, bookerID, itemID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, bookerID, itemID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) CompleteEnded(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepo
type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}
func (m *MockCommentRepo) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).([]domain.Comment), args.Error(1)
}
func (m *MockCommentRepo) ListByItemOwner(ctx context.Context, ownerID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Comment), args.Error(1)
}

// MockItemRequestRepo
type MockItemRequestRepo struct {
	mock.Mock
}

func (m *MockItemRequestRepo) Create(ctx context.Context, req *domain.ItemRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockItemRequestRepo) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}
func (m *MockItemRequestRepo) ListByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}
func (m *MockItemRequestRepo) ListByOthers(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}
func (m *MockItemRequestRepo) CreateResponse(ctx context.Context, resp *domain.ItemResponse) error {
	args := m.Called(ctx, resp)
	return args.Error(0)
}
func (m *MockItemRequestRepo) ListResponses(ctx context.Context, requestID int64) ([]domain.ItemResponse, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]domain.ItemResponse), args.Error(1)
}

// mockStore bundles the repository mocks behind the Store interface.
// Serializable just runs fn against the same store; transactional
// behavior itself is the database's concern, not the services'.
type mockStore struct {
	users        *MockUserRepo
	items        *MockItemRepo
	reservations *MockReservationRepo
	comments     *MockCommentRepo
	requests     *MockItemRequestRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		users:        new(MockUserRepo),
		items:        new(MockItemRepo),
		reservations: new(MockReservationRepo),
		comments:     new(MockCommentRepo),
		requests:     new(MockItemRequestRepo),
	}
}

func (s *mockStore) Users() repository.UserRepository               { return s.users }
func (s *mockStore) Items() repository.ItemRepository               { return s.items }
func (s *mockStore) Reservations() repository.ReservationRepository { return s.reservations }
func (s *mockStore) Comments() repository.CommentRepository         { return s.comments }
func (s *mockStore) Requests() repository.ItemRequestRepository     { return s.requests }

func (s *mockStore) Serializable(_ context.Context, fn func(repository.Store) error) error {
	return fn(s)
}
