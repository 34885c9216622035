package http

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"

	"itemshare-backend/internal/domain"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, actorID, itemID int64, start, end domain.DateTime) (*domain.Reservation, error) {
	args := m.Called(ctx, actorID, itemID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockBookingService) Decide(ctx context.Context, actorID, reservationID int64, approve bool) (*domain.Reservation, error) {
	args := m.Called(ctx, actorID, reservationID, approve)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockBookingService) GetByID(ctx context.Context, actorID, reservationID int64) (*domain.Reservation, error) {
	args := m.Called(ctx, actorID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockBookingService) List(ctx context.Context, role domain.Role, actorID int64, state string) ([]domain.Reservation, error) {
	args := m.Called(ctx, role, actorID, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Add(ctx context.Context, ownerID int64, item *domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, ownerID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemService) Update(ctx context.Context, ownerID int64, patch domain.ItemPatch) (*domain.Item, error) {
	args := m.Called(ctx, ownerID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}
func (m *MockItemService) GetByID(ctx context.Context, actorID, itemID int64) (*domain.ItemBookings, error) {
	args := m.Called(ctx, actorID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemBookings), args.Error(1)
}
func (m *MockItemService) GetAllByOwner(ctx context.Context, ownerID int64) ([]domain.ItemBookings, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemBookings), args.Error(1)
}
func (m *MockItemService) Search(ctx context.Context, text string) ([]domain.Item, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}
func (m *MockItemService) CanComment(ctx context.Context, authorID, itemID int64) (bool, error) {
	args := m.Called(ctx, authorID, itemID)
	return args.Bool(0), args.Error(1)
}
func (m *MockItemService) AddComment(ctx context.Context, authorID, itemID int64, text string) (*domain.Comment, error) {
	args := m.Called(ctx, authorID, itemID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Update(ctx context.Context, userID int64, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, userID, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockItemRequestService struct {
	mock.Mock
}

func (m *MockItemRequestService) Add(ctx context.Context, requesterID int64, description string) (*domain.ItemRequest, error) {
	args := m.Called(ctx, requesterID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}
func (m *MockItemRequestService) GetOwn(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}
func (m *MockItemRequestService) GetAll(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemRequest), args.Error(1)
}
func (m *MockItemRequestService) GetByID(ctx context.Context, actorID, requestID int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, actorID, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemRequest), args.Error(1)
}

type testRouterMocks struct {
	users    *MockUserService
	items    *MockItemService
	bookings *MockBookingService
	requests *MockItemRequestService
}

func newTestRouter() (*testRouterMocks, *mux.Router) {
	m := &testRouterMocks{
		users:    new(MockUserService),
		items:    new(MockItemService),
		bookings: new(MockBookingService),
		requests: new(MockItemRequestService),
	}
	r := NewRouter(
		NewUserHandler(m.users),
		NewItemHandler(m.items),
		NewBookingHandler(m.bookings),
		NewItemRequestHandler(m.requests),
	)
	return m, r
}
