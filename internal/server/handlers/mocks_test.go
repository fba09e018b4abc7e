package handlers

import (
	"context"
	"log/slog"
	"os"

	"jobcart/internal/models"
	"jobcart/internal/server/storage"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // username -> User
	createError error
	getError    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	for _, u := range m.users {
		if user.Email != "" && u.Email == user.Email {
			return storage.ErrEmailAlreadyExists
		}
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

// mockApplicationStorage is a mock implementation of ApplicationStorage for testing
type mockApplicationStorage struct {
	apps        []*models.JobApplication
	nextID      int
	createError error
	listError   error
}

func newMockApplicationStorage() *mockApplicationStorage {
	return &mockApplicationStorage{nextID: 1}
}

func (m *mockApplicationStorage) CreateApplication(ctx context.Context, app *models.JobApplication) error {
	if m.createError != nil {
		return m.createError
	}
	app.ID = m.nextID
	m.nextID++
	m.apps = append(m.apps, app)
	return nil
}

func (m *mockApplicationStorage) ListByOwner(ctx context.Context, owner string) ([]*models.JobApplication, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	result := make([]*models.JobApplication, 0)
	for _, app := range m.apps {
		if app.Owner == owner {
			result = append(result, app)
		}
	}
	return result, nil
}

func (m *mockApplicationStorage) UpdateStatus(ctx context.Context, id int, owner string, status models.ApplicationStatus) (*models.JobApplication, error) {
	for _, app := range m.apps {
		if app.ID == id {
			if app.Owner != owner {
				return nil, storage.ErrNotOwner
			}
			app.Status = status
			return app, nil
		}
	}
	return nil, storage.ErrApplicationNotFound
}

// mockProductStorage is a mock implementation of ProductStorage for testing
type mockProductStorage struct {
	products    []*models.Product
	nextID      int
	createError error
	listError   error
}

func newMockProductStorage() *mockProductStorage {
	return &mockProductStorage{nextID: 1}
}

func (m *mockProductStorage) CreateProduct(ctx context.Context, product *models.Product) error {
	if m.createError != nil {
		return m.createError
	}
	product.ID = m.nextID
	m.nextID++
	m.products = append(m.products, product)
	return nil
}

func (m *mockProductStorage) ListProducts(ctx context.Context) ([]*models.Product, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.products, nil
}

func (m *mockProductStorage) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, storage.ErrProductNotFound
}

// mockCartStorage is a mock implementation of CartStorage for testing
type mockCartStorage struct {
	items    []*models.CartItem
	setError error
}

func newMockCartStorage() *mockCartStorage {
	return &mockCartStorage{}
}

func (m *mockCartStorage) GetItem(ctx context.Context, owner string, productID int) (*models.CartItem, error) {
	for _, item := range m.items {
		if item.Owner == owner && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, storage.ErrCartItemNotFound
}

func (m *mockCartStorage) SetItem(ctx context.Context, item *models.CartItem) error {
	if m.setError != nil {
		return m.setError
	}
	for _, existing := range m.items {
		if existing.Owner == item.Owner && existing.ProductID == item.ProductID {
			existing.Quantity = item.Quantity
			return nil
		}
	}
	m.items = append(m.items, item)
	return nil
}

func (m *mockCartStorage) ListByOwner(ctx context.Context, owner string) ([]*models.CartItem, error) {
	result := make([]*models.CartItem, 0)
	for _, item := range m.items {
		if item.Owner == owner {
			result = append(result, item)
		}
	}
	return result, nil
}

// authedRequest adds the identity that Authenticate middleware would have
// put into the request context.
func authedRequest(ctx context.Context, username, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, "id-"+username)
	ctx = context.WithValue(ctx, UsernameKey, username)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}
