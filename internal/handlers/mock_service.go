package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"todo_service/internal/models"
	"todo_service/internal/service"
)

// ---- Service Mocks ----

type mockTodos struct {
	listResp     []models.Todo
	listErr      error
	createResp   *models.Todo
	createErr    error
	getResp      *models.Todo
	getErr       error
	replaceResp  *models.Todo
	replaceErr   error
	completeResp *models.Todo
	completeErr  error
	deleteErr    error

	lastInput    service.TodoInput
	lastID       string
	lastComplete bool
}

func (m *mockTodos) List(ctx context.Context) ([]models.Todo, error) {
	return m.listResp, m.listErr
}
func (m *mockTodos) Create(ctx context.Context, in service.TodoInput) (*models.Todo, error) {
	m.lastInput = in
	return m.createResp, m.createErr
}
func (m *mockTodos) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	m.lastID = id
	return m.getResp, m.getErr
}
func (m *mockTodos) Replace(ctx context.Context, id string, in service.TodoInput) (*models.Todo, error) {
	m.lastID = id
	m.lastInput = in
	return m.replaceResp, m.replaceErr
}
func (m *mockTodos) SetCompletion(ctx context.Context, id string, complete bool) (*models.Todo, error) {
	m.lastID = id
	m.lastComplete = complete
	return m.completeResp, m.completeErr
}
func (m *mockTodos) Delete(ctx context.Context, id string) error {
	m.lastID = id
	return m.deleteErr
}

type mockAccounts struct {
	registerUser  *models.User
	registerToken string
	registerErr   error
	loginUser     *models.User
	loginToken    string
	loginErr      error
	deleteErr     error
	detailsResp   *models.User
	detailsErr    error
	passwordResp  *models.User
	passwordErr   error
	parseClaims   *service.Claims
	parseErr      error

	lastUsername string
	lastEmail    string
	lastPassword string
	lastID       string
	lastDetails  service.AccountDetails
}

func (m *mockAccounts) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	m.lastUsername, m.lastEmail, m.lastPassword = username, email, password
	return m.registerUser, m.registerToken, m.registerErr
}
func (m *mockAccounts) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	m.lastEmail, m.lastPassword = email, password
	return m.loginUser, m.loginToken, m.loginErr
}
func (m *mockAccounts) Delete(ctx context.Context, id string) error {
	m.lastID = id
	return m.deleteErr
}
func (m *mockAccounts) UpdateDetails(ctx context.Context, id string, d service.AccountDetails) (*models.User, error) {
	m.lastID = id
	m.lastDetails = d
	return m.detailsResp, m.detailsErr
}
func (m *mockAccounts) UpdatePassword(ctx context.Context, id, password string) (*models.User, error) {
	m.lastID = id
	m.lastPassword = password
	return m.passwordResp, m.passwordErr
}
func (m *mockAccounts) ParseToken(accessToken string) (*service.Claims, error) {
	return m.parseClaims, m.parseErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
