package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/dto"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/middleware"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/models"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/repository"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type UserHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *UserHandler
}

func (suite *UserHandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AutoMigrate(&models.User{}))

	suite.handler = NewUserHandler(
		services.NewUserService(repository.NewUserRepository(suite.db)))

	gin.SetMode(gin.TestMode)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *UserHandlerTestSuite) createTestUser(name, email, department string) *models.User {
	user := &models.User{
		ID:         uuid.NewString(),
		Email:      email,
		Name:       name,
		Department: department,
		Role:       "member",
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *UserHandlerTestSuite) listUsers(query string) (*httptest.ResponseRecorder, []dto.UserDTO) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/users", nil)
	c.Request.URL.RawQuery = query
	c.Set(middleware.ContextKeyUserID, uuid.NewString())

	suite.handler.ListUsers(c)

	var response map[string][]dto.UserDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return w, response["users"]
}

// TestListUsers_All returns the whole directory ordered by name
func (suite *UserHandlerTestSuite) TestListUsers_All() {
	suite.createTestUser("Bea", "bea@example.com", "Finance")
	suite.createTestUser("Ada", "ada@example.com", "Engineering")

	w, users := suite.listUsers("")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	suite.Require().Len(users, 2)
	assert.Equal(suite.T(), "Ada", users[0].Name)
	assert.Equal(suite.T(), "Bea", users[1].Name)
}

// TestListUsers_Search matches name or email substrings
func (suite *UserHandlerTestSuite) TestListUsers_Search() {
	suite.createTestUser("Ada Lovelace", "ada@example.com", "Engineering")
	suite.createTestUser("Grace Hopper", "grace@example.com", "Engineering")

	w, users := suite.listUsers("search=ada")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	suite.Require().Len(users, 1)
	assert.Equal(suite.T(), "Ada Lovelace", users[0].Name)
}

// TestListUsers_SearchCaseInsensitive matches regardless of case, even when
// only the name (not the lowercase email) carries the term
func (suite *UserHandlerTestSuite) TestListUsers_SearchCaseInsensitive() {
	suite.createTestUser("Ada Lovelace", "a.king@example.com", "Engineering")
	suite.createTestUser("Grace Hopper", "g.hopper@example.com", "Engineering")

	w, users := suite.listUsers("search=LOVELACE")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	suite.Require().Len(users, 1)
	assert.Equal(suite.T(), "Ada Lovelace", users[0].Name)

	w, users = suite.listUsers("search=hoPPer")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	suite.Require().Len(users, 1)
	assert.Equal(suite.T(), "Grace Hopper", users[0].Name)
}

// TestListUsers_Department filters by exact department
func (suite *UserHandlerTestSuite) TestListUsers_Department() {
	suite.createTestUser("Ada", "ada@example.com", "Engineering")
	suite.createTestUser("Bea", "bea@example.com", "Finance")

	w, users := suite.listUsers("department=Finance")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	suite.Require().Len(users, 1)
	assert.Equal(suite.T(), "Bea", users[0].Name)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
