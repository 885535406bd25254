package httpHandler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agriwise-server/auth"
	"agriwise-server/entities"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var middlewareSecret = []byte("middleware-test-secret")

type staticUserRepo struct {
	user *entities.User
}

func (r *staticUserRepo) Create(u *entities.User) error { return nil }

func (r *staticUserRepo) GetByID(id string) (*entities.User, error) {
	if r.user != nil && r.user.ID == id {
		cp := *r.user
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *staticUserRepo) GetByEmail(email string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *staticUserRepo) GetByResetToken(tokenHash string, now time.Time) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *staticUserRepo) Update(u *entities.User) error { return nil }

func (r *staticUserRepo) Delete(id string) error { return nil }

func newProtectedRouter(repo *staticUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/whoami", RequireAuth(repo, middlewareSecret), func(c *gin.Context) {
		user := currentUser(c)
		respond(c, http.StatusOK, true, "OK", gin.H{"id": user.ID})
	})
	return router
}

func doRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_MissingToken(t *testing.T) {
	router := newProtectedRouter(&staticUserRepo{})

	rec := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token, authorization denied")

	// a non-bearer scheme counts as missing
	rec = doRequest(router, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token, authorization denied")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	router := newProtectedRouter(&staticUserRepo{})

	rec := doRequest(router, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token invalid or expired")
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	router := newProtectedRouter(&staticUserRepo{})

	token, err := auth.GenerateSessionToken("user-1", []byte("other secret"))
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token invalid or expired")
}

func TestRequireAuth_DeletedUser(t *testing.T) {
	// token is valid but its subject no longer resolves to a user
	router := newProtectedRouter(&staticUserRepo{})

	token, err := auth.GenerateSessionToken("user-1", middlewareSecret)
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token invalid or expired")
}

func TestRequireAuth_ResolvesUser(t *testing.T) {
	repo := &staticUserRepo{user: &entities.User{ID: "user-1", Email: "a@x.com"}}
	router := newProtectedRouter(repo)

	token, err := auth.GenerateSessionToken("user-1", middlewareSecret)
	require.NoError(t, err)

	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"user-1"`)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer abc"))
	assert.Empty(t, bearerToken(""))
	assert.Empty(t, bearerToken("abc"))
	assert.Empty(t, bearerToken("Basic abc"))
}
