package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carelink/models"
	"carelink/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeFacilityRepo struct {
	facility *models.Facility
}

func (f *fakeFacilityRepo) GetByID(id string) (*models.Facility, error) {
	return f.GetByIDWithProjection(id, nil)
}

func (f *fakeFacilityRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Facility, error) {
	if f.facility != nil && f.facility.ID == id {
		return f.facility, nil
	}
	return nil, nil
}

func (f *fakeFacilityRepo) GetByEmail(email string) (*models.Facility, error) { return nil, nil }

func (f *fakeFacilityRepo) GetAll(facilityType models.FacilityType) ([]models.Facility, error) {
	return nil, nil
}
func (f *fakeFacilityRepo) Create(facility *models.Facility) error { return nil }

func (f *fakeFacilityRepo) Update(facility *models.Facility) error { return nil }

func (f *fakeFacilityRepo) UpdateSetDocument(id string, fields bson.M) error { return nil }

func (f *fakeFacilityRepo) Delete(id string) error { return nil }

func newAuthTestRouter(repo *fakeFacilityRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthFacilityMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"facilityId": c.GetString("facilityID")})
	})
	return r
}

func doAuthRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// A revoked token must stop working even when a prior request cached its
// acceptance: the cache is keyed by token hash, so revocation has to evict
// that hash-keyed entry, not an ID-keyed one.
func TestRevokedTokenRejectedAfterCacheEviction(t *testing.T) {
	mr := miniredis.RunT(t)
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	token, err := utils.GenerateToken("fac-1", "front.desk@clinic.example", time.Hour)
	require.NoError(t, err)
	hash := utils.HashToken(token)

	repo := &fakeFacilityRepo{facility: &models.Facility{
		ID:       "fac-1",
		Security: models.FacilitySecurity{TokenHash: hash},
	}}
	router := newAuthTestRouter(repo)

	// First request validates against the repository and caches acceptance
	// under the token hash.
	w := doAuthRequest(router, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mr.Exists(utils.AuthCachePrefix+hash))

	// Second request is served from the cache.
	w = doAuthRequest(router, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Revoke: the stored hash is cleared and the hash-keyed cache entry
	// evicted, exactly what RevokeAuthToken does.
	repo.facility.Security.TokenHash = ""
	utils.ClearAuthCacheForHash(context.Background(), hash)

	w = doAuthRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, mr.Exists(utils.AuthCachePrefix+hash))
}

func TestMissingAuthorizationHeaderRejected(t *testing.T) {
	mr := miniredis.RunT(t)
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	router := newAuthTestRouter(&fakeFacilityRepo{})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenHashMismatchRejected(t *testing.T) {
	mr := miniredis.RunT(t)
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	token, err := utils.GenerateToken("fac-1", "front.desk@clinic.example", time.Hour)
	require.NoError(t, err)

	// Stored hash belongs to some other (earlier) token.
	repo := &fakeFacilityRepo{facility: &models.Facility{
		ID:       "fac-1",
		Security: models.FacilitySecurity{TokenHash: utils.HashToken("stale-token")},
	}}
	router := newAuthTestRouter(repo)

	w := doAuthRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, mr.Exists(utils.AuthCachePrefix+utils.HashToken(token)))
}
