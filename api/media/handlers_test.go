package media_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apiauth "github.com/voicelab/coach-api/api/auth"
	apimedia "github.com/voicelab/coach-api/api/media"
	"github.com/voicelab/coach-api/api/types"
	"github.com/voicelab/coach-api/internal/models"
	"github.com/voicelab/coach-api/internal/services/media"
	pkglogger "github.com/voicelab/coach-api/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeObjectStore records uploads in memory.
type fakeObjectStore struct {
	uploads map[string][]byte
	removed []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{uploads: make(map[string][]byte)}
}

func (s *fakeObjectStore) Upload(_ context.Context, bucket, path string, data io.Reader, _ string) error {
	raw, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	s.uploads[bucket+"/"+path] = raw
	return nil
}

func (s *fakeObjectStore) PublicURL(bucket, path string) string {
	return fmt.Sprintf("https://store.test/%s/%s", bucket, path)
}

func (s *fakeObjectStore) SignedURL(_ context.Context, bucket, path string, _ int) (string, error) {
	return fmt.Sprintf("https://store.test/signed/%s/%s", bucket, path), nil
}

func (s *fakeObjectStore) Remove(_ context.Context, bucket string, paths []string) error {
	for _, p := range paths {
		s.removed = append(s.removed, bucket+"/"+p)
	}
	return nil
}

type MediaTestSuite struct {
	t      *testing.T
	db     *gorm.DB
	store  *fakeObjectStore
	router *gin.Engine

	actorID   string
	actorRole string
}

func setupMediaTestSuite(t *testing.T) *MediaTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(&models.Media{})
	require.NoError(t, err, "Failed to migrate test database")

	store := newFakeObjectStore()
	deps := &types.Dependencies{
		MediaService: media.NewService(media.NewRepository(db), store, "lesson-audio", 1<<20, pkglogger.NewNop()),
	}

	suite := &MediaTestSuite{
		t:         t,
		db:        db,
		store:     store,
		actorID:   "teacher-1",
		actorRole: models.RoleTeacher,
	}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.actorID)
		c.Set("role", suite.actorRole)
		c.Next()
	})
	group := router.Group("/media")
	passthrough := func(c *gin.Context) { c.Next() }
	apimedia.RegisterRoutes(group, group, deps, apiauth.NewHandler(nil, nil, nil), passthrough)
	suite.router = router

	return suite
}

func (suite *MediaTestSuite) actAs(userID, role string) {
	suite.actorID = userID
	suite.actorRole = role
}

func (suite *MediaTestSuite) createTestMedia() models.Media {
	item := models.Media{
		Title:      "Warmup Scales",
		LyricsText: "Do re mi fa sol",
		CreatedBy:  "teacher-1",
	}
	require.NoError(suite.t, suite.db.Create(&item).Error)
	return item
}

func (suite *MediaTestSuite) doJSON(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(suite.t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func TestCreateMediaHandler(t *testing.T) {
	suite := setupMediaTestSuite(t)

	t.Run("teacher creates media", func(t *testing.T) {
		w := suite.doJSON(http.MethodPost, "/media", types.CreateMediaRequest{
			Title:      "Breath Support",
			LyricsText: "In through the nose",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		var response types.MediaResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.NotNil(t, response.Media)
		assert.Equal(t, "Breath Support", response.Media.Title)
		assert.Equal(t, "teacher-1", response.Media.CreatedBy)
		assert.NotEmpty(t, response.Media.UUID)
	})

	t.Run("missing title", func(t *testing.T) {
		w := suite.doJSON(http.MethodPost, "/media", map[string]interface{}{"lyrics_text": "no title"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("student forbidden", func(t *testing.T) {
		suite.actAs("student-1", models.RoleStudent)
		defer suite.actAs("teacher-1", models.RoleTeacher)

		w := suite.doJSON(http.MethodPost, "/media", types.CreateMediaRequest{Title: "Nope"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetMediaHandler(t *testing.T) {
	suite := setupMediaTestSuite(t)
	item := suite.createTestMedia()

	t.Run("found", func(t *testing.T) {
		w := suite.doJSON(http.MethodGet, fmt.Sprintf("/media/%d", item.ID), nil)

		require.Equal(t, http.StatusOK, w.Code)
		var response types.MediaResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, item.Title, response.Media.Title)
	})

	t.Run("found by UUID", func(t *testing.T) {
		w := suite.doJSON(http.MethodGet, "/media/"+item.UUID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var response types.MediaResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, item.ID, response.Media.ID)
	})

	t.Run("anonymous caller may read", func(t *testing.T) {
		suite.actAs("", "")
		defer suite.actAs("teacher-1", models.RoleTeacher)

		w := suite.doJSON(http.MethodGet, fmt.Sprintf("/media/%d", item.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := suite.doJSON(http.MethodGet, "/media/9999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListMediaHandler(t *testing.T) {
	suite := setupMediaTestSuite(t)
	for i := 0; i < 3; i++ {
		item := models.Media{Title: fmt.Sprintf("Exercise %d", i), CreatedBy: "teacher-1"}
		require.NoError(t, suite.db.Create(&item).Error)
	}

	w := suite.doJSON(http.MethodGet, "/media?limit=2", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var response types.MediaListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	assert.Equal(t, int64(3), response.Total)
}

func TestUpdateLyricsHandler(t *testing.T) {
	suite := setupMediaTestSuite(t)
	item := suite.createTestMedia()

	t.Run("author updates", func(t *testing.T) {
		w := suite.doJSON(http.MethodPut, fmt.Sprintf("/media/%d/lyrics", item.ID), types.UpdateLyricsRequest{
			LyricsText: "Do re mi fa sol la ti do",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var response types.MediaResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Do re mi fa sol la ti do", response.Media.LyricsText)
	})

	t.Run("other teacher forbidden", func(t *testing.T) {
		suite.actAs("teacher-2", models.RoleTeacher)
		defer suite.actAs("teacher-1", models.RoleTeacher)

		w := suite.doJSON(http.MethodPut, fmt.Sprintf("/media/%d/lyrics", item.ID), types.UpdateLyricsRequest{
			LyricsText: "Mine now",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUploadAudioHandler(t *testing.T) {
	suite := setupMediaTestSuite(t)
	item := suite.createTestMedia()

	buildForm := func(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename)}
		header["Content-Type"] = []string{contentType}
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
		require.NoError(t, writer.Close())
		return body, writer.FormDataContentType()
	}

	t.Run("successful upload", func(t *testing.T) {
		body, contentType := buildForm(t, "audio", "track.mp3", "audio/mpeg", []byte("not really mp3"))
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/media/%d/audio", item.ID), body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var response types.MediaResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "lesson-audio", response.Media.AudioBucket)
		assert.NotEmpty(t, response.Media.AudioPath)
		assert.NotEmpty(t, response.Media.AudioURL)
		assert.Len(t, suite.store.uploads, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/media/%d/audio", item.ID), bytes.NewBuffer(nil))
		req.Header.Set("Content-Type", "multipart/form-data")

		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects non-audio content type", func(t *testing.T) {
		body, contentType := buildForm(t, "audio", "notes.txt", "text/plain", []byte("hello"))
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/media/%d/audio", item.ID), body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteMediaHandler(t *testing.T) {
	suite := setupMediaTestSuite(t)
	item := suite.createTestMedia()
	item.AudioBucket = "lesson-audio"
	item.AudioPath = "media/abc/track.mp3"
	require.NoError(t, suite.db.Save(&item).Error)

	t.Run("non-author forbidden", func(t *testing.T) {
		suite.actAs("teacher-2", models.RoleTeacher)
		defer suite.actAs("teacher-1", models.RoleTeacher)

		w := suite.doJSON(http.MethodDelete, fmt.Sprintf("/media/%d", item.ID), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("author deletes and audio is removed", func(t *testing.T) {
		w := suite.doJSON(http.MethodDelete, fmt.Sprintf("/media/%d", item.ID), nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, suite.store.removed, "lesson-audio/media/abc/track.mp3")

		var count int64
		suite.db.Model(&models.Media{}).Where("id = ?", item.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}
