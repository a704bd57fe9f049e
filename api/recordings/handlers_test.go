package recordings_test

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
	apirecordings "github.com/voicelab/coach-api/api/recordings"
	"github.com/voicelab/coach-api/api/types"
	"github.com/voicelab/coach-api/internal/models"
	"github.com/voicelab/coach-api/internal/services/recordings"
	pkglogger "github.com/voicelab/coach-api/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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
	return fmt.Sprintf("https://store.test/sign/%s/%s?token=test", bucket, path), nil
}

func (s *fakeObjectStore) Remove(_ context.Context, bucket string, paths []string) error {
	for _, p := range paths {
		s.removed = append(s.removed, bucket+"/"+p)
	}
	return nil
}

// fakeAssignmentSource serves assignments straight from the test DB.
type fakeAssignmentSource struct {
	db *gorm.DB
}

func (s *fakeAssignmentSource) GetAssignmentByID(_ context.Context, id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := s.db.First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

type fakeNotifier struct {
	delivered []string
}

func (n *fakeNotifier) Notify(_ context.Context, userID, kind, _, _, _, _ string) error {
	n.delivered = append(n.delivered, userID+":"+kind)
	return nil
}

type RecordingTestSuite struct {
	t        *testing.T
	db       *gorm.DB
	store    *fakeObjectStore
	notifier *fakeNotifier
	router   *gin.Engine

	actorID   string
	actorRole string
}

func setupRecordingTestSuite(t *testing.T) *RecordingTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(&models.Recording{}, &models.Assignment{}, &models.Lesson{})
	require.NoError(t, err, "Failed to migrate test database")

	store := newFakeObjectStore()
	notifier := &fakeNotifier{}
	deps := &types.Dependencies{
		RecordingService: recordings.NewService(
			recordings.NewRepository(db),
			store,
			&fakeAssignmentSource{db: db},
			notifier,
			"recordings",
			1<<20,
			pkglogger.NewNop(),
		),
	}

	suite := &RecordingTestSuite{
		t:         t,
		db:        db,
		store:     store,
		notifier:  notifier,
		actorID:   "student-1",
		actorRole: models.RoleStudent,
	}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.actorID)
		c.Set("role", suite.actorRole)
		c.Next()
	})
	group := router.Group("/recordings")
	passthrough := func(c *gin.Context) { c.Next() }
	apirecordings.RegisterRoutes(group, deps, passthrough)
	suite.router = router

	return suite
}

func (suite *RecordingTestSuite) actAs(userID, role string) {
	suite.actorID = userID
	suite.actorRole = role
}

func (suite *RecordingTestSuite) createTestAssignment() models.Assignment {
	assignment := models.Assignment{
		LessonID:   1,
		StudentID:  "student-1",
		AssignedBy: "teacher-1",
		Status:     models.AssignmentAssigned,
	}
	require.NoError(suite.t, suite.db.Create(&assignment).Error)
	return assignment
}

func (suite *RecordingTestSuite) createTestRecording(assignmentID *uint, shared bool) models.Recording {
	recording := models.Recording{
		StudentID:         "student-1",
		AssignmentID:      assignmentID,
		Bucket:            "recordings",
		Path:              "recordings/student-1/take1.mp3",
		ContentType:       "audio/mpeg",
		SharedWithTeacher: shared,
	}
	require.NoError(suite.t, suite.db.Create(&recording).Error)
	return recording
}

func (suite *RecordingTestSuite) doJSON(method, path string, payload interface{}) *httptest.ResponseRecorder {
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

func (suite *RecordingTestSuite) doUpload(fields map[string]string, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="audio"; filename=%q`, filename)}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(suite.t, err)
	_, err = part.Write(data)
	require.NoError(suite.t, err)

	for name, value := range fields {
		require.NoError(suite.t, writer.WriteField(name, value))
	}
	require.NoError(suite.t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/recordings", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func TestUploadRecordingHandler(t *testing.T) {
	suite := setupRecordingTestSuite(t)
	assignment := suite.createTestAssignment()

	t.Run("successful upload", func(t *testing.T) {
		w := suite.doUpload(map[string]string{
			"assignment_id": fmt.Sprintf("%d", assignment.ID),
			"duration_secs": "42.5",
			"notes":         "First take",
		}, "take1.mp3", "audio/mpeg", []byte("audio bytes"))

		require.Equal(t, http.StatusCreated, w.Code)
		var response types.RecordingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.NotNil(t, response.Recording)
		assert.Equal(t, "student-1", response.Recording.StudentID)
		assert.False(t, response.Recording.SharedWithTeacher)
		assert.Equal(t, 42.5, response.Recording.DurationSecs)
		assert.NotEmpty(t, response.Recording.Path)
		assert.Len(t, suite.store.uploads, 1)
	})

	t.Run("another student's assignment", func(t *testing.T) {
		suite.actAs("student-2", models.RoleStudent)
		defer suite.actAs("student-1", models.RoleStudent)

		w := suite.doUpload(map[string]string{
			"assignment_id": fmt.Sprintf("%d", assignment.ID),
		}, "take2.mp3", "audio/mpeg", []byte("audio bytes"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("non-audio rejected", func(t *testing.T) {
		w := suite.doUpload(nil, "notes.txt", "text/plain", []byte("text"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetRecordingHandler(t *testing.T) {
	suite := setupRecordingTestSuite(t)
	assignment := suite.createTestAssignment()
	private := suite.createTestRecording(&assignment.ID, false)
	shared := suite.createTestRecording(&assignment.ID, true)

	t.Run("owner reads own recording", func(t *testing.T) {
		w := suite.doJSON(http.MethodGet, fmt.Sprintf("/recordings/%d", private.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("teacher blocked from unshared", func(t *testing.T) {
		suite.actAs("teacher-1", models.RoleTeacher)
		defer suite.actAs("student-1", models.RoleStudent)

		w := suite.doJSON(http.MethodGet, fmt.Sprintf("/recordings/%d", private.ID), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("teacher reads shared", func(t *testing.T) {
		suite.actAs("teacher-1", models.RoleTeacher)
		defer suite.actAs("student-1", models.RoleStudent)

		w := suite.doJSON(http.MethodGet, fmt.Sprintf("/recordings/%d", shared.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestDownloadRecordingHandler(t *testing.T) {
	suite := setupRecordingTestSuite(t)
	assignment := suite.createTestAssignment()
	recording := suite.createTestRecording(&assignment.ID, false)

	t.Run("owner receives a signed link", func(t *testing.T) {
		w := suite.doJSON(http.MethodGet, fmt.Sprintf("/recordings/%d/download", recording.ID), nil)

		require.Equal(t, http.StatusOK, w.Code)
		var response types.DownloadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "https://store.test/sign/recordings/recordings/student-1/take1.mp3?token=test", response.URL)
	})

	t.Run("other student is forbidden", func(t *testing.T) {
		suite.actAs("student-2", models.RoleStudent)
		defer suite.actAs("student-1", models.RoleStudent)

		w := suite.doJSON(http.MethodGet, fmt.Sprintf("/recordings/%d/download", recording.ID), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestShareRecordingHandler(t *testing.T) {
	suite := setupRecordingTestSuite(t)
	assignment := suite.createTestAssignment()
	recording := suite.createTestRecording(&assignment.ID, false)

	t.Run("owner shares and teacher is notified once", func(t *testing.T) {
		w := suite.doJSON(http.MethodPut, fmt.Sprintf("/recordings/%d/share", recording.ID), types.ShareRecordingRequest{Shared: true})

		require.Equal(t, http.StatusOK, w.Code)
		var response types.RecordingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Recording.SharedWithTeacher)
		require.Len(t, suite.notifier.delivered, 1)
		assert.Contains(t, suite.notifier.delivered[0], "teacher-1:")

		// sharing again does not notify again
		w = suite.doJSON(http.MethodPut, fmt.Sprintf("/recordings/%d/share", recording.ID), types.ShareRecordingRequest{Shared: true})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, suite.notifier.delivered, 1)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		suite.actAs("student-2", models.RoleStudent)
		defer suite.actAs("student-1", models.RoleStudent)

		w := suite.doJSON(http.MethodPut, fmt.Sprintf("/recordings/%d/share", recording.ID), types.ShareRecordingRequest{Shared: false})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestListSharedForAssignmentHandler(t *testing.T) {
	suite := setupRecordingTestSuite(t)
	assignment := suite.createTestAssignment()
	suite.createTestRecording(&assignment.ID, true)
	suite.createTestRecording(&assignment.ID, false)

	t.Run("teacher sees shared only", func(t *testing.T) {
		suite.actAs("teacher-1", models.RoleTeacher)
		defer suite.actAs("student-1", models.RoleStudent)

		w := suite.doJSON(http.MethodGet, fmt.Sprintf("/recordings/assignment/%d", assignment.ID), nil)

		require.Equal(t, http.StatusOK, w.Code)
		var response types.RecordingsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Count)
		assert.True(t, response.Recordings[0].SharedWithTeacher)
	})

	t.Run("outsider forbidden", func(t *testing.T) {
		suite.actAs("teacher-2", models.RoleTeacher)
		defer suite.actAs("student-1", models.RoleStudent)

		w := suite.doJSON(http.MethodGet, fmt.Sprintf("/recordings/assignment/%d", assignment.ID), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestDeleteRecordingHandler(t *testing.T) {
	suite := setupRecordingTestSuite(t)
	recording := suite.createTestRecording(nil, false)

	t.Run("non-owner forbidden", func(t *testing.T) {
		suite.actAs("student-2", models.RoleStudent)
		defer suite.actAs("student-1", models.RoleStudent)

		w := suite.doJSON(http.MethodDelete, fmt.Sprintf("/recordings/%d", recording.ID), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("owner deletes and audio is removed", func(t *testing.T) {
		w := suite.doJSON(http.MethodDelete, fmt.Sprintf("/recordings/%d", recording.ID), nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, suite.store.removed, "recordings/recordings/student-1/take1.mp3")

		var count int64
		suite.db.Model(&models.Recording{}).Where("id = ?", recording.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}
