package notifications_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apinotifications "github.com/voicelab/coach-api/api/notifications"
	"github.com/voicelab/coach-api/api/types"
	"github.com/voicelab/coach-api/internal/models"
	"github.com/voicelab/coach-api/internal/services/notifications"
	pkglogger "github.com/voicelab/coach-api/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type NotificationTestSuite struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine

	actorID string
}

func setupNotificationTestSuite(t *testing.T) *NotificationTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(&models.Notification{})
	require.NoError(t, err, "Failed to migrate test database")

	deps := &types.Dependencies{
		NotificationService: notifications.NewService(notifications.NewRepository(db), pkglogger.NewNop()),
	}

	suite := &NotificationTestSuite{
		t:       t,
		db:      db,
		actorID: "student-1",
	}

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.actorID)
		c.Next()
	})
	group := router.Group("/notifications")
	apinotifications.RegisterRoutes(group, deps)
	suite.router = router

	return suite
}

func (suite *NotificationTestSuite) seed(userID string, read bool) models.Notification {
	n := models.Notification{
		UserID: userID,
		Kind:   "assignment_created",
		Title:  "New assignment",
		Body:   "You have a new lesson",
	}
	if read {
		now := time.Now()
		n.ReadAt = &now
	}
	require.NoError(suite.t, suite.db.Create(&n).Error)
	return n
}

func (suite *NotificationTestSuite) do(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func TestListNotificationsHandler(t *testing.T) {
	suite := setupNotificationTestSuite(t)
	suite.seed("student-1", false)
	suite.seed("student-1", true)
	suite.seed("student-2", false)

	t.Run("full feed with unread count", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/notifications")

		require.Equal(t, http.StatusOK, w.Code)
		var response types.NotificationsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Count)
		assert.Equal(t, int64(1), response.Unread)
	})

	t.Run("unread only", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/notifications?unread=true")

		require.Equal(t, http.StatusOK, w.Code)
		var response types.NotificationsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Count)
		assert.Nil(t, response.Notifications[0].ReadAt)
	})
}

func TestMarkNotificationReadHandler(t *testing.T) {
	suite := setupNotificationTestSuite(t)
	own := suite.seed("student-1", false)
	other := suite.seed("student-2", false)

	t.Run("recipient marks read", func(t *testing.T) {
		w := suite.do(http.MethodPut, fmt.Sprintf("/notifications/%d/read", own.ID))
		assert.Equal(t, http.StatusNoContent, w.Code)

		var stored models.Notification
		require.NoError(t, suite.db.First(&stored, own.ID).Error)
		assert.NotNil(t, stored.ReadAt)
	})

	t.Run("other recipient forbidden", func(t *testing.T) {
		w := suite.do(http.MethodPut, fmt.Sprintf("/notifications/%d/read", other.ID))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown notification", func(t *testing.T) {
		w := suite.do(http.MethodPut, "/notifications/9999/read")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMarkAllNotificationsReadHandler(t *testing.T) {
	suite := setupNotificationTestSuite(t)
	suite.seed("student-1", false)
	suite.seed("student-1", false)
	other := suite.seed("student-2", false)

	w := suite.do(http.MethodPut, "/notifications/read")
	assert.Equal(t, http.StatusNoContent, w.Code)

	var unread int64
	suite.db.Model(&models.Notification{}).Where("user_id = ? AND read_at IS NULL", "student-1").Count(&unread)
	assert.Equal(t, int64(0), unread)

	var stored models.Notification
	require.NoError(t, suite.db.First(&stored, other.ID).Error)
	assert.Nil(t, stored.ReadAt)
}
