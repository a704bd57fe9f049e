package media

import (
	"github.com/gin-gonic/gin"
	apiauth "github.com/voicelab/coach-api/api/auth"
	"github.com/voicelab/coach-api/api/types"
)

// RegisterRoutes registers the media routes. Reads go on the public group;
// mutations require the teacher role and uploads carry their own tighter
// rate limit.
func RegisterRoutes(public, authed *gin.RouterGroup, deps *types.Dependencies, auth *apiauth.Handler, uploadLimit gin.HandlerFunc) {
	public.GET("", ListMedia(deps))
	public.GET("/:id", GetMedia(deps))

	authed.POST("", auth.RequireTeacher(), CreateMedia(deps))
	authed.PUT("/:id/lyrics", auth.RequireTeacher(), UpdateLyrics(deps))
	authed.POST("/:id/audio", auth.RequireTeacher(), uploadLimit, UploadAudio(deps))
	authed.DELETE("/:id", auth.RequireTeacher(), DeleteMedia(deps))
}
