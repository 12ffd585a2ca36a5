package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"
	interaction "github.com/todaytheofficial/neotube/cmd/api/handlers/interaction"
	user "github.com/todaytheofficial/neotube/cmd/api/handlers/user"
	video "github.com/todaytheofficial/neotube/cmd/api/handlers/video"
	"github.com/todaytheofficial/neotube/cmd/api/router/authfunc"
)

// Register wires every HTTP route. Mutating endpoints sit behind RequireAuth;
// everything else resolves the session but accepts anonymous callers.
func Register(r *server.Hertz) {
	r.Use(authfunc.SessionAuth())

	r.POST("/register", user.Register)
	r.POST("/login", user.Login)
	r.POST("/logout", user.Logout)

	r.GET("/video/stream/:id", video.VideoStream)

	api := r.Group("/api")
	api.GET("/feed", video.FeedList)
	api.GET("/watch/:id", video.Watch)
	api.GET("/channel/:username/:id", user.GetChannel)

	auth := api.Group("/", authfunc.RequireAuth())
	auth.POST("/upload", video.Upload)
	auth.POST("/like/:id", interaction.LikeAction)
	auth.POST("/dislike/:id", interaction.DislikeAction)
	auth.POST("/comment/:id", interaction.CreateComment)
}
