/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/voicelab/coach-api/cmd"

// @title           Voice Lesson API
// @version         1.0.0
// @description     A voice-training lesson API with lyric annotations, assignments and practice recordings
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.url     https://github.com/voicelab/coach-api
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Supabase JWT bearer token
func main() {
	cmd.Execute()
}
