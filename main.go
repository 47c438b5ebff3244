package main

import "github.com/meetingcast/content-api/cmd"

// @title           Meeting Content API
// @version         1.0.0
// @description     Resolves and caches weekly meeting audio content with playback sync
// @contact.name    API Support
// @contact.url     https://github.com/meetingcast/content-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
