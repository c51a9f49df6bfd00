package main

import "github.com/killallgit/podcast-profile-api/cmd"

// @title           Podcast Profile API
// @version         1.0.0
// @description     Manages a single podcast profile and its episodes, with RSS feed import
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podcast-profile-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
