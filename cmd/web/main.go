// @title           Job Board API
// @version         1.0
// @description     REST API доски вакансий: пользователи, компании, вакансии, отклики и профили.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"jobboard_backend/internal/app"

	_ "jobboard_backend/docs"
)

func main() {
	app.Run()
}
