package main

import (
	_ "vitrine_industrial/docs"
	"vitrine_industrial/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Vitrine Industrial API
// @version         1.0
// @description     Industrial equipment catalog, quote forms and admin panel.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
