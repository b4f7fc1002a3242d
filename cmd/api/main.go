package main

import (
	_ "sealed_letters/docs"
	"sealed_letters/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Sealed Letters API
// @version         1.0
// @description     Payment authority service for one-time sealed message sessions (orders + verification + founder codes) backed by DynamoDB and Redis.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
