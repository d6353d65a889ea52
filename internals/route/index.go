// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicRoute "kuliahku_backend/internals/features/academic/route"
	chatRoute "kuliahku_backend/internals/features/chat/route"
	authRoute "kuliahku_backend/internals/features/users/auth/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up AcademicRoutes...")
	academicRoute.AcademicRoutes(app, db)

	log.Println("[INFO] Setting up ChatRoutes...")
	chatRoute.ChatRoutes(app, db)
}
