package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"maison-decor/config"
	_ "maison-decor/docs"
	"maison-decor/middleware"
	"maison-decor/models"
	"maison-decor/repositories"
	"maison-decor/routes"
	"maison-decor/utils"
)

func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitDB()
	defer models.CloseDB()

	models.InitRedis()
	defer models.CloseRedis()

	seedAdmin()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedAdmin creates the catalog administrator account on first boot when
// ADMIN_EMAIL and ADMIN_PASSWORD are provided.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	repo := repositories.NewUserRepository()
	if _, err := repo.FindByEmail(email); err == nil {
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	user := &models.User{Email: email, Password: hash, Role: "admin", FullName: "Administrator"}
	if err := repo.Create(user); err != nil {
		log.Println("Failed to seed admin account:", err)
		return
	}
	log.Println("Seeded admin account:", email)
}
