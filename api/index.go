package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"maison-decor/config"
	"maison-decor/middleware"
	"maison-decor/models"
	"maison-decor/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitDB()
		models.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
