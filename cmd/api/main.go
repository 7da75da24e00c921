package main

import (
	"log"

	"ShortVideo_UserService/internal/config"
	"ShortVideo_UserService/internal/handler"
	"ShortVideo_UserService/internal/middleware"
	"ShortVideo_UserService/internal/service"
	"ShortVideo_UserService/internal/session"
	"ShortVideo_UserService/internal/storage"

	_ "ShortVideo_UserService/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           ShortVideo User Service API
// @version         1.0
// @description     회원가입 / 로그인 / 로그아웃 사용자 계정 API
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	db := storage.InitDB(cfg.DBPath)
	users := storage.NewUserStorage(db)

	sessions, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal("main(): Failed to connect to redis: ", err)
	}

	authService := service.NewAuthService(users, sessions)
	authHandler := handler.NewAuthHandler(authService)

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "userId")
	router.Use(cors.New(corsConfig))

	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	protected := router.Group("/api").Use(middleware.AuthMiddleware(sessions))
	{
		protected.GET("/user", authHandler.GetUserInfo)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Fatal(router.Run(":" + cfg.Port))
}
