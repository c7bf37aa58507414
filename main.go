package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"chatroom-service/internal/db"
	"chatroom-service/internal/handlers"
	"chatroom-service/internal/observability"
	"chatroom-service/internal/rabbitmq"
	"chatroom-service/internal/repositories"
	"chatroom-service/internal/telemetry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	database, err := db.Connect()
	if err != nil {
		logrus.Fatalf("failed to connect to db: %v", err)
	}

	publisher := rabbitmq.NewPublisher(getEnv("AMQP_URL", ""), getEnv("AUDIT_EXCHANGE", "chatroom.audit"))
	defer publisher.Close()
	logrus.WithField("mode", rabbitmq.PublisherMode(publisher)).Info("audit publisher ready")

	audit := telemetry.NewAuditEmitter(publisher, "chatroom.audit_log", "chatroom-service", getEnv("ENVIRONMENT", "development"))

	userRepo := repositories.NewUserRepo(database)
	roomRepo := repositories.NewRoomRepo(database)

	userHandler := handlers.NewUserHandler(userRepo, audit)
	roomHandler := handlers.NewRoomHandler(roomRepo, audit)
	messageHandler := handlers.NewMessageHandler(roomRepo, audit)

	router := gin.New()

	// middlewares
	router.Use(gin.Recovery())
	router.Use(observability.HTTPMetricsMiddleware())

	router.POST("/user/add", userHandler.AddUser)
	router.POST("/user/search", userHandler.SearchUser)
	router.POST("/user/delete", userHandler.DeleteUser)

	router.POST("/room/create", roomHandler.CreateRoom)
	router.POST("/room/enter", roomHandler.EnterRoom)

	router.POST("/message/get", messageHandler.GetMessages)
	router.POST("/message/send", messageHandler.SendMessage)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	port := getEnv("PORT", "8083")
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
