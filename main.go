package main

import (
	"log"

	"eduportal/config"
	"eduportal/database"
	"eduportal/gateway"
	"eduportal/middleware"
	authRoutes "eduportal/routers/authRoutes"
	courseRoutes "eduportal/routers/courseRoutes"
	dashboardRoutes "eduportal/routers/dashboardRoutes"
	pageRoutes "eduportal/routers/pageRoutes"
	"eduportal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	gateway.Init()

	gc := database.StartSessionGC()
	defer gc.Stop()

	engine := html.New("./views", ".html")
	engine.AddFunc("asset", func(path string) string {
		return utils.ResolveAssetURL(path, config.AppConfig.AssetBase)
	})

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	middleware.InitSessionStore(database.NewStorage())

	pageRoutes.SetupPageRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
