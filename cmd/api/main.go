package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-catalog-api/internal/handler"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/service"
	"go-catalog-api/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// The join table must be registered before AutoMigrate so the composite
	// key model is used instead of gorm's generated one.
	if err := db.SetupJoinTable(&model.Product{}, "Addons", &model.ProductAddon{}); err != nil {
		log.Fatal("Failed to set up product_addons join table: ", err)
	}
	if err := db.AutoMigrate(
		&model.ProductType{},
		&model.Product{},
		&model.Variant{},
		&model.Addon{},
	); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// 3. Dependency Injection (Wiring Layers)
	typeRepo := repository.NewProductTypeRepo(db)
	productRepo := repository.NewProductRepo(db)
	variantRepo := repository.NewVariantRepo(db)
	addonRepo := repository.NewAddonRepo(db)
	linkRepo := repository.NewProductAddonRepo(db)
	listingRepo := repository.NewListingRepo(db)

	typeService := service.NewProductTypeService(typeRepo)
	productService := service.NewProductService(productRepo)
	variantService := service.NewVariantService(variantRepo)
	addonService := service.NewAddonService(addonRepo)
	linkService := service.NewProductAddonService(linkRepo)
	listingService := service.NewListingService(listingRepo)

	typeHandler := handler.NewProductTypeHandler(typeService)
	productHandler := handler.NewProductHandler(productService)
	variantHandler := handler.NewVariantHandler(variantService)
	addonHandler := handler.NewAddonHandler(addonService)
	linkHandler := handler.NewProductAddonHandler(linkService)
	listingHandler := handler.NewListingHandler(listingService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Catalog API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 5. Routes
	app.Get("/types", typeHandler.GetTypes)
	app.Post("/types", typeHandler.CreateType)
	app.Delete("/types/:id", typeHandler.DeleteType)

	app.Get("/products", productHandler.GetProducts)
	app.Post("/products", productHandler.CreateProduct)
	app.Get("/products/:id", productHandler.GetProduct)
	app.Put("/products/:id", productHandler.UpdateProduct)
	app.Delete("/products/:id", productHandler.DeleteProduct)

	app.Get("/variants", variantHandler.GetVariants)
	app.Post("/variants", variantHandler.CreateVariant)
	app.Get("/variants/:id", variantHandler.GetVariant)
	app.Put("/variants/:id", variantHandler.UpdateVariant)
	app.Delete("/variants/:id", variantHandler.DeleteVariant)

	app.Get("/addons", addonHandler.GetAddons)
	app.Post("/addons", addonHandler.CreateAddon)
	app.Delete("/addons/:id", addonHandler.DeleteAddon)

	app.Post("/product-addons", linkHandler.CreateLink)
	app.Get("/product-addons/:product_id", linkHandler.GetAddonsByProduct)
	app.Delete("/product-addons", linkHandler.DeleteLink)

	app.Get("/product-listings", listingHandler.GetListings)

	// 6. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
