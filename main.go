package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
	"talent-scout-backend/config"
	apiv1 "talent-scout-backend/controllers/v1"
	"talent-scout-backend/fiberlog"
	"talent-scout-backend/initializers"
	"talent-scout-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimitMB * 1024 * 1024,
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(requestid.New())
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(middleware.WithBodyLimit(int64(config.Conf.App.JSONLimitKB) * 1024))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE",
	}))
	apiv1.InitSessionApiRouters(apiV1)
	apiv1.InitCandidateApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = <-c
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
