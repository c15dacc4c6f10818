// Package main is the entry point for the flower-service application.
//
// @title           Flower Service API
// @version         1.0.0
// @description     Catalog, cart, and checkout API for a flower shop storefront.
//
//	Orders are dispatched as prefilled WhatsApp messages; the service never
//	contacts the messaging channel itself.
//
// @contact.name   API Support
// @contact.url    https://github.com/floramar/flower-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Catalog
// @tag.description Read-only catalog queries
//
// @tag.name        Cart
// @tag.description Cart mutations and queries
//
// @tag.name        Checkout
// @tag.description Order formatting and dispatch
//
// @tag.name        Session
// @tag.description Cart session management
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/floramar/flower-service/docs" // swagger docs

	"github.com/floramar/flower-service/config"
	"github.com/floramar/flower-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, storage := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	err := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	storage.Close(ctx)

	if err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
