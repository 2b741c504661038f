// @title PrayerDeck API
// @description API for the prayer-tracking app "PrayerDeck"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"time"

	"github.com/graceware/prayerdeck/internal/api"
	"github.com/graceware/prayerdeck/internal/localstore"
	"github.com/graceware/prayerdeck/internal/repository"
	"github.com/graceware/prayerdeck/internal/scripture"
	"github.com/graceware/prayerdeck/internal/service"
	"github.com/graceware/prayerdeck/migrations"
	"github.com/graceware/prayerdeck/pkg/cleanup"
	"github.com/graceware/prayerdeck/pkg/config"
	jwtservice "github.com/graceware/prayerdeck/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()

	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}

	migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := migrations.Apply(migrateCtx, dbCfg.ConnString()); err != nil {
		log.Fatal("migrations error: " + err.Error())
	}

	categoriesRepo := repository.NewCategoriesRepo(&dbCfg)
	cardsRepo := repository.NewCardsRepo(&dbCfg)
	requestsRepo := repository.NewRequestsRepo(&dbCfg)
	serverBundle := &service.Services{
		Categories: service.NewCategoriesService(categoriesRepo),
		Cards:      service.NewCardsService(cardsRepo),
		Requests:   service.NewRequestsService(cardsRepo, requestsRepo),
		Tracking:   service.NewTrackingService(cardsRepo, repository.NewTrackingRepo(&dbCfg)),
		Reminders:  service.NewRemindersService(repository.NewRemindersRepo(&dbCfg)),
	}

	store, err := localstore.Open(cfg.GetStringOrDefault("LOCAL_STORE_PATH", "./data/guest_store.json"))
	if err != nil {
		log.Fatal("opening local store error: " + err.Error())
	}
	guestCards := localstore.NewCardsRepo(store)
	guestBundle := &service.Services{
		Categories: service.NewCategoriesService(localstore.NewCategoriesRepo(store)),
		Cards:      service.NewCardsService(guestCards),
		Requests:   service.NewRequestsService(guestCards, localstore.NewRequestsRepo(store)),
		Tracking:   service.NewTrackingService(guestCards, localstore.NewTrackingRepo(store)),
		Reminders:  service.NewRemindersService(localstore.NewRemindersRepo(store)),
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), time.Minute)
	defer cancelSeed()
	if err := serverBundle.Categories.EnsureDefaults(seedCtx); err != nil {
		log.Fatal("seeding default categories error: " + err.Error())
	}

	transfer := service.NewTransferService(store, categoriesRepo, cardsRepo, requestsRepo)

	serv := api.New(&api.ServicesList{
		Deck:       service.NewDeck(serverBundle, guestBundle, transfer),
		JwtService: jwtservice.New(cfg.GetString("JWT_SECRET")),
		Scripture:  scripture.New(cfg.GetString("ESV_API_KEY")),
	})
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
