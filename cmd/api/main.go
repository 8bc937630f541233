package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/stakedraw/stakedraw-backend/api/routes"
	"github.com/stakedraw/stakedraw-backend/internal/config"
	"github.com/stakedraw/stakedraw-backend/internal/handlers"
	"github.com/stakedraw/stakedraw-backend/internal/repositories"
	"github.com/stakedraw/stakedraw-backend/internal/services"
	"github.com/stakedraw/stakedraw-backend/pkg/chainhost"
	"github.com/stakedraw/stakedraw-backend/pkg/mongodb"

	memrepo "github.com/stakedraw/stakedraw-backend/internal/repositories/memory"
	mongorepo "github.com/stakedraw/stakedraw-backend/internal/repositories/mongodb"
)

func main() {
	// Load .env if present; real environments configure via config.yaml or env vars
	_ = godotenv.Load()

	cfg, err := config.Load(config.GetEnv("CONFIG_PATH", "."))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var (
		poolRepo        repositories.PoolRepository
		stakeRepo       repositories.StakeRepository
		participantRepo repositories.ParticipantRepository
		treasuryRepo    repositories.TreasuryRepository
		userRepo        repositories.UserRepository
	)

	// STANDALONE=true runs entirely in memory alongside the mock host
	if config.GetEnvAsBool("STANDALONE", false) {
		poolRepo = memrepo.NewPoolRepository()
		stakeRepo = memrepo.NewStakeRepository()
		participantRepo = memrepo.NewParticipantRepository()
		treasuryRepo = memrepo.NewTreasuryRepository()
		userRepo = memrepo.NewUserRepository()
	} else {
		mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := mongoClient.Disconnect(context.Background()); err != nil {
				log.Printf("Error disconnecting from MongoDB: %v", err)
			}
		}()

		db := mongoClient.Database(cfg.MongoDB.Database)
		poolRepo = mongorepo.NewPoolRepository(db)
		stakeRepo = mongorepo.NewStakeRepository(db)
		participantRepo = mongorepo.NewParticipantRepository(db)
		treasuryRepo = mongorepo.NewTreasuryRepository(db)
		userRepo = mongorepo.NewUserRepository(db)
	}

	host := chainhost.NewClient(cfg.Chain.HostURL, cfg.Chain.APIKey, cfg.Chain.MockHost)

	lotteryService := services.NewLotteryService(poolRepo, stakeRepo, participantRepo, host, cfg)
	treasuryService := services.NewTreasuryService(treasuryRepo, host, cfg)
	authService := services.NewAuthService(userRepo, cfg)

	handlerDeps := routes.HandlerDependencies{
		AuthHandler:     handlers.NewAuthHandler(authService),
		LotteryHandler:  handlers.NewLotteryHandler(lotteryService),
		TreasuryHandler: handlers.NewTreasuryHandler(treasuryService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
