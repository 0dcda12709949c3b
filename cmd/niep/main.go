package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/niepng/niep-backend/internal/api"
	"github.com/niepng/niep-backend/internal/pkg/constants"
	"github.com/niepng/niep-backend/internal/pkg/logger"
	"github.com/niepng/niep-backend/internal/pkg/store"
	"github.com/niepng/niep-backend/internal/pkg/store/xpgx"
)

const shutdownTimeout = 10 * time.Second

func main() {
	initConfig()

	l, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}
	logger.Init(l)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := xpgx.Connect(ctx, dsn())
	if err != nil {
		logger.Fatal(ctx, fmt.Errorf("connect to db: %w", err))
	}
	defer pool.Close()

	st := store.NewStore(pool)
	if err := st.ApplySchema(ctx); err != nil {
		logger.Fatal(ctx, fmt.Errorf("apply schema: %w", err))
	}

	apiService, err := api.NewAPIService(st)
	if err != nil {
		logger.Fatal(ctx, fmt.Errorf("init api service: %w", err))
	}

	go apiService.Serve(viper.GetString(constants.ViperListenAddr))

	<-ctx.Done()
	logger.Infof(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := apiService.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %v", err)
	}
}

func initConfig() {
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// Config file is optional; env vars alone are enough.
	_ = viper.ReadInConfig()

	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperDBHost, "localhost")
	viper.SetDefault(constants.ViperDBPort, "5432")
	viper.SetDefault(constants.ViperDBName, "niep")
	viper.SetDefault(constants.ViperDBUser, "postgres")
	viper.SetDefault(constants.ViperDBPassword, "postgres")
	viper.SetDefault(constants.ViperCORSOrigin, "http://localhost:3000")
}

func dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		viper.GetString(constants.ViperDBUser),
		viper.GetString(constants.ViperDBPassword),
		viper.GetString(constants.ViperDBHost),
		viper.GetString(constants.ViperDBPort),
		viper.GetString(constants.ViperDBName),
	)
}
