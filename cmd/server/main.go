package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kurz/config"
	abModel "kurz/internal/addressbook/model"
	abRepository "kurz/internal/addressbook/repository"
	abUsecase "kurz/internal/addressbook/usecase"
	chModel "kurz/internal/channel/model"
	chRepository "kurz/internal/channel/repository"
	chUsecase "kurz/internal/channel/usecase"
	"kurz/internal/dispatch"
	"kurz/internal/presence"
	"kurz/internal/transport/httpapi"
	"kurz/internal/transport/ws"
	userModels "kurz/internal/user/model"
	userRepository "kurz/internal/user/repository"
	userUsecase "kurz/internal/user/usecase"
	"kurz/pkg/logger"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		panic(err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		panic(err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	userRepo := userRepository.NewUserRepository(db, log)
	contactRepo := abRepository.NewContactRepository(db, log)
	channelRepo := chRepository.NewChannelRepository(db, log)
	messageRepo := chRepository.NewMessageRepository(db, log)
	fileRepo := chRepository.NewFileRepository(db, log)

	registry := presence.NewRegistry()
	dispatcher := dispatch.NewDispatcher(registry, log)

	users := userUsecase.NewUserUsecase(userRepo, channelRepo, log)
	contacts := abUsecase.NewAddressBookUsecase(contactRepo, userRepo, log)
	channels := chUsecase.NewChannelUsecase(
		channelRepo, messageRepo, fileRepo, contactRepo, userRepo, dispatcher, log)

	wsHandler := ws.NewHandler(users, contacts, channels, registry, log)
	api := httpapi.NewHandler(channels, cfg, log)

	router := api.Routes()
	router.Handle("/ws", wsHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}

func runMigrations(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*userModels.User)(nil),
		(*userModels.ChannelRead)(nil),
		(*userModels.ChannelMute)(nil),
		(*abModel.Contact)(nil),
		(*chModel.Channel)(nil),
		(*chModel.Message)(nil),
		(*chModel.File)(nil),
	}
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}

	indexes := []struct {
		name    string
		model   any
		unique  bool
		columns []string
	}{
		{"users_email_idx", (*userModels.User)(nil), true, []string{"email"}},
		{"users_nickname_idx", (*userModels.User)(nil), true, []string{"nickname"}},
		{"contacts_owner_target_idx", (*abModel.Contact)(nil), true, []string{"owner_email", "target_email"}},
		{"channel_reads_user_channel_idx", (*userModels.ChannelRead)(nil), true, []string{"user_email", "channel_id"}},
		{"channel_mutes_user_channel_idx", (*userModels.ChannelMute)(nil), true, []string{"user_email", "channel_id"}},
		// covers both pagination predicates: the channel scan and the
		// (sent_at, id) ordering within it
		{"messages_channel_sent_idx", (*chModel.Message)(nil), false, []string{"channel_id", "sent_at", "id"}},
		{"files_channel_idx", (*chModel.File)(nil), false, []string{"channel_id"}},
	}
	for _, idx := range indexes {
		q := db.NewCreateIndex().Model(idx.model).Index(idx.name).IfNotExists()
		if idx.unique {
			q = q.Unique()
		}
		for _, col := range idx.columns {
			q = q.Column(col)
		}
		if _, err := q.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
