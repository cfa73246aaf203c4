package main

import (
	"IFLYVideosBot/internal/application"
	"IFLYVideosBot/internal/config"
	"IFLYVideosBot/internal/storage"
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.Connect(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Error with the token: %v", err)
	}
	bot.Debug = cfg.Debug

	log.Printf("Authorized on account %s", bot.Self.UserName)
	log.Println("iFLY Videos Bot Online")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		bot.StopReceivingUpdates()
	}()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		for update := range updates {
			application.ProcessUpdate(ctx, cfg, db, bot, update)
		}
		return nil
	})

	group.Go(func() error {
		application.WatchSessionExpiry(ctx, cfg, db, bot, time.Minute)
		return nil
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Bot stopped with error: %v", err)
	}
	log.Println("Bot has been stopped")
}
