package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PythonShinobi/Otaku-Store/internal/config"
	"github.com/PythonShinobi/Otaku-Store/internal/db"
	"github.com/PythonShinobi/Otaku-Store/internal/logger"
	"github.com/PythonShinobi/Otaku-Store/internal/mail"
	"github.com/PythonShinobi/Otaku-Store/internal/media"
	"github.com/PythonShinobi/Otaku-Store/internal/redis"

	_ "github.com/lib/pq"
)

type Infra struct {
	DB       *db.DB
	Redis    *redis.Client
	Uploader media.Uploader
	Mailer   mail.Sender
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := db.Migrate(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	logger.Info("database ready", nil)

	redisClient, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis ready", map[string]any{
		"addr": cfg.RedisAddr,
	})

	var uploader media.Uploader
	s3Uploader, err := media.NewS3Uploader(ctx, cfg.Media)
	switch {
	case errors.Is(err, media.ErrBucketRequired):
		logger.Warn("media bucket not configured, image uploads disabled", nil)
		uploader = media.Disabled{}
	case err != nil:
		_ = sqlDB.Close()
		_ = redisClient.Close()
		return nil, err
	default:
		uploader = s3Uploader
	}

	var mailer mail.Sender
	sgSender, err := mail.NewSendGridSender(cfg.Mail)
	if err != nil {
		logger.Warn("sendgrid not configured, contact form disabled", nil)
		mailer = mail.Disabled{}
	} else {
		mailer = sgSender
	}

	return &Infra{
		DB:       &db.DB{DB: sqlDB},
		Redis:    redisClient,
		Uploader: uploader,
		Mailer:   mailer,
	}, nil
}

func (i *Infra) Close() error {
	return errors.Join(i.DB.Close(), i.Redis.Close())
}
