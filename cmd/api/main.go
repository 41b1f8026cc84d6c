package main

import (
	"context"

	"spill/internal/config"
	"spill/internal/model"
	"spill/internal/pkg"
	"spill/internal/realtime"
	"spill/internal/repository/mysql"
	"spill/internal/repository/redis"
	"spill/internal/router"
	"spill/internal/service"
	"spill/internal/storage"
)

func main() {
	pkg.InitLogger(true)

	cfg, err := config.Load()
	if err != nil {
		pkg.Log.Fatal().Err(err).Msg("config load failed")
	}

	pkg.InitJWT(cfg.JWTSecret, cfg.JWTExpiry)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		pkg.Log.Fatal().Err(err).Msg("mysql connect failed")
	}
	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		pkg.Log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer redis.Close()

	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Venue{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
		&model.Friendship{},
		&model.VenueCheckin{},
	); err != nil {
		pkg.Log.Fatal().Err(err).Msg("migrate failed")
	}

	store, err := storage.NewS3Storage(context.Background(), storage.S3Config{
		Region:    cfg.AWSRegion,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.AWSAccessKey,
		SecretKey: cfg.AWSSecretKey,
	})
	if err != nil {
		pkg.Log.Fatal().Err(err).Msg("s3 init failed")
	}

	hub := realtime.NewHub()

	var producer *pkg.KafkaProducer
	if cfg.KafkaEnabled() {
		producer = pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		defer producer.Close()
	}

	var smtp *pkg.SMTPConfig
	if cfg.SMTPEnabled() {
		smtp = &pkg.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}
	}

	r := router.InitRouter(router.Deps{
		Auth:       service.NewAuthService(mysql.DB, smtp),
		Posts:      service.NewPostService(mysql.DB, store, hub, producer),
		Venues:     service.NewVenueService(mysql.DB),
		Engagement: service.NewEngagementService(mysql.DB),
		Friends:    service.NewFriendshipService(mysql.DB),
		Hub:        hub,
	})

	if err := r.Run(cfg.ListenAddr); err != nil {
		pkg.Log.Fatal().Err(err).Msg("server stopped")
	}
}
