package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/ignatzorin/web3-freelance/internal/config"
	"github.com/ignatzorin/web3-freelance/internal/db"
	"github.com/ignatzorin/web3-freelance/internal/logger"
)

// migrate применяет SQL миграции без запуска HTTP сервера.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	flags := pflag.NewFlagSet("migrate", pflag.ExitOnError)
	dsn := flags.String("dsn", "", "строка подключения к PostgreSQL (по умолчанию из DATABASE_URL)")
	dir := flags.String("dir", "", "каталог с SQL миграциями (по умолчанию из MIGRATIONS_PATH)")
	level := flags.String("log-level", "info", "уровень логирования")
	_ = flags.Parse(os.Args[1:])

	logger.Init(*level)
	logger.SetTextFormatter()
	log := logger.Get()

	if *dsn == "" || *dir == "" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("migrate: ошибка загрузки конфигурации: %v", err)
		}
		if *dsn == "" {
			*dsn = cfg.DatabaseURL
		}
		if *dir == "" {
			*dir = cfg.MigrationsPath
		}
	}

	conn, err := db.NewPostgres(ctx, *dsn, db.DefaultPoolOptions())
	if err != nil {
		log.Fatalf("migrate: ошибка подключения к базе: %v", err)
	}
	defer conn.Close()

	applied, err := db.RunMigrations(ctx, conn, *dir)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.WithField("count", len(applied)).Info("migrate: готово")
}
