// Command migrate creates the request cache tables.
package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"cryptochart/internal/storage/clickhouse"
	"cryptochart/internal/storage/migrations"
	"cryptochart/internal/storage/postgres"
)

func main() {
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "ClickHouse connection string")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found")
	}

	if *postgresDSN == "" && *clickhouseDSN == "" {
		logrus.Fatal("No database selected, use --postgres-dsn or --clickhouse-dsn")
	}

	ctx := context.Background()

	if *postgresDSN != "" {
		pool, err := postgres.NewPool(ctx, *postgresDSN)
		if err != nil {
			logrus.Fatalf("Postgres connection error: %v", err)
		}
		defer pool.Close()

		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			logrus.Fatalf("Postgres migration error: %v", err)
		}
		logrus.Info("Postgres migrations applied")
	}

	if *clickhouseDSN != "" {
		conn, err := clickhouse.NewConn(ctx, *clickhouseDSN)
		if err != nil {
			logrus.Fatalf("ClickHouse connection error: %v", err)
		}
		defer conn.Close()

		if err := migrations.RunClickhouseMigrations(ctx, conn); err != nil {
			logrus.Fatalf("ClickHouse migration error: %v", err)
		}
		logrus.Info("ClickHouse migrations applied")
	}
}
