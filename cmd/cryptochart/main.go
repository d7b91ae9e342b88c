// Command cryptochart queries CryptoCurrencyChart price data through the
// persistent request cache.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"cryptochart/internal/api"
	"cryptochart/internal/cache"
	"cryptochart/internal/config"
	"cryptochart/internal/observability"
	"cryptochart/internal/storage"
	chstore "cryptochart/internal/storage/clickhouse"
	"cryptochart/internal/storage/memory"
	pgstore "cryptochart/internal/storage/postgres"
)

func main() {
	mode := flag.String("mode", "coins", "Query mode: coins, coin, history, datatypes, currencies, or verify")
	coinID := flag.Int("coin", 0, "Coin id for coin and history modes")
	date := flag.String("date", "", "Snapshot date for coin mode (YYYY-MM-DD, empty for latest)")
	start := flag.String("start", "", "Start date for history mode (YYYY-MM-DD)")
	end := flag.String("end", "", "End date for history mode (YYYY-MM-DD)")
	dataType := flag.String("data-type", "price", "Data type for history mode")
	baseCurrency := flag.String("base-currency", "USD", "Base currency for coin and history modes")
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string for the request cache")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "ClickHouse connection string for the request cache")
	useMemory := flag.Bool("use-memory", false, "Use in-memory cache storage instead of a database")
	metricsAddr := flag.String("metrics-addr", "", "Prometheus metrics HTTP address (empty to disable)")

	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found")
	}

	logger := logrus.New()
	if level, err := logrus.ParseLevel(getEnv("CRYPTOCHART_LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}

	options := config.FromEnv()
	if err := options.Validate(); err != nil {
		logger.Fatalf("Configuration error: %v", err)
	}

	ctx := context.Background()

	store, cleanup, err := buildStore(ctx, *useMemory, *postgresDSN, *clickhouseDSN)
	if err != nil {
		logger.Fatalf("Storage error: %v", err)
	}
	defer cleanup()

	metrics := observability.NewMetrics("cryptochart")
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.Handler())
			logger.Infof("Starting metrics server on %s", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && err != http.ErrServerClosed {
				logger.Errorf("Metrics server error: %v", err)
			}
		}()
	}

	client := api.NewClient(options.APIKey, options.APISecret, api.WithLogger(logger))
	requestCache := cache.New(client, store, options,
		cache.WithLogger(logger),
		cache.WithMetrics(metrics),
	)

	if err := run(ctx, *mode, runArgs{
		cache:        requestCache,
		client:       client,
		coinID:       *coinID,
		date:         *date,
		start:        *start,
		end:          *end,
		dataType:     *dataType,
		baseCurrency: *baseCurrency,
	}); err != nil {
		logger.Fatalf("Error: %v", err)
	}
}

type runArgs struct {
	cache        *cache.RequestCache
	client       *api.Client
	coinID       int
	date         string
	start        string
	end          string
	dataType     string
	baseCurrency string
}

func run(ctx context.Context, mode string, args runArgs) error {
	switch mode {
	case "coins":
		coins, err := args.cache.GetCoins(ctx)
		if err != nil {
			return err
		}
		for _, coin := range coins {
			fmt.Printf("%d\t%s\t%s\n", coin.ID, coin.Symbol, coin.Name)
		}
	case "coin":
		date, err := parseOptionalDate(args.date)
		if err != nil {
			return err
		}
		coin, err := args.cache.ViewCoin(ctx, args.coinID, date, args.baseCurrency)
		if err != nil {
			return err
		}
		printCoin(coin.Name, coin.Symbol, coin.Price, args.baseCurrency)
	case "history":
		start, err := time.Parse("2006-01-02", args.start)
		if err != nil {
			return fmt.Errorf("invalid start date %q", args.start)
		}
		end, err := time.Parse("2006-01-02", args.end)
		if err != nil {
			return fmt.Errorf("invalid end date %q", args.end)
		}
		history, err := args.cache.ViewCoinHistory(ctx, args.coinID, start, end, args.dataType, args.baseCurrency)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s, %s)\n", history.Coin.Name, history.DataType, history.BaseCurrency)
		for _, sample := range history.Data {
			if sample.Value != nil {
				fmt.Printf("%s\t%f\n", sample.Date, *sample.Value)
			} else {
				fmt.Printf("%s\t-\n", sample.Date)
			}
		}
	case "datatypes":
		dataTypes, err := args.cache.GetDataTypes(ctx)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(dataTypes, "\n"))
	case "currencies":
		currencies, err := args.cache.GetBaseCurrencies(ctx)
		if err != nil {
			return err
		}
		for _, currency := range currencies {
			fmt.Printf("%s\t%s\n", currency, api.FiatSymbol(currency))
		}
	case "verify":
		// Credential check goes straight to the client: a stale cached
		// response must not report an invalid key as valid.
		if _, err := args.client.GetCoins(ctx); err != nil {
			fmt.Println("credentials: invalid")
			return nil
		}
		fmt.Println("credentials: valid")
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	return nil
}

func buildStore(ctx context.Context, useMemory bool, postgresDSN, clickhouseDSN string) (storage.CacheStore, func(), error) {
	switch {
	case useMemory:
		return memory.NewCacheStore(), func() {}, nil
	case postgresDSN != "":
		pool, err := pgstore.NewPool(ctx, postgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return pgstore.NewCacheStore(pool), pool.Close, nil
	case clickhouseDSN != "":
		conn, err := chstore.NewConn(ctx, clickhouseDSN)
		if err != nil {
			return nil, nil, err
		}
		return chstore.NewCacheStore(conn), func() { _ = conn.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("no storage selected, use --postgres-dsn, --clickhouse-dsn or --use-memory")
	}
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", value)
	}
	return &date, nil
}

func printCoin(name, symbol string, price *float64, baseCurrency string) {
	if price != nil {
		fmt.Printf("%s (%s): %s%f\n", name, symbol, api.FiatSymbol(baseCurrency), *price)
	} else {
		fmt.Printf("%s (%s): no price data\n", name, symbol)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
