package config

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// ServiceURLs holds the addresses of every internal service. It is built once
// in main and injected into clients instead of being read from the
// environment at call sites.
type ServiceURLs struct {
	OrderSvc   string
	CatalogSvc string
	PaymentSvc string
	DriverSvc  string
	UserSvc    string
}

// InternalCallTimeout bounds every service-to-service HTTP call. Edge calls
// through the gateway use EdgeCallTimeout instead.
const (
	InternalCallTimeout = 5 * time.Second
	EdgeCallTimeout     = 30 * time.Second
)

func LoadServiceURLs() ServiceURLs {
	return ServiceURLs{
		OrderSvc:   GetEnv("ORDER_SVC_URL", "http://localhost:8084"),
		CatalogSvc: GetEnv("CATALOG_SVC_URL", "http://localhost:8081"),
		PaymentSvc: GetEnv("PAYMENT_SVC_URL", "http://localhost:8082"),
		DriverSvc:  GetEnv("DRIVER_SVC_URL", "http://localhost:8083"),
		UserSvc:    GetEnv("USER_SVC_URL", "http://localhost:8085"),
	}
}

// NewInternalHTTPClient returns the client used for service-to-service calls.
// Short timeout so a stuck dependency fails fast instead of pinning workers.
func NewInternalHTTPClient() *http.Client {
	return &http.Client{Timeout: InternalCallTimeout}
}

// NewEdgeHTTPClient returns the client the gateway proxies through. Looser
// timeout than internal calls since a single edge request may fan out.
func NewEdgeHTTPClient() *http.Client {
	return &http.Client{Timeout: EdgeCallTimeout}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
