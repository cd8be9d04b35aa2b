package main

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"quickbite/config"
	httpapi "quickbite/order-svc/internal/api/http"
	"quickbite/order-svc/internal/clients"
	"quickbite/order-svc/internal/service"
	"quickbite/order-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	kafkaWriter := config.NewKafkaWriter("order-events")
	defer kafkaWriter.Close()

	urls := config.LoadServiceURLs()
	httpClient := config.NewInternalHTTPClient()

	cfg := service.DefaultConfig()
	if rate, err := strconv.ParseFloat(config.GetEnv("COMMISSION_RATE", "0.10"), 64); err == nil && rate > 0 {
		cfg.CommissionRate = rate
	}
	if minutes, err := strconv.Atoi(config.GetEnv("DELIVERY_ESTIMATE_MINUTES", "45")); err == nil && minutes > 0 {
		cfg.DeliveryEstimate = time.Duration(minutes) * time.Minute
	}
	cfg.TrackingBaseURL = config.GetEnv("TRACKING_BASE_URL", cfg.TrackingBaseURL)

	repository := storage.NewPostgresRepository(db)
	events := storage.NewEventPublisher(kafkaWriter)
	catalog := clients.NewCatalogClient(urls.CatalogSvc, httpClient)
	payments := clients.NewPaymentClient(urls.PaymentSvc, httpClient)
	drivers := clients.NewDriverClient(urls.DriverSvc, httpClient)
	orders := service.NewOrderService(repository, catalog, payments, drivers, events, cfg)

	handler := httpapi.NewHandler(orders)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	h := cors.Default().Handler(r)

	port := config.GetEnv("PORT", "8084")
	log.Println("Order Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, h))
}
