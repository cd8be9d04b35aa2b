package main

import (
	"log"
	"net/http"
	"time"

	"quickbite/config"
	httpapi "quickbite/payment-svc/internal/api/http"
	"quickbite/payment-svc/internal/clients"
	"quickbite/payment-svc/internal/service"
	"quickbite/payment-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	urls := config.LoadServiceURLs()

	repository := storage.NewPostgresRepository(db)
	cache := storage.NewPaidMarkerCache(rdb, 24*time.Hour)
	orders := clients.NewOrderClient(urls.OrderSvc, config.NewInternalHTTPClient())
	payments := service.NewPaymentService(repository, cache, orders)

	handler := httpapi.NewHandler(payments)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	h := cors.Default().Handler(r)

	port := config.GetEnv("PORT", "8082")
	log.Println("Payment Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, h))
}
