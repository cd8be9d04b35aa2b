package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"quickbite/config"
	httpapi "quickbite/tracking-svc/internal/api/http"
	"quickbite/tracking-svc/internal/service"
	"quickbite/tracking-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("order-events", "tracking-svc-consumer")
	defer reader.Close()

	store := storage.NewStore(rdb, 24*time.Hour)
	consumer := service.NewConsumer(reader, store)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(store)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	h := cors.Default().Handler(r)

	port := config.GetEnv("PORT", "8086")
	log.Println("Tracking Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, h))
}
