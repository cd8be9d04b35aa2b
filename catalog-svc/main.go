package main

import (
	"log"
	"net/http"
	"time"

	httpapi "quickbite/catalog-svc/internal/api/http"
	"quickbite/catalog-svc/internal/service"
	"quickbite/catalog-svc/internal/storage"
	"quickbite/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repository := storage.NewPostgresRepository(db)
	cache := storage.NewMenuCache(rdb, 60*time.Second)
	catalog := service.NewCatalogService(repository, cache)

	handler := httpapi.NewHandler(catalog)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	h := cors.Default().Handler(r)

	port := config.GetEnv("PORT", "8081")
	log.Println("Catalog Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, h))
}
