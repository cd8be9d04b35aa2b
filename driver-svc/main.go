package main

import (
	"log"
	"net/http"

	"quickbite/config"
	httpapi "quickbite/driver-svc/internal/api/http"
	"quickbite/driver-svc/internal/clients"
	"quickbite/driver-svc/internal/service"
	"quickbite/driver-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	urls := config.LoadServiceURLs()
	httpClient := config.NewInternalHTTPClient()

	repository := storage.NewPostgresRepository(db)
	users := clients.NewUserClient(urls.UserSvc, httpClient)
	orders := clients.NewOrderClient(urls.OrderSvc, httpClient)
	drivers := service.NewDriverService(repository, users, orders)

	handler := httpapi.NewHandler(drivers)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	h := cors.Default().Handler(r)

	port := config.GetEnv("PORT", "8083")
	log.Println("Driver Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, h))
}
