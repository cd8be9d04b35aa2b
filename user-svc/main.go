package main

import (
	"log"
	"net/http"

	"quickbite/config"
	httpapi "quickbite/user-svc/internal/api/http"
	"quickbite/user-svc/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewUserRepo(db)
	handler := httpapi.NewHandler(repo)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	h := cors.Default().Handler(r)

	port := config.GetEnv("PORT", "8085")
	log.Println("User Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, h))
}
