package main

import (
	"log"
	"net/http"

	"quickbite/api-gateway/internal/gateway"
	"quickbite/config"

	"github.com/rs/cors"
)

func main() {
	urls := config.LoadServiceURLs()

	gwConfig := gateway.Config{
		OrderSvcURL:    urls.OrderSvc,
		CatalogSvcURL:  urls.CatalogSvc,
		PaymentSvcURL:  urls.PaymentSvc,
		DriverSvcURL:   urls.DriverSvc,
		UserSvcURL:     urls.UserSvc,
		TrackingSvcURL: config.GetEnv("TRACKING_SVC_URL", "http://localhost:8086"),
	}

	gw := gateway.NewGateway(gwConfig, config.NewEdgeHTTPClient())

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	port := config.GetEnv("PORT", "8080")
	log.Println("API Gateway starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
