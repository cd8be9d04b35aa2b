package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL    string
	CatalogSvcURL  string
	PaymentSvcURL  string
	DriverSvcURL   string
	UserSvcURL     string
	TrackingSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequest(r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	// Service-to-service endpoints are never reachable through the edge.
	if strings.Contains(path, "/internal/") {
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}

	// Tracking mounts its routes under /api/tracking already.
	if strings.HasPrefix(path, "/api/tracking/") {
		g.ProxyRequest(w, r, g.config.TrackingSvcURL)
		return
	}

	// Everything else is mounted without the /api prefix on the service side.
	stripped := strings.TrimPrefix(path, "/api")

	switch {
	case strings.HasPrefix(stripped, "/orders"):
		r.URL.Path = stripped
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
	case strings.HasPrefix(stripped, "/restaurants"), strings.HasPrefix(stripped, "/menu-items"):
		r.URL.Path = stripped
		g.ProxyRequest(w, r, g.config.CatalogSvcURL)
	case strings.HasPrefix(stripped, "/payments"):
		r.URL.Path = stripped
		g.ProxyRequest(w, r, g.config.PaymentSvcURL)
	case strings.HasPrefix(stripped, "/drivers"):
		r.URL.Path = stripped
		g.ProxyRequest(w, r, g.config.DriverSvcURL)
	case strings.HasPrefix(stripped, "/users"):
		r.URL.Path = stripped
		g.ProxyRequest(w, r, g.config.UserSvcURL)
	default:
		log.Printf("[GATEWAY] Unmatched API route: %s", path)
		http.Error(w, "API route not found", http.StatusNotFound)
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}
