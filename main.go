package main

import (
	auth "Girder/internal/auth"
	analysis "Girder/internal/calc/analysis"
	batch "Girder/internal/calc/batch"
	envelope "Girder/internal/calc/envelope"
	importer "Girder/internal/calc/importer"
	loadcases "Girder/internal/calc/loadcases"
	report "Girder/internal/calc/report"
	catalog "Girder/internal/catalog"
	repo "Girder/internal/repo"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	sections := catalog.NewPostgresCatalog(db)
	catalogH := &catalog.Handler{Catalog: sections}

	loadcasesH := &loadcases.Handler{}
	envelopeH := &envelope.Handler{}
	analysisH := &analysis.Handler{}
	batchH := &batch.Handler{}
	reportH := &report.Handler{}
	importerH := &importer.Handler{Catalog: sections}

	secureApi.HandleFunc("/tools/loadcases/calc", loadcasesH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/envelope/calc", envelopeH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/analysis/run", analysisH.Run).Methods("POST")
	secureApi.HandleFunc("/tools/analysis/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/import/members", importerH.Members).Methods("POST")

	secureApi.HandleFunc("/catalog/sections", catalogH.List).Methods("GET")
	secureApi.HandleFunc("/catalog/sections/{designation}", catalogH.Get).Methods("GET")
	secureApi.HandleFunc("/catalog/meta", catalogH.Meta).Methods("GET")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error stopping server: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
