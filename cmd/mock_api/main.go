package main

import (
	"fmt"
	"log"
	"net/http"

	"img_tg_bot/internal/pkg/mock-api/handlers"
)

func main() {
	// Настройка маршрутов
	http.HandleFunc("/api/v1/tokens", handlers.TokensHandler)
	http.HandleFunc("/api/v1/profile", handlers.ProfileHandler)
	http.HandleFunc("/api/v1/strategies", handlers.StrategiesHandler)
	http.HandleFunc("/api/v1/upload", handlers.UploadHandler)

	// Health check endpoint
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	port := ":8082"
	fmt.Printf("Mock Lsky API запущен на порту %s\n", port)
	fmt.Println("Доступные эндпоинты:")
	fmt.Println("   POST /api/v1/tokens")
	fmt.Println("   GET  /api/v1/profile")
	fmt.Println("   GET  /api/v1/strategies")
	fmt.Println("   POST /api/v1/upload")
	fmt.Println("   GET  /health")

	log.Fatal(http.ListenAndServe(port, nil))
}
