package main

import (
	"log"
	"net/http"

	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	"cineai/api"
	"cineai/config"
	"cineai/handlers"
	chatpkg "cineai/services/chat"
	metadatapkg "cineai/services/metadata"
	"cineai/utils"
)

func main() {
	cfg := config.Load()

	if cfg.LogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		})
	}

	metadata := metadatapkg.NewService(cfg.TMDBBearer, cfg.TMDBAPIKey, cfg.YouTubeKey, cfg.Demo)
	chat := chatpkg.NewService()

	movies := handlers.NewMoviesHandler(metadata)
	videos := handlers.NewVideosHandler(metadata)
	feed := handlers.NewFeedHandler(metadata)
	chatH := handlers.NewChatHandler(chat)

	r := utils.NewRouter()
	r.HandleFunc("/api/movies/trending", movies.Trending).Methods(http.MethodGet)
	r.HandleFunc("/api/movies/classic", movies.Classics).Methods(http.MethodGet)
	r.HandleFunc("/api/movies/predictions", movies.Predictions).Methods(http.MethodGet)
	r.HandleFunc("/api/videos/trending", videos.Trending).Methods(http.MethodGet)
	r.HandleFunc("/api/topics/trending", feed.Topics).Methods(http.MethodGet)
	r.HandleFunc("/api/news/trending", feed.News).Methods(http.MethodGet)
	r.HandleFunc("/api/topics/{topic}/chat", chatH.List).Methods(http.MethodGet)
	r.HandleFunc("/api/topics/{topic}/chat", chatH.Post).Methods(http.MethodPost)

	limiter := api.NewIPRateLimiter(rate.Limit(5), 20)
	handler := api.LoggingHandler(api.RateLimitHandler(limiter, utils.CORSMiddleware(r)))

	if cfg.Demo {
		log.Printf("[main] demo mode: serving seed fixtures, no upstream calls")
	}
	log.Printf("[main] listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("[main] server error: %v", err)
	}
}
