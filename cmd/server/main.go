package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/benbeisheim/chessrules-backend/internal/controller"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type config struct {
	addr     string
	origins  string
	logLevel string
	botSeed  uint64
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getenvUint(key string, fallback uint64) uint64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Warnf("ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}

func loadConfig() config {
	var cfg config
	flag.StringVar(&cfg.addr, "addr", getenv("CHESS_ADDR", ":3000"), "listen address")
	flag.StringVar(&cfg.origins, "origins", getenv("CHESS_ALLOWED_ORIGINS", "http://localhost:5173"), "comma-separated allowed origins")
	flag.StringVar(&cfg.logLevel, "log-level", getenv("CHESS_LOG_LEVEL", "info"), "debug, info, warn or error")
	flag.Uint64Var(&cfg.botSeed, "bot-seed", getenvUint("CHESS_BOT_SEED", 0), "random bot seed (0 = from clock)")
	flag.Parse()
	return cfg
}

func parseLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	}
	return log.LevelInfo
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func main() {
	cfg := loadConfig()
	log.SetLevel(parseLevel(cfg.logLevel))

	app := fiber.New(fiber.Config{
		AppName: "chessrules",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager, service.NewRandomBot(cfg.botSeed))

	controller.SetupRoutes(app, gameService, splitOrigins(cfg.origins))

	log.Infof("listening on %s", cfg.addr)
	log.Fatal(app.Listen(cfg.addr))
}
