package middleware

import (
	"github.com/go-chi/cors"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/config"
)

// CORS returns the go-chi/cors handler configured from cfg. Preflight
// requests are answered with 200 and never reach the router.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   config.SplitList(cfg.AllowedOrigins),
		AllowedMethods:   config.SplitList(cfg.AllowedMethods),
		AllowedHeaders:   config.SplitList(cfg.AllowedHeaders),
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
