package middleware

import (
	"buscador_cep/pkg"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const defaultCORSOrigins = "http://localhost:3000"

// CORSConfigFromEnv builds the CORS policy of the JSON API.
//
//   - CORS_ORIGINS: comma separated list (default http://localhost:3000); "*" allows all
//   - CORS_ALLOW_ALL: "true" allows all origins
func CORSConfigFromEnv() cors.Config {
	origins := splitCSV(pkg.GetenvDefault("CORS_ORIGINS", defaultCORSOrigins))
	allowAll := strings.EqualFold(os.Getenv("CORS_ALLOW_ALL"), "true")
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}

	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func CORS() gin.HandlerFunc {
	return cors.New(CORSConfigFromEnv())
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
