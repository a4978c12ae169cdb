package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"storroz/internal/config"
	handlers "storroz/internal/handler"
)

type Middleware func(http.Handler) http.Handler

// AuthMiddleware verifies the JWT token and adds user data to the context.
// Only the notification endpoints need a current user, the rest of the
// surface is open.
func AuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Guarding only the protected prefixes
			protectedPrefixes := []string{
				"/api/notifications",
			}

			protected := false
			for _, prefix := range protectedPrefixes {
				if strings.HasPrefix(r.URL.Path, prefix) {
					protected = true
					break
				}
			}

			if !protected {
				next.ServeHTTP(w, r)
				return
			}

			// Extracting the token from the header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handlers.WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
				return
			}

			// Checking the "Bearer <token>" format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				handlers.WriteError(w, "Неверный формат токена", http.StatusUnauthorized)
				return
			}

			tokenString := parts[1]

			// Parse token
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				// Checking the signature algorithm
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecretKey), nil
			})

			if err != nil {
				handlers.WriteError(w, "Недействительный токен: "+err.Error(), http.StatusUnauthorized)
				return
			}

			if !token.Valid {
				handlers.WriteError(w, "Недействительный токен", http.StatusUnauthorized)
				return
			}

			// Extracting claims
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				userID, ok1 := claims["userId"].(float64)
				username, ok2 := claims["username"].(string)

				if !ok1 || !ok2 {
					handlers.WriteError(w, "Неверные данные в токене", http.StatusUnauthorized)
					return
				}

				// Adding user data to the context
				ctx := r.Context()
				ctx = context.WithValue(ctx, "userID", int64(userID))
				ctx = context.WithValue(ctx, "username", username)

				// Passing the updated context on
				next.ServeHTTP(w, r.WithContext(ctx))
			} else {
				handlers.WriteError(w, "Неверные claims токена", http.StatusUnauthorized)
			}
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
