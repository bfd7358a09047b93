package site

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/database"
)

type contextKey string

const authenticatedAdminKey = contextKey("authenticated_admin")

func generateAuthToken() (string, error) {
	const tokenLength = 32
	tokenBytes := make([]byte, tokenLength)
	_, err := rand.Read(tokenBytes)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}

func getSignedInAdminOrNil(r *http.Request) *database.AdminUser {
	admin, _ := r.Context().Value(authenticatedAdminKey).(*database.AdminUser)
	return admin
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

// TryPutAdminInContextMiddleware resolves a bearer token to an admin
// account and stores it in the request context. Requests without a
// valid token pass through unauthenticated.
func TryPutAdminInContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		admin, err := database.GetAdminByToken(database.GetDB(), token)
		if err != nil || admin == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), authenticatedAdminKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnlyMiddleware rejects requests that did not authenticate.
func AdminOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if getSignedInAdminOrNil(r) == nil {
			respondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLogin verifies credentials and mints a session token. Unknown
// usernames and wrong passwords produce the same generic 401.
func AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Missing credentials"})
		return
	}

	if req.Username == "" || req.Password == "" {
		respondJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "Missing credentials"})
		return
	}

	admin, err := database.VerifyAdmin(database.GetDB(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, database.ErrInvalidCredentials) {
			log.Printf("Failed login attempt: %s", req.Username)
			respondJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
			return
		}
		log.Printf("Login error: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Server error"})
		return
	}

	token, err := generateAuthToken()
	if err != nil {
		log.Printf("Login error: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Server error"})
		return
	}

	admin.SessionToken = token
	if result := database.GetDB().Save(admin); result.Error != nil {
		log.Printf("Login error: %v", result.Error)
		respondJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": "Server error"})
		return
	}

	log.Printf("Successful login: %s", req.Username)
	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"username": admin.Username,
		"role":     admin.Role,
		"email":    admin.Email,
		"token":    token,
	})
}
