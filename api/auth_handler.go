package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/sdp-portal/projectbank-backend/auth"
	"github.com/sdp-portal/projectbank-backend/config"
	"github.com/sdp-portal/projectbank-backend/database"
	"github.com/sdp-portal/projectbank-backend/errs"
	"github.com/sdp-portal/projectbank-backend/models"
)

const sessionCookieName = "session"

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	oauthConfig *oauth2.Config
	jwtSecret   string
	sessionTTL  time.Duration
	frontendURL string
	userRepo    *database.UserRepo
	teacherRepo *database.TeacherRepo
	studentRepo *database.StudentRepo
}

func newAuthHandler(c map[string]string, userRepo *database.UserRepo, teacherRepo *database.TeacherRepo, studentRepo *database.StudentRepo) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	oauthConfig := &oauth2.Config{
		ClientID:     config.GetString(c, "CLIENT_ID", ""),
		ClientSecret: config.GetString(c, "CLIENT_SECRET", ""),
		RedirectURL:  config.GetString(c, "OAUTH_REDIRECT_URL", "http://localhost:8000/auth/google/callback"),
		Scopes:       []string{"profile", "email"},
		Endpoint:     google.Endpoint,
	}

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		oauthConfig: oauthConfig,
		jwtSecret:   config.GetString(c, "JWT_SECRET", ""),
		sessionTTL:  time.Duration(config.GetInt(c, "SESSION_TTL_HOURS", 24)) * time.Hour,
		frontendURL: config.GetString(c, "FRONTEND_URL", "http://localhost:3000"),
		userRepo:    userRepo,
		teacherRepo: teacherRepo,
		studentRepo: studentRepo,
	}
}

// googleProfile is the subset of the userinfo response the app needs.
type googleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// googleLogin starts the OAuth flow. The user_type the login page was opened
// with travels in the state parameter so the callback can verify it against
// the role derived from the email.
func (h authHandler) googleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userType := r.URL.Query().Get("user_type")
		http.Redirect(w, r, h.oauthConfig.AuthCodeURL(userType), http.StatusFound)
	}
}

// googleCallback finishes the OAuth flow: exchanges the code, upserts the
// account record, rejects a role mismatch, provisions the role-specific
// profile row on first sign-in, and hands the browser a session cookie.
func (h authHandler) googleCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		code := r.URL.Query().Get("code")
		if code == "" {
			http.Redirect(w, r, h.frontendURL+"/login", http.StatusFound)
			return
		}

		token, err := h.oauthConfig.Exchange(ctx, code)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to exchange OAuth code")
			http.Redirect(w, r, h.frontendURL+"/login", http.StatusFound)
			return
		}

		profile, err := h.fetchProfile(ctx, token)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch OAuth profile")
			http.Redirect(w, r, h.frontendURL+"/login", http.StatusFound)
			return
		}

		role := auth.DeriveRole(profile.Email)

		user, err := h.userRepo.FindByGoogleID(profile.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			user = &models.User{
				GoogleID:    profile.ID,
				DisplayName: profile.Name,
				Email:       profile.Email,
				Image:       profile.Picture,
				UserType:    string(role),
			}
			if err := h.userRepo.Add(user); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("create user", "user", err))
				return
			}
		}

		// The login page the user came from must match the role their email
		// derives to; otherwise a teacher could sign in through the student
		// page and vice versa.
		userType := r.URL.Query().Get("state")
		if string(role) != userType {
			http.Redirect(w, r, h.frontendURL+"/error", http.StatusFound)
			return
		}

		if err := h.provisionProfile(role, user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("provision profile", userType, err))
			return
		}

		sessionToken, err := auth.NewSessionToken(h.jwtSecret, user.GoogleID, role, h.sessionTTL)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign session token")
			h.responder.WriteError(w, errs.NewInternalError("failed to establish session"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    sessionToken,
			Path:     "/",
			Expires:  time.Now().Add(h.sessionTTL),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		home := "StudentHome"
		if role == auth.RoleTeacher {
			home = "TeacherHome"
		}
		http.Redirect(w, r, fmt.Sprintf("%s/%s/%s", h.frontendURL, home, user.GoogleID), http.StatusFound)
	}
}

// fetchProfile loads the signed-in user's profile from the userinfo endpoint.
func (h authHandler) fetchProfile(ctx context.Context, token *oauth2.Token) (*googleProfile, error) {
	client := h.oauthConfig.Client(ctx, token)
	resp, err := client.Get(userinfoEndpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// provisionProfile lazily creates the blank Teacher or Student row the profile
// forms fill in later. Accounts with the "other" role get neither.
func (h authHandler) provisionProfile(role auth.Role, user *models.User) error {
	switch role {
	case auth.RoleTeacher:
		teacher, err := h.teacherRepo.FindByUserID(user.GoogleID)
		if err != nil || teacher != nil {
			return err
		}
		return h.teacherRepo.Add(&models.Teacher{
			UserID: user.GoogleID,
			Name:   user.DisplayName,
		})
	case auth.RoleStudent:
		student, err := h.studentRepo.FindByUserID(user.GoogleID)
		if err != nil || student != nil {
			return err
		}
		return h.studentRepo.Add(&models.Student{
			UserID: user.GoogleID,
			Name:   user.DisplayName,
		})
	}
	return nil
}

// loginSuccess reports the signed-in user for the frontend session check.
func (h authHandler) loginSuccess() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			h.responder.WriteJSON(w, map[string]string{"message": "Not Authorized"})
			return
		}

		userID, _, err := auth.ParseSessionToken(h.jwtSecret, cookie.Value)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			h.responder.WriteJSON(w, map[string]string{"message": "Not Authorized"})
			return
		}

		user, err := h.userRepo.FindByGoogleID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			w.WriteHeader(http.StatusBadRequest)
			h.responder.WriteJSON(w, map[string]string{"message": "Not Authorized"})
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"message": "user Login",
			"user":    user,
		})
	}
}

// logout clears the session cookie and sends the browser back to the landing page.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		http.Redirect(w, r, h.frontendURL+"/", http.StatusFound)
	}
}

// getUser fetches the account record by provider id
// @Summary Get user
// @Description Retrieves the account record created at sign-in
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.User "User account"
// @Failure 404 {object} ErrorResponse "Not Found - User not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /users/{userId} [get]
func (h authHandler) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")

		user, err := h.userRepo.FindByGoogleID(userID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}

		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("User not found"))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}
