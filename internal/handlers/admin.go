package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/domain"
)

// AdminHandler выдает токен администратора
type AdminHandler struct {
	authService domain.AdminAuthService
	logger      *zap.Logger
}

// NewAdminHandler создает новый AdminHandler
func NewAdminHandler(authService domain.AdminAuthService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		authService: authService,
		logger:      logger,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if req.Password == "" {
		writeError(w, r, h.logger, domain.NewValidationError("password is required"))
		return
	}

	token, err := h.authService.Login(r.Context(), req.Password)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, h.logger, http.StatusOK, loginResponse{Token: token})
}
