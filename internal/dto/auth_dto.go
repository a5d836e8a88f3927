package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Nombre   string   `json:"nombre"`
	Rol      string   `json:"rol"`
	Roles    []string `json:"roles,omitempty"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

// ContadoresResponse feeds the clerk selector: the contador-role users plus
// the caller's id so the client can default the selection to itself when it
// also holds the role.
type ContadoresResponse struct {
	Contadores []UsuarioResponse `json:"contadores"`
	CallerID   string            `json:"caller_id"`
}
