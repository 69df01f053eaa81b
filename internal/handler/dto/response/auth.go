package response

import "marketlink/internal/usecase/queries"

type AuthResponse struct {
	Token string                      `json:"token"`
	User  *queries.AuthorizedUserView `json:"user"`
}

type CurrentUserResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
