package commands

import (
	"context"

	"marketlink/internal/domain/user"
	reqdto "marketlink/internal/handler/dto/request"
	"marketlink/internal/infra"
	"marketlink/internal/pkg/errs"
	"marketlink/internal/pkg/jwt"
	"marketlink/internal/pkg/password"
	"marketlink/internal/usecase/queries"
	"marketlink/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUsernameTaken        = errs.New("username already taken")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type AuthResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	credentials, err := user.NewCredentials(req.Username, req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser := user.NewUser(credentials.Username(), hash, role)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, newUser)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, errs.Wrap(err, "failed to register user")
	}

	return a.issueToken(newUser.ID(), newUser.Username().Value(), role)
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	// Same error for unknown user and wrong password to avoid user enumeration.
	view, hash, err := a.readStore.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.issueToken(view.ID, view.Username, role)
}

func (a *authCommandsImpl) issueToken(userID uuid.UUID, username string, role user.Role) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(userID, username, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		Token: token,
		User: &queries.AuthorizedUserView{
			ID:       userID,
			Username: username,
			Role:     role.String(),
		},
	}, nil
}
