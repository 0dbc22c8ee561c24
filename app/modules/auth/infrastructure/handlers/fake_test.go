package authhandlers

import (
	"context"

	authservice "github.com/padelcoach/coach-api/app/modules/auth/application"
	authdomain "github.com/padelcoach/coach-api/app/modules/auth/domain"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	RegisterFunc     func(ctx context.Context, req authservice.RegisterRequest) (*authdomain.Trainer, error)
	LoginFunc        func(ctx context.Context, email, password string) (*authservice.LoginResponse, error)
	AuthenticateFunc func(ctx context.Context, tokenString string) (*authdomain.Trainer, error)
}

func (f *FakeService) Register(ctx context.Context, req authservice.RegisterRequest) (*authdomain.Trainer, error) {
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, req)
	}
	return &authdomain.Trainer{Email: req.Email, Name: req.Name}, nil
}

func (f *FakeService) Login(ctx context.Context, email, password string) (*authservice.LoginResponse, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, email, password)
	}
	return &authservice.LoginResponse{Token: "fake-token"}, nil
}

func (f *FakeService) Authenticate(ctx context.Context, tokenString string) (*authdomain.Trainer, error) {
	if f.AuthenticateFunc != nil {
		return f.AuthenticateFunc(ctx, tokenString)
	}
	return &authdomain.Trainer{}, nil
}
