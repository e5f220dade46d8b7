package usecase

import (
	"github.com/standup-lab/standup/pkg/domain/interfaces"
	"github.com/standup-lab/standup/pkg/service/token"
)

// UseCases bundles the use case layer for injection into controllers
type UseCases struct {
	Auth     *AuthUseCase
	DailyLog *DailyLogUseCase
}

type Option func(*options)

type options struct {
	authOpts []AuthOption
	logOpts  []DailyLogOption
}

// WithAuthOptions forwards options to the auth use case
func WithAuthOptions(opts ...AuthOption) Option {
	return func(o *options) {
		o.authOpts = append(o.authOpts, opts...)
	}
}

// WithDailyLogOptions forwards options to the daily log use case
func WithDailyLogOptions(opts ...DailyLogOption) Option {
	return func(o *options) {
		o.logOpts = append(o.logOpts, opts...)
	}
}

func New(repo interfaces.Repository, tokens *token.Service, opts ...Option) *UseCases {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &UseCases{
		Auth:     NewAuthUseCase(repo, tokens, o.authOpts...),
		DailyLog: NewDailyLogUseCase(repo, o.logOpts...),
	}
}
