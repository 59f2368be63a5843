package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"nathanbeddoewebdev/dnsimple/dnsimple"
	"nathanbeddoewebdev/dnsimple/internal/config"
	"nathanbeddoewebdev/dnsimple/internal/services/auth"

	"go.uber.org/zap"
)

// userAgent identifies CLI traffic in front of the library's own agent.
const userAgent = "dnsimple-cli"

// Session is an authenticated API client plus the account it acts on.
// The account is resolved lazily from the token when not configured.
type Session struct {
	Client *dnsimple.Client

	logger *zap.Logger

	mu        sync.Mutex
	accountID string
}

// NewClient builds an API client for token using the resolved settings.
// BaseURL wins over Sandbox.
func NewClient(ctx context.Context, token string, cfg *config.Config, logger *zap.Logger) *dnsimple.Client {
	opts := []dnsimple.Option{
		dnsimple.WithUserAgent(userAgent),
		dnsimple.WithLogger(logger),
	}
	switch {
	case cfg.BaseURL != "":
		opts = append(opts, dnsimple.WithBaseURL(cfg.BaseURL))
	case cfg.Sandbox:
		opts = append(opts, dnsimple.WithSandbox())
	}

	return dnsimple.NewClient(dnsimple.StaticTokenHTTPClient(ctx, token), opts...)
}

// NewSession wraps client. An empty accountID is resolved on first use.
func NewSession(client *dnsimple.Client, accountID string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{Client: client, accountID: accountID, logger: logger}
}

// Open resolves the token and settings and returns a ready Session.
func Open(ctx context.Context, store auth.Store) (*Session, error) {
	token, source, err := auth.ResolveToken(store, auth.DefaultProvider)
	if err != nil {
		return nil, fmt.Errorf("dnsimple auth: %w (run 'dnsimple auth login' or set %s)", err, auth.EnvToken)
	}

	cfg, err := config.Resolve()
	if err != nil {
		return nil, err
	}

	logger := zap.L()
	logger.Debug("opening session",
		zap.String("token_source", string(source)),
		zap.String("account", cfg.Account),
		zap.Bool("sandbox", cfg.Sandbox),
		zap.String("base_url", cfg.BaseURL),
	)

	return NewSession(NewClient(ctx, token, cfg, logger), cfg.Account, logger), nil
}

// AccountID returns the account to scope requests to. Account tokens
// identify their account through whoami; user tokens must have access to
// exactly one account unless one is configured.
func (s *Session) AccountID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accountID != "" {
		return s.accountID, nil
	}

	whoami, err := dnsimple.Whoami(ctx, s.Client)
	if err != nil {
		return "", err
	}
	if whoami.Account != nil {
		s.accountID = strconv.FormatInt(whoami.Account.ID, 10)
		s.logger.Debug("resolved account from token", zap.String("account", s.accountID))
		return s.accountID, nil
	}

	accounts, _, err := s.Client.Accounts.ListAccounts(ctx, nil)
	if err != nil {
		return "", err
	}
	if len(accounts) != 1 {
		return "", fmt.Errorf("token has access to %d accounts; choose one with 'dnsimple config set account <id>'", len(accounts))
	}

	s.accountID = strconv.FormatInt(accounts[0].ID, 10)
	s.logger.Debug("resolved account from user accounts", zap.String("account", s.accountID))
	return s.accountID, nil
}
