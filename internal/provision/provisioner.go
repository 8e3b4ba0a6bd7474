package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/rsclarke/wgprov/internal/credential"
	"github.com/rsclarke/wgprov/internal/logging"
	"github.com/rsclarke/wgprov/internal/models"
	"github.com/rsclarke/wgprov/internal/pool"
	"go.uber.org/zap"
)

// ErrUsage is returned when no username is given.
var ErrUsage = errors.New("username required")

// Ledger records issued credentials.
type Ledger interface {
	Record(iss *models.Issuance) error
}

// Provisioner performs a single issuance. Ledger is optional.
type Provisioner struct {
	PoolPath  string
	Generator *credential.Generator
	Invoker   Invoker
	Ledger    Ledger
	Logger    *zap.Logger
}

// Result is what was handed to the script.
type Result struct {
	Username string
	Token    string
	Password string
}

// Run loads the pool, generates one token and one password, and invokes the
// script with username, token and password in that order. Any failure stops
// the run; nothing is invoked if the pool cannot be loaded or sampled.
// Failing to record an issuance after the script ran is logged, not returned.
func (p *Provisioner) Run(ctx context.Context, username string) (*Result, error) {
	if username == "" {
		return nil, ErrUsage
	}
	if p.Invoker == nil {
		return nil, fmt.Errorf("%w: no invoker configured", ErrInvoke)
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(logging.Username(username))
	gen := p.Generator
	if gen == nil {
		gen = &credential.Generator{}
	}

	chars, err := pool.Load(p.PoolPath)
	if err != nil {
		return nil, fmt.Errorf("load character pool: %w", err)
	}
	logger.Debug("character pool loaded", logging.Path(p.PoolPath), logging.PoolSize(len(chars)))

	token := gen.Token()
	password, err := gen.Password(chars)
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}

	if err := p.Invoker.Run(ctx, []string{username, token, password}); err != nil {
		return nil, err
	}
	logger.Info("client provisioned", logging.Policy(gen.Policy.String()))

	if p.Ledger != nil {
		iss := &models.Issuance{
			Username:            username,
			Token:               token,
			PasswordFingerprint: credential.Fingerprint(password),
			IndexPolicy:         gen.Policy.String(),
		}
		// The script already ran; a ledger failure must not hide that.
		if err := p.Ledger.Record(iss); err != nil {
			logger.Error("record issuance failed", zap.Error(err))
		} else {
			logger.Debug("issuance recorded", logging.IssuanceID(iss.ID))
		}
	}

	return &Result{Username: username, Token: token, Password: password}, nil
}
