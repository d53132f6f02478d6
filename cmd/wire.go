package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	accountsrender "github.com/bnema/bsky-accounts-cli/internal/adapters/render/accounts"
	tomlstore "github.com/bnema/bsky-accounts-cli/internal/adapters/store/toml"
	"github.com/bnema/bsky-accounts-cli/internal/adapters/xrpc"
	"github.com/bnema/bsky-accounts-cli/internal/domain"
	"github.com/bnema/bsky-accounts-cli/internal/multiagent"
	"github.com/bnema/bsky-accounts-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	store            ports.AccountStore
	agents           *multiagent.Multiagent
	accountsRenderer func([]domain.Account, accountsrender.RenderOptions) (string, error)
	defaultService   string
	now              func() time.Time
}

func wireApp() (*app, error) {
	store, err := tomlstore.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire account store: %w", err)
	}

	factory := xrpc.NewFactory(http.DefaultClient, ports.SystemClock{})

	return &app{
		store:            store,
		agents:           multiagent.New(store, factory),
		accountsRenderer: accountsrender.Render,
		defaultService:   envOrDefault("BA_SERVICE", "https://bsky.social"),
		now:              time.Now,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// resolveAccount accepts either a DID or a handle and returns the matching
// stored account.
func resolveAccount(a *app, identifier string) (domain.Account, error) {
	for _, account := range a.store.Accounts() {
		if string(account.DID) == identifier || account.Session.Handle == identifier {
			return account, nil
		}
	}

	return domain.Account{}, fmt.Errorf("account %q: %w", identifier, domain.ErrAccountNotFound)
}
