package service

import (
	"context"
	"testing"
	"time"

	"sialkot-shop/internal/checkout"
	"sialkot-shop/internal/content"
	"sialkot-shop/internal/repository"
	"sialkot-shop/internal/session"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	text string
	err  error
}

func (g stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.text, g.err
}

var testMessenger = checkout.Messenger{ShopName: "SialkotShop", BaseURL: "https://wa.me", Recipient: "923079490721"}

func newSeededRepos(t *testing.T) (*repository.MemoryProductRepository, *repository.MemoryCategoryRepository) {
	t.Helper()
	products := repository.NewMemoryProductRepository()
	categories := repository.NewMemoryCategoryRepository()
	require.NoError(t, repository.Seed(context.Background(), products, categories))
	return products, categories
}

func newTestSession() *session.Session {
	return session.NewStore(time.Hour, zap.NewNop()).Create()
}

func newTestGateway(g content.Generator) *content.Gateway {
	return content.NewGateway(g, "SialkotShop", time.Second, zap.NewNop())
}
