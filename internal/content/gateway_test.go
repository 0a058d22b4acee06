package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func newGateway(gen Generator) *Gateway {
	return NewGateway(gen, "SialkotShop", 0, zap.NewNop())
}

func TestGenerate_ReturnsServiceText(t *testing.T) {
	gen := &fakeGenerator{text: "Hand-stitched excellence."}
	gw := newGateway(gen)

	for _, kind := range Kinds() {
		text, err := gw.Generate(context.Background(), kind, "Leather Wallet")
		require.NoError(t, err, kind)
		assert.Equal(t, "Hand-stitched excellence.", text, kind)
	}
	assert.Len(t, gen.prompts, len(Kinds()))
}

func TestGenerate_PromptsCarryInput(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	gw := newGateway(gen)

	_, _ = gw.Generate(context.Background(), KindAdCopy, "Premium Leather Wallet")
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], `"Premium Leather Wallet"`)
	assert.Contains(t, gen.prompts[0], "SialkotShop")
}

func TestSlogan_StripsQuotes(t *testing.T) {
	gw := newGateway(&fakeGenerator{text: `"Crafted in Sialkot, Trusted Worldwide"`})
	assert.Equal(t, "Crafted in Sialkot, Trusted Worldwide", gw.Slogan(context.Background()))
}

func TestFallbacks(t *testing.T) {
	gw := newGateway(&fakeGenerator{err: errors.New("quota exceeded")})
	ctx := context.Background()

	assert.Equal(t, "Quality You Can Trust.", gw.Slogan(ctx))
	assert.Equal(t, "Failed to generate description for Cricket Bat. Please write one manually.", gw.ProductDescription(ctx, "Cricket Bat"))
	assert.Equal(t, "Failed to generate social media post. Please try again later.", gw.SocialPost(ctx, "new jackets"))
	assert.Equal(t, "Failed to generate ad copy for Wallet. Please try again.", gw.AdCopy(ctx, "Wallet"))
	assert.Equal(t, "We're sorry, we couldn't generate a response. Please contact our support team directly for assistance.", gw.SupportReply(ctx, "Where is my order?"))
	assert.True(t, strings.HasPrefix(gw.Heritage(ctx), "Failed to retrieve information about Sialkot's heritage."))
}

func TestUnavailableGeneratorFallsBack(t *testing.T) {
	gw := newGateway(Unavailable{})
	text, err := gw.Generate(context.Background(), KindSlogan, "")
	require.NoError(t, err)
	assert.Equal(t, "Quality You Can Trust.", text)
}

func TestGenerate_RequiresInput(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	gw := newGateway(gen)

	_, err := gw.Generate(context.Background(), KindSocialPost, "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Empty(t, gen.prompts)

	_, err = gw.Generate(context.Background(), KindHeritage, "")
	assert.NoError(t, err)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("ad_copy")
	require.NoError(t, err)
	assert.Equal(t, KindAdCopy, k)

	_, err = ParseKind("poem")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestGateway_AppliesTimeout(t *testing.T) {
	slow := generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	gw := NewGateway(slow, "SialkotShop", 10*time.Millisecond, zap.NewNop())

	assert.Equal(t, "Quality You Can Trust.", gw.Slogan(context.Background()))
}

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
