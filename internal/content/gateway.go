// Package content generates marketing copy through an external text
// generation service. Failures never reach callers: each kind of content
// has a fixed fallback text.
package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Kind names a type of generated content
type Kind string

const (
	KindSlogan             Kind = "slogan"
	KindProductDescription Kind = "product_description"
	KindSocialPost         Kind = "social_post"
	KindAdCopy             Kind = "ad_copy"
	KindSupportReply       Kind = "support_reply"
	KindHeritage           Kind = "heritage"
)

var (
	ErrUnknownKind = errors.New("unknown content kind")
	ErrEmptyInput  = errors.New("please enter some text in the input field above")
)

// Kinds lists every content kind
func Kinds() []Kind {
	return []Kind{KindSlogan, KindProductDescription, KindSocialPost, KindAdCopy, KindSupportReply, KindHeritage}
}

// ParseKind validates a kind name
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// NeedsInput reports whether the kind is generated from caller text
func (k Kind) NeedsInput() bool {
	return k != KindSlogan && k != KindHeritage
}

// Gateway produces store content, falling back to fixed text on failure
type Gateway struct {
	generator Generator
	shopName  string
	timeout   time.Duration
	logger    *zap.Logger
}

// NewGateway creates a gateway. A zero timeout leaves requests bounded
// only by the caller's context.
func NewGateway(generator Generator, shopName string, timeout time.Duration, logger *zap.Logger) *Gateway {
	return &Gateway{
		generator: generator,
		shopName:  shopName,
		timeout:   timeout,
		logger:    logger,
	}
}

// Generate dispatches on kind. Only an unknown kind or missing input is an
// error; generation failures yield the kind's fallback.
func (g *Gateway) Generate(ctx context.Context, kind Kind, input string) (string, error) {
	if kind.NeedsInput() && strings.TrimSpace(input) == "" {
		return "", ErrEmptyInput
	}

	switch kind {
	case KindSlogan:
		return g.Slogan(ctx), nil
	case KindProductDescription:
		return g.ProductDescription(ctx, input), nil
	case KindSocialPost:
		return g.SocialPost(ctx, input), nil
	case KindAdCopy:
		return g.AdCopy(ctx, input), nil
	case KindSupportReply:
		return g.SupportReply(ctx, input), nil
	case KindHeritage:
		return g.Heritage(ctx), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Slogan returns a short store slogan without quotation marks
func (g *Gateway) Slogan(ctx context.Context) string {
	text, err := g.run(ctx, KindSlogan, sloganPrompt(g.shopName))
	if err != nil {
		return "Quality You Can Trust."
	}
	return strings.ReplaceAll(text, `"`, "")
}

// ProductDescription returns a short description for a product name
func (g *Gateway) ProductDescription(ctx context.Context, productName string) string {
	text, err := g.run(ctx, KindProductDescription, productDescriptionPrompt(productName))
	if err != nil {
		return fmt.Sprintf("Failed to generate description for %s. Please write one manually.", productName)
	}
	return text
}

// SocialPost returns a social media post about topic
func (g *Gateway) SocialPost(ctx context.Context, topic string) string {
	text, err := g.run(ctx, KindSocialPost, socialPostPrompt(g.shopName, topic))
	if err != nil {
		return "Failed to generate social media post. Please try again later."
	}
	return text
}

// AdCopy returns advertising copy for a product name
func (g *Gateway) AdCopy(ctx context.Context, productName string) string {
	text, err := g.run(ctx, KindAdCopy, adCopyPrompt(g.shopName, productName))
	if err != nil {
		return fmt.Sprintf("Failed to generate ad copy for %s. Please try again.", productName)
	}
	return text
}

// SupportReply returns a customer service reply to query
func (g *Gateway) SupportReply(ctx context.Context, query string) string {
	text, err := g.run(ctx, KindSupportReply, supportReplyPrompt(g.shopName, query))
	if err != nil {
		return "We're sorry, we couldn't generate a response. Please contact our support team directly for assistance."
	}
	return text
}

// Heritage returns a paragraph about Sialkot's manufacturing heritage
func (g *Gateway) Heritage(ctx context.Context) string {
	text, err := g.run(ctx, KindHeritage, heritagePrompt)
	if err != nil {
		return "Failed to retrieve information about Sialkot's heritage. The city is renowned for its skilled artisans and world-class manufacturing, a tradition stretching back centuries. Please try again later to learn more."
	}
	return text
}

func (g *Gateway) run(ctx context.Context, kind Kind, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := g.generator.Generate(ctx, prompt)
	if err != nil {
		g.logger.Warn("Content generation failed, serving fallback",
			zap.String("kind", string(kind)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return "", err
	}

	g.logger.Debug("Content generated",
		zap.String("kind", string(kind)),
		zap.Int("length", len(text)),
		zap.Duration("duration", time.Since(start)),
	)
	return text, nil
}
