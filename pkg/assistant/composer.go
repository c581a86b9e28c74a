package assistant

import (
	"context"
	"time"

	"github.com/wallysmart/shopping-assistant/pkg/assistant/intent"
	"github.com/wallysmart/shopping-assistant/pkg/logger"
)

// Source identifies which backend produced a resolution
type Source string

// Resolution sources
const (
	SourceGenerative Source = "generative"
	SourceLocal      Source = "local"
)

// Resolution is the composer's answer to a user message
type Resolution struct {
	Source   Source
	Response intent.Response
}

// defaultGenerateTimeout bounds the external model call so a slow
// backend cannot stall the chat endpoint.
const defaultGenerateTimeout = 8 * time.Second

// Composer answers user messages. It prefers the generative backend
// when one is configured and falls back to the local keyword router
// whenever the backend is missing, slow or failing. Compose never
// returns an error; the caller always gets a usable response.
type Composer struct {
	router    *intent.Router
	generator Generator
	timeout   time.Duration
	logger    logger.Logger
}

// NewComposer wires a composer. generator may be nil, in which case
// every message resolves locally.
func NewComposer(router *intent.Router, generator Generator, log logger.Logger) *Composer {
	return &Composer{
		router:    router,
		generator: generator,
		timeout:   defaultGenerateTimeout,
		logger:    log,
	}
}

// Compose resolves a user message into a response
func (c *Composer) Compose(ctx context.Context, message string, convCtx intent.Context) Resolution {
	if c.generator != nil && c.generator.Available() {
		genCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		reply, err := c.generator.Generate(genCtx, message)
		if err == nil && reply != nil {
			if len(reply.Products) > 0 {
				return Resolution{
					Source: SourceGenerative,
					Response: intent.ProductListResponse{
						Text:     reply.Text,
						Products: reply.Products,
					},
				}
			}
			return Resolution{
				Source:   SourceGenerative,
				Response: intent.PlainTextResponse{Text: reply.Text},
			}
		}
		if c.logger != nil {
			c.logger.Warn("generative backend failed, answering locally", "error", err)
		}
	}

	return Resolution{
		Source:   SourceLocal,
		Response: c.router.Route(message, convCtx),
	}
}
