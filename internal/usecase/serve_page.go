package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jrgriffin/site/internal/content"
	"github.com/jrgriffin/site/internal/core"
)

type ServePageInput struct {
	Content content.Content
}

type ServePageOutput struct {
	HTML  []byte
	ETag  string
	Error error
}

type PageService struct {
	renderer Renderer
}

func NewPageService(renderer Renderer) *PageService {
	return &PageService{
		renderer: renderer,
	}
}

// ServePage renders the document once for this request. The same content
// always yields the same bytes and therefore the same ETag.
func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	if err := ctx.Err(); err != nil {
		return ServePageOutput{Error: err}
	}

	if s.renderer == nil {
		return ServePageOutput{
			Error: fmt.Errorf("renderer not available"),
		}
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, input.Content); err != nil {
		return ServePageOutput{
			Error: fmt.Errorf("failed to render page: %w", err),
		}
	}

	html := buf.Bytes()
	return ServePageOutput{
		HTML: html,
		ETag: core.ETag(html),
	}
}
