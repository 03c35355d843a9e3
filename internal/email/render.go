package email

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osteele/liquid"
)

var ErrInvalidTemplate = errors.New("invalid liquid template")

// Renderer renders subjects and bodies written in Liquid ({{ firstName }})
type Renderer struct {
	engine *liquid.Engine
}

func NewRenderer() *Renderer {
	engine := liquid.NewEngine()

	// {{ firstName | fallback: "Guest" }} also replaces whitespace-only values
	engine.RegisterFilter("fallback", func(value any, fallback string) any {
		if value == nil || strings.TrimSpace(fmt.Sprint(value)) == "" {
			return fallback
		}
		return value
	})

	return &Renderer{engine: engine}
}

// Validate reports whether source parses as a Liquid template
func (r *Renderer) Validate(source string) error {
	if _, err := r.engine.ParseString(source); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return nil
}

// Render parses and renders source with vars. Unknown variables render empty.
func (r *Renderer) Render(source string, vars map[string]any) (string, error) {
	out, err := r.engine.ParseAndRenderString(source, vars)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	return out, nil
}
