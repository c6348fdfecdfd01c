package views

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a node to templ so pages are served by templ.Handler
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return node.Render(w)
	})
}

// Handler serves a node as an HTML response with the given status
func Handler(node g.Node, status int) http.Handler {
	if status <= 0 {
		status = http.StatusOK
	}
	return templ.Handler(Component(node), templ.WithStatus(status))
}
