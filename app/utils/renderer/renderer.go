package renderer

import "github.com/unrolled/render"

// New builds the JSON renderer every handler responds through.
func New() *render.Render {
	return render.New(render.Options{
		IndentJSON: false,
	})
}
