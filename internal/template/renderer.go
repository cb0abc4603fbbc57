package template

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/mhutchens/fleetdash/internal/model"
	"github.com/mhutchens/fleetdash/internal/notify"
)

//go:embed tmpl/*.html
var files embed.FS

type Data struct {
	PageTitle string
	User      *model.User
	Toasts    []notify.Notification
	Error     string
	Page      any
}

func Render(w http.ResponseWriter, _ *http.Request, tmpl string, td *Data) error {
	t, err := template.ParseFS(files,
		"tmpl/"+tmpl,
		"tmpl/base.html",
	)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}

	err = t.Execute(buf, td)
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(w)
	return err
}
