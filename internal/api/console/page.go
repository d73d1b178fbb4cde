package console

import (
	"bytes"
	"embed"
	"github.com/cortex-platform/console/internal/gateway"
	"github.com/cortex-platform/console/internal/oauthflow"
	"html/template"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

func parsePages() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// pageWindow implements oauthflow.Window by recording the requested effects which are then rendered as the script
// of the callback page
type pageWindow struct {
	opener bool

	message *oauthflow.Message

	closes     bool
	closeDelay time.Duration

	navigates     bool
	navigateRoute string
	navigateDelay time.Duration
}

var _ oauthflow.Window = (*pageWindow)(nil)

func (window *pageWindow) HasOpener() bool {
	return window.opener
}

func (window *pageWindow) PostToOpener(message oauthflow.Message) {
	window.message = &message
}

func (window *pageWindow) CloseAfter(delay time.Duration) {
	window.closes = true
	window.closeDelay = delay
}

func (window *pageWindow) NavigateAfter(route string, delay time.Duration) {
	window.navigates = true
	window.navigateRoute = route
	window.navigateDelay = delay
}

type callbackPage struct {
	Succeeded bool
	Provider  gateway.Provider
	Error     string
	Retryable bool

	Message *oauthflow.Message

	Close        bool
	CloseAfterMS int64

	Navigate        bool
	NavigateRoute   string
	NavigateAfterMS int64
}

type loginPage struct {
	Error string
}

func (service *Service) renderCallback(writer http.ResponseWriter, state oauthflow.State, window *pageWindow) {
	page := &callbackPage{
		Message:         window.message,
		Close:           window.closes,
		CloseAfterMS:    window.closeDelay.Milliseconds(),
		Navigate:        window.navigates,
		NavigateRoute:   window.navigateRoute,
		NavigateAfterMS: window.navigateDelay.Milliseconds(),
	}
	switch current := state.(type) {
	case oauthflow.Succeeded:
		page.Succeeded = true
		page.Provider = current.Provider()
	case oauthflow.Failed:
		page.Error = current.Message()
		page.Retryable = current.Reason.Retryable()
	}
	service.render(writer, http.StatusOK, "callback.html", page)
}

func (service *Service) renderLogin(writer http.ResponseWriter, status int, message string) {
	service.render(writer, status, "login.html", &loginPage{Error: message})
}

func (service *Service) render(writer http.ResponseWriter, status int, name string, data any) {
	var buffer bytes.Buffer
	if err := service.pages.ExecuteTemplate(&buffer, name, data); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}
	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.Header().Set("Cache-Control", "no-store")
	writer.WriteHeader(status)
	writer.Write(buffer.Bytes())
}
