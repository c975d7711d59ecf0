package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/backuporganizer/internal/client/client"
	"github.com/dmitrijs2005/backuporganizer/internal/client/config"
	"github.com/dmitrijs2005/backuporganizer/internal/client/ui"
	"github.com/dmitrijs2005/backuporganizer/internal/logging"
)

var (
	errWrongPage = errors.New("not available on this page")
	errUsage     = errors.New("usage")
)

// App is the page host. It implements ui.Navigator: navigations requested
// while a command runs are applied after the command returns.
type App struct {
	api    client.Client
	log    logging.Logger
	opts   ui.PageOptions
	reader *bufio.Reader
	out    io.Writer

	location string
	index    *ui.IndexPage
	info     *ui.InfoPage

	pending    string
	hasPending bool
}

// NewApp builds the API client described by c.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	tr, err := client.NewTransport(c.APIBaseURL, c.RequestTimeout, log)
	if err != nil {
		return nil, err
	}
	return newApp(client.NewAPIClient(tr), c, log, os.Stdin, os.Stdout), nil
}

func newApp(api client.Client, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		api:    api,
		log:    log,
		opts:   ui.PageOptions{DismissDelay: c.DismissDelay, Log: log},
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run opens the listing page and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Backup Organizer (type 'help' for commands)")
	_ = a.Home(ctx)
	a.Render()

	runREPL(ctx, a, a.Location, a.reader)
}

func (a *App) Navigate(href string) {
	a.pending = href
	a.hasPending = true
}

func (a *App) Reload() {
	a.Navigate(a.location)
}

// Location is the href of the current page.
func (a *App) Location() string {
	return a.location
}

// settle applies pending navigations. Loading a page may itself navigate.
func (a *App) settle(ctx context.Context) error {
	var err error
	for a.hasPending {
		href := a.pending
		a.hasPending = false
		err = a.open(ctx, href)
	}
	return err
}

// do runs one user action on the current page and then follows any
// navigation it requested.
func (a *App) do(ctx context.Context, action func() error) error {
	err := action()
	if navErr := a.settle(ctx); navErr != nil {
		return navErr
	}
	return err
}

// open replaces the current page with a freshly loaded one.
func (a *App) open(ctx context.Context, href string) error {
	route, err := ui.ParseHref(href)
	if err != nil {
		a.navigationError(err.Error())
		return err
	}

	switch {
	case route.IsIndex():
		a.index, a.info = ui.NewIndexPage(a.api, a, a.opts), nil
		a.location = ui.IndexHref
		a.log.Debug(ctx, "page opened", "location", a.location)
		return a.index.Load(ctx)

	case route.IsInfo():
		a.index, a.info = nil, ui.NewInfoPage(a.api, route.Name, a, a.opts)
		a.location = ui.InfoHref(route.Name)
		a.log.Debug(ctx, "page opened", "location", a.location)
		return a.info.Load(ctx)
	}

	msg := "unknown page " + route.Path
	a.navigationError(msg)
	return errors.New(msg)
}

func (a *App) navigationError(msg string) {
	line := "navigation: " + msg
	switch {
	case a.index != nil:
		a.index.Status.Replace(line)
	case a.info != nil:
		a.info.Status.Replace(line)
	default:
		fmt.Fprintln(a.out, line)
	}
}

func (a *App) searchBar() (ui.SearchBar, bool) {
	switch {
	case a.index != nil:
		return a.index.SearchBar, true
	case a.info != nil:
		return a.info.SearchBar, true
	}
	return ui.SearchBar{}, false
}

// Render prints the current page.
func (a *App) Render() {
	switch {
	case a.index != nil:
		renderIndex(a.out, a.index)
	case a.info != nil:
		renderInfo(a.out, a.info)
	}
}
