// Package console is the terminal admin console: a small REPL that drives
// one list screen per resource through the shared controllers.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/heartlinkhq/admin-console/internal/apiclient"
	"github.com/heartlinkhq/admin-console/internal/config"
	"github.com/heartlinkhq/admin-console/internal/dashboard"
	"github.com/heartlinkhq/admin-console/internal/listview"
	"github.com/heartlinkhq/admin-console/internal/model"
	"github.com/heartlinkhq/admin-console/internal/service/auth"
	"github.com/heartlinkhq/admin-console/internal/service/consumable"
	"github.com/heartlinkhq/admin-console/internal/service/goal"
	"github.com/heartlinkhq/admin-console/internal/service/interest"
	"github.com/heartlinkhq/admin-console/internal/service/match"
	"github.com/heartlinkhq/admin-console/internal/service/message"
	"github.com/heartlinkhq/admin-console/internal/service/notification"
	"github.com/heartlinkhq/admin-console/internal/service/photo"
	"github.com/heartlinkhq/admin-console/internal/service/report"
	"github.com/heartlinkhq/admin-console/internal/service/setting"
	"github.com/heartlinkhq/admin-console/internal/service/subscription"
	"github.com/heartlinkhq/admin-console/internal/service/swipe"
	"github.com/heartlinkhq/admin-console/internal/service/user"
	"github.com/heartlinkhq/admin-console/internal/session"
	"github.com/heartlinkhq/admin-console/pkg/errors"
	"github.com/heartlinkhq/admin-console/pkg/httputil"
	"github.com/heartlinkhq/admin-console/pkg/logger"
	"github.com/heartlinkhq/admin-console/pkg/metrics"
)

// App wires the services and screens together and runs the command loop.
type App struct {
	cfg  *config.ClientConfig
	sess *session.Store
	log  *logger.Logger

	authSvc         *auth.Service
	matchSvc        *match.Service
	userSvc         *user.Service
	subSvc          *subscription.Service
	reportSvc       *report.Service
	notificationSvc *notification.Service

	notificationCtl *listview.Controller[model.Notification]

	screens map[string]screen
	current screen

	in  *bufio.Reader
	out io.Writer
}

// NewApp builds the full dependency graph from client configuration.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) *App {
	if log == nil {
		log = logger.NewLogger(nil)
	}
	sess := session.NewStore(cfg.SessionFile)
	m := metrics.NewMetrics("heartlink", "console")
	client := apiclient.New(cfg, sess, m, log)

	app := &App{
		cfg:       cfg,
		sess:      sess,
		log:       log.WithComponent("console"),
		authSvc:   auth.NewService(client, sess),
		matchSvc:  match.NewService(client),
		userSvc:   user.NewService(client),
		subSvc:    subscription.NewService(client),
		reportSvc: report.NewService(client),
		screens:   make(map[string]screen),
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}

	size := cfg.PageSize

	userCtl := listview.NewController("users", app.userSvc.Fetcher(), user.SearchText, size, m, log)
	app.register(newListScreen("users", userCtl, userTable(),
		userCreateDraft(app.userSvc), userEditDraft(app.userSvc), app.userSvc.Delete))

	goalSvc := goal.NewService(client)
	goalCtl := listview.NewController("goals", goalSvc.Fetcher(), goal.SearchText, size, m, log)
	app.register(newListScreen("goals", goalCtl, goalTable(),
		goalDraft(goalSvc), goalDraft(goalSvc), goalSvc.Delete))

	interestSvc := interest.NewService(client)
	interestCtl := listview.NewController("interests", interestSvc.Fetcher(), interest.SearchText, size, m, log)
	app.register(newListScreen("interests", interestCtl, interestTable(),
		interestDraft(interestSvc), interestDraft(interestSvc), interestSvc.Delete))

	matchCtl := listview.NewController("matches", func(ctx context.Context) ([]model.Match, error) {
		return app.matchSvc.List(ctx, nil)
	}, match.SearchText, size, m, log)
	app.register(newListScreen("matches", matchCtl, matchTable(), nil, nil, app.matchSvc.Unmatch))

	messageSvc := message.NewService(client)
	messageCtl := listview.NewController("messages", func(ctx context.Context) ([]model.Message, error) {
		return messageSvc.List(ctx, nil)
	}, message.SearchText, size, m, log)
	app.register(newListScreen("messages", messageCtl, messageTable(),
		messageCreateDraft(messageSvc), nil, messageSvc.Delete))

	settingSvc := setting.NewService(client)
	settingCtl := listview.NewController("settings", func(ctx context.Context) ([]model.Setting, error) {
		return settingSvc.List(ctx, nil)
	}, setting.SearchText, size, m, log)
	app.register(newListScreen[model.Setting]("settings", settingCtl, settingTable(),
		nil, settingEditDraft(settingSvc), nil))

	subCtl := listview.NewController("subscriptions", app.subSvc.Fetcher(), subscription.SearchText, size, m, log)
	app.register(newListScreen("subscriptions", subCtl, subscriptionTable(),
		subscriptionCreateDraft(app.subSvc), subscriptionEditDraft(app.subSvc), app.subSvc.Delete))

	consumableSvc := consumable.NewService(client)
	consumableCtl := listview.NewController("consumables", func(ctx context.Context) ([]model.Consumable, error) {
		return consumableSvc.List(ctx, nil)
	}, consumable.SearchText, size, m, log)
	app.register(newListScreen[model.Consumable]("consumables", consumableCtl, consumableTable(),
		consumableGrantDraft(consumableSvc), consumableEditDraft(consumableSvc), nil))

	app.notificationSvc = notification.NewService(client)
	app.notificationCtl = listview.NewController("notifications", func(ctx context.Context) ([]model.Notification, error) {
		return app.notificationSvc.List(ctx, nil)
	}, notification.SearchText, size, m, log)
	app.register(newListScreen("notifications", app.notificationCtl, notificationTable(),
		notificationCreateDraft(app.notificationSvc), nil, app.notificationSvc.Delete))

	photoSvc := photo.NewService(client)
	photoCtl := listview.NewController("photos", func(ctx context.Context) ([]model.Photo, error) {
		return photoSvc.List(ctx, nil)
	}, photo.SearchText, size, m, log)
	app.register(newListScreen("photos", photoCtl, photoTable(),
		photoCreateDraft(photoSvc), nil, photoSvc.Delete))

	app.register(newPagedScreen("reports",
		func(ctx context.Context, page, limit int) ([]model.Report, httputil.Pagination, error) {
			return app.reportSvc.ListPage(ctx, page, limit, "")
		}, report.SearchText, reportTable(), size, nil, reportEditHook(app.reportSvc)))

	swipeSvc := swipe.NewService(client)
	app.register(newPagedScreen("swipes",
		func(ctx context.Context, page, limit int) ([]model.Swipe, httputil.Pagination, error) {
			return swipeSvc.ListPage(ctx, page, limit, "")
		}, swipe.SearchText, swipeTable(), size, swipeCreateHook(swipeSvc), nil))

	return app
}

func (a *App) register(s screen) {
	a.screens[s.Name()] = s
}

// Run starts the REPL and blocks until quit or EOF.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "heartlink admin console (type 'help')")
	if !a.sess.Valid() {
		if err := a.login(ctx); err != nil {
			return err
		}
	} else if profile, err := a.sess.Profile(); err == nil {
		fmt.Fprintf(a.out, "signed in as %s\n", profile.Email)
	}

	for {
		fmt.Fprint(a.out, a.prompt())
		line, err := a.in.ReadString('\n')
		if err != nil {
			return nil
		}
		if done := a.dispatch(ctx, strings.TrimSpace(line)); done {
			return nil
		}
	}
}

func (a *App) prompt() string {
	if a.current != nil {
		return a.current.Name() + "> "
	}
	return "> "
}

// dispatch runs one command; returns true to exit.
func (a *App) dispatch(ctx context.Context, line string) bool {
	if line == "" {
		return false
	}
	fieldsOf := strings.Fields(line)
	command, args := fieldsOf[0], fieldsOf[1:]

	switch command {
	case "quit", "exit":
		return true
	case "help":
		a.printHelp()
	case "login":
		a.report(a.login(ctx))
	case "logout":
		a.authSvc.Logout(ctx)
		fmt.Fprintln(a.out, "logged out")
	case "whoami":
		profile, err := a.sess.Profile()
		if err != nil {
			// The local cache may be gone while the token still works;
			// ask the server before giving up.
			profile, err = a.authSvc.Me(ctx)
		}
		if err != nil {
			fmt.Fprintln(a.out, "not signed in")
			break
		}
		fmt.Fprintf(a.out, "%s (%s)\n", profile.Email, profile.Role)
	case "screens":
		names := make([]string, 0, len(a.screens))
		for name := range a.screens {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintln(a.out, strings.Join(names, " "))
	case "use":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "usage: use <screen>")
			break
		}
		s, ok := a.screens[args[0]]
		if !ok {
			fmt.Fprintf(a.out, "unknown screen %q\n", args[0])
			break
		}
		a.current = s
		a.showCurrent(ctx, true)
	case "list", "refresh":
		a.showCurrent(ctx, true)
	case "search":
		if a.current == nil {
			fmt.Fprintln(a.out, "pick a screen first (use <screen>)")
			break
		}
		a.current.Search(strings.Join(args, " "))
		a.showCurrent(ctx, false)
	case "page":
		if a.current == nil {
			fmt.Fprintln(a.out, "pick a screen first (use <screen>)")
			break
		}
		n, err := strconv.Atoi(strings.Join(args, ""))
		if err != nil {
			fmt.Fprintln(a.out, "usage: page <number>")
			break
		}
		a.current.Page(n)
		a.showCurrent(ctx, true)
	case "add":
		if a.current == nil {
			fmt.Fprintln(a.out, "pick a screen first (use <screen>)")
			break
		}
		fieldErrs, err := a.current.Create(ctx, a.prompter())
		a.draftResult(ctx, fieldErrs, err)
	case "edit":
		if a.current == nil || len(args) != 1 {
			fmt.Fprintln(a.out, "usage: edit <id> (on a screen)")
			break
		}
		fieldErrs, err := a.current.Edit(ctx, args[0], a.prompter())
		a.draftResult(ctx, fieldErrs, err)
	case "rm":
		if a.current == nil || len(args) != 1 {
			fmt.Fprintln(a.out, "usage: rm <id> (on a screen)")
			break
		}
		err := a.current.Remove(ctx, args[0], func() bool { return a.confirm("delete " + args[0] + "?") })
		a.report(err)
		if err == nil {
			a.showCurrent(ctx, false)
		}
	case "read":
		a.markRead(ctx, args)
	case "potential":
		a.showPotential(ctx, args)
	case "dashboard":
		a.report(a.showDashboard(ctx))
	default:
		fmt.Fprintf(a.out, "unknown command %q (try 'help')\n", command)
	}
	return false
}

func (a *App) showCurrent(ctx context.Context, refresh bool) {
	if a.current == nil {
		fmt.Fprintln(a.out, "pick a screen first (use <screen>)")
		return
	}
	if refresh {
		// Render surfaces the error banner; nothing extra to do on failure.
		_ = a.current.Refresh(ctx)
	}
	if err := a.current.Render(a.out); err != nil {
		a.report(err)
	}
}

func (a *App) prompter() *prompter {
	return &prompter{in: a.in, out: a.out}
}

// draftResult prints field errors or the request error, then re-renders the
// screen so a successful save shows up immediately.
func (a *App) draftResult(ctx context.Context, fieldErrs []string, err error) {
	if len(fieldErrs) > 0 {
		for _, msg := range fieldErrs {
			fmt.Fprintf(a.out, "  - %s\n", msg)
		}
		return
	}
	a.report(err)
	if err == nil {
		a.showCurrent(ctx, false)
	}
}

// markRead marks notifications read in bulk and patches the collection from
// the returned records.
func (a *App) markRead(ctx context.Context, args []string) {
	if a.current == nil || a.current.Name() != "notifications" || len(args) == 0 {
		fmt.Fprintln(a.out, "usage: read <id> [id...] (on the notifications screen)")
		return
	}
	ids := make([]uuid.UUID, 0, len(args))
	for _, raw := range args {
		id, err := uuid.Parse(raw)
		if err != nil {
			fmt.Fprintf(a.out, "invalid id %q\n", raw)
			return
		}
		ids = append(ids, id)
	}

	updated, err := a.notificationSvc.MarkRead(ctx, ids)
	a.report(err)
	if err != nil {
		return
	}
	for _, n := range updated {
		a.notificationCtl.ApplyEntity(n)
	}
	fmt.Fprintf(a.out, "marked %d read\n", len(updated))
	a.showCurrent(ctx, false)
}

// showPotential prints the recommendation candidates for one user.
func (a *App) showPotential(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: potential <user-id>")
		return
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "invalid id")
		return
	}

	candidates, err := a.matchSvc.PotentialMatches(ctx, id)
	a.report(err)
	if err != nil {
		return
	}
	if len(candidates) == 0 {
		fmt.Fprintln(a.out, "no candidates")
		return
	}
	for _, cand := range candidates {
		fmt.Fprintf(a.out, "  %-30s score %.2f  %.0f km\n",
			user.FormatUserForDisplay(cand.User).DisplayName, cand.Score, cand.Distance)
	}
}

func (a *App) showDashboard(ctx context.Context) error {
	matches, err := a.matchSvc.List(ctx, nil)
	if err != nil {
		return err
	}
	users, err := a.userSvc.List(ctx, nil)
	if err != nil {
		return err
	}
	reports, _, err := a.reportSvc.ListPage(ctx, 1, 100, "")
	if err != nil {
		return err
	}
	subs, err := a.subSvc.List(ctx, nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "matches, last 7 days:")
	for _, bucket := range dashboard.MatchesPerDay(matches, timeNow()) {
		fmt.Fprintf(a.out, "  %s  %s\n", bucket.Label, strings.Repeat("#", bucket.Count))
	}
	fmt.Fprintln(a.out, "users by status:")
	for _, bucket := range dashboard.CountByStatus(users, func(u model.User) string { return u.Status }) {
		fmt.Fprintf(a.out, "  %-10s %d\n", bucket.Status, bucket.Count)
	}
	fmt.Fprintln(a.out, "subscriptions by plan:")
	for _, bucket := range dashboard.SubscriptionsByPlan(subs) {
		fmt.Fprintf(a.out, "  %-10s %d\n", bucket.Status, bucket.Count)
	}
	fmt.Fprintf(a.out, "open reports: %d\n", dashboard.ReportBacklog(reports))
	return nil
}

func (a *App) login(ctx context.Context) error {
	fmt.Fprint(a.out, "email: ")
	email, err := a.in.ReadString('\n')
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, "password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(a.out)
	if err != nil {
		return err
	}

	profile, err := a.authSvc.Login(ctx, strings.TrimSpace(email), string(password))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "signed in as %s\n", profile.Email)
	return nil
}

func (a *App) confirm(question string) bool {
	fmt.Fprintf(a.out, "%s [y/N] ", question)
	answer, err := a.in.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func (a *App) report(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(a.out, "error: %s\n", errors.MessageOf(err))
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  screens              list available screens
  use <screen>         switch to a screen and fetch it
  list | refresh       re-fetch the current screen
  search <term>        filter the current screen
  page <n>             jump to a page
  add                  create a row (where supported)
  edit <id>            edit a row (where supported)
  rm <id>              delete a row (where supported)
  read <id> [id...]    mark notifications read
  potential <user-id>  recommendation candidates for a user
  dashboard            aggregate overview
  login | logout | whoami
  quit
`)
}
