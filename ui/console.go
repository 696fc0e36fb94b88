package ui

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"smartshop/auth"
	"smartshop/errors"
	"smartshop/services"
	"strconv"
	"strings"
	"time"
)

const AdminUsage = `refresh          reload documents and stats
upload <path>    ingest a product catalogue PDF
delete <id>      delete a document
search <query>   run a test search (top 5)
logout           forget the token
quit             leave`

const SuperAdminUsage = `load                       reload models, config and usage
switch <provider> <model>  activate a model
reset                      reset usage counters
budget <amount> <on|off>   set the monthly budget and auto-switch
logout                     forget the token
quit                       leave`

// console holds what both back-office loops share: login prompts and session handling.
type console struct {
	name    string
	input   *services.InputBar
	printer *Printer
	timeout time.Duration
	log     *slog.Logger
}

// login asks for credentials until the session is authenticated or input ends.
func (c console) login(ctx context.Context, session *auth.Session, submit func(ctx context.Context, email, password string) error) error {
	for session.State() != auth.Authenticated {
		if session.State() == auth.Expired {
			c.printer.Warning("⚠️ Session expired, please log in again")
		}
		c.printer.Prompt(c.name + " email: ")
		email, err := c.input.ReadLine()
		if err != nil {
			return err
		}
		email = strings.TrimSpace(email)
		c.printer.Prompt("password: ")
		password, err := c.input.ReadLine()
		if err != nil {
			return err
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err = submit(callCtx, email, password)
		cancel()
		if err != nil {
			c.printer.Error(err)
			continue
		}
		c.printer.Success("✅ Logged in")
	}
	return nil
}

// loop reads commands until quit or EOF. exec returns the usage text on unknown commands.
func (c console) loop(ctx context.Context, session *auth.Session, submit func(context.Context, string, string) error,
	onLogin func(ctx context.Context), exec func(ctx context.Context, fields []string) (quit bool, err error)) error {
	for {
		if session.State() != auth.Authenticated {
			if err := c.login(ctx, session, submit); err != nil {
				if stderrors.Is(err, io.EOF) || ctx.Err() != nil {
					return nil
				}
				return err
			}
			onLogin(ctx)
		}
		if ctx.Err() != nil {
			return nil
		}

		c.printer.Prompt(c.name + "> ")
		line, err := c.input.ReadLine()
		if stderrors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		quit, err := exec(callCtx, fields)
		cancel()
		if err != nil {
			c.printer.Error(err)
		}
		if quit {
			return nil
		}
	}
}

// AdminConsole drives the document and vector index dashboard.
type AdminConsole struct {
	console
	admin services.IAdminService
}

func NewAdminConsole(admin services.IAdminService, input *services.InputBar, printer *Printer, timeout time.Duration, log *slog.Logger) *AdminConsole {
	return &AdminConsole{
		console: console{name: "admin", input: input, printer: printer, timeout: timeout, log: log},
		admin:   admin,
	}
}

func (a *AdminConsole) Run(ctx context.Context) error {
	if a.admin.Restore() == auth.Authenticated {
		a.refresh(ctx)
	}
	submit := func(ctx context.Context, email, password string) error {
		user, err := a.admin.Login(ctx, email, password)
		if err == nil {
			a.printer.Println("👤 " + user.Email + " (" + user.Role + ")")
		}
		return err
	}
	return a.loop(ctx, a.admin.Session(), submit, a.refresh, a.exec)
}

func (a *AdminConsole) refresh(ctx context.Context) {
	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	dashboard, err := a.admin.Refresh(callCtx)
	if err != nil {
		a.printer.Error(err)
		return
	}
	a.printer.PrintAdminDashboard(dashboard)
}

func (a *AdminConsole) exec(ctx context.Context, fields []string) (bool, error) {
	arg := strings.Join(fields[1:], " ")
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil
	case "logout":
		a.admin.Logout()
	case "refresh":
		dashboard, err := a.admin.Refresh(ctx)
		if err != nil {
			return false, err
		}
		a.printer.PrintAdminDashboard(dashboard)
	case "upload":
		if arg == "" {
			return false, fmt.Errorf("%w: upload needs a path", errors.ErrInvalidCommand)
		}
		doc, err := a.admin.UploadPDF(ctx, arg)
		if err != nil {
			return false, err
		}
		a.printer.PrintUpload(doc)
		a.printer.PrintAdminDashboard(a.admin.Dashboard())
	case "delete":
		if arg == "" {
			return false, fmt.Errorf("%w: delete needs a document id", errors.ErrInvalidCommand)
		}
		a.printer.Prompt(fmt.Sprintf("Delete %s? [y/N] ", arg))
		if !a.input.Confirm() {
			return false, nil
		}
		if err := a.admin.DeleteDocument(ctx, arg); err != nil {
			return false, err
		}
		a.printer.Success("✅ Document deleted")
		a.printer.PrintAdminDashboard(a.admin.Dashboard())
	case "search":
		hits, err := a.admin.SearchTest(ctx, arg)
		if err != nil {
			return false, err
		}
		a.printer.PrintSearchHits(hits)
	default:
		a.printer.Println(AdminUsage)
	}
	return false, nil
}

// SuperAdminConsole drives the LLM model and cost dashboard.
type SuperAdminConsole struct {
	console
	superAdmin services.ISuperAdminService
}

func NewSuperAdminConsole(superAdmin services.ISuperAdminService, input *services.InputBar, printer *Printer, timeout time.Duration, log *slog.Logger) *SuperAdminConsole {
	return &SuperAdminConsole{
		console:    console{name: "superadmin", input: input, printer: printer, timeout: timeout, log: log},
		superAdmin: superAdmin,
	}
}

func (s *SuperAdminConsole) Run(ctx context.Context) error {
	if s.superAdmin.Restore() == auth.Authenticated {
		s.load(ctx)
	}
	return s.loop(ctx, s.superAdmin.Session(), s.superAdmin.Login, s.load, s.exec)
}

func (s *SuperAdminConsole) load(ctx context.Context) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	dashboard, err := s.superAdmin.Load(callCtx)
	if err != nil {
		s.printer.Error(err)
		return
	}
	s.printer.PrintModelDashboard(dashboard)
}

func (s *SuperAdminConsole) exec(ctx context.Context, fields []string) (bool, error) {
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil
	case "logout":
		s.superAdmin.Logout()
	case "load":
		dashboard, err := s.superAdmin.Load(ctx)
		if err != nil {
			return false, err
		}
		s.printer.PrintModelDashboard(dashboard)
	case "switch":
		if len(fields) != 3 {
			return false, fmt.Errorf("%w: switch <provider> <model>", errors.ErrInvalidCommand)
		}
		message, err := s.superAdmin.SwitchModel(ctx, fields[1], fields[2])
		if err != nil {
			return false, err
		}
		s.printer.Success("✅ " + message)
		s.printer.PrintModelDashboard(s.superAdmin.Dashboard())
	case "reset":
		s.printer.Prompt("Reset all usage statistics? [y/N] ")
		if !s.input.Confirm() {
			return false, nil
		}
		if err := s.superAdmin.ResetUsage(ctx); err != nil {
			return false, err
		}
		s.printer.Success("✅ Usage reset")
		s.printer.PrintUsage(s.superAdmin.Dashboard().Usage)
	case "budget":
		budget, autoSwitch, err := parseBudget(fields[1:])
		if err != nil {
			return false, err
		}
		if err = s.superAdmin.UpdateConfig(ctx, budget, autoSwitch); err != nil {
			return false, err
		}
		s.printer.Success("✅ Configuration updated")
		s.printer.PrintModelDashboard(s.superAdmin.Dashboard())
	default:
		s.printer.Println(SuperAdminUsage)
	}
	return false, nil
}

func parseBudget(args []string) (float64, bool, error) {
	if len(args) != 2 {
		return 0, false, fmt.Errorf("%w: budget <amount> <on|off>", errors.ErrInvalidCommand)
	}
	budget, err := strconv.ParseFloat(args[0], 64)
	if err != nil || budget < 0 {
		return 0, false, fmt.Errorf("%w: budget must be a positive amount", errors.ErrInvalidCommand)
	}
	switch strings.ToLower(args[1]) {
	case "on", "true", "yes":
		return budget, true, nil
	case "off", "false", "no":
		return budget, false, nil
	default:
		return 0, false, fmt.Errorf("%w: auto-switch must be on or off", errors.ErrInvalidCommand)
	}
}
