package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/term"
	"gorm.io/gorm"

	"github.com/epic-events/epicrm/internal/auth"
	"github.com/epic-events/epicrm/internal/config"
	"github.com/epic-events/epicrm/internal/models"
	"github.com/epic-events/epicrm/internal/monitoring"
	"github.com/epic-events/epicrm/internal/rbac"
	"github.com/epic-events/epicrm/internal/store"
)

// app bundles the pieces every command needs: config, storage, the
// authorization enforcer, and the identity resolver.
type app struct {
	cfg      *config.Config
	store    *store.Store
	enforcer *rbac.Enforcer
	resolver *auth.Resolver
	sessions auth.SessionStore
	codec    *auth.Codec
}

// newApp loads config, opens the store, and builds the authorization
// core. The permission matrix is loaded once here; authority is
// fixed for the process lifetime.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	setupLogging(cfg)

	if err := monitoring.Init(cfg.Sentry.DSN); err != nil {
		slog.Warn("Error monitoring disabled", "error", err)
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir, err = store.DefaultDataDir()
		if err != nil {
			return nil, fmt.Errorf("determining data directory: %w", err)
		}
	}

	var s *store.Store
	if cfg.Database.Driver == "postgres" {
		s, err = store.OpenPostgres(cfg.Database.DSN)
	} else {
		s, err = store.Open(dataDir)
	}
	if err != nil {
		return nil, err
	}

	enforcer, err := rbac.NewEnforcer(s)
	if err != nil {
		s.Close()
		return nil, err
	}

	sessions := auth.NewSessionStore(cfg.Session.Backend, dataDir)
	codec := auth.NewCodec(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)

	return &app{
		cfg:      cfg,
		store:    s,
		enforcer: enforcer,
		resolver: auth.NewResolver(sessions, codec, s),
		sessions: sessions,
		codec:    codec,
	}, nil
}

func (a *app) Close() {
	a.store.Close()
}

func setupLogging(cfg *config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// requireIdentity resolves the current session into a live actor,
// translating the failure taxonomy into user-facing guidance. Any
// failure means "not authenticated": the command stops without side
// effects.
func (a *app) requireIdentity() (*models.User, error) {
	actor, err := a.resolver.Resolve()
	if err == nil {
		return actor, nil
	}
	switch {
	case errors.Is(err, auth.ErrNoSession):
		return nil, errors.New("please log in (run 'epicrm login')")
	case errors.Is(err, auth.ErrExpiredCredential):
		return nil, errors.New("session expired, please log in again")
	case errors.Is(err, auth.ErrInvalidCredential), errors.Is(err, auth.ErrUnknownSubject):
		return nil, errors.New("session is no longer valid, please log in again")
	default:
		return nil, err
	}
}

// authorize runs the gate and converts a denial into a terminal
// error carrying the reason.
func (a *app) authorize(actor *models.User, operation string, owns rbac.OwnershipCheck) error {
	decision := a.enforcer.Authorize(actor, operation, owns)
	if !decision.Allowed {
		return errors.New(decision.Reason)
	}
	return nil
}

var stdin = bufio.NewReader(os.Stdin)

// readLine prompts for one line of input.
func readLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", label, err)
	}
	return strings.TrimSpace(line), nil
}

// readLineDefault prompts with a current value; empty input keeps it.
func readLineDefault(label, current string) (string, error) {
	line, err := readLine(fmt.Sprintf("%s [%s]", label, current))
	if err != nil {
		return "", err
	}
	if line == "" {
		return current, nil
	}
	return line, nil
}

func readUint(label string) (uint, error) {
	line, err := readLine(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(line, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be a positive number", label)
	}
	return uint(n), nil
}

func readFloat(label string) (float64, error) {
	line, err := readLine(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", label)
	}
	return f, nil
}

func readInt(label string) (int, error) {
	line, err := readLine(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", label)
	}
	return n, nil
}

const timeLayout = "2006-01-02 15:04"

func readTime(label string) (time.Time, error) {
	line, err := readLine(fmt.Sprintf("%s (%s)", label, timeLayout))
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(timeLayout, line, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must match %q", label, timeLayout)
	}
	return t, nil
}

func readBool(label string) (bool, error) {
	line, err := readLine(label + " (y/n)")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes", "true":
		return true, nil
	case "n", "no", "false", "":
		return false, nil
	default:
		return false, fmt.Errorf("%s must be y or n", label)
	}
}

func readPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	passBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(passBytes), nil
}

// parseID parses a positional record id argument.
func parseID(arg string) (uint, error) {
	n, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(n), nil
}

// wrapNotFound turns a gorm not-found error into a user-facing
// message.
func wrapNotFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d does not exist", what, id)
	}
	return err
}

// newTable returns a tabwriter for aligned listings on stdout.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}
