package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iudanet/recordsync/internal/validation"
)

// Переменные окружения эмулятора
const (
	EnvServerAddr     = "RECORDD_ADDR"
	EnvServerDB       = "RECORDD_DB"
	EnvServerSecret   = "RECORDD_SECRET"
	EnvServerClientID = "RECORDD_CLIENT_ID"
	EnvServerUser     = "RECORDD_USER"
)

// UserSpec пользователь, создаваемый при запуске эмулятора
type UserSpec struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ParseUserSpec разбирает строку вида login:password
func ParseUserSpec(s string) (UserSpec, error) {
	login, password, ok := strings.Cut(s, ":")
	if !ok {
		return UserSpec{}, fmt.Errorf("user must be login:password, got %q", s)
	}
	u := UserSpec{Login: login, Password: password}
	if err := validation.ValidateLogin(u.Login); err != nil {
		return UserSpec{}, err
	}
	if err := validation.ValidatePassword(u.Password); err != nil {
		return UserSpec{}, err
	}
	return u, nil
}

// userList flag.Value для повторяемого флага -user
type userList []UserSpec

func (l *userList) String() string {
	logins := make([]string, len(*l))
	for i, u := range *l {
		logins[i] = u.Login
	}
	return strings.Join(logins, ",")
}

func (l *userList) Set(s string) error {
	u, err := ParseUserSpec(s)
	if err != nil {
		return err
	}
	*l = append(*l, u)
	return nil
}

// Server настройки эмулятора сервера записей
type Server struct {
	Addr              string        `json:"addr"`
	DBPath            string        `json:"db"`
	Secret            string        `json:"secret"`
	ClientID          string        `json:"client_id"`
	ConfigPath        string        `json:"-"`
	Users             []UserSpec    `json:"users"`
	TokenTTL          time.Duration `json:"-"`
	RequestsPerMinute int           `json:"requests_per_minute"`
	ShowVersion       bool          `json:"-"`
	Verbose           bool          `json:"verbose"`
}

type serverFile struct {
	Server
	TokenTTL string `json:"token_ttl"`
}

// DefaultServer значения по умолчанию
func DefaultServer() Server {
	return Server{
		Addr:              ":8080",
		DBPath:            "recordd.db",
		ClientID:          "recordsync-local",
		TokenTTL:          time.Hour,
		RequestsPerMinute: 600,
	}
}

// ParseServer разбирает аргументы командной строки эмулятора
func ParseServer(args []string, env Env, output io.Writer) (*Server, error) {
	fs := flag.NewFlagSet("recordd", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	var (
		flags Server
		users userList
	)
	fs.StringVar(&flags.Addr, "addr", "", "Listen address (default :8080)")
	fs.StringVar(&flags.DBPath, "db", "", "Path to SQLite database (default recordd.db)")
	fs.StringVar(&flags.Secret, "secret", "", "JWT signing secret (random if empty)")
	fs.StringVar(&flags.ClientID, "client-id", "", "OAuth client id served by /oauth/client")
	fs.Var(&users, "user", "User to create as login:password (repeatable)")
	fs.DurationVar(&flags.TokenTTL, "token-ttl", 0, "Access token lifetime (default 1h)")
	fs.IntVar(&flags.RequestsPerMinute, "rpm", 0, "Requests per minute per client IP, 0 disables limit")
	fs.StringVar(&flags.ConfigPath, "config", "", "Path to JSON config file")
	fs.BoolVar(&flags.Verbose, "v", false, "Verbose (debug) logging")
	fs.BoolVar(&flags.ShowVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := DefaultServer()

	if flags.ConfigPath != "" {
		file := serverFile{Server: cfg}
		if err := loadJSON(flags.ConfigPath, &file); err != nil {
			return nil, err
		}
		cfg = file.Server
		if file.TokenTTL != "" {
			d, err := time.ParseDuration(file.TokenTTL)
			if err != nil {
				return nil, fmt.Errorf("invalid token_ttl in config file: %w", err)
			}
			cfg.TokenTTL = d
		}
		cfg.ConfigPath = flags.ConfigPath
	}

	if v, ok := lookup(env, EnvServerAddr); ok {
		cfg.Addr = v
	}
	if v, ok := lookup(env, EnvServerDB); ok {
		cfg.DBPath = v
	}
	if v, ok := lookup(env, EnvServerSecret); ok {
		cfg.Secret = v
	}
	if v, ok := lookup(env, EnvServerClientID); ok {
		cfg.ClientID = v
	}
	if v, ok := lookup(env, EnvServerUser); ok {
		for _, item := range splitList(v) {
			u, err := ParseUserSpec(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", EnvServerUser, err)
			}
			cfg.Users = append(cfg.Users, u)
		}
	}

	if set["addr"] {
		cfg.Addr = flags.Addr
	}
	if set["db"] {
		cfg.DBPath = flags.DBPath
	}
	if set["secret"] {
		cfg.Secret = flags.Secret
	}
	if set["client-id"] {
		cfg.ClientID = flags.ClientID
	}
	if set["token-ttl"] {
		cfg.TokenTTL = flags.TokenTTL
	}
	if set["rpm"] {
		cfg.RequestsPerMinute = flags.RequestsPerMinute
	}
	if set["v"] {
		cfg.Verbose = flags.Verbose
	}
	cfg.Users = append(cfg.Users, users...)
	cfg.ShowVersion = flags.ShowVersion

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет настройки эмулятора
func (c *Server) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path cannot be empty")
	}
	if c.ClientID == "" {
		return fmt.Errorf("client id cannot be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("requests per minute cannot be negative")
	}
	for _, u := range c.Users {
		if err := validation.ValidateLogin(u.Login); err != nil {
			return fmt.Errorf("invalid user: %w", err)
		}
	}
	return nil
}
