package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iudanet/recordsync/internal/schema"
	"github.com/iudanet/recordsync/internal/validation"
)

// Переменные окружения клиента
const (
	EnvHost     = "RECORDSYNC_HOST"
	EnvLogin    = "RECORDSYNC_LOGIN"
	EnvPassword = "RECORDSYNC_PASSWORD"
	EnvObject   = "RECORDSYNC_OBJECT"
	EnvFields   = "RECORDSYNC_FIELDS"
	EnvDB       = "RECORDSYNC_DB"
	EnvConfig   = "RECORDSYNC_CONFIG"
)

// Client настройки CLI клиента
type Client struct {
	Host         string        `json:"host"`
	Login        string        `json:"login"`
	Password     string        `json:"password"`
	PasswordFile string        `json:"password_file"`
	Object       string        `json:"object"`
	KeyAlias     string        `json:"key"`
	DBPath       string        `json:"db"`
	ConfigPath   string        `json:"-"`
	Fields       []string      `json:"fields"`
	ReadOnly     []string      `json:"readonly"`
	Args         []string      `json:"-"`
	Timeout      time.Duration `json:"-"`
	Verbose      bool          `json:"verbose"`
	ShowVersion  bool          `json:"-"`
}

// clientFile JSON представление; timeout задается строкой ("30s")
type clientFile struct {
	Client
	Timeout string `json:"timeout"`
}

// DefaultClient значения по умолчанию
func DefaultClient() Client {
	return Client{
		Host:     "http://localhost:8080",
		KeyAlias: schema.DefaultKeyAlias,
		DBPath:   "recordsync.db",
		Timeout:  30 * time.Second,
	}
}

// ParseClient разбирает аргументы командной строки клиента.
// Аргументы после флагов (команда и ее параметры) попадают в Args.
func ParseClient(args []string, env Env, output io.Writer) (*Client, error) {
	fs := flag.NewFlagSet("recordsync", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}

	var (
		flags            Client
		fields, readOnly string
	)
	fs.StringVar(&flags.Host, "host", "", "Record service host (default http://localhost:8080)")
	fs.StringVar(&flags.Login, "login", "", "User login")
	fs.StringVar(&flags.Password, "password", "", "User password (not recommended, use env var or file)")
	fs.StringVar(&flags.PasswordFile, "password-file", "", "Path to file containing the password")
	fs.StringVar(&flags.Object, "object", "", "Object identifier, e.g. io_lead")
	fs.StringVar(&fields, "fields", "", "Comma separated list of object fields")
	fs.StringVar(&flags.KeyAlias, "key", "", "Primary key field (default io_uuid)")
	fs.StringVar(&readOnly, "readonly", "", "Comma separated list of fields that are never sent")
	fs.StringVar(&flags.DBPath, "db", "", "Path to local database (default recordsync.db)")
	fs.DurationVar(&flags.Timeout, "timeout", 0, "HTTP timeout (default 30s)")
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

	cfg := DefaultClient()

	// 1. JSON файл
	cfg.ConfigPath = flags.ConfigPath
	if cfg.ConfigPath == "" {
		cfg.ConfigPath, _ = lookup(env, EnvConfig)
	}
	if cfg.ConfigPath != "" {
		file := clientFile{Client: cfg}
		if err := loadJSON(cfg.ConfigPath, &file); err != nil {
			return nil, err
		}
		path := cfg.ConfigPath
		cfg = file.Client
		cfg.ConfigPath = path
		if file.Timeout != "" {
			d, err := time.ParseDuration(file.Timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid timeout in config file: %w", err)
			}
			cfg.Timeout = d
		}
	}

	// 2. Переменные окружения
	if v, ok := lookup(env, EnvHost); ok {
		cfg.Host = v
	}
	if v, ok := lookup(env, EnvLogin); ok {
		cfg.Login = v
	}
	if v, ok := lookup(env, EnvPassword); ok {
		cfg.Password = v
	}
	if v, ok := lookup(env, EnvObject); ok {
		cfg.Object = v
	}
	if v, ok := lookup(env, EnvFields); ok {
		cfg.Fields = splitList(v)
	}
	if v, ok := lookup(env, EnvDB); ok {
		cfg.DBPath = v
	}

	// 3. Флаги, заданные явно
	if set["host"] {
		cfg.Host = flags.Host
	}
	if set["login"] {
		cfg.Login = flags.Login
	}
	if set["password"] {
		cfg.Password = flags.Password
	}
	if set["password-file"] {
		cfg.PasswordFile = flags.PasswordFile
	}
	if set["object"] {
		cfg.Object = flags.Object
	}
	if set["fields"] {
		cfg.Fields = splitList(fields)
	}
	if set["key"] {
		cfg.KeyAlias = flags.KeyAlias
	}
	if set["readonly"] {
		cfg.ReadOnly = splitList(readOnly)
	}
	if set["db"] {
		cfg.DBPath = flags.DBPath
	}
	if set["timeout"] {
		cfg.Timeout = flags.Timeout
	}
	if set["v"] {
		cfg.Verbose = flags.Verbose
	}
	cfg.ShowVersion = flags.ShowVersion
	cfg.Args = fs.Args()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет настройки, не зависящие от команды
func (c *Client) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.Object != "" {
		if err := validation.ValidateIdentifier(c.Object); err != nil {
			return fmt.Errorf("invalid object: %w", err)
		}
	}
	if err := validation.ValidateFields(c.Fields); err != nil {
		return fmt.Errorf("invalid fields: %w", err)
	}
	if c.KeyAlias != "" {
		if err := validation.ValidateFieldName(c.KeyAlias); err != nil {
			return fmt.Errorf("invalid key: %w", err)
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path cannot be empty")
	}
	return nil
}

// RequireObject проверяет настройки, нужные командам работы с таблицей
func (c *Client) RequireObject() error {
	if c.Object == "" {
		return fmt.Errorf("object is required (-object or %s)", EnvObject)
	}
	if len(c.Fields) == 0 {
		return fmt.Errorf("fields are required (-fields or %s)", EnvFields)
	}
	return nil
}
