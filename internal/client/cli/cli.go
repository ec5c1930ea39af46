// Package cli реализует команды клиента: вход, загрузку таблицы объекта,
// локальное редактирование строк и отправку изменений на сервер.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/iudanet/recordsync/internal/client/api"
	"github.com/iudanet/recordsync/internal/client/auth"
	"github.com/iudanet/recordsync/internal/client/iocli"
	"github.com/iudanet/recordsync/internal/client/storage"
	"github.com/iudanet/recordsync/internal/config"
	"github.com/iudanet/recordsync/internal/validation"
)

// ErrUnknownCommand неизвестная команда
var ErrUnknownCommand = errors.New("unknown command")

// Storage локальное хранилище клиента; *boltdb.Storage реализует его целиком
type Storage interface {
	storage.AuthStorage
	storage.MetadataStorage
	storage.SnapshotStorage
}

type Cli struct {
	io      iocli.IO
	cfg     *config.Client
	env     config.Env
	client  *api.Client
	storage Storage
	logger  *slog.Logger
	session *auth.Session
	now     func() time.Time
}

func New(io iocli.IO, cfg *config.Client, env config.Env, client *api.Client, storage Storage, logger *slog.Logger) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:      io,
		cfg:     cfg,
		env:     env,
		client:  client,
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// Run выполняет команду args[0] с аргументами args[1:]
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.PrintUsage()
		return fmt.Errorf("%w: command is required", ErrUnknownCommand)
	}

	command, rest := args[0], args[1:]
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "fill":
		return c.runFill(ctx)
	case "list":
		return c.runList(ctx)
	case "get":
		return c.runGet(ctx, rest)
	case "add":
		return c.runAdd(ctx, rest)
	case "edit":
		return c.runEdit(ctx, rest)
	case "remove":
		return c.runRemove(ctx, rest)
	case "push":
		return c.runPush(ctx)
	case "reset":
		return c.runReset(ctx, rest)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// credentials возвращает логин и пароль пользователя.
// Пароль берется по приоритету:
// 1. Переменная окружения RECORDSYNC_PASSWORD
// 2. Файл из -password-file
// 3. Параметр -password (или пароль из файла настроек)
// 4. Интерактивный ввод
func (c *Cli) credentials() (login, password string, err error) {
	login = c.cfg.Login
	if login == "" {
		login, err = c.io.ReadInput("Login: ")
		if err != nil {
			return "", "", fmt.Errorf("failed to read login: %w", err)
		}
	}
	if err := validation.ValidateLogin(login); err != nil {
		return "", "", fmt.Errorf("invalid login: %w", err)
	}

	password, err = c.password()
	if err != nil {
		return "", "", fmt.Errorf("failed to get password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", "", fmt.Errorf("invalid password: %w", err)
	}
	return login, password, nil
}

func (c *Cli) password() (string, error) {
	if c.env != nil {
		if v, ok := c.env.LookupEnv(config.EnvPassword); ok && v != "" {
			return v, nil
		}
	}

	if c.cfg.PasswordFile != "" {
		content, err := os.ReadFile(c.cfg.PasswordFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if c.cfg.Password != "" {
		return c.cfg.Password, nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	return password, nil
}

func (c *Cli) PrintUsage() {
	c.io.Println("recordsync - REST object records client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  recordsync [OPTIONS] COMMAND [ARGS]")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  -host URL              Record service host (default: http://localhost:8080)")
	c.io.Println("  -login LOGIN           User login")
	c.io.Println("  -password PASSWORD     Password (not recommended, use env var or file)")
	c.io.Println("  -password-file PATH    Path to file containing password")
	c.io.Println("  -object IDENTIFIER     Object identifier, e.g. io_lead")
	c.io.Println("  -fields LIST           Comma separated object fields")
	c.io.Println("  -key FIELD             Primary key field (default: io_uuid)")
	c.io.Println("  -readonly LIST         Fields that are never sent to the server")
	c.io.Println("  -db PATH               Path to local database (default: recordsync.db)")
	c.io.Println("  -config PATH           JSON config file")
	c.io.Println("  -v                     Debug logging")
	c.io.Println("  -version               Show version information")
	c.io.Println()
	c.io.Println("Password Priority (highest to lowest):")
	c.io.Println("  1. RECORDSYNC_PASSWORD environment variable")
	c.io.Println("  2. -password-file (file path)")
	c.io.Println("  3. -password (command line)")
	c.io.Println("  4. Interactive prompt (fallback)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  login                  Authenticate and save the session")
	c.io.Println("  logout                 Forget the saved session")
	c.io.Println("  status                 Show session, pending changes and last sync")
	c.io.Println("  fill                   Load all records of the object into the local table")
	c.io.Println("  list                   Show local rows with their state")
	c.io.Println("  get <key>              Read one record from the server")
	c.io.Println("  add f=v...             Add a local row")
	c.io.Println("  edit <key> f=v...      Change a local row (f= sets null)")
	c.io.Println("  remove <key>           Mark a local row as deleted")
	c.io.Println("  push                   Send local changes to the server")
	c.io.Println("  reset [-drop]          Discard local changes (-drop removes the local table)")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  export RECORDSYNC_PASSWORD='secret'")
	c.io.Println("  recordsync -login me@example.com -object io_lead -fields io_uuid,first_name,last_name fill")
	c.io.Println("  recordsync -object io_lead -fields io_uuid,first_name,last_name add first_name=Ann")
	c.io.Println("  recordsync -object io_lead -fields io_uuid,first_name,last_name push")
}
