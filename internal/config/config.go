package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Config holds application configuration.
type Config struct {
	Counter CounterConfig `mapstructure:"counter"`
	Todo    TodoConfig    `mapstructure:"todo"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// CounterConfig holds the counter widget settings.
type CounterConfig struct {
	Seed int `mapstructure:"seed"`
}

// TodoConfig holds the todo widget labels.
type TodoConfig struct {
	Title       string `mapstructure:"title"`
	Placeholder string `mapstructure:"placeholder"`
	Empty       string `mapstructure:"empty"`
	AddLabel    string `mapstructure:"add_label"`
	DeleteLabel string `mapstructure:"delete_label"`
	CharLimit   int    `mapstructure:"char_limit"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

// LogConfig holds logger settings. An empty File disables logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Default is the configuration used when no file, env or flag says otherwise.
func Default() Config {
	return Config{
		Counter: CounterConfig{Seed: model.DefaultCounterSeed},
		Todo: TodoConfig{
			Title:       "할일 목록",
			Placeholder: "새로운 할일을 입력하세요",
			Empty:       "할 일이 없습니다.",
			AddLabel:    "추가",
			DeleteLabel: "삭제",
			CharLimit:   200,
		},
		UI:  UIConfig{Theme: "classic"},
		Log: LogConfig{Level: "info"},
	}
}

// Dir returns $XDG_CONFIG_HOME/tada (or the platform equivalent).
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "tada"), nil
}

// Load reads configuration from file, env and flags, in increasing priority.
// Env var overrides use prefix TADA_. path overrides TADA_CONFIG; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("counter.seed", d.Counter.Seed)
	v.SetDefault("todo.title", d.Todo.Title)
	v.SetDefault("todo.placeholder", d.Todo.Placeholder)
	v.SetDefault("todo.empty", d.Todo.Empty)
	v.SetDefault("todo.add_label", d.Todo.AddLabel)
	v.SetDefault("todo.delete_label", d.Todo.DeleteLabel)
	v.SetDefault("todo.char_limit", d.Todo.CharLimit)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("TADA_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		dir, err := Dir()
		if err != nil {
			return Config{}, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TADA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; a missing explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			"ui.theme":     "theme",
			"log.level":    "log-level",
			"log.file":     "log-file",
			"counter.seed": "seed",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the widgets cannot work with.
func (c Config) Validate() error {
	var errs []error
	if !slices.Contains(ui.ThemeNames(), strings.ToLower(c.UI.Theme)) {
		errs = append(errs, fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Todo.CharLimit <= 0 {
		errs = append(errs, fmt.Errorf("todo.char_limit: must be positive, got %d", c.Todo.CharLimit))
	}
	if strings.TrimSpace(c.Todo.Empty) == "" {
		errs = append(errs, errors.New("todo.empty: placeholder message must not be blank"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
