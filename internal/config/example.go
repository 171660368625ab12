package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Mihklz/observer/internal/sample"
)

// ExampleConfig — конфигурация примера
type ExampleConfig struct {
	Capacity   int          // число слотов у издателя
	Observers  int          // сколько наблюдателей создать
	Initial    sample.Value // начальное значение у всех участников
	Next       sample.Value // значение для ChangeValue
	Strict     bool         // считать переполнение списка фатальной ошибкой
	LogLevel   string       // уровень логирования zap
	ConfigPath string       // путь к YAML-файлу (необязательно)
}

type fileConfig struct {
	Capacity  *int          `yaml:"capacity"`
	Observers *int          `yaml:"observers"`
	Initial   *sample.Value `yaml:"initial"`
	Next      *sample.Value `yaml:"next"`
	Strict    *bool         `yaml:"strict"`
	LogLevel  string        `yaml:"log_level"`
}

// LoadExampleConfig читает конфигурацию из флагов командной строки и окружения
func LoadExampleConfig() (*ExampleConfig, error) {
	return Load(flag.CommandLine, os.Args[1:], os.Getenv)
}

// Load применяет по возрастанию приоритета: значения по умолчанию, YAML-файл,
// явно заданные флаги, переменные окружения.
func Load(fs *flag.FlagSet, args []string, getenv func(string) string) (*ExampleConfig, error) {
	cfg := &ExampleConfig{
		Capacity:  2,
		Observers: 3,
		Initial:   sample.Value1,
		Next:      sample.Value2,
		LogLevel:  "info",
	}

	// 1. Устанавливаем значения по умолчанию
	fs.IntVar(&cfg.Capacity, "n", cfg.Capacity, "publisher capacity")
	fs.IntVar(&cfg.Observers, "o", cfg.Observers, "number of observers to create")
	fs.Var(&cfg.Initial, "v", "initial value (value1|value2)")
	fs.Var(&cfg.Next, "next", "value to publish (value1|value2)")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail when the observer list is full")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.ConfigPath, "c", "", "path to YAML config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	if envConfig := getenv("CONFIG"); envConfig != "" {
		cfg.ConfigPath = envConfig
	}

	// 2. Файл конфигурации не перекрывает явно заданные флаги
	if cfg.ConfigPath != "" {
		fc, err := readFile(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		fc.apply(cfg, explicit)
	}

	// 3. Проверяем переменные окружения (приоритет выше флагов)
	if envCapacity := getenv("CAPACITY"); envCapacity != "" {
		if capacity, err := strconv.Atoi(envCapacity); err == nil {
			cfg.Capacity = capacity
		}
	}

	if envObservers := getenv("OBSERVERS"); envObservers != "" {
		if observers, err := strconv.Atoi(envObservers); err == nil {
			cfg.Observers = observers
		}
	}

	if envInitial := getenv("INITIAL_VALUE"); envInitial != "" {
		if v, err := sample.Parse(envInitial); err == nil {
			cfg.Initial = v
		}
	}

	if envNext := getenv("NEXT_VALUE"); envNext != "" {
		if v, err := sample.Parse(envNext); err == nil {
			cfg.Next = v
		}
	}

	if envStrict := getenv("STRICT"); envStrict != "" {
		if strict, err := strconv.ParseBool(envStrict); err == nil {
			cfg.Strict = strict
		}
	}

	if envLogLevel := getenv("LOG_LEVEL"); envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет, что счётчики неотрицательны
func (c *ExampleConfig) Validate() error {
	var errs []error
	if c.Capacity < 0 {
		errs = append(errs, fmt.Errorf("capacity must not be negative, got %d", c.Capacity))
	}
	if c.Observers < 0 {
		errs = append(errs, fmt.Errorf("observers must not be negative, got %d", c.Observers))
	}
	return errors.Join(errs...)
}

func readFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &fc, nil
}

func (fc *fileConfig) apply(cfg *ExampleConfig, explicit map[string]bool) {
	if fc.Capacity != nil && !explicit["n"] {
		cfg.Capacity = *fc.Capacity
	}
	if fc.Observers != nil && !explicit["o"] {
		cfg.Observers = *fc.Observers
	}
	if fc.Initial != nil && !explicit["v"] {
		cfg.Initial = *fc.Initial
	}
	if fc.Next != nil && !explicit["next"] {
		cfg.Next = *fc.Next
	}
	if fc.Strict != nil && !explicit["strict"] {
		cfg.Strict = *fc.Strict
	}
	if fc.LogLevel != "" && !explicit["l"] {
		cfg.LogLevel = fc.LogLevel
	}
}
