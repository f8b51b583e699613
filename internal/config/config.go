package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	appErrors "drawer/internal/errors"

	"github.com/spf13/viper"
)

const (
	KeyCatalogPath          = "catalog.path"
	KeyCatalogIncludeSystem = "catalog.include-system"
	KeyCatalogSort          = "catalog.sort"

	KeySearchMaxCandidates = "search.max-candidates"
	KeySearchMaxResults    = "search.max-results"

	KeyLaunchDryRun = "launch.dry-run"

	KeyTheme        = "theme"
	KeyOutputFormat = "output.format"
	KeyOutputJSON   = "output.json"
	KeyDebug        = "debug"
)

const (
	// DefaultTheme is used when no theme is configured.
	DefaultTheme = "tokyonight"

	configDirName  = ".drawer"
	configFileName = "config.yaml"
	envPrefix      = "DRAWER"
)

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
}

// Option configures Initialize behaviour. Useful for tests to override paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error

	// loaded records which files were merged, for SaveTheme and diagnostics.
	loadedUserPath    string
	loadedProjectPath string

	// userConfigPathOverride is used by tests to override the user config path.
	userConfigPathOverride string
)

// Initialize loads configuration using the precedence:
// defaults < user config < project config < environment variables < overrides.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// ApplyOverrides injects values typically coming from CLI flags.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return notInitialized()
	}
	for k, v := range overrides {
		configInst.Set(k, v)
	}
	return nil
}

// GetString fetches a string configuration value, initializing on demand.
func GetString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool fetches a bool configuration value, initializing on demand.
func GetBool(key string) bool {
	v, err := getViper()
	if err != nil {
		return false
	}
	return v.GetBool(key)
}

// GetInt fetches an integer configuration value, initializing on demand.
func GetInt(key string) int {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetInt(key)
}

// GetPath fetches a path value with a leading ~ expanded to the user's home.
// Relative paths set in a project config resolve against that config's
// parent directory (the directory holding .drawer/).
func GetPath(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return ""
	}
	if raw == "~" || strings.HasPrefix(raw, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(raw, "~"))
		}
		return raw
	}
	if filepath.IsAbs(raw) {
		return raw
	}
	configMu.RLock()
	project := loadedProjectPath
	configMu.RUnlock()
	if project != "" && inFile(project, key) {
		return filepath.Join(filepath.Dir(filepath.Dir(project)), raw)
	}
	return raw
}

// Set updates a configuration key at runtime, initializing on demand.
func Set(key string, value any) error {
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return notInitialized()
	}
	configInst.Set(key, value)
	return nil
}

func configure(settings *initSettings) error {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return configError("load user config", err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return configError("load project config", err)
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	loadedUserPath = userConfigPath
	loadedProjectPath = projectConfigPath
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: Config loader intentionally reads user and project config files
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// inFile reports whether key is set in the YAML file at path.
func inFile(path, key string) bool {
	//nolint:gosec // G304: path is a config file already merged at startup
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return false
	}
	return v.InConfig(key)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, configDirName, configFileName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyCatalogPath, "")
	v.SetDefault(KeyCatalogIncludeSystem, false)
	v.SetDefault(KeyCatalogSort, true)
	v.SetDefault(KeySearchMaxCandidates, 0)
	v.SetDefault(KeySearchMaxResults, 0)
	v.SetDefault(KeyLaunchDryRun, false)
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyOutputFormat, "rich")
	v.SetDefault(KeyOutputJSON, false)
	v.SetDefault(KeyDebug, false)
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, notInitialized()
	}
	return configInst, nil
}

func notInitialized() error {
	return appErrors.New(appErrors.CodeConfigurationError, "configuration not initialized", nil)
}

func configError(msg string, err error) error {
	return appErrors.Wrapf(appErrors.CodeConfigurationError, err, "%s", msg)
}

// reset clears package state for tests.
func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
	loadedUserPath = ""
	loadedProjectPath = ""
	userConfigPathOverride = ""
}

// ResetForTesting clears package state for tests in other packages.
// Returns a cleanup function that should be deferred.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	userConfigPathOverride = filepath.Join(tmp, configDirName, configFileName)
	_ = Initialize(WithWorkingDir(tmp), WithUserConfig(userConfigPathOverride))
	return reset
}

// SaveTheme persists the theme name to the appropriate config file.
// The project config is updated when one was loaded; otherwise the user config
// (~/.drawer/config.yaml) is written, creating its directory if needed.
func SaveTheme(themeName string) error {
	targetPath, err := findWritableConfigPath()
	if err != nil {
		return fmt.Errorf("find config path: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(targetPath)
	_ = v.ReadInConfig() // missing file is fine

	v.Set(KeyTheme, themeName)

	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := v.WriteConfigAs(targetPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	// Keep the running instance in sync with what was written.
	configMu.Lock()
	if configInst != nil {
		configInst.Set(KeyTheme, themeName)
	}
	configMu.Unlock()
	return nil
}

func findWritableConfigPath() (string, error) {
	configMu.RLock()
	project, user := loadedProjectPath, loadedUserPath
	configMu.RUnlock()

	if project != "" {
		return project, nil
	}
	if userConfigPathOverride != "" {
		return userConfigPathOverride, nil
	}
	if user != "" {
		return user, nil
	}
	return defaultUserConfigPath()
}
