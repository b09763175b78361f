package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvTemp is the per-user temporary directory on Windows
	EnvTemp = "TEMP"

	// EnvConfigDir overrides the XDG config directory for goconemu
	EnvConfigDir = "GOCONEMU_CONFIG_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for goconemu-specific files
	AppDirName = "goconemu"

	// ConfigFileName is the user configuration file
	ConfigFileName = "goconemu.toml"

	// LogFileName is the name of the debug log file
	LogFileName = "goconemu_debug.log"

	// BatchScriptName is the name of the generated pushd fallback script
	BatchScriptName = "goconemu_launcher.bat"

	// BatchLogSuffix is appended to the log file path for the script's own log
	BatchLogSuffix = ".batch.log"

	// WindowsTempFallback is used when TEMP is unset on Windows
	WindowsTempFallback = `C:\Temp`
)

// Paths resolves goconemu's file locations once, at construction.
type Paths struct {
	tempDir   string
	configDir string
}

// New creates a Paths instance from the current environment.
func New() *Paths {
	return &Paths{
		tempDir:   findTempDir(),
		configDir: findConfigDir(),
	}
}

func findTempDir() string {
	if dir := os.Getenv(EnvTemp); dir != "" {
		return dir
	}
	if runtime.GOOS == "windows" {
		return WindowsTempFallback
	}
	return os.TempDir()
}

func findConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// TempDir returns the per-user temporary directory
func (p *Paths) TempDir() string {
	return p.tempDir
}

// ConfigDir returns the configuration directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFilePath returns the default user configuration file
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// LogFilePath returns the default debug log location
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.tempDir, LogFileName)
}

// BatchScriptPath returns the default location of the pushd fallback script
func (p *Paths) BatchScriptPath() string {
	return filepath.Join(p.tempDir, BatchScriptName)
}

// BatchLogPath returns the log written by the fallback script itself.
func BatchLogPath(logFile string) string {
	return logFile + BatchLogSuffix
}
