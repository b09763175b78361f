// Package paths provides centralized path handling for goconemu.
//
// It answers where goconemu keeps its transient files and where it looks for
// its configuration:
//
//   - Temp: the per-user temporary directory ($TEMP, falling back to C:\Temp
//     on Windows and os.TempDir() elsewhere). The debug log and the batch
//     fallback script live here.
//   - Config: $XDG_CONFIG_HOME/goconemu (%LOCALAPPDATA%\goconemu on Windows),
//     overridable with GOCONEMU_CONFIG_DIR.
//
// # Usage
//
//	p := paths.New()
//	logFile := p.LogFilePath()      // %TEMP%\goconemu_debug.log
//	script := p.BatchScriptPath()   // %TEMP%\goconemu_launcher.bat
package paths
