package cli

// Command descriptions
const (
	MsgRootShort = "Open ConEmu in a file manager pane, mapping network shares to drive letters"
	MsgRootLong  = `goconemu starts ConEmu in the given directory (the current one if omitted).

For a network path such as \\server\share\dir it first looks for a drive
letter already mapped to \\server\share and starts the terminal in X:\dir.
Without one it maps the share to the highest free letter. If that is not
possible the terminal is started on the UNC path itself, and a path that
cannot be split into server and share is entered through a pushd script.

Any failure is logged, reported in a message box, and followed by starting
the terminal in the original path.`
	MsgRootExample = `  goconemu \\nas\projects\website
  goconemu --dry-run -vv \\nas\projects
  goconemu --terminal "C:\Tools\ConEmu\ConEmu.exe" D:\work`

	MsgResolveShort = "Print where the terminal would start for a path"
	MsgResolveLong  = `Resolve runs the same lookup as the default action without starting a
terminal. A missing mapping is still created unless --dry-run is given.`
	MsgMappingsShort  = "List network drive mappings and free drive letters"
	MsgGenConfigShort = "Print the effective configuration as TOML"
	MsgGenConfigLong  = `Print the configuration goconemu would run with, after defaults, the
config file, GOCONEMU_* environment variables and flags are applied.

With --template the commented defaults file is printed instead, ready to be
saved as the user config file.`
	MsgVersionShort = "Print version information"
)

// Flag descriptions
const (
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Log the mappings and commands instead of running them"
	MsgFlagConfig   = "Configuration file (default is goconemu.toml in the user config directory)"
	MsgFlagTerminal = "Terminal executable, overrides terminal.executable"
	MsgFlagNoAlert  = "Do not show a message box on failure"
	MsgFlagOutput   = "Output format: text, json or yaml"
	MsgFlagTemplate = "Print the commented defaults file"
)

// Output
const (
	MsgVersionFormat    = "goconemu %s\n"
	MsgNoMappings       = "No network drive mappings."
	MsgUsedLetters      = "Used letters: %s\n"
	MsgFreeLetters      = "Free letters: %s\n"
	MsgNoFreeLetters    = "Free letters: none"
	MsgDryRunNotice     = "DRY RUN MODE - no mapping was created and nothing was started"
	MsgFallbackNotice   = "Started the terminal in the original path after an error, see %s\n"
	MsgErrCurrentDir    = "cannot determine the current directory"
	MsgErrUnknownOutput = "unknown output format %q"
)

// MsgUsageTemplate is cobra's usage template with bold section headers
const MsgUsageTemplate = `{{boldUpper "usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "commands"}}:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad (bold .Name) .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "global flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
