package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A static site builder with atomic output"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgBuildShort      = "Build the site into the output directory"
	MsgPlanShort       = "Show the output tree without writing it"
	MsgInitShort       = "Create a new volt project"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgManLong         = "Generate man pages for volt and every subcommand"

	// Status messages
	MsgProjectCreated = "Created project in %s"
	MsgDirCreated     = "  %s/"
	MsgFileCreated    = "  %s"
	MsgManWritten     = "Wrote man pages to %s"

	// Version output
	MsgVersionFormat = "volt version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration"
	MsgErrProjectFound = "%s already exists, use --force to overwrite it"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor    = "Disable colored output"
	MsgFlagProjectDir = "Project directory, skipping the search for volt.toml"
	MsgFlagLogFile    = "Log file path (\"-\" disables file logging)"
	MsgFlagFormat     = "Output format (auto, terminal, text, json, yaml)"
	MsgFlagClean      = "Replace the output directory instead of merging into it"
	MsgFlagNoClean    = "Merge into the output directory, keeping existing files"
	MsgFlagDrafts     = "Include draft content and static files"
	MsgFlagOutput     = "Output directory, relative to the project"
	MsgFlagName       = "Site name"
	MsgFlagURL        = "Site base URL"
	MsgFlagTheme      = "Theme name"
	MsgFlagForce      = "Overwrite an existing project file"
	MsgFlagManDir     = "Directory the man pages are written to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/plan-example.txt
	msgPlanExampleRaw string
	MsgPlanExample    = strings.TrimRight(msgPlanExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw) + "\n"
)
