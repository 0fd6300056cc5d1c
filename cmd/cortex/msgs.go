package cortex

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "AI-powered package manager for Linux"
	MsgStackShort   = "Install a pre-built package stack"
	MsgStackLong    = "Stack installs curated bundles of packages for common workloads.\n\nThe ml stack auto-detects your GPU and falls back to the CPU-only variant\nwhen no accelerator is present."
	MsgInfoShort    = "Show system and hardware information"
	MsgVersionShort = "Print version information"
	MsgConfigShort  = "Manage Cortex configuration"
	MsgTopicsShort  = "Display additional documentation topics"
	MsgManShort     = "Generate man page"

	// Status messages
	MsgNoStacks        = "No stacks are defined in the catalog."
	MsgAvailableStacks = "Available Stacks"
	MsgDryRunNotice    = "Dry run - no changes were made"
	MsgConfigCreated   = "Created config at %s"
	MsgVariantFallback = "No GPU detected, using CPU-only variant '%s'"
	MsgVariantKept     = "GPU detected, using accelerated stack '%s'"
	MsgInstallDone     = "Stack '%s' installed (%d packages in %s)"
	MsgInstallPartial  = "Stack '%s' partially installed: %d ok, %d failed"
	MsgStackNoArg      = "specify a stack name or use --list"
)
