package main

// Short messages (one-liners)
const (
	MsgRootShort = "Inspect and edit nostalgic settings files"
	MsgRootLong = `nostalgic persists application settings as a TOML file. This tool shows the
file a program will use, lists the settings stored in it, and reads or
updates individual values from the shell.`

	MsgPathShort = "Print the settings file path for a program"
	MsgShowShort = "List the settings stored in a file"
	MsgGetShort  = "Print one setting's value"
	MsgSetShort  = "Update one setting's value"

	MsgVersionShort = "Print version information"

	MsgNoSettings = "No settings stored."
)
