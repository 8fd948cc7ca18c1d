package constants

// CommandName holds the name of our command
const CommandName = "venvfromfile"

// Version is the tool's own version number
const Version = "0.3.0"

// PythonEnvVarName is the env var used to override which base interpreter is
// used to create environments
const PythonEnvVarName = "VENVFROMFILE_PYTHON"

// VerboseEnvVarName is the env var used to enable debug logging
const VerboseEnvVarName = "VENVFROMFILE_VERBOSE"
