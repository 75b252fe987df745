package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Generate DevOps-ready Python projects from a built-in template"
	MsgRootLong = `devopstemplate creates and maintains Python projects with a standardized
DevOps setup: packaging, tests, Makefile targets, Docker and static
analysis, all generated from a built-in template catalog.`
	MsgCreateShort = "Create a new project from the template"
	MsgCreateLong = `Create installs the full template into the project directory: source
skeleton, tests, Makefile, setuptools packaging and Docker files, plus
optional .gitignore, README and SonarQube configuration.`
	MsgManageShort = "Add template components to an existing project"
	MsgManageLong = `Manage adds individual template components to a project that already
exists. Nothing is installed unless explicitly requested via flags.`
	MsgCookiecutterShort = "Export the template as a cookiecutter template"
	MsgCookiecutterLong = `Cookiecutter writes the built-in template as a cookiecutter-compatible
directory: a cookiecutter.json descriptor, a README and every component
under a {{cookiecutter.project_slug}} directory with placeholders left
for cookiecutter to resolve.`
	MsgGenconfigShort = "Print the default configuration as TOML"
	MsgGenconfigLong = `Genconfig prints the built-in configuration defaults as a TOML document.
Use --write to save it as .devopstemplate.toml in the project directory
for editing.`
	MsgGuideShort      = "Display documentation topics"
	MsgGuideLong       = "Display a list of documentation topics, or render one topic as formatted text."
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print version information for devopstemplate"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice   = "\nDRY RUN MODE - No changes were made"
	MsgNoFiles        = "No files were installed."
	MsgOutcomesHeader = "\nInstalled %d file(s) into %s:\n"
	MsgConfigWritten  = "Wrote default configuration to %s\n"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrCreate       = "failed to create project: %w"
	MsgErrManage       = "failed to manage project: %w"
	MsgErrCookiecutter = "failed to export cookiecutter template: %w"
	MsgErrGenconfig    = "failed to generate configuration: %w"
	MsgErrUnknownTopic = "unknown topic %q, run 'devopstemplate guide' for the list"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProjectDir   = "Project directory to operate on"
	MsgFlagOverwrite    = "Overwrite existing files instead of failing"
	MsgFlagSkip         = "Skip existing files instead of failing"
	MsgFlagDryRun       = "Preview changes without writing anything"
	MsgFlagName         = "Project name"
	MsgFlagSlug         = "Project slug (defaults to a slugified project name)"
	MsgFlagVersionVal   = "Initial project version"
	MsgFlagURL          = "Project homepage URL"
	MsgFlagDescription  = "Short project description"
	MsgFlagAuthorName   = "Author name"
	MsgFlagAuthorEmail  = "Author email"
	MsgFlagAddScripts   = "Create an empty scripts/ directory"
	MsgFlagAddDocs      = "Create an empty docs/ directory"
	MsgFlagNoGitignore  = "Do not install the .gitignore file"
	MsgFlagNoReadme     = "Do not install the README.md file"
	MsgFlagNoSonar      = "Do not install the SonarQube configuration"
	MsgFlagAddGitignore = "Install the .gitignore file"
	MsgFlagAddReadme    = "Install the README.md file"
	MsgFlagAddSonar     = "Install the SonarQube configuration"
	MsgFlagWrite        = "Write the configuration to .devopstemplate.toml instead of stdout"
)
