// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	ToolchainNotFoundId Id = iota + 1
	PermissionDeniedId
	ConfigLoadFailedId
	EnvFileLoadFailedId
	UnknownActionId
	ToolchainStartFailedId
	ToolchainSignaledId
)

type MarkdownMsg string

type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue for a terminal using a glamour style name.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	toolchainNotFoundIssue = &Issue{
		id: ToolchainNotFoundId,
		mdMsg: `
# The dotnet toolchain was not found!

The action assembled a command but the program could not be started.

## Things you can try:
- Install the .NET SDK and make sure ` + "`dotnet`" + ` is on your PATH
- On CI, add a setup step for the SDK before this action
- Point the action at a specific binary in your config file:
~~~cue
toolchain: program: "/usr/share/dotnet/dotnet"
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied while starting dotnet!

## Things you can try:
- Check that the toolchain binary is executable
- Check that the working directory is readable`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The config file did not pass schema validation. Defaults are used instead.

## Things you can try:
- Print the effective configuration:
~~~
$ dotnet-cast config show
~~~
- Recreate the default file:
~~~
$ dotnet-cast config init
~~~`,
	}

	envFileLoadFailedIssue = &Issue{
		id: EnvFileLoadFailedId,
		mdMsg: `
# Failed to load an env file!

## Things you can try:
- Check the path; relative paths resolve against the working directory
- Append ` + "`?`" + ` to the path to make the file optional:
~~~
$ dotnet-cast build --env-file ci.env?
~~~`,
	}

	unknownActionIssue = &Issue{
		id: UnknownActionId,
		mdMsg: `
# Unknown action!

Valid actions are ` + "`build`, `clean`, `publish`, `test` and `pack`" + `.`,
	}

	toolchainStartFailedIssue = &Issue{
		id: ToolchainStartFailedId,
		mdMsg: `
# dotnet could not be started!

The operating system refused to start the toolchain process, so it produced
no output and no exit status.

## Things you can try:
- Run with ` + "`--verbose`" + ` to see the underlying error
- Check the ` + "`--workdir`" + ` directory exists
- Retry without ` + "`--pty`" + ``,
	}

	toolchainSignaledIssue = &Issue{
		id: ToolchainSignaledId,
		mdMsg: `
# dotnet was terminated by a signal!

The toolchain started but was killed before it could exit on its own.

## Things you can try:
- Check for an out-of-memory kill in the system log
- Check whether the CI job hit its time limit`,
	}

	issues = map[Id]*Issue{
		toolchainNotFoundIssue.Id():    toolchainNotFoundIssue,
		permissionDeniedIssue.Id():     permissionDeniedIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		envFileLoadFailedIssue.Id():    envFileLoadFailedIssue,
		unknownActionIssue.Id():        unknownActionIssue,
		toolchainStartFailedIssue.Id(): toolchainStartFailedIssue,
		toolchainSignaledIssue.Id():    toolchainSignaledIssue,
	}
)

// Values returns every known issue ordered by id.
func Values() []*Issue {
	result := make([]*Issue, 0, len(issues))
	for _, is := range issues {
		result = append(result, is)
	}
	slices.SortFunc(result, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return result
}

// Get returns the issue with id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
