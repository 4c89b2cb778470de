// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	MissingOperandId Id = iota + 1
	NeedlessArgumentId
	InvalidFlagId
	ArgumentDeclarationId
	UnknownKeyId
	ConfigLoadFailedId
	DefaultArgsInvalidId
)

type (
	Id int

	MarkdownMsg string

	Issue struct {
		id    Id          // ID used to lookup the issue
		mdMsg MarkdownMsg // Markdown text that will be rendered
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the Markdown message with the named glamour style, e.g.
// "dark", "light", "notty" or a path to a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	missingOperandIssue = &Issue{
		id: MissingOperandId,
		mdMsg: `
# A required argument is missing!

The command expects more positional arguments than were given.
Required arguments are shown as ` + "`<name>`" + ` in the usage line.

## Things you can try:
- Check the usage line printed by ` + "`--help`" + `
- Put flags before or after the positional arguments; their order does not matter
- Quote arguments that contain spaces so they count as one`,
	}

	needlessArgumentIssue = &Issue{
		id: NeedlessArgumentId,
		mdMsg: `
# Too many arguments!

Every positional argument was satisfied and there were still tokens left.

## Things you can try:
- Remove the extra argument
- If the extra token was meant as a flag value, use ` + "`--flag=value`" + `
- Quote arguments that contain spaces`,
	}

	invalidFlagIssue = &Issue{
		id: InvalidFlagId,
		mdMsg: `
# Invalid option!

A flag was not recognized, was missing its value, or its value could not
be converted to the expected type.

## Things you can try:
- Run the command with ` + "`--help`" + ` to list the accepted flags
- Give flags that take a value one: ` + "`--size=10`" + ` or ` + "`--size 10`" + `
- Use ` + "`--`" + ` to pass arguments that start with a dash as positional arguments`,
	}

	argumentDeclarationIssue = &Issue{
		id: ArgumentDeclarationId,
		mdMsg: `
# The command declares its arguments incorrectly!

This is a bug in the program, not in how it was called: two arguments share
a key or a flag, an argument is both a flag and a positional argument, or a
value has no key.

## Things you can try:
- Report the problem to the program's maintainers
- Run with ` + "`--verbose`" + ` to see the full error chain`,
	}

	unknownKeyIssue = &Issue{
		id: UnknownKeyId,
		mdMsg: `
# Unknown argument key!

The program asked for a value that no declared argument provides.

## Things you can try:
- Report the problem to the program's maintainers`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Configuration locations (in order of precedence):
1. The file named by ` + "`ARGKIT_CONFIG`" + `
2. ` + "`argkit.cue`" + ` in the current directory

## Things you can try:
- Check the CUE syntax of the file
- Remove fields the schema does not know
- Show the effective configuration:
~~~
$ argkit config show
~~~

## Example configuration:
~~~cue
program:        "greeter"
greeting:       "Howdy"
allow_unparsed: false
default_args:   "--verbose"
~~~`,
	}

	defaultArgsInvalidIssue = &Issue{
		id: DefaultArgsInvalidId,
		mdMsg: `
# Invalid default arguments!

The ` + "`default_args`" + ` setting could not be split into arguments.

## Things you can try:
- Close every quote you open
- Escape literal quotes with a backslash`,
	}

	issues = map[Id]*Issue{
		missingOperandIssue.Id():      missingOperandIssue,
		needlessArgumentIssue.Id():    needlessArgumentIssue,
		invalidFlagIssue.Id():         invalidFlagIssue,
		argumentDeclarationIssue.Id(): argumentDeclarationIssue,
		unknownKeyIssue.Id():          unknownKeyIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		defaultArgsInvalidIssue.Id():  defaultArgsInvalidIssue,
	}
)

// Values returns every issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
