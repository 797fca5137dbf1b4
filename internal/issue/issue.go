// SPDX-License-Identifier: EPL-2.0

// Package issue holds mcl's user-facing error machinery: ActionableError
// for contextual failures and markdown issue cards rendered with glamour
// for the common first-run situations.
package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies a known issue card.
type Id int

const (
	// NoScriptsConfiguredId is shown when neither config defines a script.
	NoScriptsConfiguredId Id = iota + 1
	// ConfigParseErrorId is shown when a config source is malformed.
	ConfigParseErrorId
	// ShellNotFoundId is shown when the native runtime finds no shell.
	ShellNotFoundId
)

// Issue is a markdown help card for a recurring user-facing situation.
type Issue struct {
	id    Id
	mdMsg string
}

// Id returns the issue identifier.
func (i *Issue) Id() Id { return i.id }

// Render returns the card rendered for terminal display.
func (i *Issue) Render() (string, error) {
	return render(i.mdMsg, "dark")
}

var (
	render = glamour.Render

	noScriptsConfiguredIssue = &Issue{
		id: NoScriptsConfiguredId,
		mdMsg: `
# No scripts configured yet

mcl looks for scripts in two places:

1. ` + "`./mcl.json`" + ` (project-local, wins on conflicts)
2. ` + "`~/.mcl/global-mcl.json`" + ` (global)

## Getting started
~~~
$ mcl init
$ mcl edit
~~~

## Example mcl.json
~~~json
{
  "vars": {"region": "eu-west-1"},
  "scripts": {
    "build": "go build ./...",
    "deploy": ["./scripts/package.sh $1", "aws deploy $region ?$2"]
  }
}
~~~`,
	}

	configParseErrorIssue = &Issue{
		id: ConfigParseErrorId,
		mdMsg: `
# Failed to parse config

One of your config files contains invalid JSON or an unsupported shape.

## Rules
- ` + "`vars`" + ` must map names to strings
- ` + "`scripts`" + ` entries are a command string, a list of command
  strings, or a nested object of further entries

## Things you can try
- Check the error message above for the file and position
- Re-create a minimal file with ~~~mcl init~~~ and re-apply your entries`,
	}

	shellNotFoundIssue = &Issue{
		id: ShellNotFoundId,
		mdMsg: `
# No shell found

The native runtime needs a shell (SHELL, bash, or sh) to dispatch commands.

## Things you can try
- Set the SHELL environment variable
- Switch to the built-in interpreter:
~~~
$ mcl --runtime virtual <script>
~~~`,
	}

	issues = []*Issue{
		noScriptsConfiguredIssue,
		configParseErrorIssue,
		shellNotFoundIssue,
	}
)

// Lookup returns the issue card for the given id.
func Lookup(id Id) (*Issue, bool) {
	idx := slices.IndexFunc(issues, func(i *Issue) bool { return i.id == id })
	if idx < 0 {
		return nil, false
	}
	return issues[idx], true
}
