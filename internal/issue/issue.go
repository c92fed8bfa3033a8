// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Id identifies a catalog entry.
type Id int

const (
	DeclarationsNotFoundId Id = iota + 1
	DeclarationsParseErrorId
	DeclarationsInvalidId
	UnknownCapabilityId
	UnsupportedCapabilityId
	AmbiguousCapabilityId
	OutputWriteFailedId
	ConfigLoadFailedId
	CyclicNewtypeId
)

type (
	// MarkdownMsg is the Markdown body of a catalog entry.
	MarkdownMsg string

	// HttpLink is a reference URL shown under "See also".
	HttpLink string

	// Issue is one catalog entry.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		extLinks []HttpLink
	}
)

// Id returns the catalog identifier.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the Markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// ExtLinks returns the reference links.
func (i *Issue) ExtLinks() []HttpLink { return slices.Clone(i.extLinks) }

// Markdown returns the body followed by the "See also" list.
func (i *Issue) Markdown() string {
	var sb strings.Builder
	sb.WriteString(string(i.mdMsg))
	if len(i.extLinks) > 0 {
		sb.WriteString("\n\n## See also\n")
		for _, link := range i.extLinks {
			sb.WriteString("- <" + string(link) + ">\n")
		}
	}
	return sb.String()
}

// Render renders the entry for a terminal with the glamour style at
// stylePath ("dark", "light", "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	declarationsNotFoundIssue = &Issue{
		id: DeclarationsNotFoundId,
		mdMsg: `
# No declaration file found!

newtype looks for the first of these files in the current directory:

1. newtypes.cue
2. newtypes.toml
3. newtypes.yaml / newtypes.yml
4. newtypes.json

## Things you can try
- Pass the file explicitly:
~~~
$ newtype gen ./units/newtypes.cue
~~~

- Create a minimal declaration file:
~~~cue
"package": "units"
newtypes: [{
	name:       "Meters"
	underlying: "int32"
	derive: ["Equality", "Ordering", "Addable", "Printable"]
}]
~~~`,
	}

	declarationsParseErrorIssue = &Issue{
		id: DeclarationsParseErrorId,
		mdMsg: `
# Failed to parse the declaration file!

The file could not be decoded in the format implied by its extension.

## Common issues
- Invalid CUE, TOML, YAML or JSON syntax
- Unknown top-level fields (only ` + "`package`, `imports` and `newtypes`" + ` are allowed)
- ` + "`derive`" + ` given as a string instead of a list

## Things you can try
~~~
$ newtype check --verbose newtypes.cue
~~~`,
		extLinks: []HttpLink{"https://cuelang.org/docs/"},
	}

	declarationsInvalidIssue = &Issue{
		id: DeclarationsInvalidId,
		mdMsg: `
# The declarations are not valid!

The file parsed, but at least one declaration breaks a rule:

- ` + "`package`" + ` and every ` + "`name`" + ` must be Go identifiers
- names must be unique within the file
- ` + "`underlying`" + ` must be a Go type expression such as ` + "`int32`, `[]string` or `time.Duration`" + `
- ` + "`doc`" + ` must not contain ` + "`*/`",
	}

	unknownCapabilityIssue = &Issue{
		id: UnknownCapabilityId,
		mdMsg: `
# Unknown capability!

` + "`derive`" + ` lists a name that is neither a capability nor a bundle.

## Capabilities
Equality, BaseEquality, Relational, ThreeWay, Addable, Subtractable,
Multipliable, Divisible, Incrementable, Hashable, Printable, Readable,
Iterable, Indirect

## Bundles
- Ordering = Relational + ThreeWay
- Arithmetic = Addable + Subtractable + Multipliable + Divisible

~~~
$ newtype caps
~~~`,
	}

	unsupportedCapabilityIssue = &Issue{
		id: UnsupportedCapabilityId,
		mdMsg: `
# The underlying type cannot support a requested capability!

Every capability forwards an operation of the underlying type. A newtype
over ` + "`[]int`" + ` cannot be Relational because slices have no ` + "`<`" + `.

## Things you can try
- Remove the capability from ` + "`derive`" + `
- Pick an underlying type that supports it:
~~~
$ newtype caps Relational
~~~
- For your own types, add an ` + "`Equal(T) bool`" + ` or ` + "`Compare(T) int`" + ` method
  and use EqualBy / CompareBy`,
		extLinks: []HttpLink{"https://pkg.go.dev/cmp#Ordered", "https://go.dev/ref/spec#Comparison_operators"},
	}

	ambiguousCapabilityIssue = &Issue{
		id: AmbiguousCapabilityId,
		mdMsg: `
# A capability marker is embedded ambiguously!

The tag reaches the same marker through two embedded fields at the same
depth. Go does not promote the marker's method in that case, so the
capability is silently missing.

~~~go
type relOnly struct{ newtype.Relational }

type tag struct {
	newtype.Ordering // Ordering.Relational
	relOnly          // relOnly.Relational
}
~~~

## Things you can try
- Embed the marker once, or embed it directly in the tag`,
		extLinks: []HttpLink{"https://go.dev/ref/spec#Selectors"},
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Failed to write the generated file!

## Things you can try
- Check that the output directory is writable
- Choose another file with ` + "`--output`" + `
- Print to the terminal instead:
~~~
$ newtype gen --stdout
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load the configuration!

## Things you can try
- Show where newtype looks for its configuration:
~~~
$ newtype config path
~~~
- Write a fresh default file:
~~~
$ newtype config init
~~~
- Inspect the merged values:
~~~
$ newtype config show
~~~`,
	}

	cyclicNewtypeIssue = &Issue{
		id: CyclicNewtypeId,
		mdMsg: `
# Newtypes refer to each other!

Each newtype becomes a type alias, and Go does not allow an alias to
mention itself, directly or through another alias:

~~~cue
newtypes: [
	{name: "Tree", underlying: "[]Tree"},
]
~~~

## Things you can try
- Declare the recursive type by hand and wrap it:
~~~go
type node struct{ children []node }
~~~
~~~cue
{name: "Tree", underlying: "node"}
~~~`,
		extLinks: []HttpLink{"https://go.dev/ref/spec#Alias_declarations"},
	}

	issues = map[Id]*Issue{
		declarationsNotFoundIssue.Id():   declarationsNotFoundIssue,
		declarationsParseErrorIssue.Id(): declarationsParseErrorIssue,
		declarationsInvalidIssue.Id():    declarationsInvalidIssue,
		unknownCapabilityIssue.Id():      unknownCapabilityIssue,
		unsupportedCapabilityIssue.Id():  unsupportedCapabilityIssue,
		ambiguousCapabilityIssue.Id():    ambiguousCapabilityIssue,
		outputWriteFailedIssue.Id():      outputWriteFailedIssue,
		configLoadFailedIssue.Id():       configLoadFailedIssue,
		cyclicNewtypeIssue.Id():          cyclicNewtypeIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	return slices.SortedFunc(maps.Values(issues), func(a, b *Issue) int {
		return cmp.Compare(a.id, b.id)
	})
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
