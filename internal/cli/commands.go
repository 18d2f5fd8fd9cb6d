// Package cli implements the interactive command prompt over a loaded
// family tree.
package cli

import "strings"

// Op identifies a prompt command.
type Op int

// Prompt commands.
const (
	OpQuit Op = iota
	OpPrint
	OpChildren
	OpCousins
	OpSiblings
	OpParents
	OpTallest
	OpShortest
	OpGrandchildren
	OpGrandparents
)

// Parameter names. ParamLevel must hold digits only.
const (
	ParamPerson = "person"
	ParamLevel  = "N"
)

// Command describes one prompt command: its accepted names and the
// parameters it takes, in order.
type Command struct {
	Op     Op
	Names  []string
	Params []string
}

// Numeric reports whether the command takes a generation level.
func (c Command) Numeric() bool {
	for _, p := range c.Params {
		if p == ParamLevel {
			return true
		}
	}
	return false
}

// Name returns the canonical (first) command name in lower case, used as a
// metric and log label.
func (c Command) Name() string {
	return strings.ToLower(c.Names[0])
}

// Commands is the command table. Finnish aliases follow the English names.
var Commands = []Command{
	{Op: OpQuit, Names: []string{"QUIT", "EXIT", "Q", "LOPETA"}},
	{Op: OpPrint, Names: []string{"PRINT", "TREE", "FAMILYTREE", "SUKUPUU", "PUU"}},
	{Op: OpChildren, Names: []string{"CHILDREN", "LAPSET"}, Params: []string{ParamPerson}},
	{Op: OpCousins, Names: []string{"COUSINS", "SERKUT"}, Params: []string{ParamPerson}},
	{Op: OpSiblings, Names: []string{"SIBLINGS", "SISARUKSET"}, Params: []string{ParamPerson}},
	{Op: OpParents, Names: []string{"PARENTS", "VANHEMMAT"}, Params: []string{ParamPerson}},
	{Op: OpTallest, Names: []string{"TALLEST", "PISIN"}, Params: []string{ParamPerson}},
	{Op: OpShortest, Names: []string{"SHORTEST", "LYHYIN", "LYHIN"}, Params: []string{ParamPerson}},
	{Op: OpGrandchildren, Names: []string{"GRANDCHILDREN", "LAPSENLAPSET", "GC", "LL"}, Params: []string{ParamPerson, ParamLevel}},
	{Op: OpGrandparents, Names: []string{"GRANDPARENTS", "ISOVANHEMMAT", "GP", "IV"}, Params: []string{ParamPerson, ParamLevel}},
}

var commandIndex = func() map[string]Command {
	idx := make(map[string]Command)
	for _, c := range Commands {
		for _, n := range c.Names {
			idx[n] = c
		}
	}
	return idx
}()

// Lookup finds a command by any of its names, ignoring case.
func Lookup(name string) (Command, bool) {
	c, ok := commandIndex[strings.ToUpper(name)]
	return c, ok
}
