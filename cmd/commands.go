package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/utils"

	"github.com/fzft/go-hashset/hashset"
)

// ErrArity is returned when a command gets the wrong number of arguments.
var ErrArity = errors.New("wrong number of arguments")

// commandDocs documentation info used for help command.
type commandDocs struct {
	name    string
	params  string
	summary string
	// arity is the exact argument count including the command name, or -n for
	// at least n
	arity int
}

type commandProc func(cli *Cli, argv []string) error

type shellCommand struct {
	docs commandDocs
	proc commandProc
}

var commandTable map[string]*shellCommand

func init() {
	commands := []*shellCommand{
		{commandDocs{"new", "name [capacity]", "Create an empty set", -2}, newCommand},
		{commandDocs{"drop", "name", "Delete a set", 2}, dropCommand},
		{commandDocs{"sets", "", "List all sets with their sizes", 1}, setsCommand},
		{commandDocs{"add", "name element [element ...]", "Add elements, creating the set if needed", -3}, addCommand},
		{commandDocs{"rem", "name element [element ...]", "Remove elements", -3}, remCommand},
		{commandDocs{"has", "name element", "Test membership", 3}, hasCommand},
		{commandDocs{"size", "name", "Number of elements", 2}, sizeCommand},
		{commandDocs{"members", "name", "List elements in sorted order", 2}, membersCommand},
		{commandDocs{"clear", "name", "Remove all elements", 2}, clearCommand},
		{commandDocs{"union", "dst a b", "Store a ∪ b in dst", 4}, unionCommand},
		{commandDocs{"inter", "dst a b", "Store a ∩ b in dst", 4}, interCommand},
		{commandDocs{"diff", "dst a b", "Store a \\ b in dst", 4}, diffCommand},
		{commandDocs{"subset", "a b", "Test whether a ⊆ b", 3}, subsetCommand},
		{commandDocs{"equal", "a b", "Test whether a and b hold the same elements", 3}, equalCommand},
		{commandDocs{"hash", "name", "Order independent hash code of a set", 2}, hashCommand},
		{commandDocs{"pop", "name", "Remove and return the first element in traversal order", 2}, popCommand},
		{commandDocs{"help", "", "Show this help", 1}, helpCommand},
	}
	commandTable = make(map[string]*shellCommand, len(commands))
	for _, c := range commands {
		commandTable[c.docs.name] = c
	}
}

func lookupCommand(name string) (*shellCommand, bool) {
	c, ok := commandTable[strings.ToLower(name)]
	return c, ok
}

func (c *shellCommand) checkArity(argc int) error {
	a := c.docs.arity
	if (a > 0 && argc != a) || (a < 0 && argc < -a) {
		return fmt.Errorf("%w for '%s', usage: %s %s", ErrArity, c.docs.name, c.docs.name, c.docs.params)
	}
	return nil
}

func newCommand(cli *Cli, argv []string) error {
	capacity := 0
	if len(argv) > 2 {
		n, err := strconv.Atoi(argv[2])
		if err != nil {
			return fmt.Errorf("%w: capacity %q is not an integer", hashset.ErrInvalidArgument, argv[2])
		}
		if n == 0 {
			return fmt.Errorf("%w: capacity 0", hashset.ErrInvalidArgument)
		}
		capacity = n
	}
	s, err := cli.store.Create(argv[1], capacity)
	if err != nil {
		return err
	}
	cli.reply("OK (capacity %d)", s.Capacity())
	return nil
}

func dropCommand(cli *Cli, argv []string) error {
	if err := cli.store.Drop(argv[1]); err != nil {
		return err
	}
	cli.reply("OK")
	return nil
}

func setsCommand(cli *Cli, _ []string) error {
	names := cli.store.Names()
	if len(names) == 0 {
		cli.reply("(empty)")
		return nil
	}
	for _, name := range names {
		s, _ := cli.store.Get(name)
		cli.reply("%s (size %d, capacity %d)", name, s.Size(), s.Capacity())
	}
	return nil
}

func addCommand(cli *Cli, argv []string) error {
	s, err := cli.store.GetOrCreate(argv[1])
	if err != nil {
		return err
	}
	added := 0
	for _, e := range argv[2:] {
		ok, err := s.Add(e)
		if err != nil {
			return err
		}
		if ok {
			added++
		}
	}
	cli.reply("(integer) %d", added)
	return nil
}

func remCommand(cli *Cli, argv []string) error {
	s, err := cli.store.Get(argv[1])
	if err != nil {
		return err
	}
	removed := 0
	for _, e := range argv[2:] {
		ok, err := s.Remove(e)
		if err != nil {
			return err
		}
		if ok {
			removed++
		}
	}
	cli.reply("(integer) %d", removed)
	return nil
}

func hasCommand(cli *Cli, argv []string) error {
	s, err := cli.store.Get(argv[1])
	if err != nil {
		return err
	}
	cli.reply("%t", s.Contains(argv[2]))
	return nil
}

func sizeCommand(cli *Cli, argv []string) error {
	s, err := cli.store.Get(argv[1])
	if err != nil {
		return err
	}
	cli.reply("(integer) %d", s.Size())
	return nil
}

func membersCommand(cli *Cli, argv []string) error {
	s, err := cli.store.Get(argv[1])
	if err != nil {
		return err
	}
	if s.IsEmpty() {
		cli.reply("(empty)")
		return nil
	}
	values := make([]interface{}, 0, s.Size())
	s.ForEach(func(e string) bool {
		values = append(values, e)
		return true
	})
	utils.Sort(values, utils.StringComparator)
	for i, v := range values {
		cli.reply("%d) %q", i+1, v)
	}
	return nil
}

func clearCommand(cli *Cli, argv []string) error {
	s, err := cli.store.Get(argv[1])
	if err != nil {
		return err
	}
	s.Clear()
	cli.reply("OK")
	return nil
}

// algebra stores op(copy of a, b) under dst.
func algebra(cli *Cli, argv []string, op func(dst, b *StringSet) (bool, error)) error {
	a, err := cli.store.Get(argv[2])
	if err != nil {
		return err
	}
	b, err := cli.store.Get(argv[3])
	if err != nil {
		return err
	}
	dst, err := cli.store.copyOf(a)
	if err != nil {
		return err
	}
	if _, err := op(dst, b); err != nil {
		return err
	}
	cli.store.Put(argv[1], dst)
	cli.reply("(integer) %d", dst.Size())
	return nil
}

func unionCommand(cli *Cli, argv []string) error {
	return algebra(cli, argv, func(dst, b *StringSet) (bool, error) {
		return dst.AddAll(b)
	})
}

func interCommand(cli *Cli, argv []string) error {
	return algebra(cli, argv, func(dst, b *StringSet) (bool, error) {
		return dst.RetainAll(b)
	})
}

func diffCommand(cli *Cli, argv []string) error {
	return algebra(cli, argv, func(dst, b *StringSet) (bool, error) {
		return dst.RemoveAll(b)
	})
}

func subsetCommand(cli *Cli, argv []string) error {
	a, err := cli.store.Get(argv[1])
	if err != nil {
		return err
	}
	b, err := cli.store.Get(argv[2])
	if err != nil {
		return err
	}
	ok, err := b.ContainsAll(a)
	if err != nil {
		return err
	}
	cli.reply("%t", ok)
	return nil
}

func equalCommand(cli *Cli, argv []string) error {
	a, err := cli.store.Get(argv[1])
	if err != nil {
		return err
	}
	b, err := cli.store.Get(argv[2])
	if err != nil {
		return err
	}
	cli.reply("%t", a.Equal(b))
	return nil
}

func hashCommand(cli *Cli, argv []string) error {
	s, err := cli.store.Get(argv[1])
	if err != nil {
		return err
	}
	cli.reply("(integer) %d", s.HashCode())
	return nil
}

func popCommand(cli *Cli, argv []string) error {
	s, err := cli.store.Get(argv[1])
	if err != nil {
		return err
	}
	it := s.Iterator()
	e, err := it.Next()
	if err != nil {
		return err
	}
	if err := it.Remove(); err != nil {
		return err
	}
	cli.reply("%q", e)
	return nil
}

func helpCommand(cli *Cli, _ []string) error {
	names := make([]interface{}, 0, len(commandTable))
	for name := range commandTable {
		names = append(names, name)
	}
	utils.Sort(names, utils.StringComparator)
	for _, name := range names {
		docs := commandTable[name.(string)].docs
		cli.reply("%-8s %-28s %s", strings.ToUpper(docs.name), docs.params, docs.summary)
	}
	cli.reply("%-8s %-28s %s", "QUIT", "", "Leave the shell")
	return nil
}
