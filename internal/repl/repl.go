// Package repl implements the interactive command session over a single
// in-memory multi-value dictionary.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	log "github.com/raz729/MultiValueDictionary/internal/logging"
	"github.com/raz729/MultiValueDictionary/pkg/genutil/mapz"
	"github.com/raz729/MultiValueDictionary/pkg/genutil/slicez"
)

const prompt = "> "

// Session holds the dictionary and output sink for one interactive session.
type Session struct {
	dict *mapz.MultiValueDictionary[string, string]
	out  io.Writer
}

// NewSession constructs a session with an empty dictionary writing to the
// given output.
func NewSession(out io.Writer) *Session {
	return &Session{
		dict: mapz.NewMultiValueDictionary[string, string](),
		out:  out,
	}
}

// Run reads commands line by line from the input until EOF, an EXIT command,
// or context cancellation.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		if !s.Execute(scanner.Text()) {
			return nil
		}
	}
}

// Execute runs a single command line against the session's dictionary,
// writing its result to the session output. Returns false once the session
// should end.
func (s *Session) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	verb := strings.ToUpper(fields[0])
	args := fields[1:]
	log.Debug().Str("verb", verb).Int("args", len(args)).Msg("handling command")

	switch verb {
	case "EXIT", "QUIT":
		return false

	case "HELP":
		s.writeHelp()

	case "KEYS":
		s.writeList(s.dict.Keys())

	case "MEMBERS":
		if !s.requireArgs(verb, args, 1) {
			return true
		}
		members, ok := s.dict.Get(args[0])
		if !ok {
			s.writeError("key does not exist")
			return true
		}
		s.writeList(members)

	case "ADD":
		if !s.requireArgs(verb, args, 2) {
			return true
		}
		if !s.dict.Add(args[0], args[1]) {
			s.writeError("member already exists for key")
			return true
		}
		s.writeResult("Added")

	case "REMOVE":
		if !s.requireArgs(verb, args, 2) {
			return true
		}
		if !s.dict.Has(args[0]) {
			s.writeError("key does not exist")
			return true
		}
		if _, ok := s.dict.Remove(args[0], args[1]); !ok {
			s.writeError("member does not exist")
			return true
		}
		s.writeResult("Removed")

	case "REMOVEALL":
		if !s.requireArgs(verb, args, 1) {
			return true
		}
		if _, ok := s.dict.RemoveAll(args[0]); !ok {
			s.writeError("key does not exist")
			return true
		}
		s.writeResult("Removed")

	case "CLEAR":
		s.dict.Clear()
		s.writeResult("Cleared")

	case "KEYEXISTS":
		if !s.requireArgs(verb, args, 1) {
			return true
		}
		s.writeResult(fmt.Sprintf("%v", s.dict.Has(args[0])))

	case "VALUEEXISTS", "MEMBEREXISTS":
		if !s.requireArgs(verb, args, 2) {
			return true
		}
		s.writeResult(fmt.Sprintf("%v", s.dict.HasValue(args[0], args[1])))

	case "ALLMEMBERS":
		s.writeList(s.dict.Values())

	case "ITEMS":
		var pairs []mapz.Pair[string, string]
		for it := s.dict.Items(); it.Next(); {
			pairs = append(pairs, it.Pair())
		}
		s.writeList(slicez.Map(pairs, func(p mapz.Pair[string, string]) string {
			return p.Key + ": " + p.Value
		}))

	default:
		s.writeError("unknown command, type HELP for a list of commands")
	}
	return true
}

func (s *Session) requireArgs(verb string, args []string, want int) bool {
	if len(args) == want {
		return true
	}
	s.writeError(fmt.Sprintf("%s requires %d argument(s)", verb, want))
	return false
}

func (s *Session) writeResult(msg string) {
	fmt.Fprintf(s.out, ") %s\n", msg)
}

func (s *Session) writeError(msg string) {
	fmt.Fprintf(s.out, ") ERROR, %s\n", msg)
}

func (s *Session) writeList(items []string) {
	if len(items) == 0 {
		fmt.Fprintln(s.out, "(empty set)")
		return
	}
	for i, item := range items {
		fmt.Fprintf(s.out, "%d) %s\n", i+1, item)
	}
}

func (s *Session) writeHelp() {
	commands := []string{
		"ADD <key> <member>          adds a member to a key",
		"REMOVE <key> <member>       removes a member from a key",
		"REMOVEALL <key>             removes a key and all of its members",
		"KEYS                        lists all keys",
		"MEMBERS <key>               lists the members of a key",
		"ALLMEMBERS                  lists every member of every key",
		"ITEMS                       lists every key: member pair",
		"KEYEXISTS <key>             prints whether the key exists",
		"VALUEEXISTS <key> <member>  prints whether the member exists for the key",
		"CLEAR                       removes all keys and members",
		"EXIT                        ends the session",
	}
	for _, command := range commands {
		fmt.Fprintln(s.out, command)
	}
}
