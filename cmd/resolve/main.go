// Command resolve is an interactive Horn-clause prompt: it consults rule
// files into a knowledge base and then lets the user type queries, one
// solution at a time, in the classic toplevel style (';' for the next
// solution, '.' to stop).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/nilterm/resolver/internal/config"
	"github.com/nilterm/resolver/pkg/logic"
	"github.com/nilterm/resolver/pkg/prover"
	"github.com/nilterm/resolver/pkg/resolver"
	"github.com/nilterm/resolver/pkg/syntax"
)

var (
	configFile   = flag.String("config", "", "YAML config file naming consult files and the prompt")
	consultFiles = flag.String("consult-files", "", "Comma-separated files to consult, in order")
	query        = flag.String("query", "", "Initial query to issue")
	interactive  = flag.Bool("interactive", true, "Whether the REPL reads further queries interactively")
)

type inputState int

const (
	readingQuery inputState = iota
	enumerateSolutions
)

type session struct {
	interrupt chan os.Signal
	ps        *resolver.ProofSystem
	rl        *readline.Instance
	prompt    string
}

func main() {
	flag.Parse()
	if !*interactive && len(*query) == 0 {
		log.Fatal("no query provided for a non-interactive run")
	}

	cfg := loadConfig()

	s := session{
		interrupt: make(chan os.Signal, 1),
		ps:        resolver.New(),
		prompt:    cfg.Prompt,
	}
	signal.Notify(s.interrupt, syscall.SIGINT)

	for _, file := range cfg.ConsultFiles {
		s.consultFile(file)
	}
	for _, file := range strings.Split(*consultFiles, ",") {
		if len(file) == 0 {
			continue
		}
		s.consultFile(file)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 cfg.Prompt,
		HistoryFile:            "/tmp/resolve-history",
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()
	s.rl = rl

	s.mainLoop()
}

func loadConfig() *config.Config {
	if *configFile == "" {
		return config.Default()
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (s *session) consultFile(filename string) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		log.Print(err)
		return
	}
	if err := s.consult(string(bs)); err != nil {
		log.Print(err)
	}
}

// consult parses src as a sequence of rules, assuming each one into the
// session's knowledge base in order. A bare query statement in a consult
// file is rejected: consult files declare rules, not queries.
func (s *session) consult(src string) error {
	p, err := syntax.NewParser(src)
	if err != nil {
		return err
	}
	for {
		stmt, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		rs, ok := stmt.(syntax.RuleStatement)
		if !ok {
			return fmt.Errorf("consult: query statements are not allowed in a consult file")
		}
		ps, err := s.ps.Assume(rs.Rule)
		if err != nil {
			return err
		}
		s.ps = ps
	}
}

func (s *session) mainLoop() {
	state := readingQuery
	var solutions <-chan prover.Solution
	var cancel func()

	if len(*query) > 0 {
		goal, err := parseQuery(*query)
		if err != nil {
			log.Fatal(err)
		}
		solutions, cancel = s.ps.Query(goal)
		state = enumerateSolutions
	}

	if !*interactive {
		found := false
		for sol := range solutions {
			found = true
			printSolution(sol, true)
		}
		if !found {
			printSolution(nil, false)
		}
		return
	}

	for {
		switch state {
		case readingQuery:
			goal, isClose := s.readQuery()
			if isClose {
				return
			}
			solutions, cancel = s.ps.Query(goal)
			state = enumerateSolutions
		case enumerateSolutions:
			if isClose := s.solutionState(solutions, cancel); isClose {
				state = readingQuery
			}
		default:
			log.Print("resolve: invalid state: ", state)
			return
		}
	}
}

// parseQuery parses text as a query, tolerating the user omitting the
// "?-" prefix the grammar otherwise requires, since every line typed at
// the prompt is a query by convention.
func parseQuery(text string) (logic.Proposition, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "?-") {
		text = "?- " + text
	}
	if !strings.HasSuffix(text, ".") {
		text += "."
	}
	p, err := syntax.NewParser(text)
	if err != nil {
		return nil, err
	}
	stmt, err := p.Next()
	if err != nil {
		return nil, err
	}
	qs, ok := stmt.(syntax.QueryStatement)
	if !ok {
		return nil, fmt.Errorf("expected a query")
	}
	return qs.Query, nil
}

func (s *session) readQuery() (logic.Proposition, bool) {
	s.rl.SetPrompt(s.prompt)
	var lines []string
	for {
		line, err := s.rl.Readline()
		if err != nil {
			return nil, true
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
		if !strings.HasSuffix(line, ".") {
			s.rl.SetPrompt("|  ")
			continue
		}
		break
	}
	text := strings.Join(lines, " ")
	s.rl.SaveHistory(text)
	goal, err := parseQuery(text)
	if err != nil {
		log.Print(err)
		return nil, false
	}
	return goal, false
}

func (s *session) solutionState(solutions <-chan prover.Solution, cancel func()) bool {
	select {
	case sol, ok := <-solutions:
		if isClose := printSolution(sol, ok); isClose {
			cancel()
			return true
		}
		if isClose := s.readCommand(); isClose {
			cancel()
			return true
		}
		return false
	case <-s.interrupt:
		cancel()
		return true
	}
}

func printSolution(sol prover.Solution, ok bool) bool {
	if !ok {
		fmt.Println("false.")
		return true
	}
	if len(sol) == 0 {
		fmt.Println("true.")
	} else {
		fmt.Println(formatSolution(sol))
	}
	return false
}

func formatSolution(sol prover.Solution) string {
	parts := make([]string, len(sol))
	for i, b := range sol {
		if b.Unbound {
			parts[i] = b.Name + " = " + b.Name
			continue
		}
		parts[i] = fmt.Sprintf("%s = %s", b.Name, b.Term)
	}
	return strings.Join(parts, ", ")
}

func (s *session) readCommand() bool {
	for {
		s.rl.SetPrompt("")
		line, err := s.rl.Readline()
		if err != nil {
			return true
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ";":
			return false
		case ".":
			return true
		default:
			log.Print("resolve: expecting '.' or ';'")
		}
	}
}
