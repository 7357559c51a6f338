package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/fzft/go-hashset/deps/linenoise"
)

var (
	CliHisFileEnv     = "HSETCLI_HISTFILE"
	CliHisFileDefault = ".hsetcli_history"
	CliDefaultPrompt  = "hset> "
)

// ErrUnknownCommand is returned for a command name not in the command table.
var ErrUnknownCommand = errors.New("unknown command")

type CliConfig struct {
	Capacity int    // bucket count of sets created without an explicit capacity
	Script   string // run this file instead of reading stdin
	Prompt   string
	Version  string
}

// Cli is the set shell. It executes one command per line against a Store.
type Cli struct {
	config *CliConfig
	store  *Store
	out    io.Writer
	logger *zap.Logger
}

func NewCli(config *CliConfig, out io.Writer, logger *zap.Logger) *Cli {
	if config.Prompt == "" {
		config.Prompt = CliDefaultPrompt
	}
	return &Cli{
		config: config,
		store:  NewStore(config.Capacity, logger),
		out:    out,
		logger: logger,
	}
}

// InitDisplay sets up the pterm prefixes used for replies and errors.
func InitDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func (cli *Cli) reply(format string, args ...interface{}) {
	fmt.Fprint(cli.out, pterm.Info.Sprintln(fmt.Sprintf(format, args...)))
}

func (cli *Cli) fail(err error) {
	fmt.Fprint(cli.out, pterm.Error.Sprintln(err.Error()))
}

// Exec runs a single command line. It reports quit for QUIT and EXIT.
func (cli *Cli) Exec(line string) (quit bool, err error) {
	argv, err := splitArgs(line)
	if err != nil {
		return false, err
	}
	if len(argv) == 0 {
		return false, nil
	}
	if strings.EqualFold(argv[0], "quit") || strings.EqualFold(argv[0], "exit") {
		return true, nil
	}

	c, ok := lookupCommand(argv[0])
	if !ok {
		return false, fmt.Errorf("%w '%s', try HELP", ErrUnknownCommand, argv[0])
	}
	if err := c.checkArity(len(argv)); err != nil {
		return false, err
	}
	cli.logger.Debug("exec command", zap.String("command", c.docs.name), zap.Strings("args", argv[1:]))
	if err := c.proc(cli, argv); err != nil {
		cli.logger.Debug("command failed", zap.String("command", c.docs.name), zap.Error(err))
		return false, err
	}
	return false, nil
}

// Run executes the configured script, the interactive shell if stdin is a
// terminal, or the commands piped into stdin.
func (cli *Cli) Run() error {
	if cli.config.Script != "" {
		f, err := os.Open(cli.config.Script)
		if err != nil {
			return err
		}
		defer f.Close()
		return cli.RunScript(f)
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		cli.repl()
		return nil
	}
	return cli.RunScript(os.Stdin)
}

// RunScript executes r line by line. Blank lines and lines starting with # are
// skipped. Failing lines do not stop the script; their errors are combined.
func (cli *Cli) RunScript(r io.Reader) error {
	var errs error
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quit, err := cli.Exec(line)
		if err != nil {
			cli.fail(err)
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", lineno, err))
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

func (cli *Cli) repl() {
	line := linenoise.New()
	defer line.Close()

	historyFile := getDotfilePath(CliHisFileEnv, CliHisFileDefault)
	if historyFile != "" {
		if err := line.HistoryLoad(historyFile); err != nil && !os.IsNotExist(err) {
			cli.logger.Warn("failed to load history", zap.String("file", historyFile), zap.Error(err))
		}
	}

	pterm.Success.Println(fmt.Sprintf("hsetcli %s, type HELP for commands, QUIT or <ctrl>D to leave", cli.config.Version))
	for {
		input, err := line.Prompt(cli.config.Prompt)
		if err != nil { // io.EOF or aborted with <ctrl>C
			break
		}
		if input = strings.TrimSpace(input); input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.EqualFold(input, "clear") {
			if err := line.ClearScreen(); err != nil {
				cli.fail(err)
			}
			continue
		}
		quit, err := cli.Exec(input)
		if err != nil {
			cli.fail(err)
		}
		if quit {
			break
		}
	}

	if historyFile != "" {
		if err := line.HistorySave(historyFile); err != nil {
			cli.logger.Warn("failed to save history", zap.String("file", historyFile), zap.Error(err))
		}
	}
}

func getDotfilePath(envOverride, dotFilename string) string {
	var dotPath string

	path := os.Getenv(envOverride)
	if path != "" {
		if path == "/dev/null" {
			return ""
		}
		dotPath = path
	} else {
		home := os.Getenv("HOME")
		if home != "" {
			dotPath = fmt.Sprintf("%s/%s", home, dotFilename)
		}
	}
	return dotPath
}
