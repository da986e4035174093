package console

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *Console
// implements it; tests use a stub.
type execIface interface {
	Factions(ctx context.Context, args []string) error
	Members(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error
	Warn(ctx context.Context, args []string) error
	Unwarn(ctx context.Context, args []string) error
	Users(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Log(ctx context.Context, args []string) error
	Accounts(ctx context.Context, args []string) error
	Start(ctx context.Context, args []string) error
	Stop(ctx context.Context, args []string) error
	Playtime(ctx context.Context, args []string) error
	Storage(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Backup(ctx context.Context, args []string) error
}

const helpText = `Commands:
  factions [list|add <name> [color] [type]|show <id>|rename <id> <name>|rm <id>]
  members [list [faction]|add <faction> <name> [rank]|search <text>|top [n]|online|rm <id>]
  status <member> <online|afk|offline>
  warn <member> <verbal|written> <reason>    unwarn <member> <warning>
  users [list|add <username> <role>|block <id>|rm <id>]
  stats    log
  accounts [list|add <name>|rename <id> <name>|rm <id>]
  start <account> [status]    stop <account>    playtime <account> [days]
  storage    export <file>    import <file>    backup
  help    exit`

// runREPL reads commands from reader until EOF, "exit" or "quit", or until
// ctx is done. Handlers report their own errors; the loop keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("fw %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help", "?":
			printlnFn(helpText)

		case "f", "factions":
			_ = a.Factions(ctx, args)

		case "m", "members":
			_ = a.Members(ctx, args)

		case "status":
			_ = a.Status(ctx, args)

		case "warn":
			_ = a.Warn(ctx, args)

		case "unwarn":
			_ = a.Unwarn(ctx, args)

		case "users":
			_ = a.Users(ctx, args)

		case "stats":
			_ = a.Stats(ctx, args)

		case "log":
			_ = a.Log(ctx, args)

		case "a", "accounts":
			_ = a.Accounts(ctx, args)

		case "start":
			_ = a.Start(ctx, args)

		case "stop":
			_ = a.Stop(ctx, args)

		case "playtime":
			_ = a.Playtime(ctx, args)

		case "storage":
			_ = a.Storage(ctx, args)

		case "export":
			_ = a.Export(ctx, args)

		case "import":
			_ = a.Import(ctx, args)

		case "backup":
			_ = a.Backup(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
