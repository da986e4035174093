// Package console is the interactive front end of factionwatch. It reads
// commands from a line-based input, runs them against the faction store and
// the playtime tracker, and prints tables to its output.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
	"text/tabwriter"

	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/logging"
	"github.com/dmitrijs2005/factionwatch/internal/models"
	"github.com/dmitrijs2005/factionwatch/internal/playtime"
	"github.com/dmitrijs2005/factionwatch/internal/store"
)

// BackupRunner takes one backup on demand.
type BackupRunner interface {
	RunOnce(ctx context.Context) (string, error)
}

type Console struct {
	store     *store.Store
	tracker   *playtime.Tracker
	backups   BackupRunner
	logger    logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	statsDays int

	// operatorID is recorded as the user of activity log entries.
	operatorID int

	status      atomic.Pointer[string]
	unsubscribe func()
}

type Option func(*Console)

// WithBackups enables the backup command.
func WithBackups(b BackupRunner) Option {
	return func(c *Console) { c.backups = b }
}

// WithStatsDays sets the default window of the playtime command.
func WithStatsDays(days int) Option {
	return func(c *Console) {
		if days > 0 {
			c.statsDays = days
		}
	}
}

func WithOperator(userID int) Option {
	return func(c *Console) { c.operatorID = userID }
}

// New builds a console reading from in and writing to out. The console
// subscribes to s to keep its prompt current; Close releases it.
func New(s *store.Store, t *playtime.Tracker, logger logging.Logger, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		store:     s,
		tracker:   t,
		logger:    logger,
		reader:    bufio.NewReader(in),
		out:       out,
		statsDays: 7,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.refreshStatus()
	c.unsubscribe = s.Subscribe(func(store.Changed) { c.refreshStatus() })
	return c
}

// Run blocks in the command loop until the input ends, the user exits or
// ctx is done.
func (c *Console) Run(ctx context.Context) {
	runREPL(ctx, c, c.statusLine, c.reader)
}

func (c *Console) Close() {
	c.unsubscribe()
}

func (c *Console) statusLine() string {
	return *c.status.Load()
}

func (c *Console) refreshStatus() {
	st := c.store.GetGlobalStats()
	line := fmt.Sprintf("[%d factions, %d/%d online]", st.TotalFactions, st.OnlineMembers, st.TotalMembers)
	c.status.Store(&line)
}

func (c *Console) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
}

func (c *Console) println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// fail reports err to the user and returns it.
func (c *Console) fail(ctx context.Context, err error) error {
	c.println("error:", err)
	c.logger.Debug(ctx, "command failed", "error", err)
	return err
}

// record appends an activity log entry for the console operator.
func (c *Console) record(action models.Action, format string, a ...any) {
	c.store.AddActivityLog(c.operatorID, action, fmt.Sprintf(format, a...))
}

var errUsage = errors.New("wrong arguments, see help")

func argInt(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, errUsage
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", args[i], common.ErrorValidation)
	}
	return n, nil
}

func argString(args []string, i int) (string, error) {
	if i >= len(args) {
		return "", errUsage
	}
	return args[i], nil
}

func notFound(what string, id any) error {
	return fmt.Errorf("%s %v: %w", what, id, common.ErrorNotFound)
}
