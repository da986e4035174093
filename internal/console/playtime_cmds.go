package console

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrijs2005/factionwatch/internal/backup"
	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/models"
	"github.com/dmitrijs2005/factionwatch/internal/playtime"
)

func (c *Console) Accounts(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list", "ls":
		accounts, err := c.tracker.GetAllAccounts(ctx)
		if err != nil {
			return c.fail(ctx, err)
		}
		w := c.table()
		fmt.Fprintln(w, "ID\tNAME\tSTATUS\tLAST SEEN\tNOTES")
		for _, a := range accounts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				a.ID, a.Name, a.Status, a.LastSeen.Local().Format(common.LastSeenLayout), a.Notes)
		}
		return w.Flush()

	case "add":
		if len(args) == 0 {
			return c.fail(ctx, errUsage)
		}
		name := strings.Join(args, " ")
		password, err := GetPassword(c.reader, c.out)
		if err != nil {
			return c.fail(ctx, err)
		}
		defer common.WipeByteArray(password)

		a, err := c.tracker.RegisterAccount(ctx, name, password, "")
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				c.println("an account with this name already exists")
			}
			return c.fail(ctx, err)
		}
		c.printf("account %s added\n", a.ID)
		return nil

	case "rename":
		id, err := argString(args, 0)
		if err != nil {
			return c.fail(ctx, err)
		}
		if len(args) < 2 {
			return c.fail(ctx, errUsage)
		}
		name := strings.Join(args[1:], " ")
		ok, err := c.tracker.UpdateAccount(ctx, id, models.AccountPatch{Name: &name})
		if err != nil {
			return c.fail(ctx, err)
		}
		if !ok {
			return c.fail(ctx, notFound("account", id))
		}
		c.println("account renamed")
		return nil

	case "rm":
		id, err := argString(args, 0)
		if err != nil {
			return c.fail(ctx, err)
		}
		ok, err := c.tracker.DeleteAccount(ctx, id)
		if err != nil {
			return c.fail(ctx, err)
		}
		if !ok {
			return c.fail(ctx, notFound("account", id))
		}
		c.printf("account %s removed\n", id)
		return nil
	}

	return c.fail(ctx, errUsage)
}

func (c *Console) Start(ctx context.Context, args []string) error {
	id, err := argString(args, 0)
	if err != nil {
		return c.fail(ctx, err)
	}
	status := models.StatusOnline
	if len(args) > 1 {
		status = models.Status(args[1])
	}

	s, err := c.tracker.StartSession(ctx, id, status)
	if err != nil {
		return c.fail(ctx, err)
	}
	if s == nil {
		return c.fail(ctx, notFound("account", id))
	}
	c.printf("session %s started\n", s.ID)
	return nil
}

func (c *Console) Stop(ctx context.Context, args []string) error {
	id, err := argString(args, 0)
	if err != nil {
		return c.fail(ctx, err)
	}

	ok, err := c.tracker.EndSession(ctx, id)
	if err != nil {
		return c.fail(ctx, err)
	}
	if !ok {
		c.println("no active session")
		return nil
	}
	c.println("session ended")
	return nil
}

func (c *Console) Playtime(ctx context.Context, args []string) error {
	id, err := argString(args, 0)
	if err != nil {
		return c.fail(ctx, err)
	}
	days := c.statsDays
	if len(args) > 1 {
		if days, err = argInt(args, 1); err != nil {
			return c.fail(ctx, err)
		}
	}

	st, err := c.tracker.GetPlayTimeStats(ctx, id, days)
	if err != nil {
		return c.fail(ctx, err)
	}

	c.printf("last %d days: %s in %d sessions, %s on average\n",
		days, playtime.FormatDuration(st.TotalTime), st.SessionsCount, playtime.FormatDuration(st.AverageSession))

	w := c.table()
	for _, day := range slices.Sorted(maps.Keys(st.TimeByDay)) {
		fmt.Fprintf(w, "%s\t%s\n", day, playtime.FormatDuration(st.TimeByDay[day]))
	}
	return w.Flush()
}

func (c *Console) Storage(ctx context.Context, _ []string) error {
	st, err := c.tracker.GetStorageStats(ctx)
	if err != nil {
		return c.fail(ctx, err)
	}
	c.printf("accounts: %d (active %d, online %d)\n", st.TotalAccounts, st.ActiveAccounts, st.OnlineAccounts)
	c.printf("sessions: %d (active %d)\n", st.TotalSessions, st.ActiveSessions)
	c.printf("storage: %.1f KB\n", float64(st.StorageSize)/1024)
	return nil
}

func (c *Console) Export(ctx context.Context, args []string) error {
	path, err := argString(args, 0)
	if err != nil {
		return c.fail(ctx, err)
	}
	b, err := c.tracker.Export(ctx)
	if err != nil {
		return c.fail(ctx, err)
	}
	if err := backup.WriteFile(path, b); err != nil {
		return c.fail(ctx, err)
	}
	c.printf("exported %d accounts and %d sessions to %s\n", len(b.Accounts), len(b.Sessions), path)
	return nil
}

func (c *Console) Import(ctx context.Context, args []string) error {
	path, err := argString(args, 0)
	if err != nil {
		return c.fail(ctx, err)
	}
	b, err := backup.ReadFile(path)
	if err != nil {
		return c.fail(ctx, err)
	}
	if err := c.tracker.Import(ctx, b); err != nil {
		return c.fail(ctx, err)
	}
	c.printf("imported %d accounts and %d sessions\n", len(b.Accounts), len(b.Sessions))
	return nil
}

func (c *Console) Backup(ctx context.Context, _ []string) error {
	if c.backups == nil {
		c.println("backups are not configured")
		return nil
	}
	location, err := c.backups.RunOnce(ctx)
	if err != nil {
		return c.fail(ctx, err)
	}
	c.println("backup written to", location)
	return nil
}
