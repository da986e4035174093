package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/factionwatch/internal/common"
	"github.com/dmitrijs2005/factionwatch/internal/models"
	"github.com/dmitrijs2005/factionwatch/internal/store"
	"github.com/dmitrijs2005/factionwatch/internal/validation"
)

var actionLabels = map[models.Action]string{
	models.ActionLogin:         "logged in",
	models.ActionLogout:        "logged out",
	models.ActionAddMember:     "added member",
	models.ActionRemoveMember:  "removed member",
	models.ActionStatusChange:  "changed status",
	models.ActionAddWarning:    "issued warning",
	models.ActionRemoveWarning: "lifted warning",
	models.ActionAddFaction:    "added faction",
	models.ActionRemoveFaction: "removed faction",
	models.ActionAddUser:       "added user",
	models.ActionBlockUser:     "blocked user",
}

func (c *Console) Factions(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list", "ls":
		w := c.table()
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tMEMBERS\tONLINE")
		for _, f := range c.store.GetAllFactions() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", f.ID, f.Name, f.Type, f.TotalMembers, f.OnlineMembers)
		}
		return w.Flush()

	case "add":
		name, err := argString(args, 0)
		if err != nil {
			return c.fail(ctx, err)
		}
		f := models.Faction{Name: name}
		if len(args) > 1 {
			f.Color = args[1]
		}
		if len(args) > 2 {
			f.Type = strings.Join(args[2:], " ")
		}
		if err := validation.Struct(f); err != nil {
			return c.fail(ctx, err)
		}
		added := c.store.AddFaction(f)
		c.record(models.ActionAddFaction, "faction %q", added.Name)
		c.printf("faction %d added\n", added.ID)
		return nil

	case "show":
		id, err := argInt(args, 0)
		if err != nil {
			return c.fail(ctx, err)
		}
		st, ok := c.store.FactionStatistics(id)
		if !ok {
			return c.fail(ctx, notFound("faction", id))
		}
		f, _ := c.store.GetFactionByID(id)
		c.printf("%s (%s)\n", f.Name, f.Type)
		c.printf("members: %d, online: %d, afk: %d, offline: %d\n", st.Total, st.Online, st.AFK, st.Offline)
		c.printf("hours: %.1f total, %.1f this week, %.1f average\n", st.TotalHours, st.WeeklyHours, st.AvgWeeklyHours)
		c.printf("active warnings: %d\n", st.ActiveWarnings)
		return c.printMembers(f.Members)

	case "rename":
		id, err := argInt(args, 0)
		if err != nil {
			return c.fail(ctx, err)
		}
		if len(args) < 2 {
			return c.fail(ctx, errUsage)
		}
		name := strings.Join(args[1:], " ")
		if err := validation.Var(name, "required,maxgraphemes=64"); err != nil {
			return c.fail(ctx, err)
		}
		if !c.store.UpdateFaction(id, models.FactionPatch{Name: &name}) {
			return c.fail(ctx, notFound("faction", id))
		}
		c.println("faction renamed")
		return nil

	case "rm":
		id, err := argInt(args, 0)
		if err != nil {
			return c.fail(ctx, err)
		}
		f, ok := c.store.GetFactionByID(id)
		if !ok || !c.store.RemoveFaction(id) {
			return c.fail(ctx, notFound("faction", id))
		}
		c.record(models.ActionRemoveFaction, "faction %q with %d members", f.Name, f.TotalMembers)
		c.printf("faction %d removed with %d members\n", id, f.TotalMembers)
		return nil
	}

	return c.fail(ctx, errUsage)
}

func (c *Console) Members(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list", "ls":
		if len(args) == 0 {
			return c.printMembers(c.store.GetAllMembers())
		}
		id, err := argInt(args, 0)
		if err != nil {
			return c.fail(ctx, err)
		}
		if _, ok := c.store.GetFactionByID(id); !ok {
			return c.fail(ctx, notFound("faction", id))
		}
		return c.printMembers(c.store.GetMembersByFaction(id))

	case "add":
		factionID, err := argInt(args, 0)
		if err != nil {
			return c.fail(ctx, err)
		}
		name, err := argString(args, 1)
		if err != nil {
			return c.fail(ctx, err)
		}
		m := models.Member{Name: name, Rank: strings.Join(args[2:], " ")}
		if err := validation.Struct(m); err != nil {
			return c.fail(ctx, err)
		}
		added, ok := c.store.AddMember(m, factionID)
		if !ok {
			return c.fail(ctx, notFound("faction", factionID))
		}
		c.record(models.ActionAddMember, "member %q to faction %d", added.Name, factionID)
		c.printf("member %d added\n", added.ID)
		return nil

	case "search":
		return c.printMembers(store.SearchMembers(c.store.GetAllMembers(), strings.Join(args, " ")))

	case "top":
		n := 10
		if len(args) > 0 {
			var err error
			if n, err = argInt(args, 0); err != nil {
				return c.fail(ctx, err)
			}
		}
		return c.printMembers(store.TopMembersByActivity(c.store.GetAllMembers(), n))

	case "online":
		return c.printMembers(store.FilterMembersByStatus(c.store.GetAllMembers(), models.StatusOnline))

	case "rm":
		id, err := argInt(args, 0)
		if err != nil {
			return c.fail(ctx, err)
		}
		m, ok := c.store.GetMemberByID(id)
		if !ok || !c.store.RemoveMember(id) {
			return c.fail(ctx, notFound("member", id))
		}
		c.record(models.ActionRemoveMember, "member %q", m.Name)
		c.printf("member %d removed\n", id)
		return nil
	}

	return c.fail(ctx, errUsage)
}

func (c *Console) printMembers(members []models.Member) error {
	w := c.table()
	fmt.Fprintln(w, "ID\tFACTION\tNAME\tRANK\tSTATUS\tLAST SEEN\tWEEK H\tWARN")
	for _, m := range members {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%.1f\t%d\n",
			m.ID, m.FactionID, m.Name, m.Rank, m.Status, m.LastSeen, m.WeeklyHours, len(store.ActiveWarnings(m)))
	}
	return w.Flush()
}

func (c *Console) Status(ctx context.Context, args []string) error {
	id, err := argInt(args, 0)
	if err != nil {
		return c.fail(ctx, err)
	}
	status, err := argString(args, 1)
	if err != nil {
		return c.fail(ctx, err)
	}
	if !models.Status(status).Valid() {
		return c.fail(ctx, fmt.Errorf("status %q: %w", status, common.ErrorValidation))
	}
	if !c.store.UpdateMemberStatus(id, models.Status(status)) {
		return c.fail(ctx, notFound("member", id))
	}
	c.record(models.ActionStatusChange, "member %d is %s", id, status)
	return nil
}

func (c *Console) Warn(ctx context.Context, args []string) error {
	id, err := argInt(args, 0)
	if err != nil {
		return c.fail(ctx, err)
	}
	if len(args) < 3 {
		return c.fail(ctx, errUsage)
	}

	w := models.Warning{
		Type:      models.WarningType(args[1]),
		Reason:    strings.Join(args[2:], " "),
		AdminID:   fmt.Sprint(c.operatorID),
		AdminName: "console",
	}
	if err := validation.Struct(w); err != nil {
		return c.fail(ctx, err)
	}

	added, ok := c.store.AddWarning(id, w)
	if !ok {
		return c.fail(ctx, notFound("member", id))
	}
	c.record(models.ActionAddWarning, "%s warning to member %d: %s", added.Type, id, added.Reason)
	c.printf("warning %s issued\n", added.ID)
	return nil
}

func (c *Console) Unwarn(ctx context.Context, args []string) error {
	id, err := argInt(args, 0)
	if err != nil {
		return c.fail(ctx, err)
	}
	warningID, err := argString(args, 1)
	if err != nil {
		return c.fail(ctx, err)
	}
	if !c.store.RemoveWarning(id, warningID) {
		return c.fail(ctx, notFound("warning", warningID))
	}
	c.record(models.ActionRemoveWarning, "warning %s of member %d", warningID, id)
	c.println("warning lifted")
	return nil
}

func (c *Console) Users(ctx context.Context, args []string) error {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list", "ls":
		w := c.table()
		fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tBLOCKED")
		for _, u := range c.store.GetAllUsers() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", u.ID, u.Username, u.Role, u.IsBlocked)
		}
		return w.Flush()

	case "add":
		if len(args) < 2 {
			return c.fail(ctx, errUsage)
		}
		u := models.User{Username: args[0], Role: args[1]}
		if err := validation.Struct(u); err != nil {
			return c.fail(ctx, err)
		}
		added, ok := c.store.AddUser(u)
		if !ok {
			return c.fail(ctx, fmt.Errorf("username %q: %w", u.Username, common.ErrorAlreadyExists))
		}
		c.record(models.ActionAddUser, "user %q", added.Username)
		c.printf("user %d added\n", added.ID)
		return nil

	case "block":
		id, err := argInt(args, 0)
		if err != nil {
			return c.fail(ctx, err)
		}
		if !c.store.ToggleUserBlock(id) {
			return c.fail(ctx, notFound("user", id))
		}
		u, _ := c.store.GetUserByID(id)
		if u.IsBlocked {
			c.record(models.ActionBlockUser, "user %q", u.Username)
		}
		c.printf("user %d blocked: %t\n", id, u.IsBlocked)
		return nil

	case "rm":
		id, err := argInt(args, 0)
		if err != nil {
			return c.fail(ctx, err)
		}
		if !c.store.RemoveUser(id) {
			return c.fail(ctx, notFound("user", id))
		}
		c.printf("user %d removed\n", id)
		return nil
	}

	return c.fail(ctx, errUsage)
}

func (c *Console) Stats(ctx context.Context, _ []string) error {
	st := c.store.GetGlobalStats()
	c.printf("factions: %d\n", st.TotalFactions)
	c.printf("members: %d (online %d, afk %d, offline %d, %d%% online)\n",
		st.TotalMembers, st.OnlineMembers, st.AFKMembers, st.OfflineMembers, st.OnlinePercentage)
	c.printf("active warnings: %d\n", st.ActiveWarnings)
	c.printf("users: %d (%d active)\n", st.TotalUsers, st.ActiveUsers)
	return nil
}

func (c *Console) Log(ctx context.Context, _ []string) error {
	w := c.table()
	fmt.Fprintln(w, "TIME\tUSER\tACTION\tDETAILS")
	for _, l := range c.store.GetAllActivityLogs() {
		label, ok := actionLabels[l.Action]
		if !ok {
			label = string(l.Action)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", l.Timestamp.Format(common.LastSeenLayout), l.UserID, label, l.Details)
	}
	return w.Flush()
}
