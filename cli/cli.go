// Package cli provides terminal I/O, output formatting, and command
// dispatch for the TerminalRPG engine.
package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/FelpHendeson/TerminalRPG/engine"
	"github.com/FelpHendeson/TerminalRPG/engine/save"
	"github.com/FelpHendeson/TerminalRPG/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Session   *engine.Session
	Store     *save.Store
	In        io.Reader
	Out       io.Writer
	Slot      int    // active save slot
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given session and save store.
func New(s *engine.Session, store *save.Store) *CLI {
	return &CLI{
		Session: s,
		Store:   store,
		In:      os.Stdin,
		Out:     os.Stdout,
		Slot:    1,
	}
}

// Run starts the game loop. It shows the intro, describes the starting
// location, then loops: prompt → input → dispatch → output.
func (c *CLI) Run() {
	if c.Session.Defs.Game.Intro != "" {
		c.printLine(c.Session.Defs.Game.Intro)
		c.printLine("")
	}
	c.cmdLook()

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return // /quit
			}
			continue
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		c.dispatch(input)
	}
}

// Execute runs one input line — game command or meta-command — and returns
// its output lines plus whether the player asked to quit. The TUI front end
// drives the same command set through this entry point.
func (c *CLI) Execute(input string) ([]string, bool) {
	var buf bytes.Buffer
	prev := c.Out
	c.Out = &buf
	defer func() { c.Out = prev }()

	quit := false
	if strings.HasPrefix(input, "/") {
		quit = c.handleMeta(input)
	} else {
		c.dispatch(input)
	}

	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil, quit
	}
	return strings.Split(out, "\n"), quit
}

// dispatch routes one game command line.
func (c *CLI) dispatch(input string) {
	parts := strings.Fields(input)
	verb := strings.ToLower(parts[0])
	arg := strings.Join(parts[1:], " ")

	switch verb {
	case "look", "l":
		c.cmdLook()
	case "map", "m":
		c.cmdMap()
	case "go", "travel", "t":
		c.cmdTravel(arg)
	case "npcs", "n":
		c.cmdNPCs()
	case "talk", "speak":
		c.cmdTalk(arg)
	case "monsters":
		c.cmdMonsters()
	case "hunt", "fight":
		c.cmdHunt(arg)
	case "explore", "e":
		c.cmdExplore()
	case "quests", "q":
		c.cmdQuests()
	case "accept":
		c.cmdAccept(arg)
	case "journal", "j":
		c.cmdJournal()
	case "rest", "sleep", "z":
		c.cmdRest(arg)
	case "time":
		c.cmdTime()
	case "stats", "status", "i":
		c.cmdStats()
	case "skills":
		c.cmdSkills(parts[1:])
	case "story":
		c.cmdStory()
	case "choose":
		c.cmdChoose(arg)
	case "help", "?":
		c.cmdHelp()
	default:
		c.printLine(fmt.Sprintf("I don't know how to %q. Type help for commands.", verb))
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	var arg string
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "/quit", "/exit":
		c.printSystem("Goodbye.")
		return true

	case "/save":
		c.cmdSave(arg)

	case "/load":
		c.cmdLoad(arg)

	case "/slots":
		c.cmdSlots()

	case "/delete":
		c.cmdDelete(arg)

	case "/help":
		c.cmdHelp()

	default:
		c.printSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
	}

	return false
}

func (c *CLI) slotArg(arg string) (int, bool) {
	if arg == "" {
		return c.Slot, true
	}
	slot, err := strconv.Atoi(arg)
	if err != nil || !c.Store.ValidSlot(slot) {
		c.printSystem(fmt.Sprintf("Invalid slot %q. Slots run 1 to %d.", arg, c.Store.MaxSlots))
		return 0, false
	}
	return slot, true
}

func (c *CLI) cmdSave(arg string) {
	slot, ok := c.slotArg(arg)
	if !ok {
		return
	}
	if err := c.Store.Save(slot, c.Session.Snapshot()); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.Slot = slot
	c.printSystem(fmt.Sprintf("Game saved to slot %d.", slot))
}

func (c *CLI) cmdLoad(arg string) {
	slot, ok := c.slotArg(arg)
	if !ok {
		return
	}
	sd, err := c.Store.Load(slot)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}
	c.Session = engine.NewFromSave(c.Session.Defs, sd)
	c.Slot = slot
	c.printSystem(fmt.Sprintf("Game loaded from slot %d.", slot))
	c.cmdLook()
}

func (c *CLI) cmdSlots() {
	for _, info := range c.Store.List() {
		if !info.Exists {
			c.printLine(fmt.Sprintf("  %d. (empty)", info.Slot))
			continue
		}
		when := time.UnixMilli(info.SavedAt).Format("2006-01-02 15:04")
		c.printLine(fmt.Sprintf("  %d. %s — level %d — %s", info.Slot, info.Name, info.Level, when))
	}
}

func (c *CLI) cmdDelete(arg string) {
	if arg == "" {
		c.printSystem("Usage: /delete <slot>")
		return
	}
	slot, ok := c.slotArg(arg)
	if !ok {
		return
	}
	removed, err := c.Store.Delete(slot)
	if err != nil {
		c.printSystem(fmt.Sprintf("Delete failed: %v", err))
		return
	}
	if !removed {
		c.printSystem(fmt.Sprintf("Slot %d is already empty.", slot))
		return
	}
	c.printSystem(fmt.Sprintf("Slot %d deleted.", slot))
}

func (c *CLI) cmdLook() {
	node, ok := c.Session.Here()
	if !ok {
		c.printLine("You are nowhere in particular.")
		return
	}
	crumbs := c.Session.World.Breadcrumbs(node)
	names := make([]string, len(crumbs))
	for i, n := range crumbs {
		names[i] = n.Name
	}
	c.printLine(fmt.Sprintf("%s (%s)", node.Name, strings.Join(names, " > ")))
	if node.Description != "" {
		c.printLine(node.Description)
	}

	if npcs := c.Session.NPCsHere(); len(npcs) > 0 {
		names := make([]string, len(npcs))
		for i, n := range npcs {
			names[i] = n.Name
		}
		c.printLine("People here: " + strings.Join(names, ", "))
	}
	if monsters := c.Session.MonstersHere(); len(monsters) > 0 {
		c.printLine("Something stirs nearby...")
	}
}

func (c *CLI) cmdMap() {
	node, ok := c.Session.Here()
	if !ok {
		c.printLine("No map without a location.")
		return
	}
	children := c.Session.World.Children(node)
	if len(children) == 0 {
		// Leaf: show the siblings instead so there is somewhere to go.
		if crumbs := c.Session.World.Breadcrumbs(node); len(crumbs) > 1 {
			children = c.Session.World.Children(crumbs[len(crumbs)-2])
		}
	}
	if len(children) == 0 {
		c.printLine("Nowhere to go from here.")
		return
	}
	c.printLine("Nearby:")
	for _, child := range children {
		c.printLine(fmt.Sprintf("  %s (%s) — %s", child.Name, child.Type, child.ID))
	}
}

func (c *CLI) cmdTravel(arg string) {
	if arg == "" {
		c.printLine("Travel where? Try map.")
		return
	}
	node, ok := c.Session.Travel(arg)
	if !ok {
		c.printLine(fmt.Sprintf("You can't find the way to %q.", arg))
		return
	}
	c.printLine("You travel to " + node.Name + ".")
	c.cmdLook()
}

func (c *CLI) cmdNPCs() {
	npcs := c.Session.NPCsHere()
	if len(npcs) == 0 {
		c.printLine("No one is around at this hour.")
		return
	}
	for _, n := range npcs {
		c.printLine(fmt.Sprintf("  %s (%s) — %s", n.Name, n.Role, n.ID))
	}
}

func (c *CLI) cmdTalk(arg string) {
	if arg == "" {
		c.printLine("Talk to whom?")
		return
	}
	res, ok := c.Session.Talk(arg)
	if !ok {
		c.printLine(fmt.Sprintf("%q is not here right now.", arg))
		return
	}
	if res.Line != "" {
		c.printLine(fmt.Sprintf("%s: %q", res.NPC.Name, res.Line))
	} else {
		c.printLine(res.NPC.Name + " nods silently.")
	}
	c.printLine(fmt.Sprintf("Relationship with %s: %d", res.NPC.Name, res.Relation))
	c.reportCompleted(res.Completed)
}

func (c *CLI) cmdMonsters() {
	monsters := c.Session.MonstersHere()
	if len(monsters) == 0 {
		c.printLine("It is quiet here.")
		return
	}
	for _, m := range monsters {
		c.printLine(fmt.Sprintf("  %s (level %d, %d hp) — %s", m.Name, m.Level, m.MaxHP, m.ID))
	}
}

func (c *CLI) cmdHunt(arg string) {
	if arg == "" {
		c.printLine("Hunt what? Try monsters.")
		return
	}
	res, ok := c.Session.Hunt(arg)
	if !ok {
		c.printLine(fmt.Sprintf("No %q prowls here at this hour.", arg))
		return
	}
	c.printFight(res)
}

func (c *CLI) cmdExplore() {
	m, ok := c.Session.Explore()
	if !ok {
		c.printLine("You explore the area and find nothing.")
		return
	}
	c.printLine("A wild " + m.Name + " appears!")
	res, _ := c.Session.Hunt(m.ID)
	c.printFight(res)
}

func (c *CLI) printFight(res engine.HuntResult) {
	out := res.Outcome
	if !out.Won {
		c.printLine(fmt.Sprintf("The %s defeats you after %d rounds. You wake up dizzy.", res.Monster.Name, out.Rounds))
		return
	}
	c.printLine(fmt.Sprintf("You defeat the %s in %d rounds! +%d gold, +%d xp.",
		res.Monster.Name, out.Rounds, out.GoldGained, out.XPGained))
	for _, lvl := range out.LevelsGained {
		c.printLine(fmt.Sprintf("*** Level up! You are now level %d. ***", lvl))
	}
	c.reportCompleted(res.Completed)
}

func (c *CLI) cmdQuests() {
	quests := c.Session.AvailableQuests()
	if len(quests) == 0 {
		c.printLine("No quests on offer here and now.")
		return
	}
	for _, q := range quests {
		c.printLine(fmt.Sprintf("  %s — %s (%s)", q.Name, q.Description, q.ID))
	}
}

func (c *CLI) cmdAccept(arg string) {
	if arg == "" {
		c.printLine("Accept which quest? Try quests.")
		return
	}
	if !c.Session.AcceptQuest(arg) {
		c.printLine(fmt.Sprintf("The quest %q is not on offer.", arg))
		return
	}
	q := c.Session.Defs.QuestByID[arg]
	c.printLine("Quest accepted: " + q.Name)
}

func (c *CLI) cmdJournal() {
	quests := c.Session.ActiveQuests()
	if len(quests) == 0 {
		c.printLine("Your journal is empty.")
		return
	}
	for _, q := range quests {
		line := "  " + q.Name
		if len(q.Objectives) > 0 {
			obj := q.Objectives[0]
			line += fmt.Sprintf(" — %s (%d/%d)", obj.Description,
				c.Session.State.Flags.Progress(q.ID), obj.Required)
		}
		c.printLine(line)
	}
}

func (c *CLI) cmdRest(arg string) {
	hours := 8
	if arg != "" {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			c.printLine("Rest for how many hours?")
			return
		}
		hours = n
	}
	h := c.Session.Rest(hours)
	c.printLine(fmt.Sprintf("You rest for %d hours and wake refreshed. It is now %02d:00.", hours, h))
}

func (c *CLI) cmdTime() {
	day := "night"
	if c.Session.Clock.IsDaytime() {
		day = "day"
	}
	c.printLine(fmt.Sprintf("It is %s — %s.", c.Session.Clock.Formatted(), day))
}

func (c *CLI) cmdStats() {
	p := c.Session.State.Player
	c.printLine(fmt.Sprintf("%s — level %d", p.Name, p.Level))
	c.printLine(fmt.Sprintf("  HP %d/%d  MP %d/%d", p.HP, p.MaxHP, p.MP, p.MaxMP))
	c.printLine(fmt.Sprintf("  Atk %d  Def %d  Spd %d", p.Atk, p.Def, p.Spd))
	c.printLine(fmt.Sprintf("  Gold %d  Fame %d  XP %d/%d", p.Gold, p.Fame, p.XP, p.XPToLevelUp))
	if len(p.Inventory) > 0 {
		c.printLine("  Carrying: " + strings.Join(p.Inventory, ", "))
	}
}

func (c *CLI) cmdSkills(args []string) {
	if len(args) >= 2 {
		switch strings.ToLower(args[0]) {
		case "learn":
			if !c.Session.LearnSkill(args[1]) {
				c.printLine("No such skill to learn.")
			} else {
				c.printLine("Learned " + args[1] + ".")
			}
			return
		case "equip":
			if !c.Session.EquipSkill(args[1]) {
				c.printLine("You can't equip that.")
			} else {
				c.printLine("Equipped " + args[1] + ".")
			}
			return
		case "unequip":
			if !c.Session.UnequipSkill(args[1]) {
				c.printLine("That skill is not equipped.")
			} else {
				c.printLine("Unequipped " + args[1] + ".")
			}
			return
		}
	}

	p := c.Session.State.Player
	if len(p.Skills) == 0 {
		c.printLine("You know no skills yet.")
		return
	}
	for _, id := range p.Skills {
		def, ok := c.Session.Defs.Skills[id]
		if !ok {
			continue
		}
		mark := " "
		if contains(p.EquippedActives, id) || contains(p.EquippedPassives, id) {
			mark = "*"
		}
		c.printLine(fmt.Sprintf(" %s %s (%s) — %s", mark, def.Name, def.Type, id))
	}
}

func (c *CLI) cmdStory() {
	evt, ok := c.Session.StoryEvent()
	if !ok {
		c.printLine("Your story has run its course.")
		return
	}
	c.printLine(evt.Text)
	if len(evt.Choices) == 0 {
		c.Session.AdvanceStory(0)
		return
	}
	for i, ch := range evt.Choices {
		c.printLine(fmt.Sprintf("  %d. %s", i+1, ch.Text))
	}
	c.printLine("Type choose <number>.")
}

func (c *CLI) cmdChoose(arg string) {
	evt, ok := c.Session.StoryEvent()
	if !ok || len(evt.Choices) == 0 {
		c.printLine("There is nothing to choose right now.")
		return
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(evt.Choices) {
		c.printLine(fmt.Sprintf("Pick a number between 1 and %d.", len(evt.Choices)))
		return
	}
	c.Session.AdvanceStory(n - 1)
	c.cmdStory()
}

func (c *CLI) cmdHelp() {
	help := []string{
		"System:",
		"  /save [slot]   — Save game (default: current slot)",
		"  /load [slot]   — Load game",
		"  /slots         — List save slots",
		"  /delete <slot> — Delete a save",
		"  /quit          — Exit game",
		"",
		"Game commands:",
		"  look (l)           — Describe where you are",
		"  map (m)            — List nearby places",
		"  go <place>         — Travel (id or full path with >)",
		"  npcs / talk <npc>  — See who is around, talk to someone",
		"  monsters           — See what prowls here",
		"  hunt <monster>     — Pick a fight",
		"  explore (e)        — Wander until something finds you",
		"  quests / accept    — Quests on offer here and now",
		"  journal (j)        — Your accepted quests",
		"  rest [hours] (z)   — Sleep; heals and passes time",
		"  time               — Check the hour",
		"  stats (i)          — Your character sheet",
		"  skills [learn|equip|unequip <id>]",
		"  story / choose <n> — Follow the story",
		"  again (g)          — Repeat your last command",
	}
	for _, line := range help {
		c.printLine(line)
	}
}

func (c *CLI) reportCompleted(quests []types.QuestDef) {
	for _, q := range quests {
		c.printLine("Quest completed: " + q.Name + "!")
		r := q.Rewards
		if r.Gold > 0 || r.Fame > 0 || r.XP > 0 {
			c.printLine(fmt.Sprintf("  Rewards: %d gold, %d fame, %d xp", r.Gold, r.Fame, r.XP))
		}
		for _, item := range r.Items {
			c.printLine("  Received: " + item)
		}
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
