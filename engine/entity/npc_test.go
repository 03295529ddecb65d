package entity

import (
	"testing"

	"github.com/FelpHendeson/TerminalRPG/types"
)

func TestAvailableAt_NoScheduleAlwaysAvailable(t *testing.T) {
	n := &NPC{ID: "andarilho", Name: "Andarilho"}
	if !n.AvailableAt("qualquer_lugar", 3) {
		t.Error("NPC without schedules should be available anywhere, any hour")
	}
}

func TestAvailableAt_DayWindow(t *testing.T) {
	n := &NPC{
		ID: "ferreiro", Name: "Ferreiro",
		Schedules: []types.Schedule{
			{Location: "vila", Window: types.Window{Start: 9, End: 17}},
		},
	}
	cases := []struct {
		loc  string
		hour int
		want bool
	}{
		{"vila", 9, true},
		{"vila", 16, true},
		{"vila", 17, false}, // exclusive upper bound
		{"vila", 8, false},
		{"taverna", 12, false}, // right hour, wrong place
	}
	for _, c := range cases {
		if got := n.AvailableAt(c.loc, c.hour); got != c.want {
			t.Errorf("AvailableAt(%s, %d) = %v, want %v", c.loc, c.hour, got, c.want)
		}
	}
}

func TestAvailableAt_MidnightWraparound(t *testing.T) {
	n := &NPC{
		ID: "guarda", Name: "Guarda Noturno",
		Schedules: []types.Schedule{
			{Location: "portao", Window: types.Window{Start: 22, End: 5}},
		},
	}
	cases := []struct {
		hour int
		want bool
	}{
		{23, true},
		{2, true},
		{22, true},
		{5, false},
		{10, false},
	}
	for _, c := range cases {
		if got := n.AvailableAt("portao", c.hour); got != c.want {
			t.Errorf("wraparound AvailableAt(portao, %d) = %v, want %v", c.hour, got, c.want)
		}
	}
}

func TestAvailableAt_MultipleSchedules(t *testing.T) {
	n := &NPC{
		ID: "mercador", Name: "Mercador",
		Schedules: []types.Schedule{
			{Location: "mercado", Window: types.Window{Start: 8, End: 12}},
			{Location: "taverna", Window: types.Window{Start: 19, End: 23}},
		},
	}
	if !n.AvailableAt("mercado", 10) {
		t.Error("should be at the market in the morning")
	}
	if !n.AvailableAt("taverna", 20) {
		t.Error("should be at the tavern in the evening")
	}
	if n.AvailableAt("mercado", 20) {
		t.Error("should not be at the market in the evening")
	}
}
