package engine

import (
	"testing"

	"github.com/mj1618/cute-borders/internal/model"
	"github.com/stretchr/testify/require"
)

func TestClassifier_IsActive(t *testing.T) {
	const (
		app       model.Handle = 0x100
		dialog    model.Handle = 0x200 // owned by app
		subDialog model.Handle = 0x300 // owned by dialog
		other     model.Handle = 0x400
		otherDlg  model.Handle = 0x500 // owned by other
		menu      model.Handle = 0x600
		foreignMn model.Handle = 0x700
	)
	d := newFakeDesktop()
	d.owners[dialog] = app
	d.owners[subDialog] = dialog
	d.owners[otherDlg] = other
	d.pids[app] = 10
	d.pids[menu] = 10
	d.pids[other] = 20
	d.pids[foreignMn] = 20

	c := NewClassifier(d)
	tests := []struct {
		name string
		w    model.Window
		fg   model.Handle
		want bool
	}{
		{"foreground_itself", model.Window{Handle: app}, app, true},
		{"owned_dialog", model.Window{Handle: dialog}, app, true},
		{"owned_two_levels", model.Window{Handle: subDialog}, app, true},
		{"owner_is_not_active_when_dialog_is_foreground", model.Window{Handle: app}, dialog, false},
		{"unrelated", model.Window{Handle: other}, app, false},
		{"unrelated_owned", model.Window{Handle: otherDlg}, app, false},
		{"same_process_menu", model.Window{Handle: menu, Class: model.MenuClass}, app, true},
		{"same_process_menu_pid_prefilled", model.Window{Handle: 0x999, Class: model.MenuClass, PID: 10}, app, true},
		{"foreign_process_menu", model.Window{Handle: foreignMn, Class: model.MenuClass}, app, false},
		{"same_process_non_menu", model.Window{Handle: 0x998, PID: 10}, app, false},
		{"no_foreground", model.Window{Handle: app}, 0, false},
		{"menu_without_pid_no_foreground_pid", model.Window{Handle: 0x997, Class: model.MenuClass}, other + 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, c.IsActive(tt.w, tt.fg))
		})
	}
}

func TestClassifier_OwnerCycleTerminates(t *testing.T) {
	d := newFakeDesktop()
	d.owners[1] = 2
	d.owners[2] = 3
	d.owners[3] = 1

	c := NewClassifier(d)
	require.False(t, c.IsActive(model.Window{Handle: 1}, 99))
}

func TestClassifier_DepthBound(t *testing.T) {
	d := newFakeDesktop()
	for h := model.Handle(1); h < 100; h++ {
		d.owners[h] = h + 1
	}
	c := NewClassifier(d)

	require.True(t, c.IsActive(model.Window{Handle: 1}, MaxOwnerDepth+1))
	require.False(t, c.IsActive(model.Window{Handle: 1}, 100), "chain longer than MaxOwnerDepth is cut off")
}
