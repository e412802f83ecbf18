package session

import (
	"github.com/nhath/centrum/internal/history"
	"github.com/nhath/centrum/internal/provider"
)

// startEdit opens the overlay for the highlighted application
func (s *Session) startEdit(kind Editing) bool {
	c, ok := s.Selected()
	if !ok || !c.Editable() {
		return false
	}
	s.editing = kind
	s.editingID = c.DesktopID
	switch kind {
	case EditRename:
		s.editValue = c.Name
	case EditIcon:
		s.editValue = c.Icon
		if s.settings.IconMode == provider.IconModeSystem {
			s.editValue = ""
		}
	}
	return true
}

func (s *Session) cancelEdit() {
	s.editing = EditNone
	s.editingID = ""
	s.editValue = ""
}

// commitEdit stores the edited value as an override. An empty value clears
// the field so the registry value shows again.
func (s *Session) commitEdit() {
	id := s.editingID
	o := s.deps.Overrides[id]
	value := history.StringPtr(s.editValue)
	switch s.editing {
	case EditRename:
		o.Name = value
	case EditIcon:
		if s.settings.IconMode == provider.IconModeSystem {
			o.SystemIcon = value
		} else {
			o.Icon = value
		}
	}
	s.deps.Overrides[id] = o
	s.saveOverride(id)
	s.cancelEdit()

	s.reloadApps()
	if s.mode == ModeApps {
		s.results = provider.ByUsage(s.appCands, s.deps.History)
		s.appIndex = clampIndex(s.appIndex, len(s.results))
	}
}

// hideSelected moves the highlighted application between the visible and
// hidden lists.
func (s *Session) hideSelected() bool {
	c, ok := s.Selected()
	if !ok || !c.Editable() {
		return false
	}
	id := c.DesktopID
	o := s.deps.Overrides[id]
	hidden := !s.settings.ShowHidden
	o.Hidden = &hidden
	s.deps.Overrides[id] = o
	s.saveOverride(id)

	s.reloadApps()
	idx := s.appIndex
	s.results = provider.ByUsage(s.appCands, s.deps.History)
	s.appIndex = clampIndex(idx, len(s.results))
	return true
}
