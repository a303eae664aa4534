package profile

import (
	"errors"
	"fmt"
	"maps"
)

// Section identifies one independently-savable part of a user record.
// The set is closed: a value outside the declared constants is a programming
// error, never a silent no-op.
type Section int

const (
	SectionUser Section = iota
	SectionAstrology
	SectionEducation
	SectionFamily
	SectionProfession

	sectionCount
)

var ErrInvalidSection = errors.New("invalid section")

var sectionNames = [sectionCount]string{"user", "astrology", "education", "family", "profession"}

func (s Section) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionNames[s]
}

func (s Section) Valid() bool {
	return s >= 0 && s < sectionCount
}

// Sections lists every valid section in declaration order.
func Sections() []Section {
	return []Section{SectionUser, SectionAstrology, SectionEducation, SectionFamily, SectionProfession}
}

// Tree holds one section's editable fields. Leaves are strings (text and
// select inputs), bools (checkboxes), ints (count inputs) or []string (the
// photo list); nested sub-sections are Tree values.
type Tree map[string]any

// EditableState is the in-memory form state for one user record, keyed by
// section. It mirrors the normalized record shape: every expected key is
// present from the moment the state is built. The password-change field
// lives outside the section tree and is never part of a section payload.
type EditableState struct {
	sections [sectionCount]Tree

	// NewPassword backs the separate password-change flow.
	NewPassword string
}

// Section returns the current tree for sec. The returned map must be treated
// as read-only; ApplyFieldChange replaces it wholesale on every change, so
// holders of a previously returned tree never observe later edits.
func (s *EditableState) Section(sec Section) (Tree, error) {
	if !sec.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSection, int(sec))
	}
	return s.sections[sec], nil
}

// ApplyFieldChange replaces exactly one leaf value. With subSection empty the
// update targets sections[sec][field]; otherwise sections[sec][subSection][field].
// The touched section tree (and sub-tree) is copied, so sibling fields keep
// their previous values and previously handed-out trees stay untouched.
func (s *EditableState) ApplyFieldChange(sec Section, field string, value any, subSection string) error {
	if !sec.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSection, int(sec))
	}
	next := maps.Clone(s.sections[sec])
	if next == nil {
		next = Tree{}
	}
	if subSection != "" {
		var sub Tree
		if existing, ok := next[subSection].(Tree); ok {
			sub = maps.Clone(existing)
		} else {
			sub = Tree{}
		}
		sub[field] = value
		next[subSection] = sub
	} else {
		next[field] = value
	}
	s.sections[sec] = next
	return nil
}

// Leaf returns a top-level string leaf of a section, or "" when the leaf is
// missing or not a string.
func (s *EditableState) Leaf(sec Section, field string) string {
	if !sec.Valid() {
		return ""
	}
	v, _ := s.sections[sec][field].(string)
	return v
}

// SubLeaf returns a string leaf nested one level down.
func (s *EditableState) SubLeaf(sec Section, subSection, field string) string {
	if !sec.Valid() {
		return ""
	}
	sub, ok := s.sections[sec][subSection].(Tree)
	if !ok {
		return ""
	}
	v, _ := sub[field].(string)
	return v
}

// Photos returns the photo list leaf of the user section. The slice is the
// stored one; callers that mutate it must go through SetPhotos instead.
func (s *EditableState) Photos() []string {
	photos, _ := s.sections[SectionUser]["profile_pictures"].([]string)
	return photos
}

// SetPhotos replaces the photo list leaf, copying the user tree like any
// other field change.
func (s *EditableState) SetPhotos(photos []string) {
	if photos == nil {
		photos = []string{}
	}
	_ = s.ApplyFieldChange(SectionUser, "profile_pictures", photos, "")
}

// setSection installs a fully-built tree; used by Normalize.
func (s *EditableState) setSection(sec Section, t Tree) {
	s.sections[sec] = t
}
