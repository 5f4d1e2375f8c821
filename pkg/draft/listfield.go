package draft

import "RecipeShare-Go/internal/utils"

// ListField is an ordered list of editable string slots. It backs both the
// ingredient and instruction editors. A field never holds fewer than one
// slot; the minimum is enforced here, not by callers.
type ListField struct {
	values   []string
	onChange func()
}

// NewListField returns a field holding a single blank slot. onChange fires
// once per state-changing operation and may be nil.
func NewListField(onChange func()) *ListField {
	return &ListField{
		values:   []string{""},
		onChange: onChange,
	}
}

// Append adds one blank slot at the tail.
func (f *ListField) Append() {
	f.values = append(f.values, "")
	f.notify()
}

// UpdateAt replaces the slot at index. Out-of-range indexes are ignored.
func (f *ListField) UpdateAt(index int, value string) {
	if index < 0 || index >= len(f.values) {
		return
	}
	f.values[index] = value
	f.notify()
}

// RemoveAt removes the slot at index, preserving the order of the rest.
// A no-op when only one slot remains or when index is out of range.
func (f *ListField) RemoveAt(index int) {
	if len(f.values) <= 1 {
		return
	}
	if index < 0 || index >= len(f.values) {
		return
	}
	f.values = append(f.values[:index], f.values[index+1:]...)
	f.notify()
}

func (f *ListField) Len() int {
	return len(f.values)
}

// Values returns a snapshot of the slots, blanks included.
func (f *ListField) Values() []string {
	out := make([]string, len(f.values))
	copy(out, f.values)
	return out
}

// Compacted returns the slots with empty and whitespace-only entries
// dropped, order preserved. The field itself is untouched.
func (f *ListField) Compacted() []string {
	return utils.CompactStrings(f.values)
}

func (f *ListField) notify() {
	if f.onChange != nil {
		f.onChange()
	}
}
