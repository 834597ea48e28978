package model

// TagType describes what a tag refers to.
type TagType string

// Tag type constants.
const (
	TagLocation TagType = "LOCATION"
	TagCategory TagType = "CATEGORY"
	TagContext  TagType = "CONTEXT"
	TagPerson   TagType = "PERSON"
	TagCustom   TagType = "CUSTOM"
)

// Valid reports whether t is a known tag type.
func (t TagType) Valid() bool {
	switch t {
	case TagLocation, TagCategory, TagContext, TagPerson, TagCustom:
		return true
	}
	return false
}

// Tag labels tasks for matching.
type Tag struct {
	Name string  `yaml:"name"`
	Type TagType `yaml:"type"`
	ID   int64   `yaml:"id"`
}
