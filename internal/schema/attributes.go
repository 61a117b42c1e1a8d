package schema

import "strings"

// Attributes is the numeric file attribute encoding used by the Windows API.
type Attributes uint32

const (
	AttributeReadOnly          Attributes = 0x1
	AttributeHidden            Attributes = 0x2
	AttributeSystem            Attributes = 0x4
	AttributeDirectory         Attributes = 0x10
	AttributeArchive           Attributes = 0x20
	AttributeDevice            Attributes = 0x40
	AttributeNormal            Attributes = 0x80
	AttributeTemporary         Attributes = 0x100
	AttributeSparseFile        Attributes = 0x200
	AttributeReparsePoint      Attributes = 0x400
	AttributeCompressed        Attributes = 0x800
	AttributeOffline           Attributes = 0x1000
	AttributeNotContentIndexed Attributes = 0x2000
	AttributeEncrypted         Attributes = 0x4000

	// InvalidAttributes is returned by GetFileAttributes on failure.
	InvalidAttributes Attributes = 0xFFFFFFFF
)

//nolint:gochecknoglobals
var attributeNames = []struct {
	attr Attributes
	name string
}{
	{AttributeReadOnly, "ReadOnly"},
	{AttributeHidden, "Hidden"},
	{AttributeSystem, "System"},
	{AttributeDirectory, "Directory"},
	{AttributeArchive, "Archive"},
	{AttributeDevice, "Device"},
	{AttributeNormal, "Normal"},
	{AttributeTemporary, "Temporary"},
	{AttributeSparseFile, "SparseFile"},
	{AttributeReparsePoint, "ReparsePoint"},
	{AttributeCompressed, "Compressed"},
	{AttributeOffline, "Offline"},
	{AttributeNotContentIndexed, "NotContentIndexed"},
	{AttributeEncrypted, "Encrypted"},
}

// Has reports whether all bits of flag are set.
func (a Attributes) Has(flag Attributes) bool {
	return a&flag == flag
}

// String returns the attribute names joined by ", " in the style of .NET's
// FileAttributes formatting.
func (a Attributes) String() string {
	if a == InvalidAttributes {
		return "Invalid"
	}

	var names []string
	for _, an := range attributeNames {
		if a.Has(an.attr) {
			names = append(names, an.name)
		}
	}

	if len(names) == 0 {
		return "None"
	}

	return strings.Join(names, ", ")
}

// ParseAttributes parses a comma-separated list of attribute names as
// produced by [Attributes.String]. Names are matched case-insensitively.
func ParseAttributes(s string) (Attributes, bool) {
	var attrs Attributes

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		found := false
		for _, an := range attributeNames {
			if strings.EqualFold(an.name, part) {
				attrs |= an.attr
				found = true

				break
			}
		}
		if !found {
			return 0, false
		}
	}

	return attrs, true
}
