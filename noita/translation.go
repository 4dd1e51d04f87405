package noita

import "github.com/necauqua/noita-memreader/remote"

// Language is one localization's metadata and string table.
type Language struct {
	ID                          remote.SsoString
	Name                        remote.SsoString
	FontDefault                 remote.SsoString
	FontInventoryTitle          remote.SsoString
	FontImportantMessageTitle   remote.SsoString
	FontWorldSpaceMessage       remote.SsoString
	FontsUTF8                   remote.ByteBool
	FontsPixelFont               remote.PadBool2
	FontsDPI                    float32
	UIWandInfoOffset1           float32
	UIWandInfoOffset2           float32
	UIActionInfoOffset2         float32
	UIConfigureControlsOffset2 float32
	Strings                     remote.Vector[remote.SsoString]
}

// Pod marks Language as fixed-layout.
func (Language) Pod() {}

// TranslationManager owns every loaded language's string table and
// the key→index map used to resolve a translation key.
type TranslationManager struct {
	Vftable           remote.Vftable
	UnknownStrings    remote.Vector[remote.SsoString]
	Languages         remote.Vector[Language]
	KeyToIndex        remote.OrderedMap[remote.SsoString, remote.U32]
	ExtraLangFiles    remote.Vector[remote.SsoString]
	CurrentLangIdx    uint32
	_                 uint32
	_                 float32
	UnknownPrimitives remote.Vector[remote.U32]
	UnknownMap        remote.OrderedMap[remote.SsoString, remote.SsoString]
}

// Pod marks TranslationManager as fixed-layout.
func (TranslationManager) Pod() {}
