package model

import "fmt"

// Level is the requested depth of explanation.
type Level string

// Style is the requested answer length/format.
type Style string

// Language is the requested prose register.
type Language string

const (
	LevelBasic    Level = "basic"
	LevelAdvanced Level = "advanced"

	StyleDetailed Style = "detailed"
	StyleShort    Style = "short"

	LanguageEnglish  Language = "english"
	LanguageHinglish Language = "hinglish"
)

const (
	DefaultLevel    = LevelBasic
	DefaultStyle    = StyleDetailed
	DefaultLanguage = LanguageHinglish
)

// ParseLevel maps a raw form value to a Level. Empty input falls back to the
// default; anything else unrecognized is rejected.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "":
		return DefaultLevel, nil
	case string(LevelBasic):
		return LevelBasic, nil
	case string(LevelAdvanced):
		return LevelAdvanced, nil
	}
	return "", fmt.Errorf("invalid level %q, must be basic/advanced", s)
}

// ParseStyle maps a raw form value to a Style.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "":
		return DefaultStyle, nil
	case string(StyleDetailed):
		return StyleDetailed, nil
	case string(StyleShort):
		return StyleShort, nil
	}
	return "", fmt.Errorf("invalid style %q, must be detailed/short", s)
}

// ParseLanguage maps a raw form value to a Language.
func ParseLanguage(s string) (Language, error) {
	switch s {
	case "":
		return DefaultLanguage, nil
	case string(LanguageEnglish):
		return LanguageEnglish, nil
	case string(LanguageHinglish):
		return LanguageHinglish, nil
	}
	return "", fmt.Errorf("invalid language %q, must be english/hinglish", s)
}
