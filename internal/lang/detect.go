package lang

import (
	"github.com/Xuanwo/go-locale"
	"golang.org/x/text/language"
)

// Detect returns the user's locale in POSIX form ("en_US"), or fallback
// when the environment does not name one.
func Detect(fallback string) string {
	tag, err := locale.Detect()
	if err != nil || tag == language.Und {
		return fallback
	}
	return POSIX(tag)
}

// POSIX renders tag as language[_REGION], the form used by hunspell
// dictionary names and gettext Language headers.
func POSIX(tag language.Tag) string {
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	region, conf := tag.Region()
	if conf != language.Exact {
		return base.String()
	}
	return base.String() + "_" + region.String()
}
