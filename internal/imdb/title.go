package imdb

import (
	"path/filepath"
	"regexp"
	"strings"
)

// releaseTags are markers that reliably start the junk half of a release
// name. Everything from the first tag onward is dropped.
var releaseTags = map[string]bool{
	"720p": true, "1080p": true, "1080i": true, "2160p": true, "480p": true,
	"4k": true, "uhd": true, "hdr": true,
	"bluray": true, "blu-ray": true, "brrip": true, "bdrip": true,
	"webrip": true, "web-dl": true, "webdl": true, "web": true,
	"hdtv": true, "dvdrip": true, "dvd": true, "cam": true, "ts": true,
	"x264": true, "x265": true, "h264": true, "h265": true, "hevc": true,
	"xvid": true, "divx": true, "aac": true, "ac3": true, "dts": true,
	"remux": true, "proper": true, "repack": true, "extended": true,
	"unrated": true, "limited": true, "internal": true,
}

var yearRe = regexp.MustCompile(`^\(?(19|20)\d{2}\)?$`)
var dimensionsRe = regexp.MustCompile(`^\d{3,4}x\d{3,4}$`)

// ParseTitle extracts a probable movie title from a media filename.
// Dots and underscores are treated as word separators; the title ends
// at the first year, resolution marker, or release tag.
func ParseTitle(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	stem = strings.NewReplacer(".", " ", "_", " ").Replace(stem)

	var words []string
	for _, word := range strings.Fields(stem) {
		lowered := strings.ToLower(strings.Trim(word, "[]{}"))
		if yearRe.MatchString(lowered) || dimensionsRe.MatchString(lowered) || releaseTags[lowered] {
			break
		}
		words = append(words, word)
	}

	title := strings.TrimSpace(strings.Join(words, " "))
	if title == "" {
		// The whole name was tags; fall back to the raw stem.
		return strings.TrimSpace(stem)
	}
	return title
}
