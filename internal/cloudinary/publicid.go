package cloudinary

import (
	"regexp"
	"strings"
)

// uploadMarker separates the account/delivery prefix from the resource path
// in a Cloudinary delivery URL.
const uploadMarker = "/image/upload/"

// versionPattern matches version segments like "v1690000000".
var versionPattern = regexp.MustCompile(`^v\d+$`)

// transformationPrefixes are the parameter prefixes Cloudinary uses inside a
// transformation segment ("w_400,q_80,c_fill" and similar).
var transformationPrefixes = []string{
	"w_", "h_", "c_", "q_", "f_", "ar_", "dpr_", "e_", "fl_",
	"g_", "l_", "o_", "r_", "t_", "u_", "x_", "y_", "z_",
}

var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
	"gif":  true,
	"avif": true,
}

// ExtractPublicID derives the public ID (the asset's canonical storage key)
// from a Cloudinary delivery URL. Version segments and transformation
// segments are skipped; the first segment containing a dot terminates the
// key with its extension stripped. Returns ok=false when the URL does not
// carry the upload marker or no filename segment is found.
//
// The function is pure: destroy requests built from it are idempotent and
// replayable. Two URLs differing only in transformations or version resolve
// to the same public ID.
func ExtractPublicID(rawURL string) (string, bool) {
	idx := strings.Index(rawURL, uploadMarker)
	if idx < 0 {
		return "", false
	}

	rest := rawURL[idx+len(uploadMarker):]
	segments := strings.Split(rest, "/")

	var parts []string
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		// classification order matters: "dpr_2.0,w_400" is a
		// transformation segment, not a filename
		if isVersionSegment(segment) || isTransformationSegment(segment) {
			continue
		}
		if strings.Contains(segment, ".") {
			parts = append(parts, stripImageExtension(segment))
			return strings.Join(parts, "/"), true
		}
		// folder path, retained in order
		parts = append(parts, segment)
	}

	// no filename segment: not a recognizable asset reference
	return "", false
}

func isVersionSegment(segment string) bool {
	return versionPattern.MatchString(segment)
}

// isTransformationSegment reports whether every comma-separated parameter in
// the segment starts with a known transformation prefix.
func isTransformationSegment(segment string) bool {
	for _, param := range strings.Split(segment, ",") {
		if !hasTransformationPrefix(param) {
			return false
		}
	}
	return true
}

func hasTransformationPrefix(param string) bool {
	for _, prefix := range transformationPrefixes {
		if strings.HasPrefix(param, prefix) {
			return true
		}
	}
	return false
}

// stripImageExtension removes a trailing recognized image extension,
// case-insensitively. Unrecognized extensions are kept: they are part of the
// public ID as Cloudinary stores it.
func stripImageExtension(filename string) string {
	dot := strings.LastIndex(filename, ".")
	if dot < 0 {
		return filename
	}
	if imageExtensions[strings.ToLower(filename[dot+1:])] {
		return filename[:dot]
	}
	return filename
}
